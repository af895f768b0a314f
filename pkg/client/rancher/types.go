package rancher

import "encoding/json"

// Collection is the Norman v3 list payload shape. Items stay raw so callers
// decode only the fields they project.
type Collection struct {
	Data  []json.RawMessage `json:"data"`
	Links map[string]string `json:"links"`
}

// Cluster is the subset of a Rancher v3 cluster record the server projects.
type Cluster struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	State       string `json:"state"`

	RancherKubernetesEngineConfig *EngineConfig `json:"rancherKubernetesEngineConfig,omitempty"`
}

// EngineConfig carries the Kubernetes version of an RKE-provisioned cluster.
type EngineConfig struct {
	KubernetesVersion string `json:"kubernetesVersion"`
}

// KubernetesVersion returns the cluster's Kubernetes version, or "" when the
// engine config is absent.
func (c Cluster) KubernetesVersion() string {
	if c.RancherKubernetesEngineConfig == nil {
		return ""
	}
	return c.RancherKubernetesEngineConfig.KubernetesVersion
}
