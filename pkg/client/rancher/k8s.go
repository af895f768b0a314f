package rancher

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	urlutil "github.com/futuretea/rancher-api-mcp-server/pkg/util/url"
)

// K8sGet performs an authenticated GET against a cluster's Kubernetes API
// through the Rancher proxy (/k8s/clusters/{clusterID}/...), decoding the
// JSON response into out. k8sPath is the API-server path, e.g.
// "api/v1/namespaces/kube-system/pods".
func (c *Client) K8sGet(ctx context.Context, clusterID, k8sPath string, out interface{}) error {
	rawURL := urlutil.GetClusterProxyURL(c.baseURL, clusterID) + "/" + strings.TrimPrefix(k8sPath, "/")
	return c.getJSON(ctx, rawURL, out)
}

// ListPods returns the PodList for a cluster, cluster-wide or scoped to a
// namespace. clusterRef may be a cluster ID or name.
func (c *Client) ListPods(ctx context.Context, clusterRef, namespace string) (*corev1.PodList, error) {
	clusterID, err := c.ResolveClusterID(ctx, clusterRef)
	if err != nil {
		return nil, err
	}

	path := "api/v1/pods"
	if namespace != "" {
		path = "api/v1/namespaces/" + namespace + "/pods"
	}

	podList := &corev1.PodList{}
	if err := c.K8sGet(ctx, clusterID, path, podList); err != nil {
		return nil, fmt.Errorf("failed to list pods for cluster %s: %w", clusterID, err)
	}
	return podList, nil
}
