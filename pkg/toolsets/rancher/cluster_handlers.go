package rancher

import (
	"context"
	"fmt"

	"github.com/futuretea/rancher-api-mcp-server/pkg/client/rancher"
	"github.com/futuretea/rancher-api-mcp-server/pkg/toolsets/common"
)

var clusterListHeaders = []string{"id", "name", "displayName", "state", "kubernetesVersion"}

// clusterListHandler handles the cluster_list tool
func clusterListHandler(client interface{}, params map[string]interface{}) (string, error) {
	rancherClient, err := common.ValidateRancherClient(client)
	if err != nil {
		return "", err
	}

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	clusters, err := rancherClient.ListClusters(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to list clusters: %w", err)
	}

	rows := make([]map[string]string, len(clusters))
	for i, cluster := range clusters {
		rows[i] = projectCluster(cluster)
	}

	return common.FormatList(rows, clusterListHeaders, format)
}

// projectCluster reduces a cluster record to the fields the tool reports.
// Absent remote fields stay empty rather than failing the listing.
func projectCluster(cluster rancher.Cluster) map[string]string {
	return map[string]string{
		"id":                cluster.ID,
		"name":              cluster.Name,
		"displayName":       cluster.DisplayName,
		"state":             cluster.State,
		"kubernetesVersion": cluster.KubernetesVersion(),
	}
}
