package rancher

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/futuretea/rancher-api-mcp-server/pkg/api"
	"github.com/futuretea/rancher-api-mcp-server/pkg/toolsets/common"
)

// Toolset implements the Rancher cluster-inspection toolset
type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "rancher"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Read-only Rancher cluster inspection: list clusters and list pods via the Kubernetes proxy"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "cluster_list",
				Description: "List all available Rancher clusters with their state and Kubernetes version",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: table, yaml, or json",
							"enum":        []string{"table", "yaml", "json"},
							"default":     "table",
						},
					},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint:    common.BoolPtr(true),
				RequiresRancher: common.BoolPtr(true),
			},
			Handler: clusterListHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "pod_list",
				Description: "List pods in a cluster, optionally scoped to a namespace, similar to kubectl get pods",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"cluster": map[string]any{
							"type":        "string",
							"description": "Cluster ID (e.g. 'c-abc12') or display name",
						},
						"namespace": map[string]any{
							"type":        "string",
							"description": "Namespace to filter pods. If omitted, lists pods from all namespaces",
							"default":     "",
						},
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: table, yaml, or json",
							"enum":        []string{"table", "yaml", "json"},
							"default":     "table",
						},
					},
					Required: []string{"cluster"},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint:    common.BoolPtr(true),
				RequiresRancher: common.BoolPtr(true),
			},
			Handler: podListHandler,
		},
	}
}
