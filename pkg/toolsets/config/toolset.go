package config

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/futuretea/rancher-api-mcp-server/pkg/api"
	"github.com/futuretea/rancher-api-mcp-server/pkg/config"
	"github.com/futuretea/rancher-api-mcp-server/pkg/output"
	"github.com/futuretea/rancher-api-mcp-server/pkg/toolsets/common"
)

const redacted = "<redacted>"

// Toolset implements the config toolset
type Toolset struct {
	// StaticConfig is the effective server configuration.
	StaticConfig *config.StaticConfig
}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "config"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "View the effective server configuration with credentials redacted"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "configuration_view",
				Description: "View the effective server configuration (credentials redacted)",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"format": map[string]any{
							"type":        "string",
							"description": "Output format: yaml or json",
							"enum":        []string{"yaml", "json"},
							"default":     "yaml",
						},
					},
				},
			},
			Annotations: api.ToolAnnotations{
				ReadOnlyHint: common.BoolPtr(true),
			},
			Handler: t.configurationViewHandler,
		},
	}
}

// configurationViewHandler handles the configuration_view tool
func (t *Toolset) configurationViewHandler(client interface{}, params map[string]interface{}) (string, error) {
	if t.StaticConfig == nil {
		return "", common.ErrRancherNotConfigured
	}

	format := common.ExtractOptionalString(params, common.ParamFormat, common.FormatYAML)

	view := sanitize(t.StaticConfig)

	formatter := output.NewFormatter()
	if format == common.FormatJSON {
		return formatter.FormatJSON(view)
	}
	return formatter.FormatYAML(view)
}

// sanitize copies the configuration with secrets blanked out.
func sanitize(cfg *config.StaticConfig) *config.StaticConfig {
	view := *cfg
	if view.RancherToken != "" {
		view.RancherToken = redacted
	}
	return &view
}
