// Package cmd builds the cobra command tree for the server binary.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/futuretea/rancher-api-mcp-server/pkg/config"
	httpserver "github.com/futuretea/rancher-api-mcp-server/pkg/http"
	"github.com/futuretea/rancher-api-mcp-server/pkg/logging"
	"github.com/futuretea/rancher-api-mcp-server/pkg/mcp"
	"github.com/futuretea/rancher-api-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the Rancher API MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	var configFile string
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "rancher-api-mcp-server",
		Short: "Rancher API MCP Server - Model Context Protocol server for Rancher cluster inspection",
		Long: `Rancher API MCP Server is a Model Context Protocol (MCP) server that exposes
read-only Rancher cluster-inspection operations (cluster listing, pod listing)
as MCP tools.

Rancher connection settings come from flags, the RANCHER_URL / RANCHER_TOKEN /
RANCHER_CA_BUNDLE / HTTP_TIMEOUT / MAX_RETRIES environment variables, or an
optional YAML config file (in that order of precedence).

This server can run in stdio mode for integration with MCP clients or in HTTP
mode for network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			return runServer(cmd.Context(), cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	// Add flags
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	cmd.Flags().Int("port", defaults.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().String("sse-base-url", "", "Public base URL advertised to SSE clients")
	cmd.Flags().Int("log-level", defaults.LogLevel, "Log level (0-9)")
	cmd.Flags().String("rancher-server-url", "", "Rancher server URL")
	cmd.Flags().String("rancher-token", "", "Rancher bearer token")
	cmd.Flags().String("rancher-ca-bundle", "", "Path to a PEM CA bundle for TLS verification")
	cmd.Flags().Int("http-timeout", defaults.HTTPTimeout, "Request timeout in seconds")
	cmd.Flags().Int("max-retries", defaults.MaxRetries, "Maximum attempts for retryable request failures")
	cmd.Flags().String("list-output", defaults.ListOutput, "Output format for list operations (table, yaml, json)")
	cmd.Flags().StringSlice("toolsets", defaults.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSlice("enabled-tools", nil, "Comma-separated list of tools to enable")
	cmd.Flags().StringSlice("disabled-tools", nil, "Comma-separated list of tools to disable")

	// Add version command
	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// runServer runs the MCP server with the given configuration
func runServer(ctx context.Context, cfg *config.StaticConfig, streams IOStreams) error {
	logging.Initialize(cfg.LogLevel)

	server, err := mcp.NewServer(mcp.Configuration{StaticConfig: cfg})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	if cfg.Port == 0 {
		// Stdio mode
		fmt.Fprintf(streams.ErrOut, "Starting Rancher API MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	// HTTP mode
	fmt.Fprintf(streams.ErrOut, "Starting Rancher API MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return httpserver.Serve(ctx, server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
