// Package config provides the server-configuration toolset.
// It implements MCP tools for:
//   - Viewing the effective (sanitized) server configuration
//
// Credentials are redacted before leaving the server.
package config
