// Package config loads and validates the static server configuration.
//
// Precedence is flag > environment > config file > default. The Rancher
// connection settings follow the conventional environment variable names
// (RANCHER_URL, RANCHER_TOKEN, RANCHER_CA_BUNDLE, HTTP_TIMEOUT, MAX_RETRIES).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	urlutil "github.com/futuretea/rancher-api-mcp-server/pkg/util/url"
)

// StaticConfig represents the static configuration for the Rancher API MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `yaml:"port" mapstructure:"port"`
	SSEBaseURL string `yaml:"sse_base_url" mapstructure:"sse_base_url"`

	// Logging configuration
	LogLevel int `yaml:"log_level" mapstructure:"log_level"`

	// Rancher configuration
	RancherServerURL string `yaml:"rancher_server_url" mapstructure:"rancher_server_url"`
	RancherToken     string `yaml:"rancher_token" mapstructure:"rancher_token"`
	RancherCABundle  string `yaml:"rancher_ca_bundle" mapstructure:"rancher_ca_bundle"`

	// HTTP client configuration
	HTTPTimeout int `yaml:"http_timeout" mapstructure:"http_timeout"`
	MaxRetries  int `yaml:"max_retries" mapstructure:"max_retries"`

	// Output configuration
	ListOutput string `yaml:"list_output" mapstructure:"list_output"`

	// Toolset configuration
	Toolsets      []string `yaml:"toolsets" mapstructure:"toolsets"`
	EnabledTools  []string `yaml:"enabled_tools" mapstructure:"enabled_tools"`
	DisabledTools []string `yaml:"disabled_tools" mapstructure:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:        0, // 0 means stdio mode
		LogLevel:    0,
		HTTPTimeout: 15,
		MaxRetries:  3,
		ListOutput:  "table",
		Toolsets:    []string{"rancher", "config"},
	}
}

// envBindings maps config keys to their environment variable names
var envBindings = map[string]string{
	"rancher_server_url": "RANCHER_URL",
	"rancher_token":      "RANCHER_TOKEN",
	"rancher_ca_bundle":  "RANCHER_CA_BUNDLE",
	"http_timeout":       "HTTP_TIMEOUT",
	"max_retries":        "MAX_RETRIES",
}

// flagBindings maps config keys to their command-line flag names
var flagBindings = map[string]string{
	"port":               "port",
	"sse_base_url":       "sse-base-url",
	"log_level":          "log-level",
	"rancher_server_url": "rancher-server-url",
	"rancher_token":      "rancher-token",
	"rancher_ca_bundle":  "rancher-ca-bundle",
	"http_timeout":       "http-timeout",
	"max_retries":        "max-retries",
	"list_output":        "list-output",
	"toolsets":           "toolsets",
	"enabled_tools":      "enabled-tools",
	"disabled_tools":     "disabled-tools",
}

// Load builds the configuration from defaults, an optional YAML config file,
// environment variables and command-line flags, then validates it.
// flags may be nil when loading outside of a cobra command.
func Load(configPath string, flags *pflag.FlagSet) (*StaticConfig, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("http_timeout", defaults.HTTPTimeout)
	v.SetDefault("max_retries", defaults.MaxRetries)
	v.SetDefault("list_output", defaults.ListOutput)
	v.SetDefault("toolsets", defaults.Toolsets)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if flag := flags.Lookup(name); flag != nil && flag.Changed {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	config := &StaticConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config.RancherServerURL = urlutil.NormalizeRancherURL(config.RancherServerURL)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. A missing Rancher server URL or
// token is a fatal startup condition.
func (c *StaticConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	if c.LogLevel < 0 || c.LogLevel > 9 {
		return fmt.Errorf("log_level must be between 0 and 9, got %d", c.LogLevel)
	}

	validOutputs := map[string]bool{
		"table": true,
		"yaml":  true,
		"json":  true,
	}
	if !validOutputs[strings.ToLower(c.ListOutput)] {
		return fmt.Errorf("list_output must be one of: table, yaml, json, got %s", c.ListOutput)
	}

	if c.RancherServerURL == "" {
		return fmt.Errorf("rancher server URL is required: set RANCHER_URL or --rancher-server-url")
	}
	if !strings.HasPrefix(c.RancherServerURL, "http://") && !strings.HasPrefix(c.RancherServerURL, "https://") {
		return fmt.Errorf("rancher server URL must start with http:// or https://, got %s", c.RancherServerURL)
	}

	if c.RancherToken == "" {
		return fmt.Errorf("rancher token is required: set RANCHER_TOKEN or --rancher-token")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %d", c.HTTPTimeout)
	}

	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", c.MaxRetries)
	}

	return nil
}

// GetPortString returns the port formatted as a listen address
func (c *StaticConfig) GetPortString() string {
	return fmt.Sprintf(":%d", c.Port)
}
