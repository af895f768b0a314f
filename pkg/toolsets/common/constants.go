package common

import "errors"

// Format constants
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Parameter name constants
const (
	ParamCluster   = "cluster"
	ParamNamespace = "namespace"
	ParamFormat    = "format"
)

// Error definitions
var (
	ErrRancherNotConfigured = errors.New("rancher client not configured, please configure rancher credentials to use this tool")
	ErrInvalidFormat        = errors.New("invalid output format")
	ErrMissingParameter     = errors.New("missing required parameter")
)
