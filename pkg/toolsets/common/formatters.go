package common

import (
	"github.com/futuretea/rancher-api-mcp-server/pkg/output"
)

// FormatList renders rows of projected records in the requested format.
// Tables use the header order given; yaml and json marshal the rows as-is.
func FormatList(rows []map[string]string, headers []string, format string) (string, error) {
	formatter := output.NewFormatter()
	switch format {
	case FormatYAML:
		return formatter.FormatYAML(rows)
	case FormatJSON:
		return formatter.FormatJSON(rows)
	default:
		return formatter.FormatTableWithHeaders(rows, headers), nil
	}
}
