// Package output formats tool results as table, YAML, or JSON text.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter provides formatting capabilities for different output formats
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// IsValidFormat checks if the given format is supported
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "table", "yaml", "json":
		return true
	default:
		return false
	}
}

// FormatYAML formats data as YAML
func (f *Formatter) FormatYAML(data interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %v", err)
	}
	return string(yamlBytes), nil
}

// FormatJSON formats data as JSON
func (f *Formatter) FormatJSON(data interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %v", err)
	}
	return string(jsonBytes), nil
}

// FormatTableWithHeaders formats tabular data with specific headers
func (f *Formatter) FormatTableWithHeaders(data []map[string]string, headers []string) string {
	if len(data) == 0 {
		return "No data available"
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	for _, row := range data {
		for i, header := range headers {
			if len(row[header]) > widths[i] {
				widths[i] = len(row[header])
			}
		}
	}

	var builder strings.Builder

	// Header row
	for i, header := range headers {
		if i > 0 {
			builder.WriteString("  ")
		}
		builder.WriteString(fmt.Sprintf("%-*s", widths[i], strings.ToUpper(header)))
	}
	builder.WriteString("\n")

	// Data rows
	for _, row := range data {
		for i, header := range headers {
			if i > 0 {
				builder.WriteString("  ")
			}
			builder.WriteString(fmt.Sprintf("%-*s", widths[i], row[header]))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
