package render

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat normalizes a user supplied format name.
func ParseFormat(value string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return FormatTable, nil
	}
	for _, f := range Formats {
		if normalized == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q (want one of %s)", value, formatList())
}

func formatList() string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
