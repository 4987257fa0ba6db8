package util

import (
	"sort"
	"strings"
)

// FormatReport takes a map of report key-values and returns a formatted string
func FormatReport(report map[string]string) string {
	var builder strings.Builder
	keys := make([]string, 0, len(report))
	for k := range report {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		builder.WriteString(k)
		builder.WriteString(":")
		builder.WriteString(report[k])
		builder.WriteString("\n")
	}
	return builder.String()
}
