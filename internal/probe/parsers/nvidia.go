// Package parsers turns the text output of external hardware tools into
// plain values. Parsers never run commands themselves.
package parsers

import (
	"strings"
)

// ParseNvidiaSMINames parses adapter names from nvidia-smi CSV output.
// Expected input is from: nvidia-smi --query-gpu=name --format=csv,noheader
//
// Returns nil when the driver reports no devices or the output is an error
// message rather than data.
func ParseNvidiaSMINames(output string) []string {
	output = strings.TrimSpace(output)
	if output == "" || looksLikeFailure(output) {
		return nil
	}

	var names []string
	for _, line := range strings.Split(output, "\n") {
		// Only the first column matters if the caller asked for more fields.
		name, _, _ := strings.Cut(line, ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "[N/A]" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// looksLikeFailure reports output that came from a broken driver install or
// a missing binary rather than a query result.
func looksLikeFailure(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range []string{"no devices", "not found", "failed", "error", "couldn't communicate"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
