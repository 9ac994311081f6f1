package parsers

import (
	"strings"
)

// ParseSystemProfilerDisplays extracts adapter names from macOS
// `system_profiler SPDisplaysDataType` output, one per "Chipset Model" line.
//
//	Graphics/Displays:
//
//	    Apple M2 Pro:
//
//	      Chipset Model: Apple M2 Pro
//	      Type: GPU
func ParseSystemProfilerDisplays(output string) []string {
	var adapters []string
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || key != "Chipset Model" {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			adapters = append(adapters, value)
		}
	}
	return adapters
}
