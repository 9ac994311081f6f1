package parsers

import (
	"regexp"
	"strings"
)

// displayClasses are the PCI class names lspci uses for graphics hardware.
var displayClasses = []string{
	"VGA compatible controller",
	"3D controller",
	"Display controller",
}

var revisionSuffix = regexp.MustCompile(`\s*\(rev [0-9a-fA-F]+\)$`)

// ParseLspciDisplay extracts graphics adapter descriptions from plain lspci
// output. A line looks like:
//
//	01:00.0 VGA compatible controller: NVIDIA Corporation GA102 [GeForce RTX 3080] (rev a1)
//
// and yields "NVIDIA Corporation GA102 [GeForce RTX 3080]".
func ParseLspciDisplay(output string) []string {
	var adapters []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Drop the bus address.
		_, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		class, desc, ok := strings.Cut(rest, ": ")
		if !ok || !isDisplayClass(class) {
			continue
		}

		desc = revisionSuffix.ReplaceAllString(strings.TrimSpace(desc), "")
		if desc != "" {
			adapters = append(adapters, desc)
		}
	}
	return adapters
}

func isDisplayClass(class string) bool {
	for _, c := range displayClasses {
		if class == c {
			return true
		}
	}
	return false
}
