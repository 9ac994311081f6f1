package snapshot

import (
	"fmt"
	"strings"
)

// Category selects which sub-record of a Snapshot a pane shows.
type Category int

const (
	// Empty is the unbound selector: the pane shows the category menu.
	Empty Category = iota
	Processor
	Graphics
	Storage
	Memory
	OSIdentity
	Network
	Sensors
)

// Categories lists every bindable category in menu order.
var Categories = []Category{Processor, Graphics, Storage, Memory, OSIdentity, Network, Sensors}

// String returns the stable lowercase name used in config and CLI arguments.
func (c Category) String() string {
	switch c {
	case Empty:
		return "empty"
	case Processor:
		return "processor"
	case Graphics:
		return "graphics"
	case Storage:
		return "storage"
	case Memory:
		return "memory"
	case OSIdentity:
		return "os"
	case Network:
		return "network"
	case Sensors:
		return "sensors"
	default:
		return "unknown"
	}
}

// Title returns the short heading shown on a pane and on menu buttons.
func (c Category) Title() string {
	switch c {
	case Processor:
		return "CPU"
	case Graphics:
		return "GPU"
	case Storage:
		return "DRAM"
	case Memory:
		return "RAM"
	case OSIdentity:
		return "OS"
	case Network:
		return "Network"
	case Sensors:
		return "Sensors"
	default:
		return ""
	}
}

// Bound reports whether c selects a data category.
func (c Category) Bound() bool {
	return c > Empty && c <= Sensors
}

var categoryAliases = map[string]Category{
	"empty":     Empty,
	"processor": Processor,
	"cpu":       Processor,
	"graphics":  Graphics,
	"gpu":       Graphics,
	"storage":   Storage,
	"disk":      Storage,
	"dram":      Storage,
	"memory":    Memory,
	"ram":       Memory,
	"os":        OSIdentity,
	"network":   Network,
	"net":       Network,
	"sensors":   Sensors,
	"temp":      Sensors,
}

// ParseCategory converts a name or alias (cpu, gpu, disk, ram, net, temp) to a Category.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Empty, fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler so categories serialize by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
