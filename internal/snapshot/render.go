package snapshot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// bytesPerMB is the unit for RAM figures: 1,024,000 bytes.
const bytesPerMB = 1024000

// volumeSeparator separates volumes in the storage text block.
const volumeSeparator = "\n*************************\n"

// Field is one labeled value in a pane.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// String renders the volume as labeled lines.
func (v Volume) String() string {
	return "available_space: " + strconv.FormatUint(v.AvailableBytes, 10) +
		"\ndisk type: " + v.Kind +
		"\ndfile system: " + v.FileSystem +
		"\ntotal space: " + strconv.FormatUint(v.TotalBytes, 10)
}

// String renders the interface as aligned labeled lines.
func (i Interface) String() string {
	lines := []string{
		"interface name:              " + i.Name,
		"network ip networks:         " + i.IPNetworks,
		"network mac address:         " + i.MACAddress,
		"total errors on received:    " + strconv.FormatUint(i.RxErrors, 10),
		"total errors on transmitted: " + strconv.FormatUint(i.TxErrors, 10),
		"total packets received:      " + strconv.FormatUint(i.RxPackets, 10),
		"total packets transmitted:   " + strconv.FormatUint(i.TxPackets, 10),
		"mtu:                         " + strconv.FormatUint(i.MTU, 10),
	}
	return strings.Join(lines, "\n")
}

// String renders the sensor reading. Unlabeled sensors render as a single space.
func (c Component) String() string {
	if c.Label == "" {
		return " "
	}
	return "label:               " + c.Label +
		"\ntemperature:         " + formatInt(c.TemperatureC) +
		"\nmax_temp:            " + formatInt(c.MaxC) +
		"\ntcritical_temp:      " + formatInt(c.CriticalC) +
		"\n"
}

// Names returns the volume names sorted, giving the map a stable display order.
func (s StorageInfo) Names() []string {
	names := make([]string, 0, len(s.Volumes))
	for name := range s.Volumes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders every volume as "name - <name>" followed by its details.
func (s StorageInfo) String() string {
	blocks := make([]string, 0, len(s.Volumes))
	for _, name := range s.Names() {
		blocks = append(blocks, "name - "+name+"\n"+s.Volumes[name].String())
	}
	return strings.Join(blocks, volumeSeparator)
}

// String renders every interface block separated by a blank line.
func (n NetworkInfo) String() string {
	blocks := make([]string, 0, len(n.Interfaces))
	for _, iface := range n.Interfaces {
		blocks = append(blocks, iface.String())
	}
	return strings.Join(blocks, "\n\n")
}

// String renders every sensor block.
func (s SensorInfo) String() string {
	var b strings.Builder
	for _, c := range s.Components {
		b.WriteString(c.String())
	}
	return b.String()
}

// Fields returns the labeled values a pane bound to c displays.
// List categories produce one field per item, labeled by item name.
func (s Snapshot) Fields(c Category) []Field {
	switch c {
	case Processor:
		p := s.Processor
		return []Field{
			{"count logical cores", strconv.Itoa(p.LogicalCores)},
			{"count physical cores", strconv.Itoa(p.PhysicalCores)},
			{"cpu brand", p.Brand},
			{"cpu architecture", p.Arch},
			{"count cpu_usage", formatInt(p.UsagePercent)},
			{"cpu frequency", strconv.FormatUint(p.SpeedMHz, 10) + "Mhz"},
			{"cpu temperature", formatInt(p.TemperatureC) + "°C"},
		}
	case Graphics:
		return []Field{{"gpu informations", strings.Join(s.Graphics.Adapters, ",")}}
	case Storage:
		fields := make([]Field, 0, len(s.Storage.Volumes))
		for _, name := range s.Storage.Names() {
			fields = append(fields, Field{name, s.Storage.Volumes[name].String()})
		}
		return fields
	case Memory:
		m := s.Memory
		return []Field{
			{"total memory", mb(m.TotalMemory)},
			{"used memory", mb(m.UsedMemory)},
			{"total swap", mb(m.TotalSwap)},
			{"free swap", mb(m.FreeSwap)},
			{"used swap", mb(m.UsedSwap)},
			{"available memory", mb(m.AvailableMemory)},
		}
	case OSIdentity:
		o := s.OS
		return []Field{
			{"os type", o.Kind},
			{"name os", orUnknown(o.Name)},
			{"kernel version", orUnknown(o.KernelVersion)},
			{"os version", orUnknown(o.OSVersion)},
			{"distribution", orUnknown(o.DistributionID)},
			{"host name", orUnknown(o.HostName)},
			{"cpu arch", o.Arch},
		}
	case Network:
		fields := make([]Field, 0, len(s.Network.Interfaces))
		for _, iface := range s.Network.Interfaces {
			fields = append(fields, Field{iface.Name, iface.String()})
		}
		return fields
	case Sensors:
		fields := make([]Field, 0, len(s.Sensors.Components))
		for _, comp := range s.Sensors.Components {
			fields = append(fields, Field{comp.Label, comp.String()})
		}
		return fields
	default:
		return nil
	}
}

// Text renders the canonical text block for c.
func (s Snapshot) Text(c Category) string {
	switch c {
	case Storage:
		return s.Storage.String()
	case Network:
		return s.Network.String()
	case Sensors:
		return s.Sensors.String()
	case Empty:
		return ""
	}
	fields := s.Fields(c)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

func mb(b uint64) string {
	return strconv.FormatUint(b/bytesPerMB, 10) + "Mb"
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// formatInt prints f as an integer, truncated toward zero.
func formatInt(f float64) string {
	return fmt.Sprintf("%d", int64(f))
}
