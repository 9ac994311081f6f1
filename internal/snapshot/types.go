package snapshot

import "time"

// Unknown is the placeholder for string fields a probe could not read.
const Unknown = "unknown"

// Snapshot is one point-in-time record of every monitored category.
// Every sub-record is always present; a probe that could not read its
// category leaves the neutral record in place.
//
// Snapshots are values: the Aggregator builds fresh slices and maps for each
// capture, and holders hand out Clone()s so a stored snapshot never changes.
type Snapshot struct {
	CapturedAt time.Time     `json:"captured_at" yaml:"captured_at"`
	Processor  ProcessorInfo `json:"processor" yaml:"processor"`
	Graphics   GraphicsInfo  `json:"graphics" yaml:"graphics"`
	Storage    StorageInfo   `json:"storage" yaml:"storage"`
	Memory     MemoryInfo    `json:"memory" yaml:"memory"`
	OS         OSInfo        `json:"os" yaml:"os"`
	Network    NetworkInfo   `json:"network" yaml:"network"`
	Sensors    SensorInfo    `json:"sensors" yaml:"sensors"`
}

// ProcessorInfo describes the CPU package.
type ProcessorInfo struct {
	PhysicalCores int     `json:"physical_cores" yaml:"physical_cores"`
	LogicalCores  int     `json:"logical_cores" yaml:"logical_cores"`
	Brand         string  `json:"brand" yaml:"brand"`
	Arch          string  `json:"arch" yaml:"arch"`
	UsagePercent  float64 `json:"usage_percent" yaml:"usage_percent"`
	SpeedMHz      uint64  `json:"speed_mhz" yaml:"speed_mhz"`
	TemperatureC  float64 `json:"temperature_c" yaml:"temperature_c"`
}

// GraphicsInfo lists graphics adapter names in backend order.
type GraphicsInfo struct {
	Adapters []string `json:"adapters" yaml:"adapters"`
}

// Volume is one mounted storage volume.
type Volume struct {
	AvailableBytes uint64 `json:"available_bytes" yaml:"available_bytes"`
	TotalBytes     uint64 `json:"total_bytes" yaml:"total_bytes"`
	Kind           string `json:"kind" yaml:"kind"`
	FileSystem     string `json:"file_system" yaml:"file_system"`
	Removable      bool   `json:"removable" yaml:"removable"`
	ReadOnly       bool   `json:"read_only" yaml:"read_only"`
}

// StorageInfo maps volume name to volume details.
type StorageInfo struct {
	Volumes map[string]Volume `json:"volumes" yaml:"volumes"`
}

// MemoryInfo holds RAM and swap counters in bytes.
type MemoryInfo struct {
	TotalMemory     uint64 `json:"total_memory" yaml:"total_memory"`
	UsedMemory      uint64 `json:"used_memory" yaml:"used_memory"`
	TotalSwap       uint64 `json:"total_swap" yaml:"total_swap"`
	FreeSwap        uint64 `json:"free_swap" yaml:"free_swap"`
	UsedSwap        uint64 `json:"used_swap" yaml:"used_swap"`
	AvailableMemory uint64 `json:"available_memory" yaml:"available_memory"`
}

// OSInfo identifies the operating system. Kind and Arch are always set;
// the other fields are empty when the platform does not report them.
type OSInfo struct {
	Kind           string `json:"kind" yaml:"kind"`
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	KernelVersion  string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	OSVersion      string `json:"os_version,omitempty" yaml:"os_version,omitempty"`
	DistributionID string `json:"distribution_id,omitempty" yaml:"distribution_id,omitempty"`
	HostName       string `json:"host_name,omitempty" yaml:"host_name,omitempty"`
	Arch           string `json:"arch" yaml:"arch"`
}

// Interface is one network interface with its cumulative counters.
type Interface struct {
	Name       string `json:"name" yaml:"name"`
	IPNetworks string `json:"ip_networks" yaml:"ip_networks"`
	MACAddress string `json:"mac_address" yaml:"mac_address"`
	RxErrors   uint64 `json:"rx_errors" yaml:"rx_errors"`
	TxErrors   uint64 `json:"tx_errors" yaml:"tx_errors"`
	RxPackets  uint64 `json:"rx_packets" yaml:"rx_packets"`
	TxPackets  uint64 `json:"tx_packets" yaml:"tx_packets"`
	MTU        uint64 `json:"mtu" yaml:"mtu"`
}

// NetworkInfo lists interfaces in the order the OS reports them.
type NetworkInfo struct {
	Interfaces []Interface `json:"interfaces" yaml:"interfaces"`
}

// Component is one thermal sensor reading in Celsius.
type Component struct {
	Label        string  `json:"label" yaml:"label"`
	TemperatureC float64 `json:"temperature_c" yaml:"temperature_c"`
	MaxC         float64 `json:"max_c" yaml:"max_c"`
	CriticalC    float64 `json:"critical_c" yaml:"critical_c"`
}

// SensorInfo lists thermal sensors; empty on hosts without any.
type SensorInfo struct {
	Components []Component `json:"components" yaml:"components"`
}

// Clone returns a deep copy that shares no slices or maps with s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Graphics.Adapters = append([]string{}, s.Graphics.Adapters...)
	out.Storage.Volumes = make(map[string]Volume, len(s.Storage.Volumes))
	for name, v := range s.Storage.Volumes {
		out.Storage.Volumes[name] = v
	}
	out.Network.Interfaces = append([]Interface{}, s.Network.Interfaces...)
	out.Sensors.Components = append([]Component{}, s.Sensors.Components...)
	return out
}

// WithCategory returns a copy of s with the sub-record for c taken from src.
// Empty returns an unchanged copy.
func (s Snapshot) WithCategory(c Category, src Snapshot) Snapshot {
	out := s.Clone()
	src = src.Clone()
	switch c {
	case Processor:
		out.Processor = src.Processor
	case Graphics:
		out.Graphics = src.Graphics
	case Storage:
		out.Storage = src.Storage
	case Memory:
		out.Memory = src.Memory
	case OSIdentity:
		out.OS = src.OS
	case Network:
		out.Network = src.Network
	case Sensors:
		out.Sensors = src.Sensors
	}
	if c.Bound() {
		out.CapturedAt = src.CapturedAt
	}
	return out
}
