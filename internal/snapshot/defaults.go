package snapshot

import "runtime"

// The Neutral* constructors return the record a probe degrades to.
// Strings are "unknown", counters zero, sequences empty but non-nil.

func NeutralProcessor() ProcessorInfo {
	return ProcessorInfo{Brand: Unknown, Arch: runtime.GOARCH}
}

func NeutralGraphics() GraphicsInfo {
	return GraphicsInfo{Adapters: []string{}}
}

func NeutralStorage() StorageInfo {
	return StorageInfo{Volumes: map[string]Volume{}}
}

func NeutralMemory() MemoryInfo {
	return MemoryInfo{}
}

// NeutralOS keeps the two required fields populated.
func NeutralOS() OSInfo {
	return OSInfo{Kind: Unknown, Arch: runtime.GOARCH}
}

func NeutralNetwork() NetworkInfo {
	return NetworkInfo{Interfaces: []Interface{}}
}

func NeutralSensors() SensorInfo {
	return SensorInfo{Components: []Component{}}
}

// Neutral returns a snapshot with every category at its neutral record.
func Neutral() Snapshot {
	return Snapshot{
		Processor: NeutralProcessor(),
		Graphics:  NeutralGraphics(),
		Storage:   NeutralStorage(),
		Memory:    NeutralMemory(),
		OS:        NeutralOS(),
		Network:   NeutralNetwork(),
		Sensors:   NeutralSensors(),
	}
}

// normalize fills nil collections and missing required strings so a record
// returned by a probe still satisfies the always-present contract.
func (p ProcessorInfo) normalize() ProcessorInfo {
	if p.Brand == "" {
		p.Brand = Unknown
	}
	if p.Arch == "" {
		p.Arch = runtime.GOARCH
	}
	return p
}

func (g GraphicsInfo) normalize() GraphicsInfo {
	if g.Adapters == nil {
		g.Adapters = []string{}
	}
	return g
}

func (s StorageInfo) normalize() StorageInfo {
	if s.Volumes == nil {
		s.Volumes = map[string]Volume{}
	}
	return s
}

func (o OSInfo) normalize() OSInfo {
	if o.Kind == "" {
		o.Kind = Unknown
	}
	if o.Arch == "" {
		o.Arch = runtime.GOARCH
	}
	return o
}

func (n NetworkInfo) normalize() NetworkInfo {
	if n.Interfaces == nil {
		n.Interfaces = []Interface{}
	}
	return n
}

func (s SensorInfo) normalize() SensorInfo {
	if s.Components == nil {
		s.Components = []Component{}
	}
	return s
}
