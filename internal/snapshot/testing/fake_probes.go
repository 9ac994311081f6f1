// Package testing provides test doubles for the snapshot probes.
package testing

import (
	"context"
	"errors"
	"sync"

	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// ErrProbeFailed is the error returned by a probe marked as failing.
var ErrProbeFailed = errors.New("fake probe failure")

// FakeProbes implements every probe interface from fixed records.
// Categories listed in Fail return ErrProbeFailed; categories in Panic panic.
type FakeProbes struct {
	Data  snapshot.Snapshot
	Fail  map[snapshot.Category]bool
	Panic map[snapshot.Category]bool

	mu    sync.Mutex
	calls map[snapshot.Category]int
}

// NewFakeProbes returns probes serving a fully populated sample host.
func NewFakeProbes() *FakeProbes {
	return &FakeProbes{
		Data:  Sample(),
		Fail:  map[snapshot.Category]bool{},
		Panic: map[snapshot.Category]bool{},
		calls: map[snapshot.Category]int{},
	}
}

// Probes wires f into every slot of a snapshot.Probes.
func (f *FakeProbes) Probes() snapshot.Probes {
	return snapshot.Probes{
		Processor: f,
		Graphics:  f,
		Storage:   f,
		Memory:    f,
		OS:        f,
		Network:   f,
		Sensors:   f,
	}
}

// Calls returns how many times the probe for c ran.
func (f *FakeProbes) Calls(c snapshot.Category) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[c]
}

func (f *FakeProbes) enter(c snapshot.Category) error {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[snapshot.Category]int{}
	}
	f.calls[c]++
	fail, boom := f.Fail[c], f.Panic[c]
	f.mu.Unlock()

	if boom {
		panic("fake probe panic: " + c.String())
	}
	if fail {
		return ErrProbeFailed
	}
	return nil
}

func (f *FakeProbes) Processor(ctx context.Context) (snapshot.ProcessorInfo, error) {
	if err := f.enter(snapshot.Processor); err != nil {
		return snapshot.ProcessorInfo{}, err
	}
	return f.Data.Processor, nil
}

func (f *FakeProbes) Graphics(ctx context.Context) (snapshot.GraphicsInfo, error) {
	if err := f.enter(snapshot.Graphics); err != nil {
		return snapshot.GraphicsInfo{}, err
	}
	return snapshot.GraphicsInfo{Adapters: append([]string{}, f.Data.Graphics.Adapters...)}, nil
}

func (f *FakeProbes) Storage(ctx context.Context) (snapshot.StorageInfo, error) {
	if err := f.enter(snapshot.Storage); err != nil {
		return snapshot.StorageInfo{}, err
	}
	return f.Data.Clone().Storage, nil
}

func (f *FakeProbes) Memory(ctx context.Context) (snapshot.MemoryInfo, error) {
	if err := f.enter(snapshot.Memory); err != nil {
		return snapshot.MemoryInfo{}, err
	}
	return f.Data.Memory, nil
}

func (f *FakeProbes) OS(ctx context.Context) (snapshot.OSInfo, error) {
	if err := f.enter(snapshot.OSIdentity); err != nil {
		return snapshot.OSInfo{}, err
	}
	return f.Data.OS, nil
}

func (f *FakeProbes) Network(ctx context.Context) (snapshot.NetworkInfo, error) {
	if err := f.enter(snapshot.Network); err != nil {
		return snapshot.NetworkInfo{}, err
	}
	return f.Data.Clone().Network, nil
}

func (f *FakeProbes) Sensors(ctx context.Context) (snapshot.SensorInfo, error) {
	if err := f.enter(snapshot.Sensors); err != nil {
		return snapshot.SensorInfo{}, err
	}
	return f.Data.Clone().Sensors, nil
}

// Sample returns a fully populated snapshot of an imaginary workstation.
func Sample() snapshot.Snapshot {
	return snapshot.Snapshot{
		Processor: snapshot.ProcessorInfo{
			PhysicalCores: 8,
			LogicalCores:  16,
			Brand:         "AMD Ryzen 7 5800X 8-Core Processor",
			Arch:          "x86_64",
			UsagePercent:  12.5,
			SpeedMHz:      3800,
			TemperatureC:  48.2,
		},
		Graphics: snapshot.GraphicsInfo{Adapters: []string{"NVIDIA GeForce RTX 3080"}},
		Storage: snapshot.StorageInfo{Volumes: map[string]snapshot.Volume{
			"/dev/nvme0n1p2": {AvailableBytes: 500, TotalBytes: 1000, Kind: "SSD", FileSystem: "ext4"},
			"/dev/sdb1":      {AvailableBytes: 20, TotalBytes: 64, Kind: "HDD", FileSystem: "vfat", Removable: true},
		}},
		Memory: snapshot.MemoryInfo{
			TotalMemory:     32 * 1024000 * 1000,
			UsedMemory:      8 * 1024000 * 1000,
			TotalSwap:       2 * 1024000 * 1000,
			FreeSwap:        2 * 1024000 * 1000,
			AvailableMemory: 24 * 1024000 * 1000,
		},
		OS: snapshot.OSInfo{
			Kind:           "linux",
			Name:           "ubuntu",
			KernelVersion:  "6.8.0-45-generic",
			OSVersion:      "24.04",
			DistributionID: "ubuntu",
			HostName:       "workstation",
			Arch:           "x86_64",
		},
		Network: snapshot.NetworkInfo{Interfaces: []snapshot.Interface{
			{Name: "lo", IPNetworks: "127.0.0.1/8", MACAddress: "00:00:00:00:00:00", MTU: 65536},
			{Name: "eth0", IPNetworks: "192.168.1.20/24", MACAddress: "3c:7c:3f:aa:bb:cc", RxPackets: 1200, TxPackets: 900, MTU: 1500},
		}},
		Sensors: snapshot.SensorInfo{Components: []snapshot.Component{
			{Label: "k10temp Tctl", TemperatureC: 48.2, MaxC: 70, CriticalC: 95},
		}},
	}
}
