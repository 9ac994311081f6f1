package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/sysview/internal/logger"
)

// ProcessorProbe reads CPU details.
type ProcessorProbe interface {
	Processor(ctx context.Context) (ProcessorInfo, error)
}

// GraphicsProbe lists graphics adapters.
type GraphicsProbe interface {
	Graphics(ctx context.Context) (GraphicsInfo, error)
}

// StorageProbe lists mounted volumes.
type StorageProbe interface {
	Storage(ctx context.Context) (StorageInfo, error)
}

// MemoryProbe reads RAM and swap counters.
type MemoryProbe interface {
	Memory(ctx context.Context) (MemoryInfo, error)
}

// OSProbe reads operating system identity.
type OSProbe interface {
	OS(ctx context.Context) (OSInfo, error)
}

// NetworkProbe lists network interfaces.
type NetworkProbe interface {
	Network(ctx context.Context) (NetworkInfo, error)
}

// SensorProbe reads thermal sensors.
type SensorProbe interface {
	Sensors(ctx context.Context) (SensorInfo, error)
}

// Probes is the full probe set. A nil probe behaves as unsupported and
// yields its neutral record.
type Probes struct {
	Processor ProcessorProbe
	Graphics  GraphicsProbe
	Storage   StorageProbe
	Memory    MemoryProbe
	OS        OSProbe
	Network   NetworkProbe
	Sensors   SensorProbe
}

// Aggregator composes probe results into Snapshots. Probe errors and panics
// are absorbed here: they are logged and replaced by the neutral record, so
// no capture operation ever fails.
type Aggregator struct {
	probes Probes
	log    logger.Logger
	now    func() time.Time
}

// NewAggregator creates an aggregator over the given probes.
func NewAggregator(probes Probes, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.Noop()
	}
	return &Aggregator{probes: probes, log: log, now: time.Now}
}

// Capture runs every probe concurrently and returns once all have finished.
// Each goroutine writes only its own field, and the result is assembled
// after the join, so callers never see a partial snapshot.
func (a *Aggregator) Capture(ctx context.Context) Snapshot {
	var (
		wg   sync.WaitGroup
		snap Snapshot
	)

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { snap.Processor = a.CaptureProcessor(ctx) })
	run(func() { snap.Graphics = a.CaptureGraphics(ctx) })
	run(func() { snap.Storage = a.CaptureStorage(ctx) })
	run(func() { snap.Memory = a.CaptureMemory(ctx) })
	run(func() { snap.OS = a.CaptureOS(ctx) })
	run(func() { snap.Network = a.CaptureNetwork(ctx) })
	run(func() { snap.Sensors = a.CaptureSensors(ctx) })

	wg.Wait()
	snap.CapturedAt = a.now()
	return snap
}

// CaptureCategory returns a neutral snapshot with only category c freshly
// captured. Empty probes nothing.
func (a *Aggregator) CaptureCategory(ctx context.Context, c Category) Snapshot {
	snap := Neutral()
	snap.CapturedAt = a.now()
	switch c {
	case Processor:
		snap.Processor = a.CaptureProcessor(ctx)
	case Graphics:
		snap.Graphics = a.CaptureGraphics(ctx)
	case Storage:
		snap.Storage = a.CaptureStorage(ctx)
	case Memory:
		snap.Memory = a.CaptureMemory(ctx)
	case OSIdentity:
		snap.OS = a.CaptureOS(ctx)
	case Network:
		snap.Network = a.CaptureNetwork(ctx)
	case Sensors:
		snap.Sensors = a.CaptureSensors(ctx)
	}
	return snap
}

func (a *Aggregator) CaptureProcessor(ctx context.Context) ProcessorInfo {
	if a.probes.Processor == nil {
		return NeutralProcessor()
	}
	info, ok := guard(a, Processor, func() (ProcessorInfo, error) { return a.probes.Processor.Processor(ctx) })
	if !ok {
		return NeutralProcessor()
	}
	return info.normalize()
}

func (a *Aggregator) CaptureGraphics(ctx context.Context) GraphicsInfo {
	if a.probes.Graphics == nil {
		return NeutralGraphics()
	}
	info, ok := guard(a, Graphics, func() (GraphicsInfo, error) { return a.probes.Graphics.Graphics(ctx) })
	if !ok {
		return NeutralGraphics()
	}
	return info.normalize()
}

func (a *Aggregator) CaptureStorage(ctx context.Context) StorageInfo {
	if a.probes.Storage == nil {
		return NeutralStorage()
	}
	info, ok := guard(a, Storage, func() (StorageInfo, error) { return a.probes.Storage.Storage(ctx) })
	if !ok {
		return NeutralStorage()
	}
	return info.normalize()
}

func (a *Aggregator) CaptureMemory(ctx context.Context) MemoryInfo {
	if a.probes.Memory == nil {
		return NeutralMemory()
	}
	info, ok := guard(a, Memory, func() (MemoryInfo, error) { return a.probes.Memory.Memory(ctx) })
	if !ok {
		return NeutralMemory()
	}
	return info
}

func (a *Aggregator) CaptureOS(ctx context.Context) OSInfo {
	if a.probes.OS == nil {
		return NeutralOS()
	}
	info, ok := guard(a, OSIdentity, func() (OSInfo, error) { return a.probes.OS.OS(ctx) })
	if !ok {
		return NeutralOS()
	}
	return info.normalize()
}

func (a *Aggregator) CaptureNetwork(ctx context.Context) NetworkInfo {
	if a.probes.Network == nil {
		return NeutralNetwork()
	}
	info, ok := guard(a, Network, func() (NetworkInfo, error) { return a.probes.Network.Network(ctx) })
	if !ok {
		return NeutralNetwork()
	}
	return info.normalize()
}

func (a *Aggregator) CaptureSensors(ctx context.Context) SensorInfo {
	if a.probes.Sensors == nil {
		return NeutralSensors()
	}
	info, ok := guard(a, Sensors, func() (SensorInfo, error) { return a.probes.Sensors.Sensors(ctx) })
	if !ok {
		return NeutralSensors()
	}
	return info.normalize()
}

// guard runs one probe, converting an error or panic into ok=false.
func guard[T any](a *Aggregator, c Category, fn func() (T, error)) (result T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("%s probe panicked, using defaults: %v", c, r)
			var zero T
			result, ok = zero, false
		}
	}()

	v, err := fn()
	if err != nil {
		a.log.Warn("%s probe failed, using defaults: %v", c, err)
		return v, false
	}
	return v, true
}
