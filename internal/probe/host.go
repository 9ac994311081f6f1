// Package probe reads live host state for each snapshot category.
//
// Every probe is stateless: it opens whatever it needs (procfs, sysfs, ghw
// inventories, external commands), reads, and releases within the call.
// Probes report errors; the snapshot Aggregator turns those into neutral
// records, so nothing here needs to invent fallback values beyond what the
// underlying calls leave unset.
package probe

import (
	"time"

	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// DefaultCPUSample is the window cpu usage is measured over.
const DefaultCPUSample = 200 * time.Millisecond

// Options configures the host probes.
type Options struct {
	// CPUSample is the measurement window for instantaneous CPU usage.
	CPUSample time.Duration

	// GraphicsBackends names the graphics backends to try, in order.
	// Empty uses DefaultGraphicsBackends.
	GraphicsBackends []string

	// IncludePseudoFS lists every mount, including tmpfs, proc and friends.
	IncludePseudoFS bool

	Log logger.Logger
}

// Host implements every snapshot probe against the local machine.
type Host struct {
	cpuSample       time.Duration
	includePseudoFS bool
	graphics        *GraphicsChain
	log             logger.Logger
}

// NewHost builds the host probes. Unknown graphics backend names are an error.
func NewHost(opts Options) (*Host, error) {
	if opts.CPUSample <= 0 {
		opts.CPUSample = DefaultCPUSample
	}
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}
	names := opts.GraphicsBackends
	if len(names) == 0 {
		names = DefaultGraphicsBackends
	}
	backends, err := BackendsByName(names)
	if err != nil {
		return nil, err
	}

	return &Host{
		cpuSample:       opts.CPUSample,
		includePseudoFS: opts.IncludePseudoFS,
		graphics:        NewGraphicsChain(opts.Log, backends...),
		log:             opts.Log,
	}, nil
}

// Probes returns the probe set backed by h.
func (h *Host) Probes() snapshot.Probes {
	return snapshot.Probes{
		Processor: h,
		Graphics:  h.graphics,
		Storage:   h,
		Memory:    h,
		OS:        h,
		Network:   h,
		Sensors:   h,
	}
}
