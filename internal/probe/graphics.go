package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/gpu"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/probe/parsers"
	"github.com/rileyhilliard/sysview/internal/snapshot"
	"github.com/rileyhilliard/sysview/internal/util"
)

// Graphics backend names accepted in configuration.
const (
	BackendGHW            = "ghw"
	BackendNvidiaSMI      = "nvidia-smi"
	BackendLspci          = "lspci"
	BackendSystemProfiler = "system_profiler"
)

// DefaultGraphicsBackends is the backend order used when none is configured.
var DefaultGraphicsBackends = []string{BackendGHW, BackendNvidiaSMI, BackendLspci, BackendSystemProfiler}

// GraphicsBackend is one way of enumerating graphics adapters.
type GraphicsBackend interface {
	Name() string
	Adapters(ctx context.Context) ([]string, error)
}

// BackendsByName resolves configured backend names using LocalRunner for the
// command-based ones.
func BackendsByName(names []string) ([]GraphicsBackend, error) {
	backends := make([]GraphicsBackend, 0, len(names))
	for _, name := range names {
		b, err := newBackend(strings.TrimSpace(name), LocalRunner)
		if err != nil {
			return nil, err
		}
		backends = append(backends, b)
	}
	return backends, nil
}

func newBackend(name string, run Runner) (GraphicsBackend, error) {
	switch name {
	case BackendGHW:
		return ghwBackend{}, nil
	case BackendNvidiaSMI:
		return &CommandBackend{
			BackendName: name,
			Command:     "nvidia-smi",
			Args:        []string{"--query-gpu=name", "--format=csv,noheader"},
			Parse:       parsers.ParseNvidiaSMINames,
			Runner:      run,
		}, nil
	case BackendLspci:
		return &CommandBackend{
			BackendName: name,
			Command:     "lspci",
			Parse:       parsers.ParseLspciDisplay,
			Runner:      run,
		}, nil
	case BackendSystemProfiler:
		return &CommandBackend{
			BackendName: name,
			Command:     "system_profiler",
			Args:        []string{"SPDisplaysDataType"},
			Parse:       parsers.ParseSystemProfilerDisplays,
			Runner:      run,
		}, nil
	default:
		hint := fmt.Sprintf("Use one of: %s", strings.Join(DefaultGraphicsBackends, ", "))
		if guess := util.DidYouMean(util.SuggestSimilar(name, DefaultGraphicsBackends, 1)); guess != "" {
			hint = guess + " " + hint
		}
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown graphics backend %q", name),
			hint)
	}
}

// GraphicsChain tries each backend in order; the first one that reports at
// least one adapter wins.
type GraphicsChain struct {
	backends []GraphicsBackend
	log      logger.Logger
}

// NewGraphicsChain builds a chain over the given backends.
func NewGraphicsChain(log logger.Logger, backends ...GraphicsBackend) *GraphicsChain {
	if log == nil {
		log = logger.Noop()
	}
	return &GraphicsChain{backends: backends, log: log}
}

// Graphics returns the adapters from the first productive backend. A host
// with no graphics hardware gets an empty list; an error is returned only
// when every backend failed outright.
func (g *GraphicsChain) Graphics(ctx context.Context) (snapshot.GraphicsInfo, error) {
	var lastErr error
	failed := 0

	for _, b := range g.backends {
		if err := ctx.Err(); err != nil {
			return snapshot.GraphicsInfo{}, err
		}

		adapters, err := b.Adapters(ctx)
		if err != nil {
			g.log.Debug("graphics backend %s: %v", b.Name(), err)
			lastErr = err
			failed++
			continue
		}
		if len(adapters) > 0 {
			return snapshot.GraphicsInfo{Adapters: adapters}, nil
		}
	}

	if len(g.backends) > 0 && failed == len(g.backends) {
		return snapshot.GraphicsInfo{}, errors.Wrap(lastErr, "No graphics backend could list adapters")
	}
	return snapshot.GraphicsInfo{Adapters: []string{}}, nil
}

// CommandBackend lists adapters by running a tool and parsing its output.
type CommandBackend struct {
	BackendName string
	Command     string
	Args        []string
	Parse       func(string) []string
	Runner      Runner
}

// Name returns the configured backend name.
func (c *CommandBackend) Name() string { return c.BackendName }

// Adapters runs the command and parses its output.
func (c *CommandBackend) Adapters(ctx context.Context) ([]string, error) {
	out, err := c.Runner.Run(ctx, c.Command, c.Args...)
	if err != nil {
		return nil, err
	}
	return c.Parse(out), nil
}

// ghwBackend reads the PCI inventory through ghw.
type ghwBackend struct{}

func (ghwBackend) Name() string { return BackendGHW }

func (ghwBackend) Adapters(_ context.Context) ([]string, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, errors.Wrap(err, "Cannot read the GPU inventory")
	}

	adapters := make([]string, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if name := cardName(card); name != "" {
			adapters = append(adapters, name)
		}
	}
	return adapters, nil
}

// cardName renders "Vendor Product", falling back to the PCI address when
// the device database has no entry.
func cardName(card *gpu.GraphicsCard) string {
	if card == nil {
		return ""
	}
	if card.DeviceInfo == nil {
		return card.Address
	}

	var vendor, product string
	if card.DeviceInfo.Vendor != nil {
		vendor = card.DeviceInfo.Vendor.Name
	}
	if card.DeviceInfo.Product != nil {
		product = card.DeviceInfo.Product.Name
	}

	switch {
	case product == "" && vendor == "":
		return card.Address
	case product == "":
		return vendor
	case vendor == "" || strings.HasPrefix(product, vendor):
		return product
	default:
		return vendor + " " + product
	}
}
