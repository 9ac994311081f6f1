package config

import (
	"time"

	"github.com/rileyhilliard/sysview/internal/probe"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete sysview configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Layout  LayoutConfig `yaml:"layout" mapstructure:"layout"`
	Probes  ProbesConfig `yaml:"probes" mapstructure:"probes"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
}

// LayoutConfig controls how the dashboard splits panes.
type LayoutConfig struct {
	// Axis is the orientation new splits use: "vertical" (side by side) or
	// "horizontal" (stacked).
	Axis string `yaml:"axis" mapstructure:"axis"`

	// ResizeStep is how far one resize key press moves a divider.
	ResizeStep float64 `yaml:"resize_step" mapstructure:"resize_step"`
}

// ProbesConfig controls how host state is read.
type ProbesConfig struct {
	// CPUSample is the window CPU usage is measured over.
	CPUSample time.Duration `yaml:"cpu_sample" mapstructure:"cpu_sample"`

	// GraphicsBackends are tried in order until one lists adapters.
	GraphicsBackends []string `yaml:"graphics_backends" mapstructure:"graphics_backends"`

	// IncludePseudoFS also lists tmpfs, proc and other virtual mounts.
	IncludePseudoFS bool `yaml:"include_pseudo_fs" mapstructure:"include_pseudo_fs"`
}

// OutputConfig controls the snapshot command's output.
type OutputConfig struct {
	// Format: text, json, or yaml.
	Format string `yaml:"format" mapstructure:"format"`

	// Color: auto, always, or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// Default values. Kept as constants so the loader, the writer and
// validation agree on them.
const (
	DefaultAxis       = "vertical"
	DefaultResizeStep = 0.05
	DefaultCPUSample  = probe.DefaultCPUSample
	DefaultFormat     = "text"
	DefaultColor      = "auto"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Layout: LayoutConfig{
			Axis:       DefaultAxis,
			ResizeStep: DefaultResizeStep,
		},
		Probes: ProbesConfig{
			CPUSample:        DefaultCPUSample,
			GraphicsBackends: append([]string(nil), probe.DefaultGraphicsBackends...),
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Color:  DefaultColor,
		},
	}
}
