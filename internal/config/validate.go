package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/pane"
	"github.com/rileyhilliard/sysview/internal/probe"
)

var (
	validFormats = []string{"text", "json", "yaml"}
	validColors  = []string{"auto", "always", "never"}
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysview only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sysview, or regenerate the file with 'sysview config init --force'.")
	}

	if err := validateLayout(cfg.Layout); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'layout' section of your config.")
	}

	if err := validateProbes(cfg.Probes); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'probes' section of your config.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section of your config.")
	}

	return nil
}

func validateLayout(l LayoutConfig) error {
	if _, err := pane.ParseAxis(l.Axis); err != nil {
		return fmt.Errorf("layout.axis must be 'vertical' or 'horizontal', got %q", l.Axis)
	}
	if l.ResizeStep <= 0 || l.ResizeStep > 0.5 {
		return fmt.Errorf("layout.resize_step must be in (0, 0.5], got %v", l.ResizeStep)
	}
	return nil
}

func validateProbes(p ProbesConfig) error {
	if p.CPUSample < 0 {
		return fmt.Errorf("probes.cpu_sample can't be negative, got %s", p.CPUSample)
	}
	for _, name := range p.GraphicsBackends {
		if !slices.Contains(probe.DefaultGraphicsBackends, name) {
			return fmt.Errorf("probes.graphics_backends has unknown backend %q (valid: %s)",
				name, strings.Join(probe.DefaultGraphicsBackends, ", "))
		}
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	if o.Format != "" && !slices.Contains(validFormats, o.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(validFormats, ", "), o.Format)
	}
	if o.Color != "" && !slices.Contains(validColors, o.Color) {
		return fmt.Errorf("output.color must be one of %s, got %q", strings.Join(validColors, ", "), o.Color)
	}
	return nil
}
