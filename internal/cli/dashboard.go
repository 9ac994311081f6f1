package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/sysview/internal/dashboard"
	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/pane"
)

// dashboardCommand starts the split-pane TUI.
func dashboardCommand(ctx context.Context) error {
	if machineMode {
		return errors.New(errors.ErrConfig,
			"The dashboard is interactive and has no JSON output",
			"Use 'sysview snapshot --json' for machine-readable output.")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logger.NewEnvLogger("[dashboard]")
	logger.SetDefault(log)

	axis, err := pane.ParseAxis(cfg.Layout.Axis)
	if err != nil {
		return err
	}

	agg, err := newAggregator(cfg, log)
	if err != nil {
		return err
	}

	container := dashboard.NewContainer(agg, axis, log)
	model := dashboard.NewModel(ctx, container, dashboard.Options{
		ResizeStep: cfg.Layout.ResizeStep,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
