package cli

import (
	"io"
	"testing"

	"github.com/rileyhilliard/sysview/internal/config"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/snapshot"
	snaptest "github.com/rileyhilliard/sysview/internal/snapshot/testing"
)

// withTestEnv isolates a test from the real machine: no config files, fake
// probes, and no terminal. Global flag state is restored afterwards.
func withTestEnv(t *testing.T) *snaptest.FakeProbes {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	fakes := snaptest.NewFakeProbes()

	oldProbes := newProbes
	oldInteractive := isInteractive
	oldPick := pickCategories
	oldConfirm := confirmOverwrite
	oldMachine := machineMode
	oldCfg := cfgFile
	oldLog := logFile
	oldStatus := statusOut
	t.Cleanup(func() {
		statusOut = oldStatus
		newProbes = oldProbes
		isInteractive = oldInteractive
		pickCategories = oldPick
		confirmOverwrite = oldConfirm
		machineMode = oldMachine
		cfgFile = oldCfg
		logFile = oldLog
	})

	newProbes = func(*config.Config, logger.Logger) (snapshot.Probes, error) {
		return fakes.Probes(), nil
	}
	isInteractive = func() bool { return false }
	statusOut = io.Discard
	machineMode = false
	cfgFile = ""
	logFile = ""

	return fakes
}
