package probe

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rileyhilliard/sysview/internal/errors"
)

// Runner runs an external command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) (string, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) (string, error) {
	return f(ctx, name, args...)
}

// LocalRunner runs commands on this machine without a shell.
var LocalRunner Runner = RunnerFunc(runLocal)

func runLocal(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrProbe,
			name+" is not installed",
			"Install it or remove it from probes.graphics_backends in your config.")
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, path, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), errors.WrapWithCode(err, errors.ErrProbe,
			name+" failed: "+msg, "")
	}
	return stdout.String(), nil
}
