// Package shell provides the subprocess executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
)

// Executor implements ports.Executor using os/exec. Invocations are
// synchronous and blocking; there is no timeout beyond context
// cancellation.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command, streaming stdout and stderr through the logger.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) error {
	c := e.build(ctx, cmd)
	c.Stdout = &logWriter{logger: e.logger, level: "info"}
	c.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := c.Run(); err != nil {
		return commandError(err, cmd)
	}
	return nil
}

// Output executes the command and returns its trimmed standard output.
// Stderr still streams through the logger so diagnostic output from the
// probed compiler is not lost.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) (string, error) {
	c := e.build(ctx, cmd)
	var out strings.Builder
	c.Stdout = &out
	c.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := c.Run(); err != nil {
		return "", commandError(err, cmd)
	}
	return strings.TrimSpace(out.String()), nil
}

func (e *Executor) build(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // orchestrator-provided command
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	return c
}

func commandError(err error, cmd domain.Command) error {
	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.Wrap(err, "command failed")
	wrapped = zerr.With(wrapped, "command", cmd.Path+" "+strings.Join(cmd.Args, " "))
	return zerr.With(wrapped, "exit_code", exitCode)
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for line := range strings.SplitSeq(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
