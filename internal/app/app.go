// Package app implements the application layer for strap: it loads the
// configuration, constructs the orchestrator, registers the build steps,
// and hands control to the top-level execution loop.
package app

import (
	"context"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/bootstrap"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
	"go.velt.ch/strap/internal/engine/scheduler"
)

// App wires the adapters into one bootstrap invocation.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	executor     ports.Executor
	commits      ports.CommitInspector
	sanity       ports.SanityChecker
	metadata     ports.MetadataLoader
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	executor ports.Executor,
	commits ports.CommitInspector,
	sanity ports.SanityChecker,
	metadata ports.MetadataLoader,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		executor:     executor,
		commits:      commits,
		sanity:       sanity,
		metadata:     metadata,
		telemetry:    telemetry,
	}
}

// RunOptions are the command-line overrides applied on top of the
// configuration file.
type RunOptions struct {
	ConfigPath string
	Cmd        domain.CommandLine
	DryRun     bool
	Jobs       int
	Verbosity  int
}

// Run executes one strap invocation.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg.Cmd = opts.Cmd
	if opts.DryRun {
		cfg.DryRun = true
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}
	if opts.Verbosity > cfg.Verbosity {
		cfg.Verbosity = opts.Verbosity
	}

	b, err := bootstrap.New(ctx, cfg, bootstrap.Deps{
		Logger:   a.logger,
		Executor: a.executor,
		Commits:  a.commits,
		Sanity:   a.sanity,
		Metadata: a.metadata,
	})
	if err != nil {
		return err
	}

	sched := scheduler.New(a.logger, a.telemetry)
	sched.OnDeferred(b.DeferFailure)
	if err := a.registerSteps(sched, b); err != nil {
		return err
	}
	defer func() {
		_ = a.telemetry.Close()
	}()

	return b.Execute(ctx, sched)
}
