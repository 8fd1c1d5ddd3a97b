package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
)

// Execute drives one invocation. Format, clean and setup short-circuit
// before any staged build logic. Everything else runs the step scheduler
// twice: a forced dry pass that validates the step selection cheaply,
// then the real pass. Failures deferred during a no-fail-fast run are
// reported together at the very end.
func (b *Build) Execute(ctx context.Context, sched ports.StepScheduler) error {
	switch b.cfg.Cmd.Kind {
	case domain.SubcommandFormat:
		return b.runFormat(ctx)
	case domain.SubcommandClean:
		return b.runClean()
	case domain.SubcommandSetup:
		return b.runSetup()
	}

	req := ports.ScheduleRequest{
		Paths: b.cfg.Cmd.Paths,
		Jobs:  b.Jobs(),
	}
	if !b.cfg.DryRun {
		req.Mode = ports.RunModeDry
		if err := sched.Execute(ctx, req); err != nil {
			return err
		}
	}
	req.Mode = ports.RunModeReal
	if err := sched.Execute(ctx, req); err != nil {
		return err
	}
	return b.reportDeferred()
}

func (b *Build) runFormat(ctx context.Context) error {
	var args []string
	if b.cfg.Cmd.FormatCheck {
		args = append(args, "--check")
	}
	cmd := domain.NewCommand(b.cfg.Formatter, args...).WithDir(b.cfg.Src)
	if b.cfg.DryRun {
		b.log.Info("dry run: skipping " + cmd.Path)
		return nil
	}
	return b.exec.Run(ctx, cmd)
}

// runClean removes build output. Without --all the download cache is
// kept, since refetching it dwarfs any rebuild.
func (b *Build) runClean() error {
	if b.cfg.Cmd.CleanAll {
		return b.RemoveDir(b.cfg.Out)
	}
	entries, err := b.ReadDir(b.cfg.Out)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == "cache" {
			continue
		}
		if err := b.RemoveDir(filepath.Join(b.cfg.Out, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// runSetup writes a starter configuration file for the chosen profile.
// An existing configuration is never overwritten.
func (b *Build) runSetup() error {
	path := filepath.Join(b.cfg.Src, "strap.yaml")
	if _, err := os.Stat(path); err == nil {
		return zerr.With(zerr.New("configuration file already exists"), "path", path)
	}
	profile := b.cfg.Cmd.SetupProfile
	if profile == "" {
		profile = "user"
	}
	contents := setupTemplate(profile, b.cfg.Build)
	if err := b.CreateFile(path, contents); err != nil {
		return err
	}
	b.log.Info("wrote " + path + " for profile " + profile)
	return nil
}

func setupTemplate(profile string, build domain.TargetSelection) string {
	base := "# strap configuration, profile: " + profile + "\n" +
		"channel: dev\n" +
		"build: " + build.Triple() + "\n"
	switch profile {
	case "compiler":
		return base + "optimize: false\n"
	case "library":
		return base + "optimize: true\nfullBootstrap: false\n"
	default:
		return base + "optimize: true\n"
	}
}

// DeferFailure queues a step failure for end-of-run reporting instead of
// aborting. Used by test execution when fail-fast is off.
func (b *Build) DeferFailure(description string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deferred = append(b.deferred, description)
}

// Deferred returns the failures queued so far.
func (b *Build) Deferred() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.deferred))
	copy(out, b.deferred)
	return out
}

func (b *Build) reportDeferred() error {
	failures := b.Deferred()
	if len(failures) == 0 {
		return nil
	}
	b.log.Warn("the following commands did not execute successfully:")
	for _, f := range failures {
		b.log.Warn("  " + f)
	}
	return zerr.With(domain.ErrDeferredFailures, "count", len(failures))
}
