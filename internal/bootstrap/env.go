package bootstrap

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"go.velt.ch/strap/internal/core/domain"
)

// Environment-derived knobs. Each reads its variable on demand; nothing
// here mutates the environment.

// Jobs is the parallel job count handed to the per-package build tool and
// the step scheduler: the configured value, or the logical CPU count.
func (b *Build) Jobs() int {
	if b.cfg.Jobs > 0 {
		return b.cfg.Jobs
	}
	return runtime.NumCPU()
}

// TestThreads is the test harness parallelism: an explicit environment
// override, or the job count.
func (b *Build) TestThreads() int {
	if v := os.Getenv("STRAP_TEST_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return b.Jobs()
}

// RemoteTested reports whether tests for the target execute on a remote
// device rather than locally.
func (b *Build) RemoteTested(target domain.TargetSelection) bool {
	if os.Getenv("TEST_DEVICE_ADDR") != "" {
		return true
	}
	return b.cfg.Target(target).QemuRootfs != "" || target.Contains("android")
}

// StdFeatures is the feature string for standard library builds targeting
// the given platform.
func (b *Build) StdFeatures(target domain.TargetSelection) string {
	features := []string{"panic-unwind"}
	if b.cfg.Backtrace {
		features = append(features, "backtrace")
	}
	if b.cfg.ProfilerEnabled(target) {
		features = append(features, "profiler")
	}
	return strings.Join(features, " ")
}

// CompilerFeatures is the feature string for compiler builds.
func (b *Build) CompilerFeatures() string {
	var features []string
	if b.cfg.NativeBackend {
		features = append(features, "codegen-native")
	}
	return strings.Join(features, " ")
}

// Verbose reports whether informational chatter is enabled.
func (b *Build) Verbose() bool {
	return b.cfg.Verbosity > 0
}

// IsVerboseThan reports whether verbosity exceeds the given level.
func (b *Build) IsVerboseThan(level int) bool {
	return b.cfg.Verbosity > level
}

// Info logs msg when verbosity is enabled.
func (b *Build) Info(msg string) {
	if b.Verbose() {
		b.log.Info(msg)
	}
}
