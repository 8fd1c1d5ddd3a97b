package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.velt.ch/strap/internal/core/domain"
)

func layoutBuild(t *testing.T) *Build {
	t.Helper()
	return &Build{
		cfg: &domain.Config{
			Out:   "/work/build",
			Build: domain.NewTarget("x86_64-unknown-linux-gnu"),
			Hosts: []domain.TargetSelection{
				domain.NewTarget("aarch64-apple-darwin"),
			},
		},
	}
}

func TestStageOutSuffixesAreDistinct(t *testing.T) {
	b := layoutBuild(t)
	compiler := domain.NewCompiler(1, b.cfg.Build)

	modes := []domain.Mode{
		domain.ModeStd,
		domain.ModeCompiler,
		domain.ModeCodegenBackend,
		domain.ModeToolBootstrap,
		domain.ModeToolUsingStd,
		domain.ModeToolUsingCompiler,
	}
	seen := map[string]domain.Mode{}
	for _, mode := range modes {
		dir := b.StageOut(compiler, mode)
		if prev, dup := seen[dir]; dup {
			// The two tool-using variants intentionally share a directory.
			require.True(t, prev.IsTool() && mode.IsTool(),
				"modes %v and %v collide on %s", prev, mode, dir)
			continue
		}
		seen[dir] = mode
	}
	require.Len(t, seen, 5)
}

func TestStageOutIsDeterministic(t *testing.T) {
	b := layoutBuild(t)
	compiler := domain.NewCompiler(2, b.cfg.Build)

	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage2-std",
		b.StageOut(compiler, domain.ModeStd))
	require.Equal(t,
		b.StageOut(compiler, domain.ModeStd),
		b.StageOut(compiler, domain.ModeStd))
}

func TestBuildOutAppendsTargetAndProfile(t *testing.T) {
	b := layoutBuild(t)
	compiler := domain.NewCompiler(1, b.cfg.Build)
	target := domain.NewTarget("aarch64-apple-darwin")

	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage1-std/aarch64-apple-darwin/debug",
		b.BuildOut(compiler, domain.ModeStd, target))

	b.cfg.Optimize = true
	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage1-std/aarch64-apple-darwin/release",
		b.BuildOut(compiler, domain.ModeStd, target))
}

func TestSysroot(t *testing.T) {
	b := layoutBuild(t)

	snapshot := domain.NewCompiler(0, b.cfg.Build)
	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage0-sysroot",
		b.Sysroot(snapshot))

	stage1 := domain.NewCompiler(1, b.cfg.Build)
	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage1",
		b.Sysroot(stage1))
	require.Equal(t,
		"/work/build/x86_64-unknown-linux-gnu/stage1/lib/veltlib/aarch64-apple-darwin/lib",
		b.SysrootLibdir(stage1, domain.NewTarget("aarch64-apple-darwin")))
}

func TestForceUseStage1(t *testing.T) {
	b := layoutBuild(t)
	host := domain.NewTarget("aarch64-apple-darwin")
	cross := domain.NewTarget("riscv64gc-unknown-linux-gnu")
	b.cfg.Targets = []domain.TargetSelection{cross}

	stage2 := domain.NewCompiler(2, b.cfg.Build)
	stage1 := domain.NewCompiler(1, b.cfg.Build)

	require.True(t, b.ForceUseStage1(stage2, host))
	require.True(t, b.ForceUseStage1(stage2, b.cfg.Build))

	// Stage 1 always builds for real.
	require.False(t, b.ForceUseStage1(stage1, host))

	// Cross targets never reuse host artifacts.
	require.False(t, b.ForceUseStage1(stage2, cross))

	// A full bootstrap rebuilds every stage.
	b.cfg.FullBootstrap = true
	require.False(t, b.ForceUseStage1(stage2, host))
}
