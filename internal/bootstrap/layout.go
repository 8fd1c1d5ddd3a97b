package bootstrap

import (
	"fmt"
	"path/filepath"

	"go.velt.ch/strap/internal/core/domain"
)

// Out returns the root of all build output.
func (b *Build) Out() string {
	return b.cfg.Out
}

// StageOut maps (compiler, mode) to the per-stage output directory, e.g.
// out/<host>/stage1-std. The mode suffix table is injective across modes
// except the two tool-using modes, which share a directory.
func (b *Build) StageOut(c domain.Compiler, mode domain.Mode) string {
	return filepath.Join(
		b.cfg.Out,
		c.Host.Triple(),
		fmt.Sprintf("stage%d%s", c.Stage, mode.OutputSuffix()),
	)
}

// BuildOut is the directory the per-package build tool writes artifacts
// into for the given target: the stage directory plus the target triple
// and the build profile folder.
func (b *Build) BuildOut(c domain.Compiler, mode domain.Mode, target domain.TargetSelection) string {
	return filepath.Join(b.StageOut(c, mode), target.Triple(), b.profileDir())
}

// profileDir is the build tool's profile folder name. There are exactly
// two profiles, chosen by the global optimize flag.
func (b *Build) profileDir() string {
	if b.cfg.Optimize {
		return "release"
	}
	return "debug"
}

// Sysroot is the root under which a compiler of the given identity finds
// its standard library. Stage 0 keeps a dedicated sysroot assembled from
// snapshot artifacts.
func (b *Build) Sysroot(c domain.Compiler) string {
	if c.Stage == 0 {
		return filepath.Join(b.cfg.Out, c.Host.Triple(), "stage0-sysroot")
	}
	return filepath.Join(b.cfg.Out, c.Host.Triple(), fmt.Sprintf("stage%d", c.Stage))
}

// SysrootLibdir is where target libraries for the given target live inside
// the compiler's sysroot.
func (b *Build) SysrootLibdir(c domain.Compiler, target domain.TargetSelection) string {
	return filepath.Join(b.Sysroot(c), "lib", "veltlib", target.Triple(), "lib")
}

// ToolsBinDir is where finished tool binaries built by the given compiler
// are collected.
func (b *Build) ToolsBinDir(c domain.Compiler) string {
	return filepath.Join(b.cfg.Out, c.Host.Triple(), fmt.Sprintf("stage%d-tools-bin", c.Stage))
}

// DocOut is the root for generated documentation for a target.
func (b *Build) DocOut(target domain.TargetSelection) string {
	return filepath.Join(b.cfg.Out, target.Triple(), "doc")
}

// NativeDir holds per-target native build products that are not managed
// by the per-package build tool.
func (b *Build) NativeDir(target domain.TargetSelection) string {
	return filepath.Join(b.cfg.Out, target.Triple(), "native")
}

// TestHelpersOut is where compiled native test helper objects go.
func (b *Build) TestHelpersOut(target domain.TargetSelection) string {
	return filepath.Join(b.NativeDir(target), "test-helpers")
}

// TempDir is scratch space shared by all steps of a run.
func (b *Build) TempDir() string {
	return filepath.Join(b.cfg.Out, "tmp")
}

// SnapshotSysroot is the sysroot of the previous-stage snapshot compiler.
func (b *Build) SnapshotSysroot() string {
	return b.initialSysroot
}

// InitialLibdir is the snapshot compiler's library directory relative to
// its sysroot. Every assembled stage mirrors this layout.
func (b *Build) InitialLibdir() string {
	return b.initialLibdir
}

// SnapshotLibdir is the absolute library directory of the snapshot
// compiler.
func (b *Build) SnapshotLibdir() string {
	return filepath.Join(b.initialSysroot, b.initialLibdir)
}

// ForceUseStage1 decides whether the scheduler should redirect a build
// request to stage 1 artifacts instead of building fresh ones. Outside a
// full bootstrap, stage 2 for any host is expected to be behaviorally
// identical to stage 1, so the final stage is assembled by copying. A
// genuine cross-compilation target never qualifies.
func (b *Build) ForceUseStage1(c domain.Compiler, target domain.TargetSelection) bool {
	return !b.cfg.FullBootstrap &&
		c.Stage >= 2 &&
		b.cfg.IsHost(target)
}
