// Package bootstrap holds the central orchestrator state for building the
// self-hosting toolchain: stage layout, incremental invalidation, release
// versioning, and the file primitives the step scheduler calls back into.
package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
	"go.velt.ch/strap/internal/toolchain"
)

// Dummy paths substituted for snapshot compiler output under dry run.
const (
	dryRunLibdir  = "/dummy/lib/path/to/lib"
	dryRunSysroot = "/dummy"
)

// Deps are the external collaborators the orchestrator is constructed
// with. All of them are ports so tests can substitute mocks.
type Deps struct {
	Logger   ports.Logger
	Executor ports.Executor
	Commits  ports.CommitInspector
	Sanity   ports.SanityChecker
	Metadata ports.MetadataLoader
}

type toolKey struct {
	target domain.TargetSelection
	tool   string
}

// Build is the orchestrator state. It is constructed once per process,
// fully initialized before any step runs, and read-shared afterwards.
// The few mutable caches are guarded so parallel steps cannot race.
type Build struct {
	cfg  *domain.Config
	log  ports.Logger
	exec ports.Executor

	// version is the trimmed contents of the repository version file.
	version string

	commit ports.CommitInfo
	tools  *toolchain.Resolver
	crates *domain.CrateGraph

	// initialLibdir is the snapshot compiler's library directory relative
	// to its sysroot, used to lay out every later stage the same way.
	initialLibdir  string
	initialSysroot string

	// initialCompilerPath is the PATH-resolved location of the snapshot
	// compiler binary; fingerprintPath is the materialized configuration
	// fingerprint under Out. Together they are the invalidation inputs
	// every staged output directory is compared against.
	initialCompilerPath string
	fingerprintPath     string

	localRebuild bool
	isSudo       bool

	mu       sync.Mutex
	deferred []string

	ordinalOnce sync.Once
	ordinal     int
	ordinalErr  error

	toolMu        sync.Mutex
	toolArtifacts map[toolKey]string
}

// New runs the startup sequence: snapshot compiler probing, version file,
// native toolchain discovery, sanity checks, local-rebuild detection, and
// workspace metadata. Each step depends on the previous one; any failure
// aborts construction.
func New(ctx context.Context, cfg *domain.Config, deps Deps) (*Build, error) {
	libdir, sysroot, err := snapshotPaths(ctx, cfg, deps.Executor)
	if err != nil {
		return nil, err
	}
	initialLibdir := strings.TrimPrefix(libdir, sysroot)
	initialLibdir = strings.TrimPrefix(initialLibdir, string(os.PathSeparator))

	version, err := readVersionFile(cfg.Src)
	if err != nil {
		return nil, err
	}

	b := &Build{
		cfg:            cfg,
		log:            deps.Logger,
		exec:           deps.Executor,
		version:        version,
		initialLibdir:  initialLibdir,
		initialSysroot: sysroot,
		isSudo:         detectSudo(),
		toolArtifacts:  map[toolKey]string{},
	}

	b.tools = toolchain.Probe(cfg)

	if err := deps.Sanity.Check(ctx, b.requiredCommands()); err != nil {
		return nil, zerr.Wrap(err, "environment sanity check failed")
	}

	b.initialCompilerPath = cfg.InitialCompiler
	b.fingerprintPath = filepath.Join(cfg.Out, fingerprintBasename)
	if !cfg.DryRun {
		if path, ok := deps.Sanity.MaybeHave(cfg.InitialCompiler); ok {
			b.initialCompilerPath = path
		}
		if err := b.materializeFingerprint(); err != nil {
			return nil, err
		}
	}

	b.commit = deps.Commits.Inspect(ctx, cfg.Src, cfg.IgnoreGit)

	b.localRebuild = cfg.LocalRebuild
	if !cfg.DryRun {
		promoted, err := b.detectLocalRebuild(ctx)
		if err != nil {
			return nil, err
		}
		if promoted {
			b.localRebuild = true
		}
	}

	if cfg.DryRun {
		b.crates = domain.NewCrateGraph()
	} else {
		graph, err := deps.Metadata.Load(ctx, cfg.Src, cfg.InitialBuildTool)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load workspace metadata")
		}
		b.crates = graph
	}

	return b, nil
}

// snapshotPaths asks the previous-stage compiler for its target library
// directory and sysroot. Dry run substitutes fixed dummy paths instead of
// invoking anything.
func snapshotPaths(ctx context.Context, cfg *domain.Config, exec ports.Executor) (libdir, sysroot string, err error) {
	if cfg.DryRun {
		return dryRunLibdir, dryRunSysroot, nil
	}
	libdir, err = exec.Output(ctx, domain.NewCommand(cfg.InitialCompiler, "--print", "target-libdir"))
	if err != nil {
		return "", "", zerr.Wrap(err, "snapshot compiler failed to print target-libdir")
	}
	sysroot, err = exec.Output(ctx, domain.NewCommand(cfg.InitialCompiler, "--print", "sysroot"))
	if err != nil {
		return "", "", zerr.Wrap(err, "snapshot compiler failed to print sysroot")
	}
	return libdir, sysroot, nil
}

func readVersionFile(src string) (string, error) {
	path := filepath.Join(src, "src", "version")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read version file"), "path", path)
	}
	return strings.TrimSpace(string(data)), nil
}

// detectSudo reports whether the process was elevated via sudo: the
// invoking user is recorded in SUDO_USER and differs from the effective
// user.
func detectSudo() bool {
	sudoUser := os.Getenv("SUDO_USER")
	if sudoUser == "" {
		return false
	}
	user := os.Getenv("USER")
	return user != "" && user != sudoUser
}

func (b *Build) requiredCommands() []string {
	commands := []string{b.cfg.InitialBuildTool, b.cfg.InitialCompiler}
	if !b.cfg.IgnoreGit {
		commands = append(commands, "git")
	}
	return commands
}

// detectLocalRebuild compares the snapshot compiler's own major.minor
// version with the version being built. A match means the snapshot IS a
// locally built compiler of this very version, so stage0 artifacts can be
// reused as-is. The promotion only ever enables local rebuild, never
// disables an explicit configuration.
func (b *Build) detectLocalRebuild(ctx context.Context) (bool, error) {
	out, err := b.exec.Output(ctx, domain.NewCommand(b.cfg.InitialCompiler, "--version", "--verbose"))
	if err != nil {
		return false, zerr.Wrap(err, "snapshot compiler failed to report its version")
	}
	for line := range strings.Lines(out) {
		release, ok := strings.CutPrefix(strings.TrimSpace(line), "release:")
		if !ok {
			continue
		}
		return majorMinor(strings.TrimSpace(release)) == majorMinor(b.version), nil
	}
	return false, zerr.With(zerr.New("no release line in snapshot compiler version output"), "output", out)
}

func majorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// Config returns the resolved configuration.
func (b *Build) Config() *domain.Config {
	return b.cfg
}

// Version returns the semantic version string being built.
func (b *Build) Version() string {
	return b.version
}

// LocalRebuild reports whether stage0 artifacts come from a locally built
// compiler of the same version.
func (b *Build) LocalRebuild() bool {
	return b.localRebuild
}

// IsSudo reports whether the process runs under sudo elevation.
func (b *Build) IsSudo() bool {
	return b.isSudo
}

// Toolchain returns the native toolchain resolver.
func (b *Build) Toolchain() *toolchain.Resolver {
	return b.tools
}

// Commit returns the probed version-control state of the source root.
func (b *Build) Commit() ports.CommitInfo {
	return b.commit
}

// InTreeCrates computes the transitive in-workspace closure of the named
// root crate for the given target.
func (b *Build) InTreeCrates(root string, target domain.TargetSelection) ([]*domain.Crate, error) {
	return b.crates.InTreeCrates(root, target, domain.PruneRules{
		ProfilerEnabled:      b.cfg.ProfilerEnabled,
		AnyProfilerEnabled:   b.cfg.AnyProfilerEnabled(),
		NativeBackendEnabled: b.cfg.NativeBackend,
	})
}

// ToolArtifact looks up a previously materialized tool build.
func (b *Build) ToolArtifact(target domain.TargetSelection, tool string) (string, bool) {
	b.toolMu.Lock()
	defer b.toolMu.Unlock()
	path, ok := b.toolArtifacts[toolKey{target: target, tool: tool}]
	return path, ok
}

// SaveToolArtifact records where a tool build for the target was placed,
// so later steps reuse it instead of rebuilding.
func (b *Build) SaveToolArtifact(target domain.TargetSelection, tool, path string) {
	b.toolMu.Lock()
	defer b.toolMu.Unlock()
	b.toolArtifacts[toolKey{target: target, tool: tool}] = path
}
