package app

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"go.velt.ch/strap/internal/bootstrap"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/engine/scheduler"
)

// Tools built with the snapshot compiler before any stage exists.
var bootstrapTools = []string{"tidy", "expand"}

// stepBuilder produces the step closures over one orchestrator instance.
type stepBuilder struct {
	app *App
	b   *bootstrap.Build
}

// registerSteps installs the standard step set. Build-type steps are the
// defaults of a build invocation; test steps are the defaults of a test
// invocation and defer their failures unless fail-fast is requested.
func (a *App) registerSteps(sched *scheduler.Scheduler, b *bootstrap.Build) error {
	sb := &stepBuilder{app: a, b: b}
	cfg := b.Config()
	testing := cfg.Cmd.Kind == domain.SubcommandTest

	steps := []scheduler.Step{
		{Name: "std", Default: !testing, Run: sb.buildStd},
		{Name: "compiler", Default: !testing, Run: sb.buildCompiler},
		{Name: "codegen-backend", Default: !testing && cfg.NativeBackend, Run: sb.buildCodegenBackend},
		{Name: "bootstrap-tools", Default: !testing, Run: sb.buildBootstrapTools},
		{Name: "assemble", Default: !testing, Run: sb.assemble},
		{Name: "doc", Run: sb.buildDocs},
		{Name: "test/std", Default: testing, Deferrable: !cfg.Cmd.FailFast, Run: sb.testStd},
		{Name: "test/compiler", Default: testing, Deferrable: !cfg.Cmd.FailFast, Run: sb.testCompiler},
	}
	for _, step := range steps {
		if err := sched.Register(step); err != nil {
			return err
		}
	}
	return nil
}

// crates resolves the in-workspace closure for a root. Under dry run no
// metadata was loaded, so the closure is empty.
func (sb *stepBuilder) crates(root string, target domain.TargetSelection) ([]*domain.Crate, error) {
	if sb.b.Config().DryRun {
		return nil, nil
	}
	return sb.b.InTreeCrates(root, target)
}

// finalCompiler is the compiler identity of the last stage being built in
// this session.
func (sb *stepBuilder) finalCompiler() domain.Compiler {
	stage := uint32(1)
	if sb.b.Config().FullBootstrap {
		stage = 2
	}
	return domain.NewCompiler(stage, sb.b.Config().Build)
}

func (sb *stepBuilder) buildStd(ctx context.Context) error {
	cfg := sb.b.Config()
	for _, target := range cfg.AllTargets() {
		compiler := sb.finalCompiler()
		if sb.b.ForceUseStage1(compiler, target) {
			compiler = compiler.WithStage(1)
		}
		crates, err := sb.crates("std", target)
		if err != nil {
			return err
		}
		out := sb.b.BuildOut(compiler, domain.ModeStd, target)
		if _, err := sb.b.ClearIfDirty(out, sb.b.InvalidationInputs()...); err != nil {
			return err
		}
		cmd := sb.buildCommand(crates, target, out).
			WithEnv("STD_FEATURES=" + sb.b.StdFeatures(target))
		if err := sb.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (sb *stepBuilder) buildCompiler(ctx context.Context) error {
	cfg := sb.b.Config()
	compiler := sb.finalCompiler()
	for _, host := range cfg.Hosts {
		if err := sb.buildCompilerFor(ctx, compiler, host); err != nil {
			return err
		}
	}
	return sb.buildCompilerFor(ctx, compiler, cfg.Build)
}

func (sb *stepBuilder) buildCompilerFor(ctx context.Context, compiler domain.Compiler, host domain.TargetSelection) error {
	if sb.b.ForceUseStage1(compiler, host) {
		compiler = compiler.WithStage(1)
	}
	crates, err := sb.crates("compiler", host)
	if err != nil {
		return err
	}
	out := sb.b.BuildOut(compiler, domain.ModeCompiler, host)
	if _, err := sb.b.ClearIfDirty(out, sb.b.InvalidationInputs()...); err != nil {
		return err
	}

	cmd := sb.buildCommand(crates, host, out)
	env, err := sb.nativeEnv(host)
	if err != nil {
		return err
	}
	if features := sb.b.CompilerFeatures(); features != "" {
		env = append(env, "COMPILER_FEATURES="+features)
	}
	return sb.run(ctx, cmd.WithEnv(env...))
}

func (sb *stepBuilder) buildCodegenBackend(ctx context.Context) error {
	cfg := sb.b.Config()
	compiler := sb.finalCompiler()
	crates, err := sb.crates("codegen-native", cfg.Build)
	if err != nil {
		return err
	}
	out := sb.b.BuildOut(compiler, domain.ModeCodegenBackend, cfg.Build)
	if _, err := sb.b.ClearIfDirty(out, sb.b.InvalidationInputs()...); err != nil {
		return err
	}
	return sb.run(ctx, sb.buildCommand(crates, cfg.Build, out))
}

func (sb *stepBuilder) buildBootstrapTools(ctx context.Context) error {
	cfg := sb.b.Config()
	snapshot := domain.NewCompiler(0, cfg.Build)
	out := sb.b.StageOut(snapshot, domain.ModeToolBootstrap)
	if _, err := sb.b.ClearIfDirty(out, sb.b.InvalidationInputs()...); err != nil {
		return err
	}
	binDir := sb.b.ToolsBinDir(snapshot)

	for _, tool := range bootstrapTools {
		if _, done := sb.b.ToolArtifact(cfg.Build, tool); done {
			continue
		}
		args := []string{
			"build",
			"--package", tool,
			"--jobs", strconv.Itoa(sb.b.Jobs()),
			"--out-dir", out,
		}
		cmd := domain.NewCommand(cfg.InitialBuildTool, args...).WithDir(cfg.Src)
		if err := sb.run(ctx, cmd); err != nil {
			return err
		}
		built := filepath.Join(out, tool)
		if err := sb.b.Install(built, binDir, 0o755); err != nil {
			return err
		}
		sb.b.SaveToolArtifact(cfg.Build, tool, filepath.Join(binDir, tool))
	}
	return nil
}

// assemble populates the final stage's sysroot from the artifacts of the
// stage that actually built them, guided by the stamp file's dependency
// classification. Host-only artifacts never enter target library dirs.
func (sb *stepBuilder) assemble(ctx context.Context) error {
	cfg := sb.b.Config()
	final := sb.finalCompiler()
	for _, target := range cfg.AllTargets() {
		if !cfg.IsHost(target) && target != cfg.Build {
			continue
		}
		source := final
		if sb.b.ForceUseStage1(source, target) {
			source = source.WithStage(1)
		}
		stamp := filepath.Join(sb.b.BuildOut(source, domain.ModeStd, target), "std.stamp")
		entries, err := sb.b.ReadStampFile(stamp)
		if err != nil {
			return err
		}
		hostDir := filepath.Join(sb.b.Sysroot(final), "lib")
		targetDir := sb.b.SysrootLibdir(final, target)
		if err := sb.b.CreateDir(hostDir); err != nil {
			return err
		}
		if err := sb.b.CreateDir(targetDir); err != nil {
			return err
		}
		for _, entry := range entries {
			dir := targetDir
			if entry.Type == domain.DepHost {
				dir = hostDir
			}
			if err := sb.b.CopyToDir(entry.Path, dir); err != nil {
				return err
			}
		}
	}
	return nil
}

func (sb *stepBuilder) buildDocs(ctx context.Context) error {
	cfg := sb.b.Config()
	out := sb.b.DocOut(cfg.Build)
	if err := sb.b.CreateDir(out); err != nil {
		return err
	}
	version, err := sb.b.VersionString(ctx)
	if err != nil {
		return err
	}
	cmd := domain.NewCommand(cfg.InitialBuildTool, "doc", "--out-dir", out).
		WithDir(cfg.Src).
		WithEnv("DOC_VERSION=" + version)
	return sb.run(ctx, cmd)
}

func (sb *stepBuilder) testStd(ctx context.Context) error {
	return sb.test(ctx, "std")
}

func (sb *stepBuilder) testCompiler(ctx context.Context) error {
	return sb.test(ctx, "compiler")
}

func (sb *stepBuilder) test(ctx context.Context, pkg string) error {
	cfg := sb.b.Config()
	for _, target := range cfg.AllTargets() {
		args := []string{
			"test",
			"--package", pkg,
			"--target", target.Triple(),
		}
		env := []string{"TEST_THREADS=" + strconv.Itoa(sb.b.TestThreads())}
		if sb.b.RemoteTested(target) {
			env = append(env, "REMOTE_TEST=1")
		}
		cmd := domain.NewCommand(cfg.InitialBuildTool, args...).WithDir(cfg.Src).WithEnv(env...)
		if err := sb.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// buildCommand assembles the per-package build tool invocation for a set
// of workspace crates.
func (sb *stepBuilder) buildCommand(crates []*domain.Crate, target domain.TargetSelection, out string) domain.Command {
	cfg := sb.b.Config()
	args := []string{
		"build",
		"--target", target.Triple(),
		"--jobs", strconv.Itoa(sb.b.Jobs()),
		"--out-dir", out,
	}
	if cfg.Optimize {
		args = append(args, "--release")
	}
	for _, crate := range crates {
		args = append(args, "--package", crate.Name.String())
	}
	return domain.NewCommand(cfg.InitialBuildTool, args...).WithDir(cfg.Src)
}

// nativeEnv exports the probed native toolchain for a host so the build
// tool's own build scripts pick it up.
func (sb *stepBuilder) nativeEnv(host domain.TargetSelection) ([]string, error) {
	tc := sb.b.Toolchain()
	cc, err := tc.Cc(host)
	if err != nil {
		return nil, err
	}
	env := []string{"CC=" + cc.Path}
	if cxx, err := tc.Cxx(host); err == nil {
		env = append(env, "CXX="+cxx.Path)
	}
	if ar := tc.Ar(host); ar != "" {
		env = append(env, "AR="+ar)
	}
	if cflags := tc.Cflags(host); len(cflags) > 0 {
		env = append(env, "CFLAGS="+strings.Join(cflags, " "))
	}
	if linker, ok := tc.Linker(host); ok {
		env = append(env, "LINKER="+linker)
	}
	return env, nil
}

func (sb *stepBuilder) run(ctx context.Context, cmd domain.Command) error {
	if sb.b.Config().DryRun {
		sb.b.Info("dry run: " + cmd.Path + " " + strings.Join(cmd.Args, " "))
		return nil
	}
	return sb.app.executor.Run(ctx, cmd)
}
