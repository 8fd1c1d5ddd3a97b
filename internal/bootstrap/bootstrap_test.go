package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports/mocks"
)

type testDeps struct {
	logger   *mocks.MockLogger
	executor *mocks.MockExecutor
	commits  *mocks.MockCommitInspector
	sanity   *mocks.MockSanityChecker
	metadata *mocks.MockMetadataLoader
}

func newTestDeps(ctrl *gomock.Controller) (testDeps, Deps) {
	td := testDeps{
		logger:   mocks.NewMockLogger(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		commits:  mocks.NewMockCommitInspector(ctrl),
		sanity:   mocks.NewMockSanityChecker(ctrl),
		metadata: mocks.NewMockMetadataLoader(ctrl),
	}
	return td, Deps{
		Logger:   td.logger,
		Executor: td.executor,
		Commits:  td.commits,
		Sanity:   td.sanity,
		Metadata: td.metadata,
	}
}

func writeVersionFile(t *testing.T, src, version string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "src", "version"), []byte(version+"\n"), 0o644))
}

func startupConfig(src string) *domain.Config {
	return &domain.Config{
		Channel:          domain.ChannelDev,
		Src:              src,
		Out:              filepath.Join(src, "build"),
		Build:            domain.NewTarget("x86_64-unknown-linux-gnu"),
		InitialCompiler:  "veltc",
		InitialBuildTool: "forge",
		ReleaseBranch:    "origin/main",
	}
}

func TestNewDryRunSubstitutesDummyPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	td, deps := newTestDeps(ctrl)

	src := t.TempDir()
	writeVersionFile(t, src, "1.2.3")
	cfg := startupConfig(src)
	cfg.DryRun = true

	td.sanity.EXPECT().Check(gomock.Any(), []string{"forge", "veltc", "git"}).Return(nil)
	commit := mocks.NewMockCommitInfo(ctrl)
	td.commits.EXPECT().Inspect(gomock.Any(), src, false).Return(commit)

	b, err := New(t.Context(), cfg, deps)
	require.NoError(t, err)

	// No subprocess ran; the snapshot paths are the fixed dummies.
	require.Equal(t, "/dummy", b.SnapshotSysroot())
	require.Equal(t, "lib/path/to/lib", b.InitialLibdir())
	require.Equal(t, "1.2.3", b.Version())
	require.False(t, b.LocalRebuild())
}

func TestNewMissingVersionFileIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, deps := newTestDeps(ctrl)

	cfg := startupConfig(t.TempDir())
	cfg.DryRun = true

	_, err := New(t.Context(), cfg, deps)
	require.Error(t, err)
	require.ErrorContains(t, err, "version file")
}

func TestNewProbesSnapshotCompiler(t *testing.T) {
	ctrl := gomock.NewController(t)
	td, deps := newTestDeps(ctrl)

	src := t.TempDir()
	writeVersionFile(t, src, "1.3.0")
	cfg := startupConfig(src)

	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "target-libdir")).
		Return("/opt/velt/lib/veltlib/x86_64-unknown-linux-gnu/lib", nil)
	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "sysroot")).
		Return("/opt/velt", nil)
	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--version", "--verbose")).
		Return("veltc 1.2.9\nbinary: veltc\nrelease: 1.2.9\n", nil)
	td.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
	td.sanity.EXPECT().MaybeHave("veltc").Return("/usr/bin/veltc", true)
	td.commits.EXPECT().Inspect(gomock.Any(), src, false).Return(mocks.NewMockCommitInfo(ctrl))
	td.metadata.EXPECT().Load(gomock.Any(), src, "forge").Return(domain.NewCrateGraph(), nil)

	b, err := New(t.Context(), cfg, deps)
	require.NoError(t, err)

	require.Equal(t, "/opt/velt", b.SnapshotSysroot())
	require.Equal(t, "lib/veltlib/x86_64-unknown-linux-gnu/lib", b.InitialLibdir())
	require.Equal(t, filepath.Join("/opt/velt", "lib/veltlib/x86_64-unknown-linux-gnu/lib"), b.SnapshotLibdir())

	// The invalidation inputs are the PATH-resolved compiler binary and
	// the materialized configuration fingerprint, never the bare command
	// name.
	require.Equal(t, []string{"/usr/bin/veltc", filepath.Join(cfg.Out, "config.fingerprint")}, b.InvalidationInputs())
	require.FileExists(t, filepath.Join(cfg.Out, "config.fingerprint"))

	// 1.2 != 1.3, so no local-rebuild promotion.
	require.False(t, b.LocalRebuild())
}

func TestNewPromotesLocalRebuildOnVersionMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	td, deps := newTestDeps(ctrl)

	src := t.TempDir()
	writeVersionFile(t, src, "1.2.3")
	cfg := startupConfig(src)

	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "target-libdir")).
		Return("/opt/velt/lib", nil)
	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "sysroot")).
		Return("/opt/velt", nil)
	td.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--version", "--verbose")).
		Return("release: 1.2.0\n", nil)
	td.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
	td.sanity.EXPECT().MaybeHave("veltc").Return("/usr/bin/veltc", true)
	td.commits.EXPECT().Inspect(gomock.Any(), src, false).Return(mocks.NewMockCommitInfo(ctrl))
	td.metadata.EXPECT().Load(gomock.Any(), src, "forge").Return(domain.NewCrateGraph(), nil)

	b, err := New(t.Context(), cfg, deps)
	require.NoError(t, err)
	require.True(t, b.LocalRebuild())
}

func TestNewSkipsGitRequirementWhenIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	td, deps := newTestDeps(ctrl)

	src := t.TempDir()
	writeVersionFile(t, src, "1.2.3")
	cfg := startupConfig(src)
	cfg.DryRun = true
	cfg.IgnoreGit = true

	td.sanity.EXPECT().Check(gomock.Any(), []string{"forge", "veltc"}).Return(nil)
	td.commits.EXPECT().Inspect(gomock.Any(), src, true).Return(mocks.NewMockCommitInfo(ctrl))

	_, err := New(t.Context(), cfg, deps)
	require.NoError(t, err)
}

func TestConfigChangeClearsStaleOutput(t *testing.T) {
	src := t.TempDir()
	writeVersionFile(t, src, "1.3.0")

	newBuild := func(fingerprint uint64) *Build {
		ctrl := gomock.NewController(t)
		td, deps := newTestDeps(ctrl)
		cfg := startupConfig(src)
		cfg.Fingerprint = fingerprint

		td.executor.EXPECT().
			Output(gomock.Any(), domain.NewCommand("veltc", "--print", "target-libdir")).
			Return("/opt/velt/lib", nil)
		td.executor.EXPECT().
			Output(gomock.Any(), domain.NewCommand("veltc", "--print", "sysroot")).
			Return("/opt/velt", nil)
		td.executor.EXPECT().
			Output(gomock.Any(), domain.NewCommand("veltc", "--version", "--verbose")).
			Return("release: 1.2.9\n", nil)
		td.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
		// The compiler binary does not exist on disk, so only the config
		// fingerprint can drive invalidation here.
		td.sanity.EXPECT().MaybeHave("veltc").Return(filepath.Join(src, "veltc"), true)
		td.commits.EXPECT().Inspect(gomock.Any(), src, false).Return(mocks.NewMockCommitInfo(ctrl))
		td.metadata.EXPECT().Load(gomock.Any(), src, "forge").Return(domain.NewCrateGraph(), nil)

		b, err := New(t.Context(), cfg, deps)
		require.NoError(t, err)
		return b
	}

	b := newBuild(7)
	dir := filepath.Join(b.Config().Out, "x86_64-unknown-linux-gnu", "stage1-std")
	cleared, err := b.ClearIfDirty(dir, b.InvalidationInputs()...)
	require.NoError(t, err)
	require.True(t, cleared) // no stamp yet

	// Age the stamp and the fingerprint so only a rewrite can outdate it.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(StampPath(dir), past, past))
	older := past.Add(-time.Hour)
	require.NoError(t, os.Chtimes(b.fingerprintPath, older, older))

	b = newBuild(7)
	cleared, err = b.ClearIfDirty(dir, b.InvalidationInputs()...)
	require.NoError(t, err)
	require.False(t, cleared, "unchanged config must keep the output")

	require.NoError(t, os.Chtimes(StampPath(dir), past, past))

	b = newBuild(8)
	cleared, err = b.ClearIfDirty(dir, b.InvalidationInputs()...)
	require.NoError(t, err)
	require.True(t, cleared, "changed config must clear the output")
}

func TestToolArtifactCache(t *testing.T) {
	b := &Build{cfg: &domain.Config{}, toolArtifacts: map[toolKey]string{}}
	target := domain.NewTarget("x86_64-unknown-linux-gnu")

	_, ok := b.ToolArtifact(target, "doc")
	require.False(t, ok)

	b.SaveToolArtifact(target, "doc", "/out/doc")
	path, ok := b.ToolArtifact(target, "doc")
	require.True(t, ok)
	require.Equal(t, "/out/doc", path)
}
