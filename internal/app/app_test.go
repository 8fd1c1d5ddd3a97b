package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
	"go.velt.ch/strap/internal/core/ports/mocks"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	executor  *mocks.MockExecutor
	commits   *mocks.MockCommitInspector
	sanity    *mocks.MockSanityChecker
	metadata  *mocks.MockMetadataLoader
	telemetry *mocks.MockTelemetry
}

func newAppWithMocks(t *testing.T) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		commits:   mocks.NewMockCommitInspector(ctrl),
		sanity:    mocks.NewMockSanityChecker(ctrl),
		metadata:  mocks.NewMockMetadataLoader(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	m.telemetry.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).
		AnyTimes()
	m.telemetry.EXPECT().Close().Return(nil).AnyTimes()

	return New(m.loader, m.logger, m.executor, m.commits, m.sanity, m.metadata, m.telemetry), m
}

func testWorkspace(t *testing.T) *domain.Config {
	t.Helper()
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "src", "version"), []byte("1.2.3\n"), 0o644))
	return &domain.Config{
		Channel:          domain.ChannelDev,
		Src:              src,
		Out:              filepath.Join(src, "build"),
		Build:            domain.NewTarget("x86_64-unknown-linux-gnu"),
		InitialCompiler:  "veltc",
		InitialBuildTool: "forge",
		Formatter:        "veltfmt",
		ReleaseBranch:    "origin/main",
	}
}

func TestRunDryBuild(t *testing.T) {
	a, m := newAppWithMocks(t)
	cfg := testWorkspace(t)

	m.loader.EXPECT().Load("strap.yaml").Return(cfg, nil)
	m.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
	m.commits.EXPECT().
		Inspect(gomock.Any(), cfg.Src, false).
		Return(mocks.NewMockCommitInfo(gomock.NewController(t)))

	err := a.Run(t.Context(), RunOptions{
		ConfigPath: "strap.yaml",
		Cmd:        domain.CommandLine{Kind: domain.SubcommandBuild, FailFast: true},
		DryRun:     true,
		Jobs:       2,
	})
	require.NoError(t, err)
}

func TestRunConfigLoadFailure(t *testing.T) {
	a, m := newAppWithMocks(t)
	m.loader.EXPECT().Load("missing.yaml").Return(nil, os.ErrNotExist)

	err := a.Run(t.Context(), RunOptions{ConfigPath: "missing.yaml"})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunUnknownStepSelection(t *testing.T) {
	a, m := newAppWithMocks(t)
	cfg := testWorkspace(t)

	m.loader.EXPECT().Load("strap.yaml").Return(cfg, nil)
	m.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
	m.commits.EXPECT().
		Inspect(gomock.Any(), cfg.Src, false).
		Return(mocks.NewMockCommitInfo(gomock.NewController(t)))

	err := a.Run(t.Context(), RunOptions{
		ConfigPath: "strap.yaml",
		Cmd: domain.CommandLine{
			Kind:  domain.SubcommandBuild,
			Paths: []string{"no-such-step"},
		},
		DryRun: true,
	})
	require.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestRunTestSubcommandDefersFailures(t *testing.T) {
	a, m := newAppWithMocks(t)
	cfg := testWorkspace(t)
	cfg.DryRun = false

	m.loader.EXPECT().Load("strap.yaml").Return(cfg, nil)
	m.sanity.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)
	m.sanity.EXPECT().MaybeHave("veltc").Return("/usr/bin/veltc", true)
	m.commits.EXPECT().
		Inspect(gomock.Any(), cfg.Src, false).
		Return(mocks.NewMockCommitInfo(gomock.NewController(t)))
	m.metadata.EXPECT().
		Load(gomock.Any(), cfg.Src, "forge").
		Return(domain.NewCrateGraph(), nil)

	// Snapshot compiler probing.
	m.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "target-libdir")).
		Return("/opt/velt/lib", nil)
	m.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--print", "sysroot")).
		Return("/opt/velt", nil)
	m.executor.EXPECT().
		Output(gomock.Any(), domain.NewCommand("veltc", "--version", "--verbose")).
		Return("release: 1.2.3\n", nil)

	// Every test invocation fails; the run still completes and reports
	// the failures at the end.
	m.executor.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(os.ErrPermission).
		AnyTimes()

	err := a.Run(t.Context(), RunOptions{
		ConfigPath: "strap.yaml",
		Cmd:        domain.CommandLine{Kind: domain.SubcommandTest},
		Jobs:       1,
	})
	require.ErrorIs(t, err, domain.ErrDeferredFailures)
}
