package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
	"go.velt.ch/strap/internal/core/ports/mocks"
)

func TestExecuteRunsDryPassThenRealPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockStepScheduler(ctrl)
	b := &Build{
		cfg: &domain.Config{
			Jobs: 4,
			Cmd:  domain.CommandLine{Kind: domain.SubcommandBuild, Paths: []string{"std"}},
		},
		log: mocks.NewMockLogger(ctrl),
	}

	gomock.InOrder(
		sched.EXPECT().Execute(gomock.Any(), ports.ScheduleRequest{
			Paths: []string{"std"},
			Mode:  ports.RunModeDry,
			Jobs:  4,
		}).Return(nil),
		sched.EXPECT().Execute(gomock.Any(), ports.ScheduleRequest{
			Paths: []string{"std"},
			Mode:  ports.RunModeReal,
			Jobs:  4,
		}).Return(nil),
	)

	require.NoError(t, b.Execute(t.Context(), sched))
}

func TestExecuteSkipsValidationPassUnderDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockStepScheduler(ctrl)
	b := &Build{
		cfg: &domain.Config{
			DryRun: true,
			Jobs:   1,
			Cmd:    domain.CommandLine{Kind: domain.SubcommandBuild},
		},
		log: mocks.NewMockLogger(ctrl),
	}

	sched.EXPECT().Execute(gomock.Any(), ports.ScheduleRequest{
		Mode: ports.RunModeReal,
		Jobs: 1,
	}).Return(nil)

	require.NoError(t, b.Execute(t.Context(), sched))
}

func TestExecuteValidationFailureAbortsRealPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockStepScheduler(ctrl)
	b := &Build{
		cfg: &domain.Config{
			Jobs: 1,
			Cmd:  domain.CommandLine{Kind: domain.SubcommandBuild, Paths: []string{"nope"}},
		},
		log: mocks.NewMockLogger(ctrl),
	}

	sched.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(domain.ErrUnknownStep)

	require.ErrorIs(t, b.Execute(t.Context(), sched), domain.ErrUnknownStep)
}

func TestExecuteReportsDeferredFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockStepScheduler(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	b := &Build{
		cfg: &domain.Config{
			Jobs: 1,
			Cmd:  domain.CommandLine{Kind: domain.SubcommandTest},
		},
		log: logger,
	}

	sched.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.ScheduleRequest) error {
			if req.Mode == ports.RunModeReal {
				b.DeferFailure("forge test --package std")
				b.DeferFailure("forge test --package compiler")
			}
			return nil
		}).
		Times(2)

	err := b.Execute(t.Context(), sched)
	require.ErrorIs(t, err, domain.ErrDeferredFailures)
	require.Len(t, b.Deferred(), 2)
}

func TestExecuteFormatShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	b := &Build{
		cfg: &domain.Config{
			Src:       "/work/src",
			Formatter: "veltfmt",
			Cmd:       domain.CommandLine{Kind: domain.SubcommandFormat, FormatCheck: true},
		},
		log:  mocks.NewMockLogger(ctrl),
		exec: exec,
	}

	exec.EXPECT().
		Run(gomock.Any(), domain.NewCommand("veltfmt", "--check").WithDir("/work/src")).
		Return(nil)

	// The scheduler must never be touched.
	require.NoError(t, b.Execute(t.Context(), nil))
}
