package ports

import "context"

// RunMode selects between the validation pass and the real pass of the
// step scheduler. The orchestrator always passes it explicitly; there is
// no toggled global state.
type RunMode int

const (
	// RunModeDry resolves and validates the step selection without
	// executing anything.
	RunModeDry RunMode = iota

	// RunModeReal executes the selected steps.
	RunModeReal
)

// ScheduleRequest is one scheduler invocation.
type ScheduleRequest struct {
	// Paths is the requested step selection; empty selects the defaults.
	Paths []string
	Mode  RunMode
	// Jobs bounds step-level parallelism.
	Jobs int
}

// StepScheduler decides which steps to run and runs them. It is an
// external collaborator of the orchestrator: the orchestrator only
// validates cheaply with a dry pass, then invokes the real pass.
//
//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type StepScheduler interface {
	Execute(ctx context.Context, req ScheduleRequest) error
}
