package ports

import (
	"context"

	"go.velt.ch/strap/internal/core/domain"
)

// Executor runs subprocesses synchronously. A failed command yields an
// error carrying the exit code; whether that is fatal or deferred is the
// caller's decision.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd, streaming its output through the logger.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes cmd and returns its trimmed standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
