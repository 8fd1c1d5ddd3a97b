package ports

import "context"

// SanityChecker verifies the build environment before any step runs:
// required commands reachable, no surprising privilege elevation, and so
// on. Failures abort startup.
//
//go:generate go run go.uber.org/mock/mockgen -source=sanity.go -destination=mocks/mock_sanity.go -package=mocks
type SanityChecker interface {
	Check(ctx context.Context, requiredCommands []string) error

	// MaybeHave resolves cmd in PATH, reporting its absolute location.
	MaybeHave(cmd string) (string, bool)
}
