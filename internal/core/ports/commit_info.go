package ports

import "context"

// CommitInfo is the probed version-control state of one directory.
// A directory outside any repository yields an info whose InRepository
// reports false and whose accessors return zero values.
//
//go:generate go run go.uber.org/mock/mockgen -source=commit_info.go -destination=mocks/mock_commit_info.go -package=mocks
type CommitInfo interface {
	// InRepository reports whether the directory is tracked by version
	// control and introspection succeeded.
	InRepository() bool

	// Sha returns the full commit hash, or "" when unavailable.
	Sha() string

	// ShortSha returns the abbreviated commit hash, or "".
	ShortSha() string

	// CommitDate returns the committer date of the current revision, or "".
	CommitDate() string

	// MergeCommitCount counts merge commits between the given base ref and
	// the current revision. Used to compute the beta prerelease ordinal.
	MergeCommitCount(ctx context.Context, base string) (int, error)
}

// CommitInspector probes directories for version-control metadata.
type CommitInspector interface {
	// Inspect probes dir. When ignore is set, probing is skipped entirely
	// and the returned info reports no repository.
	Inspect(ctx context.Context, dir string, ignore bool) CommitInfo
}
