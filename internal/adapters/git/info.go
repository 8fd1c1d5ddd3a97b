// Package git implements commit introspection by shelling out to git.
package git

import (
	"context"
	"strconv"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
)

// Inspector implements ports.CommitInspector.
type Inspector struct {
	exec ports.Executor
}

// NewInspector creates a new Inspector backed by the given executor.
func NewInspector(exec ports.Executor) *Inspector {
	return &Inspector{exec: exec}
}

// Inspect probes dir for commit metadata. All git failures degrade to
// "no repository": a source tarball without history is a supported
// configuration, not an error.
func (i *Inspector) Inspect(ctx context.Context, dir string, ignore bool) ports.CommitInfo {
	info := &commitInfo{exec: i.exec, dir: dir}
	if ignore {
		return info
	}

	if _, err := i.exec.Output(ctx, git(dir, "rev-parse", "--git-dir")); err != nil {
		return info
	}

	sha, err := i.exec.Output(ctx, git(dir, "rev-parse", "HEAD"))
	if err != nil {
		return info
	}
	shortSha, err := i.exec.Output(ctx, git(dir, "rev-parse", "--short=9", "HEAD"))
	if err != nil {
		return info
	}
	date, err := i.exec.Output(ctx, git(dir, "log", "-1", "--date=short", "--pretty=format:%cd"))
	if err != nil {
		return info
	}

	info.inRepo = true
	info.sha = sha
	info.shortSha = shortSha
	info.commitDate = date
	return info
}

func git(dir string, args ...string) domain.Command {
	return domain.NewCommand("git", args...).WithDir(dir)
}

type commitInfo struct {
	exec ports.Executor
	dir  string

	inRepo     bool
	sha        string
	shortSha   string
	commitDate string
}

func (c *commitInfo) InRepository() bool { return c.inRepo }
func (c *commitInfo) Sha() string        { return c.sha }
func (c *commitInfo) ShortSha() string   { return c.shortSha }
func (c *commitInfo) CommitDate() string { return c.commitDate }

// MergeCommitCount counts merge commits between base and HEAD. Note the
// ".." range, not the "..." symmetric difference.
func (c *commitInfo) MergeCommitCount(ctx context.Context, base string) (int, error) {
	out, err := c.exec.Output(ctx, git(c.dir, "rev-list", "--count", "--merges", base+"..HEAD"))
	if err != nil {
		return 0, zerr.Wrap(err, "failed to count merge commits")
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "unexpected rev-list output"), "output", out)
	}
	return n, nil
}
