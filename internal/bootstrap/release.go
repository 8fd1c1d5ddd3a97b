package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
)

// Release computes the human-readable release string for a numeric
// version, according to the configured channel.
func (b *Build) Release(ctx context.Context, num string) (string, error) {
	switch b.cfg.Channel {
	case domain.ChannelStable:
		return num, nil
	case domain.ChannelBeta:
		if !b.commit.InRepository() {
			return num + "-beta", nil
		}
		ordinal, err := b.prereleaseOrdinal(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-beta.%d", num, ordinal), nil
	case domain.ChannelNightly:
		return num + "-nightly", nil
	default:
		return num + "-dev", nil
	}
}

// PackageVersion is the version string used in distributable artifact
// names. Beta and nightly collapse to the bare channel name so artifact
// URLs stay stable across prereleases.
func (b *Build) PackageVersion(ctx context.Context, num string) (string, error) {
	switch b.cfg.Channel {
	case domain.ChannelStable:
		return num, nil
	case domain.ChannelBeta:
		return "beta", nil
	case domain.ChannelNightly:
		return "nightly", nil
	default:
		return num + "-dev", nil
	}
}

// prereleaseOrdinal is the count of merge commits since the release
// branch point. Counting is expensive, so the result is computed once per
// process and cached, error included.
func (b *Build) prereleaseOrdinal(ctx context.Context) (int, error) {
	b.ordinalOnce.Do(func() {
		b.ordinal, b.ordinalErr = b.commit.MergeCommitCount(ctx, b.cfg.ReleaseBranch)
		if b.ordinalErr != nil {
			b.ordinalErr = zerr.Wrap(b.ordinalErr, "failed to compute prerelease ordinal")
		}
	})
	return b.ordinal, b.ordinalErr
}

// VersionString is the full descriptive version: the release string plus
// commit information and an optional build description.
func (b *Build) VersionString(ctx context.Context) (string, error) {
	release, err := b.Release(ctx, b.version)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(release)
	if b.cfg.Description != "" {
		sb.WriteString(" (")
		sb.WriteString(b.cfg.Description)
		sb.WriteString(")")
	}
	if b.commit.InRepository() {
		fmt.Fprintf(&sb, " (%s %s)", b.commit.ShortSha(), b.commit.CommitDate())
	}
	return sb.String(), nil
}

// ReleaseNum extracts the numeric version of an in-tree tool from its
// package manifest by plain text scanning. A manifest without a version
// line is a fatal configuration error.
func (b *Build) ReleaseNum(tool string) (string, error) {
	path := filepath.Join(b.cfg.Src, "src", "tools", tool, "package.toml")
	manifest, err := b.ReadFile(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read package manifest")
	}
	for line := range strings.Lines(manifest) {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "version = \"")
		if !ok {
			continue
		}
		if v, ok := strings.CutSuffix(strings.TrimSpace(rest), "\""); ok {
			return v, nil
		}
	}
	return "", zerr.With(domain.ErrMissingVersionLine, "path", path)
}
