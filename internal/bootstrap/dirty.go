package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
)

const (
	stampBasename       = ".stamp"
	fingerprintBasename = "config.fingerprint"
)

// StampPath returns the sentinel file path for an output directory.
func StampPath(dir string) string {
	return filepath.Join(dir, stampBasename)
}

// InvalidationInputs are the run-wide inputs every staged output
// directory is invalidated against: the snapshot compiler binary and the
// materialized configuration fingerprint. A change to either one makes
// every stamped directory stale.
func (b *Build) InvalidationInputs() []string {
	return []string{b.initialCompilerPath, b.fingerprintPath}
}

// materializeFingerprint writes the configuration fingerprint under Out.
// The file is only rewritten when the fingerprint actually changed, so
// its mtime moves exactly when the configuration does.
func (b *Build) materializeFingerprint() error {
	content := []byte(strconv.FormatUint(b.cfg.Fingerprint, 16) + "\n")
	if prev, err := os.ReadFile(b.fingerprintPath); err == nil && bytes.Equal(prev, content) {
		return nil
	}
	if err := os.MkdirAll(b.cfg.Out, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", b.cfg.Out)
	}
	if err := os.WriteFile(b.fingerprintPath, content, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write config fingerprint"), "path", b.fingerprintPath)
	}
	return nil
}

// ClearIfDirty wipes dir when any input is newer than the directory's
// stamp sentinel, then (re-)creates the directory and refreshes the
// sentinel. An output directory is all-or-nothing: a consumer either
// trusts everything inside it or starts from empty, never a partial mix.
// The return value reports whether the directory was cleared.
func (b *Build) ClearIfDirty(dir string, inputs ...string) (bool, error) {
	if b.cfg.DryRun {
		return false, nil
	}
	stamp := StampPath(dir)
	cleared := false
	stampMtime := mtime(stamp)
	for _, input := range inputs {
		if !stampMtime.Before(mtime(input)) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to clear output directory"), "dir", dir)
		}
		cleared = true
		break
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", dir)
	}
	if err := touch(stamp); err != nil {
		return false, err
	}
	return cleared, nil
}

// mtime returns the modification time, or the zero time when the path
// does not exist. A missing input therefore never triggers a clear.
func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create stamp file"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close stamp file"), "path", path)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to refresh stamp file"), "path", path)
	}
	return nil
}

// ReadStampFile parses the dependency-tagged artifact records the
// per-package build invocation wrote next to its outputs. Malformed
// records fail the parse; they are never silently dropped.
func (b *Build) ReadStampFile(path string) ([]domain.StampEntry, error) {
	if b.cfg.DryRun {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read stamp file"), "path", path)
	}
	entries, err := domain.DecodeStampEntries(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return entries, nil
}
