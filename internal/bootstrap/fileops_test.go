package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.velt.ch/strap/internal/core/domain"
)

func TestCopyIsIdempotent(t *testing.T) {
	b := ioBuild(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o755))

	require.NoError(t, b.Copy(src, dst))
	require.NoError(t, b.Copy(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopySamePathIsNoop(t *testing.T) {
	b := ioBuild(t)
	src := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, b.Copy(src, src))
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestCopyRecreatesSymlink(t *testing.T) {
	b := ioBuild(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, b.Copy(link, dst))

	got, err := os.Readlink(dst)
	require.NoError(t, err)
	require.Equal(t, target, got)
}

func TestCopyFiltered(t *testing.T) {
	b := ioBuild(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("k"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "drop.log"), []byte("d"), 0o644))

	// A stale copy of a now-filtered entry must be removed.
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "sub", "drop.log"), []byte("stale"), 0o644))

	err := b.CopyFiltered(src, dst, func(rel string) bool {
		return !strings.HasSuffix(rel, ".log")
	})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(dst, "keep.txt"))
	require.NoFileExists(t, filepath.Join(dst, "sub", "drop.log"))
}

func TestInstall(t *testing.T) {
	b := ioBuild(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "tool")
	// The target directory does not exist yet; Install creates it.
	dstDir := filepath.Join(dir, "stage0-tools-bin", "nested")
	require.NoError(t, os.WriteFile(src, []byte("#!bin"), 0o600))

	require.NoError(t, b.Install(src, dstDir, 0o755))

	info, err := os.Stat(filepath.Join(dstDir, "tool"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestInstallMissingSource(t *testing.T) {
	b := ioBuild(t)
	dir := t.TempDir()

	err := b.Install(filepath.Join(dir, "absent"), dir, 0o755)
	require.ErrorIs(t, err, domain.ErrSourceMissing)
}

func TestReadFile(t *testing.T) {
	b := ioBuild(t)
	path := filepath.Join(t.TempDir(), "version")
	require.NoError(t, os.WriteFile(path, []byte("1.3.0\n"), 0o644))

	got, err := b.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1.3.0\n", got)

	_, err = b.ReadFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestReadFileDryRun(t *testing.T) {
	b := &Build{cfg: &domain.Config{DryRun: true}}

	got, err := b.ReadFile(filepath.Join(t.TempDir(), "never-read"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReplaceInFileAppliesInOrder(t *testing.T) {
	b := ioBuild(t)
	path := filepath.Join(t.TempDir(), "manifest")
	require.NoError(t, os.WriteFile(path, []byte("version = OLD"), 0o644))

	err := b.ReplaceInFile(path, []Replacement{
		{From: "OLD", To: "MID"},
		{From: "MID", To: "1.2.3"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "version = 1.2.3", string(data))
}

func TestFileOpsDryRun(t *testing.T) {
	b := &Build{cfg: &domain.Config{DryRun: true}}
	dir := filepath.Join(t.TempDir(), "never")

	require.NoError(t, b.CreateDir(dir))
	require.NoDirExists(t, dir)

	require.NoError(t, b.CreateFile(filepath.Join(dir, "f"), "x"))
	require.NoError(t, b.Copy(filepath.Join(dir, "a"), filepath.Join(dir, "b")))
	require.NoError(t, b.Install(filepath.Join(dir, "a"), dir, 0o755))
	require.NoError(t, b.RemoveDir(dir))
}
