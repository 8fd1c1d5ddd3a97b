package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
)

// File primitives the step scheduler calls back into. They all no-op
// under dry run. A failure of any of them signals an unrecoverable
// environment problem and is surfaced with both paths attached.

// Copy copies a single file. Symbolic links are recreated as links. For
// regular files a hard link is attempted first, falling back to a full
// content copy that replicates permissions and timestamps.
func (b *Build) Copy(src, dst string) error {
	if b.cfg.DryRun || src == dst {
		return nil
	}
	_ = os.Remove(dst)

	info, err := os.Lstat(src)
	if err != nil {
		return copyErr(err, src, dst)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		link, err := os.Readlink(src)
		if err != nil {
			return copyErr(err, src, dst)
		}
		if err := os.Symlink(link, dst); err != nil {
			return copyErr(err, src, dst)
		}
		return nil
	}

	if err := os.Link(src, dst); err == nil {
		return nil
	}
	return b.copyContents(src, dst)
}

func (b *Build) copyContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return copyErr(err, src, dst)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return copyErr(err, src, dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return copyErr(err, src, dst)
	}
	if err := out.Close(); err != nil {
		return copyErr(err, src, dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return copyErr(err, src, dst)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return copyErr(err, src, dst)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return copyErr(err, src, dst)
	}
	return nil
}

func copyErr(err error, src, dst string) error {
	wrapped := zerr.Wrap(err, "failed to copy")
	wrapped = zerr.With(wrapped, "src", src)
	return zerr.With(wrapped, "dst", dst)
}

// CopyRecursive mirrors an entire directory tree.
func (b *Build) CopyRecursive(src, dst string) error {
	return b.CopyFiltered(src, dst, func(string) bool { return true })
}

// CopyFiltered mirrors a directory tree, consulting keep per entry with
// the path relative to src. Entries for which keep returns false are
// skipped, and any stale previous copy of them is removed.
func (b *Build) CopyFiltered(src, dst string, keep func(rel string) bool) error {
	if b.cfg.DryRun {
		return nil
	}
	return b.copyFiltered(src, dst, src, keep)
}

func (b *Build) copyFiltered(src, dst, root string, keep func(rel string) bool) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return copyErr(err, src, dst)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return copyErr(err, src, dst)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		rel, err := filepath.Rel(root, srcPath)
		if err != nil {
			return copyErr(err, srcPath, dstPath)
		}
		if !keep(rel) {
			if err := os.RemoveAll(dstPath); err != nil {
				return copyErr(err, srcPath, dstPath)
			}
			continue
		}
		if entry.IsDir() {
			if err := b.copyFiltered(srcPath, dstPath, root, keep); err != nil {
				return err
			}
			continue
		}
		if err := b.Copy(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// CopyToDir copies a file into a directory, keeping its base name.
func (b *Build) CopyToDir(src, dstDir string) error {
	return b.Copy(src, filepath.Join(dstDir, filepath.Base(src)))
}

// Install copies a file into a directory and applies explicit permission
// bits. A missing source is fatal; the target directory is created along
// with any missing parents.
func (b *Build) Install(src, dstDir string, perm os.FileMode) error {
	if b.cfg.DryRun {
		return nil
	}
	if _, err := os.Stat(src); err != nil {
		return zerr.With(domain.ErrSourceMissing, "src", src)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dstDir)
	}
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := b.copyContents(src, dst); err != nil {
		return err
	}
	if err := os.Chmod(dst, perm); err != nil {
		return copyErr(err, src, dst)
	}
	return nil
}

// ReadFile returns the contents of a file. Under dry run it reads
// nothing and returns the empty string.
func (b *Build) ReadFile(path string) (string, error) {
	if b.cfg.DryRun {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return string(data), nil
}

// CreateFile writes contents to a file, truncating any previous contents.
func (b *Build) CreateFile(path, contents string) error {
	if b.cfg.DryRun {
		return nil
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// CreateDir creates a directory and all missing parents.
func (b *Build) CreateDir(dir string) error {
	if b.cfg.DryRun {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
	}
	return nil
}

// RemoveDir deletes a directory subtree.
func (b *Build) RemoveDir(dir string) error {
	if b.cfg.DryRun {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "dir", dir)
	}
	return nil
}

// Remove deletes a single file, tolerating its absence.
func (b *Build) Remove(path string) error {
	if b.cfg.DryRun {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// ReadDir lists a directory. Unlike the mutating primitives it works
// under dry run too, returning an empty listing for missing directories.
func (b *Build) ReadDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if b.cfg.DryRun || os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
	}
	return entries, nil
}

// Replacement is one literal substring substitution.
type Replacement struct {
	From string
	To   string
}

// ReplaceInFile applies literal substring replacements to a file in
// order, rewriting it wholesale.
func (b *Build) ReplaceInFile(path string, replacements []Replacement) error {
	if b.cfg.DryRun {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	contents := string(data)
	for _, r := range replacements {
		contents = strings.ReplaceAll(contents, r.From, r.To)
	}
	if err := os.WriteFile(path, []byte(contents), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rewrite file"), "path", path)
	}
	return nil
}
