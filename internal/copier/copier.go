// Package copier copies bundled files and directory trees into a workspace.
//
// Both operations follow a "don't clobber user state" policy: when the
// destination already exists and force is off, nothing is written and the
// call reports that it skipped. With force on, conflicting files are
// overwritten. Files that exist only at the destination are never removed,
// so a forced copy adds and overwrites but does not prune.
package copier

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"spec-kit/internal/config"
	"spec-kit/internal/logger"
)

// ErrMissingSource is matched by every error reporting an absent source path.
// A missing source means the bundle is incomplete, not that the user did
// something wrong.
var ErrMissingSource = errors.New("source does not exist")

// MissingSourceError names the source path that could not be found.
type MissingSourceError struct {
	Kind string // "directory" or "file"
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("Source %s does not exist: %s", e.Kind, e.Path)
}

func (e *MissingSourceError) Is(target error) bool { return target == ErrMissingSource }

// Copier copies from an fs.FS source tree onto the local filesystem.
type Copier struct {
	Options config.Options
	Log     *logger.Logger
}

// New returns a Copier for the given options. A nil log discards output.
func New(opts config.Options, log *logger.Logger) *Copier {
	if log == nil {
		log = logger.Discard()
	}
	return &Copier{Options: opts, Log: log}
}

// CopyDirectory copies the tree at srcDir in src to dest. It returns false
// without touching anything when dest exists and force is off.
func (c *Copier) CopyDirectory(src fs.FS, srcDir, dest string) (bool, error) {
	info, err := fs.Stat(src, srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, &MissingSourceError{Kind: "directory", Path: srcDir}
		}
		return false, fmt.Errorf("failed to stat source %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("source %s is not a directory", srcDir)
	}

	if exists(dest) && !c.Options.Force {
		if c.Log.Verbose() {
			c.Log.Warn("⚠️  Directory already exists: %s", dest)
		}
		return false, nil
	}

	err = fs.WalkDir(src, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(relPath(srcDir, p)))

		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("mkdir failed: %w", err)
			}
		case d.Type().IsRegular():
			if err := c.writeFile(src, p, target); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not part of a template tree.
			c.Log.Debug("Skipping non-regular file: %s", p)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to copy %s to %s: %w", srcDir, dest, err)
	}

	c.Log.Debug("✅ Copied: %s", dest)
	return true, nil
}

// CopyFile copies a single file from src to dest, creating parent directories.
// Skip and overwrite rules match CopyDirectory.
func (c *Copier) CopyFile(src fs.FS, srcPath, dest string) (bool, error) {
	info, err := fs.Stat(src, srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, &MissingSourceError{Kind: "file", Path: srcPath}
		}
		return false, fmt.Errorf("failed to stat source %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("source %s is a directory", srcPath)
	}

	if exists(dest) && !c.Options.Force {
		if c.Log.Verbose() {
			c.Log.Warn("⚠️  File already exists: %s", dest)
		}
		return false, nil
	}

	if err := c.writeFile(src, srcPath, dest); err != nil {
		return false, fmt.Errorf("failed to copy %s to %s: %w", srcPath, dest, err)
	}

	c.Log.Debug("✅ Copied: %s", dest)
	return true, nil
}

// writeFile copies one file. The destination keeps the source's execute bits
// and is always at least 0644; embedded files all report 0444.
//
// The content is written to a temporary file next to dst and renamed over it,
// so a failed forced copy leaves the existing file untouched.
func (c *Copier) writeFile(src fs.FS, name, dst string) (err error) {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source failed: %w", err)
	}
	perm := info.Mode().Perm() | 0644

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}
	if fi, statErr := os.Stat(dst); statErr == nil && fi.IsDir() {
		return fmt.Errorf("cannot overwrite directory %s with a file", dst)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod failed: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close target failed: %w", err)
	}
	// Replacing the file also replaces a read-only copy and its mode.
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("replace target failed: %w", err)
	}
	return nil
}

// relPath returns p relative to root, both in fs.FS slash form.
func relPath(root, p string) string {
	if root == "." {
		return p
	}
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, root+"/")
}

// exists follows symlinks, so a dangling link at the destination counts as
// absent and is replaced.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
