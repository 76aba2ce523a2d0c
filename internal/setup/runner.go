package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"spec-kit/internal/config"
	"spec-kit/internal/copier"
	"spec-kit/internal/logger"
)

// Runner applies a Strategy to a validated target directory.
type Runner struct {
	Target  string // workspace root, already validated
	Source  fs.FS  // template tree to copy from
	Options config.Options
	Log     *logger.Logger

	// GOOS decides whether scripts are made executable. Defaults to runtime.GOOS.
	GOOS string
}

// NewRunner returns a Runner for the current platform.
func NewRunner(target string, source fs.FS, opts config.Options, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Discard()
	}
	return &Runner{Target: target, Source: source, Options: opts, Log: log, GOOS: runtime.GOOS}
}

// Run copies the strategy's folders and config artifact, then marks shell
// scripts executable. A missing source folder or config file only produces a
// warning; copy failures abort the remaining steps.
func (r *Runner) Run(s Strategy) error {
	r.Log.Step("📁 Copying folders and configuration for %s...", s.Title)

	c := copier.New(r.Options, r.Log)

	for _, folder := range s.Folders {
		if !isDir(r.Source, folder) {
			r.Log.Warn("⚠️  Source folder not found: %s", folder)
			continue
		}
		dest := filepath.Join(r.Target, folder)
		copied, err := c.CopyDirectory(r.Source, folder, dest)
		if err != nil {
			return err
		}
		if copied {
			r.Log.Info("✅ Copied folder: %s", r.display(dest))
		}
	}

	if err := r.copyConfig(c, s.Config); err != nil {
		return err
	}

	if r.goos() != "windows" {
		r.makeScriptsExecutable()
	}
	return nil
}

func (r *Runner) copyConfig(c *copier.Copier, artifact ConfigArtifact) error {
	dest := filepath.Join(r.Target, filepath.FromSlash(artifact.Path))

	if artifact.EnsureDir {
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", path.Dir(artifact.Path), err)
		}
	}

	if _, err := fs.Stat(r.Source, artifact.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.Log.Warn("⚠️  Source config not found: %s", artifact.Path)
			return nil
		}
		return fmt.Errorf("failed to stat source config %s: %w", artifact.Path, err)
	}

	copied, err := c.CopyFile(r.Source, artifact.Path, dest)
	if err != nil {
		return err
	}
	if copied {
		r.Log.Info("✅ Copied config: %s", r.display(dest))
	}
	return nil
}

// display shows p relative to the workspace root, which is the user's
// working directory.
func (r *Runner) display(p string) string {
	rel, err := filepath.Rel(r.Target, p)
	if err != nil {
		return p
	}
	return rel
}

func (r *Runner) goos() string {
	if r.GOOS == "" {
		return runtime.GOOS
	}
	return r.GOOS
}

func isDir(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}
