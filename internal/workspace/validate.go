// Package workspace checks that a target directory can receive a setup.
package workspace

import (
	"errors"
	"fmt"
	"os"
)

// Each failed check wraps exactly one of these, so callers can tell the
// causes apart with errors.Is.
var (
	ErrNotExist     = errors.New("target directory does not exist")
	ErrNotDirectory = errors.New("target path is not a directory")
	ErrNotWritable  = errors.New("no write permission for directory")
)

// Error describes why a path was rejected as a setup target.
type Error struct {
	Path  string
	Cause error // one of the sentinels above
	Err   error // underlying OS error, if any
}

func (e *Error) Error() string {
	switch e.Cause {
	case ErrNotExist:
		return "Target directory does not exist: " + e.Path
	case ErrNotDirectory:
		return "Target path is not a directory: " + e.Path
	case ErrNotWritable:
		return "No write permission for directory: " + e.Path
	}
	return fmt.Sprintf("invalid workspace %s: %v", e.Path, e.Cause)
}

// Unwrap exposes both the sentinel and the OS error.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Cause}
	}
	return []error{e.Cause, e.Err}
}

// Validate confirms that dir exists, is a directory and is writable by the
// current process. It has no side effects on Unix.
func Validate(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Error{Path: dir, Cause: ErrNotExist, Err: err}
		}
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return &Error{Path: dir, Cause: ErrNotDirectory}
	}
	if err := checkWritable(dir); err != nil {
		return &Error{Path: dir, Cause: ErrNotWritable, Err: err}
	}
	return nil
}
