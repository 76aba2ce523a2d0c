// Package bundle provides the source tree that setups copy from.
//
// By default this is the template tree compiled into the binary. A --source
// path can replace it with a directory on disk or a release archive.
package bundle

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"spec-kit/internal/copier"
)

// assetsFS holds memory/, modes/, scripts/, templates/ and the two workflow
// config files. The all: prefix keeps .kilocodemodes and .clinerules.
//
//go:embed all:assets
var assetsFS embed.FS

//go:embed package.yaml
var packageYAML []byte

// Metadata returns the raw package.yaml shipped with the binary.
func Metadata() []byte {
	return packageYAML
}

// Embedded returns the bundled template tree rooted at its top level.
func Embedded() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "assets" is valid.
		panic(err)
	}
	return sub
}

// Source is an opened template tree. Close releases any temporary files
// created while opening it.
type Source struct {
	FS          fs.FS
	Description string

	tmpDir string
}

// Close removes the extraction directory of an archive source.
func (s *Source) Close() error {
	if s.tmpDir == "" {
		return nil
	}
	return os.RemoveAll(s.tmpDir)
}

// Open resolves a --source value. An empty value selects the embedded tree,
// a directory is used as is, and a supported archive is extracted to a
// temporary directory first.
func Open(source string) (*Source, error) {
	if source == "" {
		return &Source{FS: Embedded(), Description: "bundled templates"}, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &copier.MissingSourceError{Kind: "path", Path: source}
		}
		return nil, fmt.Errorf("failed to stat source %s: %w", source, err)
	}
	if info.IsDir() {
		return &Source{FS: os.DirFS(source), Description: source}, nil
	}

	if !IsArchive(source) {
		return nil, fmt.Errorf("unsupported source %s: expected a directory or an archive (%s)",
			source, strings.Join(archiveExtensions, ", "))
	}

	tmp, err := os.MkdirTemp("", "spec-kit-source-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction directory: %w", err)
	}
	root, err := ExtractArchive(source, tmp)
	if err != nil {
		_ = os.RemoveAll(tmp)
		return nil, fmt.Errorf("failed to extract %s: %w", source, err)
	}
	return &Source{FS: os.DirFS(root), Description: source, tmpDir: tmp}, nil
}
