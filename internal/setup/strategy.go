// Package setup copies a workflow variant's folders and config into a workspace.
package setup

import "slices"

// defaultFolders are copied, in order, by every workflow variant.
var defaultFolders = []string{"memory", "modes", "scripts", "templates"}

// ConfigArtifact is the one variant-specific file a setup installs.
// Path is slash separated and identical in the source tree and the workspace.
type ConfigArtifact struct {
	Path string

	// EnsureDir creates the artifact's parent directory even when the
	// source file is missing.
	EnsureDir bool
}

// Strategy describes one workflow variant. Both variants share the same
// setup algorithm and differ only in this data.
type Strategy struct {
	Name    string // subcommand name
	Title   string // display name
	Summary string // one line shown in the interactive chooser
	Folders []string
	Config  ConfigArtifact
	Hint    string // printed after a successful setup
}

var (
	Kilocode = Strategy{
		Name:    "kilocode",
		Title:   "Kilocode",
		Summary: "Custom modes for Kilocode workspace",
		Folders: slices.Clone(defaultFolders),
		Config:  ConfigArtifact{Path: ".kilocodemodes"},
		Hint:    "You can now use the custom modes in your Kilocode workspace.",
	}

	Clinerules = Strategy{
		Name:    "clinerules",
		Title:   "Clinerules",
		Summary: "Slash commands for Cline AI assistant",
		Folders: slices.Clone(defaultFolders),
		Config:  ConfigArtifact{Path: ".clinerules/spec-kit.md", EnsureDir: true},
		Hint:    "You can now use /specify, /plan, and /tasks commands with Cline.",
	}
)

// Strategies returns the supported variants in display order. Each call
// returns fresh copies that callers may modify.
func Strategies() []Strategy {
	return []Strategy{Kilocode.clone(), Clinerules.clone()}
}

func (s Strategy) clone() Strategy {
	s.Folders = slices.Clone(s.Folders)
	return s
}

// Lookup finds a variant by name.
func Lookup(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}
