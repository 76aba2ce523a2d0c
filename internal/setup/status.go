package setup

import (
	"os"
	"path/filepath"
)

// Status reports whether a variant's config artifact is present in a workspace.
type Status struct {
	Strategy   Strategy
	Configured bool
}

// Probe checks each variant's config artifact under target. It only reads
// the filesystem.
func Probe(target string) []Status {
	var out []Status
	for _, s := range Strategies() {
		_, err := os.Stat(filepath.Join(target, filepath.FromSlash(s.Config.Path)))
		out = append(out, Status{Strategy: s, Configured: err == nil})
	}
	return out
}

// AnyConfigured reports whether at least one variant is set up.
func AnyConfigured(statuses []Status) bool {
	for _, st := range statuses {
		if st.Configured {
			return true
		}
	}
	return false
}
