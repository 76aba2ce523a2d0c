package setup

import (
	"os"
	"path/filepath"
	"strings"
)

// scriptMode is rwxr-xr-x.
const scriptMode os.FileMode = 0755

// scriptExtensions are the file suffixes treated as shell scripts.
var scriptExtensions = []string{".sh", ".bash"}

// makeScriptsExecutable sets scriptMode on every shell script directly inside
// the workspace's scripts folder. Failures never abort the setup; they are
// reported in verbose mode only.
func (r *Runner) makeScriptsExecutable() {
	scriptsDir := filepath.Join(r.Target, "scripts")
	if _, err := os.Stat(scriptsDir); err != nil {
		return
	}

	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		r.Log.Debug("⚠️  Could not make scripts executable: %v", err)
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isScript(entry.Name()) {
			continue
		}
		p := filepath.Join(scriptsDir, entry.Name())
		if err := os.Chmod(p, scriptMode); err != nil {
			r.Log.Debug("⚠️  Could not make scripts executable: %v", err)
			return
		}
		r.Log.Debug("🔧 Made executable: %s", entry.Name())
	}
}

func isScript(name string) bool {
	for _, ext := range scriptExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
