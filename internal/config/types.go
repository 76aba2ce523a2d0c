package config

// Options controls how a setup run treats existing files and how much it prints.
// It is built once from the command line flags and never changed afterwards.
//   - Force: overwrite destination files instead of skipping existing ones.
//   - Verbose: print debug lines and full error chains.
type Options struct {
	Force   bool
	Verbose bool
}

// PackageInfo is the tool's own metadata, used for --version and help output.
type PackageInfo struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// DefaultPackageInfo is used whenever the bundled metadata cannot be read.
var DefaultPackageInfo = PackageInfo{
	Name:    "spec-kit",
	Version: "1.0.0",
}
