package main

import (
	"os"

	"spec-kit/cmd"
)

// main delegates to cmd.Execute, which parses arguments, runs the selected
// setup command and prints any error. spec-kit copies the spec-driven
// development templates (memory/, modes/, scripts/, templates/) into the
// current directory together with either the Kilocode custom modes file or
// the Clinerules rules file.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
