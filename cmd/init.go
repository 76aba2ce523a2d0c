package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"spec-kit/internal/logger"
	"spec-kit/internal/prompt"
	"spec-kit/internal/setup"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive setup - choose between Kilocode or Clinerules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := os.Getwd()
		if err != nil {
			return &commandError{summary: "Setup failed", err: err}
		}
		return runInit(cmd.InOrStdin(), cmd.OutOrStdout(), target, flags)
	},
}

func init() {
	addSetupFlags(initCmd)
}

// runInit asks which variant to install, then installs it like the
// dedicated subcommand would.
func runInit(in io.Reader, out io.Writer, target string, f setupFlags) error {
	log := logger.New(out, f.verbose)
	log.Step("🎯 Welcome to Spec-Kit Interactive Setup!")
	log.Muted("This will help you set up Spec-Driven Development in your workspace.\n")

	var options []prompt.Option
	for _, s := range setup.Strategies() {
		options = append(options, prompt.Option{Value: s.Name, Label: describe(s)})
	}

	choice, err := prompt.Select(in, out, "Which setup would you like to use?", options)
	if err != nil {
		return &commandError{summary: "Setup failed", err: err}
	}
	s, ok := setup.Lookup(choice)
	if !ok {
		return &commandError{summary: "Setup failed", err: fmt.Errorf("unknown setup %q", choice)}
	}
	fmt.Fprintln(out)

	return install(log, target, s, f, "Setup failed")
}
