package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"spec-kit/internal/bundle"
	"spec-kit/internal/config"
	"spec-kit/internal/logger"
	"spec-kit/internal/setup"
	"spec-kit/internal/workspace"
)

// setupFlags are shared by every command that performs a setup.
type setupFlags struct {
	force   bool
	verbose bool
	source  string
}

func (f setupFlags) options() config.Options {
	return config.Options{Force: f.force, Verbose: f.verbose}
}

// flags holds the values parsed for the command being run.
var flags setupFlags

var (
	kilocodeCmd   = newSetupCmd(setup.Kilocode, "Set up Kilocode custom modes for Spec-Driven Development")
	clinerulesCmd = newSetupCmd(setup.Clinerules, "Set up Clinerules for Spec-Driven Development")
)

func newSetupCmd(s setup.Strategy, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   s.Name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := os.Getwd()
			if err != nil {
				return &commandError{summary: "Error setting up " + s.Title, err: err}
			}
			return runSetup(cmd.OutOrStdout(), target, s, flags)
		},
	}
	addSetupFlags(c)
	return c
}

func addSetupFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files without confirmation")
	c.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show detailed output")
	c.Flags().StringVar(&flags.source, "source", "", "Template directory or archive to copy from instead of the bundled templates")
}

// runSetup installs one workflow variant into target.
func runSetup(out io.Writer, target string, s setup.Strategy, f setupFlags) error {
	log := logger.New(out, f.verbose)
	log.Step("🚀 Setting up %s for Spec-Driven Development...", s.Title)
	return install(log, target, s, f, "Error setting up "+s.Title)
}

// install validates the workspace, opens the template source and runs the
// strategy. Failures are wrapped with summary for reporting.
func install(log *logger.Logger, target string, s setup.Strategy, f setupFlags, summary string) error {
	if err := workspace.Validate(target); err != nil {
		return &commandError{summary: summary, err: err}
	}

	src, err := bundle.Open(f.source)
	if err != nil {
		return &commandError{summary: summary, err: err}
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Debug("Could not remove temporary files: %v", cerr)
		}
	}()
	log.Debug("Using templates from %s", src.Description)

	r := setup.NewRunner(target, src.FS, f.options(), log)
	if err := r.Run(s); err != nil {
		return &commandError{summary: summary, err: err}
	}

	log.Info("✅ %s setup completed successfully!", s.Title)
	log.Hint("💡 %s", s.Hint)
	return nil
}

// describe is the chooser label for a strategy.
func describe(s setup.Strategy) string {
	return fmt.Sprintf("%s - %s", s.Title, s.Summary)
}
