package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"spec-kit/internal/logger"
	"spec-kit/internal/setup"
	"spec-kit/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the current setup status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := os.Getwd()
		if err != nil {
			return &commandError{summary: "Error checking status", err: err}
		}
		printStatus(cmd.OutOrStdout(), target)
		return nil
	},
}

// printStatus reports which workflow variants are configured in target.
func printStatus(out io.Writer, target string) {
	log := logger.New(out, false)
	log.Step("📊 Checking setup status...\n")

	statuses := setup.Probe(target)
	fmt.Fprintln(out, ui.StatusReport(statuses))

	if !setup.AnyConfigured(statuses) {
		log.Hint("\n💡 Run \"spec-kit init\" to set up Spec-Driven Development.")
	}
}
