package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"spec-kit/internal/bundle"
	"spec-kit/internal/config"
	"spec-kit/internal/logger"
)

// rootCmd is the base command for the CLI tool `spec-kit`.
// Without a subcommand it prints help and points at `spec-kit init`.
var rootCmd = &cobra.Command{
	Use:   "spec-kit",
	Short: "CLI tool to set up Kilocode or Clinerules for Spec-Driven Development workflows",
	// Errors are reported once by Execute, in the tool's own format.
	SilenceErrors: true,
	SilenceUsage:  true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return &invalidCommandError{args: args}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		logger.New(cmd.OutOrStdout(), false).Hint("\n💡 Start with \"spec-kit init\" for interactive setup.")
	},
}

// Execute loads the package metadata, runs the selected command and reports
// any error it returns. The caller exits non-zero when an error comes back.
func Execute() error {
	applyPackageInfo(config.LoadPackageInfo(bundle.Metadata()))

	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err, flags.verbose)
	}
	return err
}

// pkgInfo is the metadata the running binary reports about itself. Both
// `version` and --version print from it.
var pkgInfo = config.DefaultPackageInfo

func applyPackageInfo(info config.PackageInfo) {
	pkgInfo = info
	rootCmd.Version = info.Version
	if info.Description != "" {
		rootCmd.Short = info.Description
	}
	rootCmd.SetVersionTemplate(versionLine() + "\n")
}

func versionLine() string {
	return pkgInfo.Name + " " + pkgInfo.Version
}

func init() {
	rootCmd.AddCommand(kilocodeCmd)
	rootCmd.AddCommand(clinerulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// invalidCommandError is returned for an unrecognized subcommand.
type invalidCommandError struct {
	args []string
}

func (e *invalidCommandError) Error() string {
	return "Invalid command: " + strings.Join(e.args, " ")
}

// commandError prefixes a failure with what the command was trying to do.
type commandError struct {
	summary string
	err     error
}

func (e *commandError) Error() string { return e.summary + ": " + e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// reportError prints a short message for err. In verbose mode every wrapped
// cause is printed below it.
func reportError(w io.Writer, err error, verbose bool) {
	log := logger.New(w, verbose)

	var invalid *invalidCommandError
	if errors.As(err, &invalid) {
		log.Error("❌ %s", invalid.Error())
		log.Hint("💡 Run \"spec-kit --help\" to see available commands.")
		return
	}

	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		log.Error("❌ %s: %v", cmdErr.summary, cmdErr.err)
		err = cmdErr.err
	} else {
		log.Error("❌ %v", err)
	}

	if verbose {
		for _, cause := range errorChain(err) {
			log.Muted("    caused by: %s", cause)
		}
	}
}

// errorChain lists the messages of every error wrapped inside err.
func errorChain(err error) []string {
	var chain []string
	queue := unwrap(err)
	for len(queue) > 0 {
		next := queue[0]
		queue = append(queue[1:], unwrap(next)...)
		chain = append(chain, fmt.Sprint(next))
	}
	return chain
}

func unwrap(err error) []error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if inner := u.Unwrap(); inner != nil {
			return []error{inner}
		}
	case interface{ Unwrap() []error }:
		return u.Unwrap()
	}
	return nil
}
