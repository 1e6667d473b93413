// Package cmd implements the lumi CLI
package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/SirTony/lumi/cli/app"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // lumi version, set at compile time by ldflags
	commit  = ""    // lumi version's commit hash, set at compile time by ldflags
)

// BuildRootCmd builds and returns the root lumi CLI command
func BuildRootCmd() *cobra.Command {
	lumi := app.New(os.Stdout, os.Stderr, os.Stdin)

	rootCmd := &cobra.Command{
		Use:           "lumi",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "A small interactive shell with string interpolation",
		Long: heredoc.Doc(`

		A small interactive shell with string interpolation.

		Lumi reads a line at a time and composes child processes with pipes,
		sequencing and redirection. Quoted strings may embed whole shell
		expressions in braces, and $(...) substitutes a command's output
		into the surrounding expression.

		Unusually, '&' is the conditional operator (run the right side only
		if the left succeeded) and ';' always runs both sides. '>' writes
		stdout, '>>' writes stderr and '>>>' writes both to a file.
		`),
		Example: heredoc.Doc(`

		# Start an interactive session
		$ lumi

		# Evaluate one command and exit
		$ lumi -c 'echo hello > greeting.txt'

		# Classic prompt, keep the scrollback
		$ lumi --prompt linux --no-clear
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lumi.Run()
		},
	}

	// Attach the flags
	flags := rootCmd.Flags()
	flags.StringVarP(&lumi.Options.Command, "command", "c", "", "Evaluate a single command and exit.")
	flags.StringVar(&lumi.Options.Prompt, "prompt", "", "Prompt style, one of lumi, linux or windows.")
	flags.BoolVar(&lumi.Options.NoColor, "no-color", false, "Disable colour output.")
	flags.BoolVar(&lumi.Options.NoClear, "no-clear", false, "Do not clear the screen on startup.")
	flags.BoolVar(&lumi.Options.Verbose, "verbose", false, "Print debug information to stderr.")

	// Set our custom version and usage templates
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate(versionTemplate)

	return rootCmd
}
