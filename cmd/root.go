// Package cmd contains all CLI commands for the schedkit binary.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monykiss/schedkit/cmd/ask"
	"github.com/monykiss/schedkit/cmd/chat"
	"github.com/monykiss/schedkit/cmd/completion"
	"github.com/monykiss/schedkit/cmd/schema"
	"github.com/monykiss/schedkit/cmd/summary"
	"github.com/monykiss/schedkit/cmd/version"
	cmdwatch "github.com/monykiss/schedkit/cmd/watch"
	"github.com/monykiss/schedkit/internal/config"
	"github.com/monykiss/schedkit/internal/output"
)

var (
	jsonOutput bool
	verbose    bool
	noColor    bool
)

// NewRootCommand creates and returns the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedkit",
		Short: "Supplier chatbot for materials-schedule workbooks",
		Long: `SchedKit — ask your schedule spreadsheet questions.

Normalizes multi-sheet materials-schedule workbooks whose column names vary
release to release, then answers supplier questions about dates, quantities,
and order numbers in plain language.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Config file defaults; explicit flags win.
			if cfg, err := config.Load(); err == nil {
				if !cfg.Output.Color {
					color.NoColor = true
				}
				flags := cmd.Root().PersistentFlags()
				if cfg.Output.Format == "json" && !flags.Changed("json") {
					_ = flags.Set("json", "true")
				}
			}
			if noColor {
				color.NoColor = true
			}
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	// Register subcommands
	rootCmd.AddCommand(ask.NewCommand())
	rootCmd.AddCommand(chat.NewCommand())
	rootCmd.AddCommand(summary.NewCommand())
	rootCmd.AddCommand(schema.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		output.WriteError("%s", err)
		os.Exit(output.ExitUserError)
	}
}
