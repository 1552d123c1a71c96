// Package main provides the honogen CLI entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution, interrupt cancels the run
//   - Error Semantics: Failed commands print an ERROR line and exit with status 1
//   - Performance Notes: Fast startup, templates are embedded in the binary
//
// Usage:
//
//	honogen [command] [flags]
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.eggybyte.com/honogen/internal/ui"
)

var (
	verbose      bool
	jsonOutput   bool
	dryRun       bool
	strict       bool
	projectRoot  string
	templatesDir string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "honogen",
	Short: "Hono module scaffolding tool",
	Long: `Scaffolding tool for Hono + TypeScript projects.

This tool provides commands for:
- Generating an entity module (controller, service, mapper, tables, schema)
- Initializing the application entry point and wiring file
- Inspecting the templates used for generation

Existing files are never overwritten. An optional honogen.yaml at the
project root supplies defaults for --base-dir, --templates-dir and --strict.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute runs the root command and exits with status 1 on failure.
//
// Concurrency:
//   - Single-threaded execution, cancelled on interrupt
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error("Command failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without touching the project")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail when any step is skipped")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", ".", "Project root directory")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Directory searched for *.template.md before the embedded templates, relative to --project-root")
}

// main is the entry point for the honogen CLI tool.
func main() {
	Execute()
}
