package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.eggybyte.com/honogen/internal/generators"
	"go.eggybyte.com/honogen/internal/ui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the Hono application files",
	Long: `Initialize the application entry point and wiring file.

This command creates:
- <base>/main.ts (Node server bootstrap)
- <base>/app.ts (Hono app with middleware and routes)

Existing files are left untouched.

Example:
  honogen init
  honogen init --base-dir src/main/hono/src`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initBaseDir string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initBaseDir, "base-dir", "src", "Hono source directory relative to the project root")
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, initBaseDir)
	if err != nil {
		return err
	}

	initializer := generators.NewProjectInitializer(s.fs, s.loader, s.generatorOptions()...)
	report, err := initializer.Init(cmd.Context())
	if report != nil {
		printSkipped(report)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	ui.Success("Project initialization complete!")
	printNextSteps("Next steps:", report.NextSteps)
	return nil
}
