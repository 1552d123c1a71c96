package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.eggybyte.com/honogen/internal/generators"
	"go.eggybyte.com/honogen/internal/ui"
)

// moduleCmd represents the module command.
var moduleCmd = &cobra.Command{
	Use:   "module <entity>",
	Short: "Generate a Hono module for an entity",
	Long: `Generate the boilerplate of one entity module.

This command creates, relative to the project root:
- <base>/<entity>/<Entity>Controller.ts, <Entity>Service.ts, <Entity>Mapper.ts
- <base>/common/db/schema/local/<entity>s.table.ts (SQLite)
- <base>/common/db/schema/remote/<entity>s.table.ts (Postgres)
- src/zod-schema/<entity>.schema.ts

and registers the <Entity>Vo type in src/types/vo.types.ts when that file exists.
Existing files are left untouched.

Example:
  honogen module project
  honogen module Order --base-dir src/main/hono/src`,
	Args: cobra.ExactArgs(1),
	RunE: runModule,
}

var moduleBaseDir string

func init() {
	rootCmd.AddCommand(moduleCmd)

	moduleCmd.Flags().StringVar(&moduleBaseDir, "base-dir", "src", "Hono source directory relative to the project root")
}

// runModule executes the module command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Entity name
//
// Returns:
//   - error: Invalid entity name or configuration, file system failure, strict-mode abort
func runModule(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, moduleBaseDir)
	if err != nil {
		return err
	}

	gen := generators.NewModuleGenerator(s.fs, s.loader, s.generatorOptions()...)
	report, err := gen.Generate(cmd.Context(), args[0])
	if report != nil {
		printSkipped(report)
	}
	if err != nil {
		return fmt.Errorf("failed to generate module: %w", err)
	}

	ui.Success("Module generation complete!")
	printNextSteps("Don't forget to:", report.NextSteps)
	return nil
}
