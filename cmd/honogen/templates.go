package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.eggybyte.com/honogen/internal/ui"
)

// templatesCmd groups the template inspection commands.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect generation templates",
	Long: `Inspect the templates used by module and init.

Templates are looked up in --templates-dir (or templates_dir in honogen.yaml)
first, then in the templates embedded in the binary.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every template contains a typescript code block",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesValidate,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesValidateCmd)
}

// runTemplatesList prints the search locations and the template names.
func runTemplatesList(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}

	for _, loc := range s.loader.Locations() {
		ui.Debug("Template location: %s", loc)
	}

	names, err := s.loader.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	ui.Info("Available templates (%d):", len(names))
	for _, name := range names {
		ui.Info("  %s", name)
	}
	return nil
}

// runTemplatesValidate validates every available template.
func runTemplatesValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}

	if err := s.loader.ValidateAllTemplates(); err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}
	ui.Success("All templates are valid")
	return nil
}
