package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.eggybyte.com/honogen/internal/configschema"
	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/generators"
	"go.eggybyte.com/honogen/internal/projectfs"
	"go.eggybyte.com/honogen/internal/templates"
	"go.eggybyte.com/honogen/internal/ui"
)

// settings is the resolved configuration of one command run.
type settings struct {
	config *configschema.Config
	fs     *projectfs.ProjectFS
	loader *templates.Loader
}

// generatorOptions converts the settings into generator options.
func (s *settings) generatorOptions() []generators.Option {
	return []generators.Option{
		generators.WithBaseDir(s.config.BaseDir),
		generators.WithStrict(s.config.Strict),
		generators.WithRegistryPath(s.config.RegistryPath),
	}
}

// loadConfig loads honogen.yaml from the project root, if present.
//
// Returns:
//   - *configschema.Config: Configuration with defaults applied
//   - *configschema.Diagnostics: Warnings and errors found while loading
func loadConfig() (*configschema.Config, *configschema.Diagnostics) {
	return configschema.LoadOptional(filepath.Join(projectRoot, configschema.FileName))
}

// loadSettings merges honogen.yaml with the flags explicitly set on cmd.
//
// Parameters:
//   - cmd: Command being executed
//   - baseDir: Value of the command's --base-dir flag
//
// Returns:
//   - *settings: Project file system, template loader and effective configuration
//   - error: Invalid configuration or flag value
func loadSettings(cmd *cobra.Command, baseDir string) (*settings, error) {
	config, diags := loadConfig()
	for _, diag := range diags.Items() {
		if diag.Severity == configschema.SeverityWarning {
			ui.Warning("%s: %s", diag.Path, diag.Message)
		}
	}
	if diags.HasErrors() {
		ui.Error("Configuration validation failed:")
		for _, diag := range diags.Items() {
			if diag.Severity == configschema.SeverityError {
				ui.Error("  %s: %s", diag.Path, diag.Message)
				if diag.Suggestion != "" {
					ui.Info("  Suggestion: %s", diag.Suggestion)
				}
			}
		}
		return nil, errors.New(errors.CodeInvalidArgument, "configuration validation failed")
	}

	flags := cmd.Flags()
	if flags.Changed("base-dir") {
		if err := configschema.ValidateBaseDir(baseDir); err != nil {
			return nil, errors.Wrap(errors.CodeInvalidArgument, "--base-dir", err)
		}
		config.BaseDir = baseDir
	}
	if flags.Changed("templates-dir") {
		config.TemplatesDir = resolveTemplatesDir(templatesDir)
	}
	if flags.Changed("strict") {
		config.Strict = strict
	}

	ui.Debug("Project root: %s", projectRoot)
	ui.Debug("Base directory: %s", config.BaseDir)

	pfs := projectfs.NewProjectFS(projectRoot)
	pfs.SetDryRun(dryRun)
	if dryRun {
		ui.Info("Dry run: no files will be written")
	}

	return &settings{
		config: config,
		fs:     pfs,
		loader: templates.NewLoader(templates.WithDir(config.TemplatesDir)),
	}, nil
}

// resolveTemplatesDir makes a relative --templates-dir relative to the project root.
func resolveTemplatesDir(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectRoot, dir)
}

// printNextSteps prints a numbered reminder list.
func printNextSteps(title string, steps []string) {
	if len(steps) == 0 {
		return
	}
	ui.Info("%s", title)
	for i, step := range steps {
		ui.Info("  %d. %s", i+1, step)
	}
}

// printSkipped reports how many steps were skipped when non-zero.
func printSkipped(report *generators.Report) {
	if n := report.Skipped(); n > 0 {
		ui.Warning("%d step(s) skipped", n)
	}
}
