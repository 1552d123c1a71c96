package generators

import (
	"context"

	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/projectfs"
	"go.eggybyte.com/honogen/internal/templates"
	"go.eggybyte.com/honogen/internal/ui"
)

// ensureDirectories creates dirs in order, reporting each one.
func ensureDirectories(pfs *projectfs.ProjectFS, dirs []string) error {
	for _, d := range dirs {
		if err := pfs.EnsureDirectory(d); err != nil {
			return err
		}
		ui.Info("Verified directory: %s", pfs.GetAbsolutePath(d))
	}
	return nil
}

// runTasks executes tasks in order. A missing template, an existing destination
// or a template without a code block skips that task only. render turns the
// extracted code into file content.
func runTasks(ctx context.Context, pfs *projectfs.ProjectFS, loader *templates.Loader, tasks []Task, render func(string) string) ([]Result, error) {
	results := make([]Result, 0, len(tasks))

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		dest := task.Dest()
		ui.Step(i+1, len(tasks), "%s → %s", task.Template, dest)

		markdown, err := loader.LoadTemplate(task.Template)
		if errors.IsCode(err, errors.CodeNotFound) {
			ui.Error("Template not found: %s", task.Template)
			results = append(results, Result{Task: task, Outcome: OutcomeTemplateMissing})
			continue
		}
		if err != nil {
			return results, err
		}

		exists, err := pfs.FileExists(dest)
		if err != nil {
			return results, err
		}
		if exists {
			ui.Warning("File already exists, skipping: %s", pfs.GetAbsolutePath(dest))
			results = append(results, Result{Task: task, Outcome: OutcomeExists})
			continue
		}

		code := templates.ExtractCode(markdown, templates.Language)
		if code == "" {
			ui.Warning("No TypeScript code block found in: %s", task.Template)
			results = append(results, Result{Task: task, Outcome: OutcomeEmptyTemplate})
			continue
		}

		if _, err := pfs.WriteFileIfNotExists(dest, render(code), 0644); err != nil {
			return results, err
		}

		if pfs.DryRun() {
			ui.Info("Would create: %s", dest)
			results = append(results, Result{Task: task, Outcome: OutcomePlanned})
			continue
		}
		ui.Success("Created: %s", dest)
		results = append(results, Result{Task: task, Outcome: OutcomeCreated})
	}

	return results, nil
}
