package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"go.eggybyte.com/honogen/internal/projectfs"
	"go.eggybyte.com/honogen/internal/templates"
	"go.eggybyte.com/honogen/internal/ui"
)

// ProjectInitializer writes the application entry point and wiring file.
type ProjectInitializer struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	opts   Options
}

// NewProjectInitializer creates a new project initializer.
func NewProjectInitializer(fs *projectfs.ProjectFS, loader *templates.Loader, opts ...Option) *ProjectInitializer {
	return &ProjectInitializer{
		fs:     fs,
		loader: loader,
		opts:   newOptions(opts),
	}
}

// Tasks returns the two initialization tasks.
func (p *ProjectInitializer) Tasks() []Task {
	return []Task{
		{Template: "main.template.md", Dir: p.opts.BaseDir, File: "main.ts"},
		{Template: "app.template.md", Dir: p.opts.BaseDir, File: "app.ts"},
	}
}

// Init creates the base directory and the two application files. Template code
// is written as-is, without placeholder substitution.
func (p *ProjectInitializer) Init(ctx context.Context) (*Report, error) {
	ui.Info("Initializing Hono project structure in '%s'...", p.opts.BaseDir)

	if err := ensureDirectories(p.fs, []string{p.opts.BaseDir}); err != nil {
		return nil, err
	}

	results, err := runTasks(ctx, p.fs, p.loader, p.Tasks(), func(code string) string {
		return code
	})
	report := &Report{Results: results}
	if err != nil {
		return report, err
	}

	report.NextSteps = []string{
		"Install dependencies: `npm install hono @hono/node-server`",
		fmt.Sprintf("Run server: `npx tsx %s`", filepath.Join(p.opts.BaseDir, "main.ts")),
	}

	if p.opts.Strict {
		return report, report.StrictErr()
	}
	return report, nil
}
