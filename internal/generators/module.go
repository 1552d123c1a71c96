package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"go.eggybyte.com/honogen/internal/naming"
	"go.eggybyte.com/honogen/internal/projectfs"
	"go.eggybyte.com/honogen/internal/registry"
	"go.eggybyte.com/honogen/internal/templates"
	"go.eggybyte.com/honogen/internal/ui"
)

// ModuleGenerator generates the files of one entity module.
//
// Parameters:
//   - fs: Project file system
//   - loader: Template loader
//   - opts: Base directory, registry path and strict mode
//
// Concurrency:
//   - Not safe for concurrent runs against the same project
type ModuleGenerator struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	opts   Options
}

// NewModuleGenerator creates a new module generator.
//
// Parameters:
//   - fs: Project file system
//   - loader: Template loader
//   - opts: Generator options
//
// Returns:
//   - *ModuleGenerator: Module generator instance
func NewModuleGenerator(fs *projectfs.ProjectFS, loader *templates.Loader, opts ...Option) *ModuleGenerator {
	return &ModuleGenerator{
		fs:     fs,
		loader: loader,
		opts:   newOptions(opts),
	}
}

// Layout returns the path layout used by the generator.
func (g *ModuleGenerator) Layout() Layout {
	return Layout{BaseDir: g.opts.BaseDir}
}

// Directories lists the directories ensured for e, in creation order.
func (g *ModuleGenerator) Directories(e naming.Entity) []string {
	l := g.Layout()
	return []string{
		l.BaseDir,
		l.DomainDir(e),
		l.SchemaLocalDir(),
		l.SchemaRemoteDir(),
		VODir,
	}
}

// Tasks returns the six generation tasks for e.
func (g *ModuleGenerator) Tasks(e naming.Entity) []Task {
	l := g.Layout()
	domain := l.DomainDir(e)
	return []Task{
		{Template: "controller.template.md", Dir: domain, File: e.ControllerFile()},
		{Template: "service.template.md", Dir: domain, File: e.ServiceFile()},
		{Template: "mapper.template.md", Dir: domain, File: e.MapperFile()},
		{Template: "table.local.template.md", Dir: l.SchemaLocalDir(), File: e.TableFile()},
		{Template: "table.remote.template.md", Dir: l.SchemaRemoteDir(), File: e.TableFile()},
		{Template: "vo.schema.template.md", Dir: VODir, File: e.SchemaFile()},
	}
}

// Generate creates the module files for entityName and patches the registry.
//
// Parameters:
//   - ctx: Context for cancellation between tasks
//   - entityName: Entity name in any case, e.g. "project" or "Project"
//
// Returns:
//   - *Report: Per-task outcomes, registry result and follow-up steps
//   - error: Invalid entity name, file system failure, or strict-mode abort
func (g *ModuleGenerator) Generate(ctx context.Context, entityName string) (*Report, error) {
	e, err := naming.NewEntity(entityName)
	if err != nil {
		return nil, err
	}

	ui.Info("Generating module for entity: %s...", e.Pascal)

	if err := ensureDirectories(g.fs, g.Directories(e)); err != nil {
		return nil, err
	}

	results, err := runTasks(ctx, g.fs, g.loader, g.Tasks(e), func(code string) string {
		return templates.Render(code, e)
	})
	report := &Report{Results: results}
	if err != nil {
		return report, err
	}

	reg := registry.New(g.fs, g.opts.RegistryPath)
	ui.Debug("Patching VO registry: %s", reg.Path())
	patch, err := reg.Register(e)
	if err != nil {
		return report, err
	}
	report.Registry = &patch

	l := g.Layout()
	report.NextSteps = []string{
		fmt.Sprintf("Add '%s' to '%s' (if exists)", e.TableFile(), filepath.Join(l.SchemaLocalDir(), "index.ts")),
		fmt.Sprintf("Add controller to '%s' or 'honoApp.ts'", filepath.Join(l.BaseDir, "index.ts")),
	}

	if g.opts.Strict {
		return report, report.StrictErr()
	}
	return report, nil
}
