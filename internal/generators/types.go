// Package generators provides the module generator and the project initializer.
//
// Overview:
//   - Responsibility: Turn fixed task tables into files and patch the VO registry
//   - Key Types: ModuleGenerator, ProjectInitializer, Task, Report
//   - Concurrency Model: Sequential generation, cancellation checked between tasks
//   - Error Semantics: Recoverable conditions are skipped with a warning and recorded
//     in the Report; file system errors abort the run
//   - Performance Notes: One read and at most one write per task
//
// Usage:
//
//	gen := generators.NewModuleGenerator(pfs, loader, generators.WithBaseDir("src"))
//	report, err := gen.Generate(ctx, "project")
package generators

import (
	"path/filepath"

	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/naming"
	"go.eggybyte.com/honogen/internal/registry"
)

// Fixed locations relative to the project root, independent of the base directory.
const (
	VODir        = "src/zod-schema"
	RegistryFile = registry.DefaultPath
)

// Layout computes generated paths for a base directory.
//
// Parameters:
//   - BaseDir: Hono source directory relative to the project root (default "src")
type Layout struct {
	BaseDir string
}

// DomainDir holds the controller, service and mapper of e.
func (l Layout) DomainDir(e naming.Entity) string {
	return filepath.Join(l.BaseDir, e.Camel)
}

// SchemaLocalDir holds the SQLite table definitions.
func (l Layout) SchemaLocalDir() string {
	return filepath.Join(l.BaseDir, "common", "db", "schema", "local")
}

// SchemaRemoteDir holds the Postgres table definitions.
func (l Layout) SchemaRemoteDir() string {
	return filepath.Join(l.BaseDir, "common", "db", "schema", "remote")
}

// Task is one template-to-file generation step.
//
// Parameters:
//   - Template: Template file name
//   - Dir: Destination directory relative to the project root
//   - File: Destination file name
type Task struct {
	Template string
	Dir      string
	File     string
}

// Dest returns the destination path relative to the project root.
func (t Task) Dest() string {
	return filepath.Join(t.Dir, t.File)
}

// Outcome is what happened to a task.
type Outcome string

const (
	OutcomeCreated         Outcome = "created"
	OutcomePlanned         Outcome = "planned"
	OutcomeExists          Outcome = "exists"
	OutcomeTemplateMissing Outcome = "template_missing"
	OutcomeEmptyTemplate   Outcome = "empty_template"
)

// Skipped reports whether the outcome left the destination untouched for a
// reason other than dry-run.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeExists, OutcomeTemplateMissing, OutcomeEmptyTemplate:
		return true
	default:
		return false
	}
}

// Result records the outcome of one task.
type Result struct {
	Task    Task
	Outcome Outcome
}

// Report summarizes a generator run.
type Report struct {
	Results   []Result
	Registry  *registry.PatchResult // nil for the project initializer
	NextSteps []string
}

// Count returns the number of tasks with outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Skipped returns the number of skipped tasks and registry patches.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Skipped() {
			n++
		}
	}
	if r.Registry != nil {
		n += r.Registry.Skipped()
	}
	return n
}

// StrictErr returns a CodeAborted error when anything was skipped.
func (r *Report) StrictErr() error {
	if n := r.Skipped(); n > 0 {
		return errors.Newf(errors.CodeAborted, "strict mode: %d step(s) skipped", n)
	}
	return nil
}

// Options configures generators.
type Options struct {
	BaseDir      string
	RegistryPath string
	Strict       bool
}

// Option configures generator behavior.
type Option func(*Options)

// WithBaseDir sets the Hono source directory. Empty keeps the default "src".
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.BaseDir = dir
		}
	}
}

// WithStrict makes Generate and Init fail when any step was skipped.
func WithStrict(enabled bool) Option {
	return func(o *Options) {
		o.Strict = enabled
	}
}

// WithRegistryPath overrides the registry file location.
func WithRegistryPath(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.RegistryPath = path
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		BaseDir:      "src",
		RegistryPath: RegistryFile,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
