// Package templates provides template loading, code extraction and placeholder rendering.
//
// Overview:
//   - Responsibility: Load markdown templates and turn their code block into file content
//   - Key Types: Loader, Option
//   - Concurrency Model: Loader is immutable after construction
//   - Error Semantics: Missing templates return errors.CodeNotFound
//   - Performance Notes: Templates are read on demand, no caching
//
// Usage:
//
//	loader := templates.NewLoader(templates.WithDir(".agent/templates"))
//	md, err := loader.LoadTemplate("controller.template.md")
//	code := templates.ExtractCode(md, templates.Language)
//	content := templates.Render(code, entity)
package templates

import (
	"embed"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/naming"
	"go.eggybyte.com/honogen/internal/ui"
)

// Language is the fence tag of the code block extracted from every template.
const Language = "typescript"

// Extension is the file name suffix shared by all templates.
const Extension = ".template.md"

// Placeholder tokens replaced by Render.
const (
	PascalToken = "__Entity__"
	CamelToken  = "__entity__"
)

//go:embed templates/*.template.md
var embedded embed.FS

// Loader provides template loading from an ordered list of sources.
//
// Parameters:
//   - sources: File systems searched in order; the embedded set is always last
//   - names: Human-readable location of each source, used in messages
//
// Concurrency:
//   - Safe for concurrent use
type Loader struct {
	sources []fs.FS
	names   []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithDir searches dir before the embedded templates. An empty dir is ignored.
//
// Parameters:
//   - dir: Directory containing *.template.md files
//
// Returns:
//   - Option: Loader option
func WithDir(dir string) Option {
	return func(l *Loader) {
		if dir == "" {
			return
		}
		l.sources = append(l.sources, os.DirFS(dir))
		l.names = append(l.names, dir)
	}
}

// NewLoader creates a new template loader.
//
// Parameters:
//   - opts: Loader options, applied in order
//
// Returns:
//   - *Loader: Template loader instance
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}

	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	l.sources = append(l.sources, sub)
	l.names = append(l.names, "embedded")
	return l
}

// Locations returns the searched locations, highest priority first.
func (l *Loader) Locations() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// LoadTemplate loads a template document by name.
//
// Parameters:
//   - name: Template file name, e.g. "controller.template.md"
//
// Returns:
//   - string: Template content
//   - error: CodeNotFound when no source has the template, CodeInternal on read failures
//
// Concurrency:
//   - Safe for concurrent use
func (l *Loader) LoadTemplate(name string) (string, error) {
	for i, src := range l.sources {
		content, err := fs.ReadFile(src, name)
		if err == nil {
			ui.Debug("Loaded template %s from %s", name, l.names[i])
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(errors.CodeInternal, "load template", err, "read %s from %s", name, l.names[i])
		}
	}
	return "", errors.Newf(errors.CodeNotFound, "template %s not found in %s", name, strings.Join(l.names, ", "))
}

// ListTemplates lists the names of all available templates, sorted.
// A template present in several sources is listed once.
func (l *Loader) ListTemplates() ([]string, error) {
	seen := make(map[string]struct{})
	var names []string

	for i, src := range l.sources {
		matches, err := fs.Glob(src, "*"+Extension)
		if err != nil {
			return nil, errors.Wrapf(errors.CodeInternal, "list templates", err, "glob %s", l.names[i])
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			names = append(names, m)
		}
	}

	sort.Strings(names)
	return names, nil
}

// ValidateTemplate checks that a template exists and contains a code block.
func (l *Loader) ValidateTemplate(name string) error {
	content, err := l.LoadTemplate(name)
	if err != nil {
		return err
	}
	if ExtractCode(content, Language) == "" {
		return errors.Newf(errors.CodeInvalidArgument, "template %s has no %s code block", name, Language)
	}
	return nil
}

// ValidateAllTemplates validates every listed template and returns the first failure.
func (l *Loader) ValidateAllTemplates() error {
	names, err := l.ListTemplates()
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := l.ValidateTemplate(name); err != nil {
			return err
		}
		ui.Debug("Template validated: %s", name)
	}
	return nil
}

var fencePatterns = map[string]*regexp.Regexp{
	Language: fencePattern(Language),
}

func fencePattern(lang string) *regexp.Regexp {
	return regexp.MustCompile("(?s)```" + regexp.QuoteMeta(lang) + `\s+(.*?)\s+` + "```")
}

// ExtractCode returns the body of the first fenced block tagged lang, or "" if
// there is none. Whitespace between the fences and the body is dropped.
func ExtractCode(markdown, lang string) string {
	re, ok := fencePatterns[lang]
	if !ok {
		re = fencePattern(lang)
	}
	m := re.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return m[1]
}

// Render replaces the placeholder tokens with the entity's Pascal and camel forms.
func Render(code string, e naming.Entity) string {
	return strings.NewReplacer(PascalToken, e.Pascal, CamelToken, e.Camel).Replace(code)
}
