// Package registry patches the shared VO type registry (src/types/vo.types.ts).
//
// Overview:
//   - Responsibility: Add a schema import and a VO type alias per generated entity
//   - Key Types: Document (in-memory text), Registry (file-backed), PatchResult
//   - Concurrency Model: Read-modify-write without locking; last writer wins
//   - Error Semantics: A missing registry file is a skip, other I/O errors propagate
//
// Both patches are independent and idempotent: each is skipped when the file
// already contains it, and the file is rewritten only when one of them applied.
package registry

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.eggybyte.com/honogen/internal/naming"
	"go.eggybyte.com/honogen/internal/projectfs"
	"go.eggybyte.com/honogen/internal/ui"
)

// DefaultPath is the registry location relative to the project root.
const DefaultPath = "src/types/vo.types.ts"

var schemaImportPattern = regexp.MustCompile(`import type .*? from '@zod-schema/.*?';`)

// ImportStatement is the import line added for e.
func ImportStatement(e naming.Entity) string {
	return fmt.Sprintf("import type { %s } from '@zod-schema/%s.schema';", e.SchemaIdent(), e.Camel)
}

// TypeAliasDecl is the documented type alias appended for e.
func TypeAliasDecl(e naming.Entity) string {
	return fmt.Sprintf("/** %s VO. Same shape as %s. */\nexport type %s = z.infer<typeof %s>;",
		e.Pascal, e.SchemaIdent(), e.VoType(), e.SchemaIdent())
}

// Document is the registry file content being patched.
type Document struct {
	content string
}

// Parse wraps registry file content.
func Parse(content string) *Document {
	return &Document{content: content}
}

// String returns the current content.
func (d *Document) String() string {
	return d.content
}

// HasImport reports whether stmt already appears verbatim.
func (d *Document) HasImport(stmt string) bool {
	return strings.Contains(d.content, stmt)
}

// AddImport inserts stmt on its own line after the last @zod-schema type import,
// or at the top of the document when there is none. It returns false when stmt
// is already present.
func (d *Document) AddImport(stmt string) bool {
	if d.HasImport(stmt) {
		return false
	}

	matches := schemaImportPattern.FindAllStringIndex(d.content, -1)
	if len(matches) == 0 {
		d.content = stmt + "\n" + d.content
		return true
	}

	end := matches[len(matches)-1][1]
	d.content = d.content[:end] + "\n" + stmt + d.content[end:]
	return true
}

// HasTypeAlias reports whether an exported type named name is declared.
func (d *Document) HasTypeAlias(name string) bool {
	return regexp.MustCompile(`export type ` + regexp.QuoteMeta(name) + `\b`).MatchString(d.content)
}

// AddTypeAlias appends decl after a blank line unless a type named name is
// already exported. It returns false when nothing was appended.
func (d *Document) AddTypeAlias(name, decl string) bool {
	if d.HasTypeAlias(name) {
		return false
	}

	if !strings.HasSuffix(d.content, "\n") {
		d.content += "\n"
	}
	d.content += "\n" + decl + "\n"
	return true
}

// PatchResult describes what Register did to the registry file.
type PatchResult struct {
	Path        string
	Missing     bool // registry file absent, nothing attempted
	ImportAdded bool
	AliasAdded  bool
	Written     bool // false in dry-run mode or when nothing changed
}

// Skipped counts the patches that were not applied.
func (r PatchResult) Skipped() int {
	if r.Missing {
		return 2
	}
	n := 0
	if !r.ImportAdded {
		n++
	}
	if !r.AliasAdded {
		n++
	}
	return n
}

// Registry patches a registry file inside a project.
type Registry struct {
	fs   *projectfs.ProjectFS
	path string
}

// New returns a Registry for path, relative to the project root.
// An empty path selects DefaultPath.
func New(pfs *projectfs.ProjectFS, path string) *Registry {
	if path == "" {
		path = DefaultPath
	}
	return &Registry{fs: pfs, path: path}
}

// Path returns the registry path relative to the project root.
func (r *Registry) Path() string {
	return r.path
}

// Register adds the import and the type alias for e.
func (r *Registry) Register(e naming.Entity) (PatchResult, error) {
	result := PatchResult{Path: r.path}
	name := filepath.Base(r.path)

	exists, err := r.fs.FileExists(r.path)
	if err != nil {
		return result, err
	}
	if !exists {
		ui.Warning("%s not found. Skipping VO type update.", r.fs.GetAbsolutePath(r.path))
		result.Missing = true
		return result, nil
	}

	content, err := r.fs.ReadFile(r.path)
	if err != nil {
		return result, err
	}
	doc := Parse(content)

	if result.ImportAdded = doc.AddImport(ImportStatement(e)); !result.ImportAdded {
		ui.Warning("VO import already exists in %s", name)
	}
	if result.AliasAdded = doc.AddTypeAlias(e.VoType(), TypeAliasDecl(e)); !result.AliasAdded {
		ui.Warning("VO type definition already exists in %s", name)
	}

	if !result.ImportAdded && !result.AliasAdded {
		ui.Debug("No changes to %s", r.path)
		return result, nil
	}

	if r.fs.DryRun() {
		ui.Info("Would update: %s", r.path)
		return result, nil
	}

	if err := r.fs.WriteFile(r.path, doc.String(), 0644); err != nil {
		return result, err
	}
	result.Written = true
	ui.Success("Updated: %s", r.path)
	return result, nil
}
