// Package naming derives the symbol and file names generated for an entity.
//
// Overview:
//   - Responsibility: Upper-initial and lower-initial forms of an entity name
//   - Key Types: Entity
//   - Concurrency Model: Pure functions, safe for concurrent use
//   - Error Semantics: NewEntity rejects names that cannot become file names
//
// Usage:
//
//	e, err := naming.NewEntity("project")
//	e.Pascal          // "Project"
//	e.ControllerFile() // "ProjectController.ts"
package naming

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go.eggybyte.com/honogen/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("nodotprefix", hasNoDotPrefix); err != nil {
		panic(err)
	}
	return v
}

// hasNoDotPrefix rejects ".", ".." and hidden names, which would resolve to a
// directory other than the entity's own when joined into a path.
func hasNoDotPrefix(fl validator.FieldLevel) bool {
	return !strings.HasPrefix(fl.Field().String(), ".")
}

// Pascal returns s with its first character upper-cased and the rest unchanged.
func Pascal(s string) string {
	return mapFirst(s, cases.Upper(language.Und))
}

// Camel returns s with its first character lower-cased and the rest unchanged.
func Camel(s string) string {
	return mapFirst(s, cases.Lower(language.Und))
}

// mapFirst takes a fresh Caser per call; Casers keep state between calls.
func mapFirst(s string, c cases.Caser) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return c.String(string(r)) + s[size:]
}

// Entity holds the two case forms of an entity name.
type Entity struct {
	Name   string `validate:"required,excludesall=/\\,nodotprefix"`
	Pascal string
	Camel  string
}

// NewEntity validates name and derives its case forms.
func NewEntity(name string) (Entity, error) {
	e := Entity{Name: name}
	if err := validate.Struct(e); err != nil {
		return Entity{}, errors.Wrapf(errors.CodeInvalidArgument, "entity", err,
			"invalid entity name %q: must be non-empty, must not start with a dot and must not contain path separators", name)
	}
	e.Pascal = Pascal(name)
	e.Camel = Camel(name)
	return e, nil
}

// ControllerFile is the generated controller file name.
func (e Entity) ControllerFile() string { return e.Pascal + "Controller.ts" }

// ServiceFile is the generated service file name.
func (e Entity) ServiceFile() string { return e.Pascal + "Service.ts" }

// MapperFile is the generated mapper file name.
func (e Entity) MapperFile() string { return e.Pascal + "Mapper.ts" }

// TableFile is the file name shared by the local and remote table definitions.
func (e Entity) TableFile() string { return e.Camel + "s.table.ts" }

// SchemaFile is the generated validation schema file name.
func (e Entity) SchemaFile() string { return e.Camel + ".schema.ts" }

// SchemaIdent is the exported schema constant, e.g. projectSchema.
func (e Entity) SchemaIdent() string { return e.Camel + "Schema" }

// VoType is the registry type alias, e.g. ProjectVo.
func (e Entity) VoType() string { return e.Pascal + "Vo" }

// String returns the Pascal form.
func (e Entity) String() string { return e.Pascal }

