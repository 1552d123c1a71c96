// Package configschema provides loading and validation of honogen.yaml.
//
// Overview:
//   - Responsibility: Parse the optional project config, fill defaults, validate
//   - Key Types: Config, Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Problems are collected as diagnostics, not returned as errors
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	config, diags := configschema.LoadOptional("honogen.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
package configschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the project root.
const FileName = "honogen.yaml"

// DefaultBaseDir is the base directory used when neither flag nor config sets one.
const DefaultBaseDir = "src"

// DefaultRegistryPath is the VO registry patched by the module generator.
const DefaultRegistryPath = "src/types/vo.types.ts"

// Config represents the honogen project configuration.
//
// Parameters:
//   - BaseDir: Directory holding the Hono sources, relative to the project root
//   - TemplatesDir: Optional directory whose *.template.md files override the embedded ones
//   - Strict: Treat skipped steps as failures
//   - RegistryPath: VO registry file relative to the project root
//
// Concurrency:
//   - Immutable after loading
type Config struct {
	BaseDir      string `yaml:"base_dir" validate:"required,relpath"`
	TemplatesDir string `yaml:"templates_dir"`
	Strict       bool   `yaml:"strict"`
	RegistryPath string `yaml:"registry_path" validate:"relpath"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{BaseDir: DefaultBaseDir, RegistryPath: DefaultRegistryPath}
}

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates a new diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Add adds a diagnostic to the collection.
//
// Parameters:
//   - severity: Diagnostic severity level
//   - message: Human-readable message
//   - path: Optional configuration path
//   - suggestion: Optional fix suggestion
func (d *Diagnostics) Add(severity DiagnosticSeverity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

// HasErrors returns true if there are any error-level diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns a copy of all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}

// Load reads and parses a honogen.yaml file.
//
// Parameters:
//   - path: Path to the configuration file
//
// Returns:
//   - *Config: Parsed configuration with defaults applied, nil on read or parse failure
//   - *Diagnostics: Validation diagnostics
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if err != nil {
		diags.AddError(fmt.Sprintf("failed to read config file: %v", err), path, "")
		return nil, diags
	}

	config := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		diags.AddError(fmt.Sprintf("failed to parse config file: %v", err), path,
			"valid keys are base_dir, templates_dir, strict and registry_path")
		return nil, diags
	}

	ApplyDefaults(config)
	Validate(config, diags)

	// templates_dir is relative to the config file.
	if config.TemplatesDir != "" && !filepath.IsAbs(config.TemplatesDir) {
		config.TemplatesDir = filepath.Join(filepath.Dir(path), config.TemplatesDir)
	}
	if config.TemplatesDir != "" {
		if info, err := os.Stat(config.TemplatesDir); err != nil || !info.IsDir() {
			diags.AddWarning(fmt.Sprintf("templates directory %s not found, embedded templates will be used", config.TemplatesDir),
				"templates_dir", "")
		}
	}
	return config, diags
}

// LoadOptional behaves like Load but returns Default() when path does not exist.
func LoadOptional(path string) (*Config, *Diagnostics) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), NewDiagnostics()
	}
	return Load(path)
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(config *Config) {
	if strings.TrimSpace(config.BaseDir) == "" {
		config.BaseDir = DefaultBaseDir
	}
	if strings.TrimSpace(config.RegistryPath) == "" {
		config.RegistryPath = DefaultRegistryPath
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	if err := v.RegisterValidation("relpath", isRelativeInside); err != nil {
		panic(err)
	}
	return v
}

// isRelativeInside accepts relative paths that stay inside the project root.
func isRelativeInside(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if p == "" {
		return true
	}
	if filepath.IsAbs(p) {
		return false
	}
	clean := filepath.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

// Validate checks config and records problems in diags.
func Validate(config *Config, diags *Diagnostics) {
	err := validate.Struct(config)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		diags.AddError(err.Error(), "", "")
		return
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "relpath":
			diags.AddError(fmt.Sprintf("%s must be a relative path inside the project root, got %q", fe.Field(), fe.Value()),
				fe.Field(), "use a path such as \"src\" or \"src/main/hono/src\"")
		default:
			diags.AddError(fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()), fe.Field(), "")
		}
	}
}

// ValidateBaseDir applies the base_dir rules to a value coming from the command line.
func ValidateBaseDir(dir string) error {
	diags := NewDiagnostics()
	Validate(&Config{BaseDir: dir}, diags)
	if diags.HasErrors() {
		return errors.New(diags.Items()[0].Message)
	}
	return nil
}
