package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/naming"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "no fence",
			markdown: "# Title\n\nJust prose.\n",
			want:     "",
		},
		{
			name:     "other language only",
			markdown: "```go\npackage main\n```\n",
			want:     "",
		},
		{
			name:     "single block",
			markdown: "# Controller\n\n```typescript\nconst a = 1;\n\nexport { a };\n```\n\ntrailing prose\n",
			want:     "const a = 1;\n\nexport { a };",
		},
		{
			name:     "first block wins",
			markdown: "```typescript\nfirst();\n```\n\n```typescript\nsecond();\n```\n",
			want:     "first();",
		},
		{
			name:     "inner indentation kept",
			markdown: "```typescript\n  indented();\n    deeper();\n```",
			want:     "indented();\n    deeper();",
		},
		{
			name:     "blank block",
			markdown: "```typescript\n\n```",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.markdown, Language))
		})
	}
}

func TestExtractCodeOtherLanguage(t *testing.T) {
	md := "```yaml\nkey: value\n```\n```typescript\nx();\n```"
	assert.Equal(t, "key: value", ExtractCode(md, "yaml"))
	assert.Equal(t, "x();", ExtractCode(md, Language))
}

func TestRender(t *testing.T) {
	e, err := naming.NewEntity("project")
	require.NoError(t, err)

	got := Render("export const __Entity__Service = __entity__Mapper; '__entity___no'", e)
	assert.Equal(t, "export const ProjectService = projectMapper; 'project_no'", got)
}

func TestEmbeddedTemplates(t *testing.T) {
	loader := NewLoader()

	names, err := loader.ListTemplates()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"app.template.md",
		"controller.template.md",
		"main.template.md",
		"mapper.template.md",
		"service.template.md",
		"table.local.template.md",
		"table.remote.template.md",
		"vo.schema.template.md",
	}, names)

	require.NoError(t, loader.ValidateAllTemplates())
	assert.Equal(t, []string{"embedded"}, loader.Locations())
}

func TestLoadTemplateNotFound(t *testing.T) {
	_, err := NewLoader().LoadTemplate("missing.template.md")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestWithDirOverrides(t *testing.T) {
	dir := t.TempDir()
	override := "# Custom\n\n```typescript\nexport const custom__Entity__ = 1;\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "controller.template.md"), []byte(override), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.template.md"), []byte("no code here"), 0o644))

	loader := NewLoader(WithDir(dir))

	got, err := loader.LoadTemplate("controller.template.md")
	require.NoError(t, err)
	assert.Equal(t, override, got)

	// Templates absent from the directory still come from the embedded set.
	svc, err := loader.LoadTemplate("service.template.md")
	require.NoError(t, err)
	assert.True(t, strings.Contains(svc, "__Entity__Service"))

	names, err := loader.ListTemplates()
	require.NoError(t, err)
	assert.Contains(t, names, "extra.template.md")
	assert.Len(t, names, 9)

	err = loader.ValidateAllTemplates()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
	assert.Equal(t, []string{dir, "embedded"}, loader.Locations())
}

func TestWithDirMissingDirectory(t *testing.T) {
	loader := NewLoader(WithDir(filepath.Join(t.TempDir(), "absent")))

	_, err := loader.LoadTemplate("app.template.md")
	require.NoError(t, err)
}

func TestEmbeddedTemplatesUsePlaceholders(t *testing.T) {
	loader := NewLoader()
	for _, name := range []string{
		"controller.template.md",
		"service.template.md",
		"mapper.template.md",
		"table.local.template.md",
		"table.remote.template.md",
		"vo.schema.template.md",
	} {
		md, err := loader.LoadTemplate(name)
		require.NoError(t, err, name)
		code := ExtractCode(md, Language)
		assert.Contains(t, code, PascalToken, name)
		assert.Contains(t, code, CamelToken, name)
	}
}
