package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/honogen/internal/errors"
	"go.eggybyte.com/honogen/internal/ui"
)

func resetFlags(cmd *cobra.Command) {
	for _, set := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
		set.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.SetVerbose(false)
		ui.SetJSONOutput(false)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestModuleCommand(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "module", "project", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Module generation complete!")
	assert.Contains(t, out, "Don't forget to:")
	assert.Contains(t, out, "projects.table.ts")

	for _, rel := range []string{
		"src/project/ProjectController.ts",
		"src/common/db/schema/remote/projects.table.ts",
		"src/zod-schema/project.schema.ts",
	} {
		_, err := os.Stat(filepath.Join(root, rel))
		assert.NoError(t, err, rel)
	}
}

func TestModuleCommandBaseDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "honogen.yaml"), []byte("base_dir: app/src\n"), 0644))

	_, _, err := run(t, "module", "order", "--project-root", root)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "app", "src", "order", "OrderController.ts"))
	assert.NoError(t, err)

	_, _, err = run(t, "module", "order", "--project-root", root, "--base-dir", "other")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "other", "order", "OrderService.ts"))
	assert.NoError(t, err)
}

func TestModuleCommandRejectsInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing entity", args: []string{"module"}},
		{name: "empty entity", args: []string{"module", ""}},
		{name: "escaping base dir", args: []string{"module", "project", "--base-dir", "../outside"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			_, _, err := run(t, append(tt.args, "--project-root", root)...)
			require.Error(t, err)

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestModuleCommandInvalidConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "honogen.yaml"), []byte("base_dir: /etc\n"), 0644))

	_, errOut, err := run(t, "module", "project", "--project-root", root)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
	assert.Contains(t, errOut, "Configuration validation failed")
}

func TestModuleCommandStrictRerun(t *testing.T) {
	root := t.TempDir()

	_, _, err := run(t, "module", "project", "--project-root", root)
	require.NoError(t, err)

	out, _, err := run(t, "module", "project", "--project-root", root, "--strict")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeAborted))
	assert.Contains(t, out, "File already exists, skipping")
}

func TestRerunWarnsForEveryArtifact(t *testing.T) {
	root := t.TempDir()
	registry := filepath.Join(root, "src", "types", "vo.types.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(registry), 0755))
	require.NoError(t, os.WriteFile(registry, []byte("import { z } from 'zod';\n"), 0644))

	_, _, err := run(t, "module", "project", "--project-root", root)
	require.NoError(t, err)

	out, _, err := run(t, "module", "project", "--project-root", root)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "File already exists, skipping"))
	assert.Equal(t, 1, strings.Count(out, "VO import already exists in vo.types.ts"))
	assert.Equal(t, 1, strings.Count(out, "VO type definition already exists in vo.types.ts"))
	assert.Equal(t, 8, strings.Count(out, "already exists"))

	_, _, err = run(t, "init", "--project-root", root)
	require.NoError(t, err)

	out, _, err = run(t, "init", "--project-root", root)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "File already exists, skipping"))
}

func TestTemplatesDirRelativeToProjectRoot(t *testing.T) {
	root := t.TempDir()
	overrides := filepath.Join(root, "tpl")
	require.NoError(t, os.Mkdir(overrides, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(overrides, "broken.template.md"), []byte("# no code\n"), 0644))

	_, _, err := run(t, "templates", "validate", "--project-root", root, "--templates-dir", "tpl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.template.md")
}

func TestModuleCommandRegistryPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "honogen.yaml"), []byte("registry_path: types/vo.ts\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "types"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "types", "vo.ts"), []byte(""), 0644))

	_, _, err := run(t, "module", "order", "--project-root", root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "types", "vo.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export type OrderVo = z.infer<typeof orderSchema>;")
}

func TestModuleCommandDryRun(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "module", "project", "--project-root", root, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would create")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "init", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Project initialization complete!")
	assert.Contains(t, out, "npm install hono @hono/node-server")

	for _, name := range []string{"main.ts", "app.ts"} {
		_, err := os.Stat(filepath.Join(root, "src", name))
		assert.NoError(t, err, name)
	}
}

func TestTemplatesCommands(t *testing.T) {
	out, _, err := run(t, "templates", "list", "--project-root", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "controller.template.md")
	assert.Contains(t, out, "vo.schema.template.md")

	overrides := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(overrides, "broken.template.md"), []byte("# no code\n"), 0644))

	_, _, err = run(t, "templates", "validate", "--project-root", t.TempDir())
	require.NoError(t, err)

	_, _, err = run(t, "templates", "validate", "--project-root", t.TempDir(), "--templates-dir", overrides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.template.md")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "honogen version")
}
