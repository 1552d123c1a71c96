package projectfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectory(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	require.NoError(t, pfs.EnsureDirectory("src/common/db/schema/local"))
	info, err := os.Stat(filepath.Join(root, "src/common/db/schema/local"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are not an error.
	require.NoError(t, pfs.EnsureDirectory("src/common/db/schema/local"))
}

func TestEnsureDirectoryOverFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), []byte("x"), 0644))

	err := NewProjectFS(root).EnsureDirectory("src")
	assert.Error(t, err)
}

func TestWriteFileIfNotExists(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	written, err := pfs.WriteFileIfNotExists("src/main.ts", "first", 0644)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = pfs.WriteFileIfNotExists("src/main.ts", "second", 0644)
	require.NoError(t, err)
	assert.False(t, written)

	content, err := pfs.ReadFile("src/main.ts")
	require.NoError(t, err)
	assert.Equal(t, "first", content)

	exists, err := pfs.FileExists("src/main.ts")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = pfs.FileExists("src/app.ts")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDryRun(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)
	pfs.SetDryRun(true)
	assert.True(t, pfs.DryRun())

	require.NoError(t, pfs.EnsureDirectory("src/project"))
	written, err := pfs.WriteFileIfNotExists("src/project/ProjectController.ts", "x", 0644)
	require.NoError(t, err)
	assert.True(t, written)

	_, err = os.Stat(filepath.Join(root, "src"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadFileMissing(t *testing.T) {
	_, err := NewProjectFS(t.TempDir()).ReadFile("src/types/vo.types.ts")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetAbsolutePath(t *testing.T) {
	pfs := NewProjectFS("/work/app")
	assert.Equal(t, "/work/app", pfs.GetRootDir())
	assert.Equal(t, filepath.Join("/work/app", "src", "main.ts"), pfs.GetAbsolutePath("src/main.ts"))
}
