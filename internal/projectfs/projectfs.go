// Package projectfs provides project file system operations for scaffolding.
//
// Overview:
//   - Responsibility: Ensure directories, check existence, write-once file creation
//   - Key Types: ProjectFS rooted at the project directory
//   - Concurrency Model: Sequential file operations, no locking
//   - Error Semantics: File system errors are wrapped with the project-relative path
//   - Performance Notes: Idempotent operations, minimal file I/O
//
// Usage:
//
//	pfs := projectfs.NewProjectFS(".")
//	err := pfs.EnsureDirectory("src/project")
//	written, err := pfs.WriteFileIfNotExists("src/project/ProjectController.ts", content, 0644)
package projectfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.eggybyte.com/honogen/internal/ui"
)

// ProjectFS provides file system operations relative to a project root.
//
// Parameters:
//   - rootDir: Root directory for operations
//   - dryRun: Whether mutating operations are only reported
//
// Concurrency:
//   - Not synchronized; concurrent writers to the same path race
type ProjectFS struct {
	rootDir string
	dryRun  bool
}

// NewProjectFS creates a new project file system.
//
// Parameters:
//   - rootDir: Root directory for operations
//
// Returns:
//   - *ProjectFS: Project file system instance
func NewProjectFS(rootDir string) *ProjectFS {
	return &ProjectFS{
		rootDir: rootDir,
	}
}

// SetDryRun enables or disables dry-run mode. In dry-run mode directories are
// not created and files are not written; reads still hit the disk.
//
// Parameters:
//   - enabled: Whether to suppress writes
func (pfs *ProjectFS) SetDryRun(enabled bool) {
	pfs.dryRun = enabled
}

// DryRun reports whether dry-run mode is enabled.
func (pfs *ProjectFS) DryRun() bool {
	return pfs.dryRun
}

// GetRootDir returns the root directory.
func (pfs *ProjectFS) GetRootDir() string {
	return pfs.rootDir
}

// GetAbsolutePath returns the root-joined path for a relative path.
//
// Parameters:
//   - path: Path relative to root
//
// Returns:
//   - string: Joined path
func (pfs *ProjectFS) GetAbsolutePath(path string) string {
	return filepath.Join(pfs.rootDir, path)
}

// EnsureDirectory ensures a directory exists, creating it and its parents if necessary.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - error: File system error if any
//
// Performance:
//   - One stat, at most one MkdirAll
func (pfs *ProjectFS) EnsureDirectory(path string) error {
	fullPath := pfs.GetAbsolutePath(path)

	if info, err := os.Stat(fullPath); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("failed to ensure directory %s: %w", path, fs.ErrExist)
		}
		ui.Debug("Directory already exists: %s", path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat directory %s: %w", path, err)
	}

	if pfs.dryRun {
		ui.Debug("Would create directory: %s", path)
		return nil
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}

	ui.Debug("Created directory: %s", path)
	return nil
}

// FileExists checks if a file exists.
//
// Parameters:
//   - path: File path relative to root
//
// Returns:
//   - bool: True if file exists
//   - error: File system error other than "not exist"
func (pfs *ProjectFS) FileExists(path string) (bool, error) {
	_, err := os.Stat(pfs.GetAbsolutePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// ReadFile reads content from a file.
//
// Parameters:
//   - path: File path relative to root
//
// Returns:
//   - string: File content
//   - error: File system error if any
func (pfs *ProjectFS) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(pfs.GetAbsolutePath(path))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// WriteFile writes content to a file, creating parent directories.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - error: File system error if any
func (pfs *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	if pfs.dryRun {
		ui.Debug("Would write file: %s", path)
		return nil
	}

	fullPath := pfs.GetAbsolutePath(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	ui.Debug("Written file: %s", path)
	return nil
}

// WriteFileIfNotExists writes a file only if it doesn't exist.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - bool: True if the file was written (or would be, in dry-run mode)
//   - error: File system error if any
func (pfs *ProjectFS) WriteFileIfNotExists(path, content string, mode fs.FileMode) (bool, error) {
	exists, err := pfs.FileExists(path)
	if err != nil {
		return false, err
	}

	if exists {
		ui.Debug("File already exists, skipping: %s", path)
		return false, nil
	}

	if err := pfs.WriteFile(path, content, mode); err != nil {
		return false, err
	}

	return true, nil
}
