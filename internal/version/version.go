// Package version provides build metadata for the honogen CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Read-only after link time, safe for concurrent use
//   - Error Semantics: No errors
//
// Usage:
//
//	go build -ldflags "-X go.eggybyte.com/honogen/internal/version.Version=v0.2.0" ./cmd/honogen
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version. Overridden with -ldflags at release time.
var Version = "v0.1.0-dev"

// Commit is the git commit hash.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// GetVersionString returns the version line in the format:
// honogen version v0.1.0 (commit 4a9b2c1, built 2026-10-01T12:10:00Z)
func GetVersionString() string {
	return fmt.Sprintf("honogen version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version line followed by the Go runtime.
//
// Returns:
//   - string: Multi-line version information
//
// Concurrency:
//   - Safe for concurrent use
func GetFullVersionInfo() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		GetVersionString(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
