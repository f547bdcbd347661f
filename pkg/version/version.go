// Package version provides build and version information for codecat.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of codecat.
// Set via ldflags at build time, or defaults to dev.
var Version = "dev"

// Build information set via ldflags at build time.
var (
	// Commit is the git commit hash.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// String returns a formatted version string with all build info.
func String() string {
	return fmt.Sprintf("codecat %s (commit: %s, built: %s, go: %s, %s/%s)",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version string.
func Short() string {
	return Version
}
