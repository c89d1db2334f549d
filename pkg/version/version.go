// Package version exposes build-time version information for the ecofoot
// binary. The variables are overridden at release time via -ldflags.
package version

import "fmt"

// Build metadata, overridden by the release pipeline:
//
//	go build -ldflags "-X github.com/greensteps/ecofoot/pkg/version.Version=v1.2.3"
//
//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the short git commit hash of the build.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// GetVersion returns the semantic version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date attached.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
