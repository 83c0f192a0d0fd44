// Package version records build metadata stamped in at link time.
package version

import "fmt"

// Set via -ldflags "-X github.com/deeklead/scribe/internal/version.Version=...".
var (
	// Version is the release tag, "dev" for unstamped builds.
	Version = "dev"
	// Commit is the short git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("scribe %s (commit %s, built %s)", Version, Commit, Date)
}
