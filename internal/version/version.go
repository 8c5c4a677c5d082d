// Package version holds build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/itsmostafa/foldertree/internal/version.Version=v1.0.0"
package version

import "fmt"

// Build metadata reported by foldertree --version.
var (
	// Version is the release tag, "dev" for local builds
	Version = "dev"
	// Commit is the git revision the binary was built from
	Commit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
)

// String formats the build metadata for the version template.
func String() string {
	return fmt.Sprintf("foldertree %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
