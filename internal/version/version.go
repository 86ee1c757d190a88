// Package version reports build metadata stamped in via ldflags:
//
//	-X github.com/example/yms/internal/version.Commit=$(git rev-parse HEAD)
package version

import "fmt"

// Name is the binary name reported by --version.
const Name = "yms"

// Set at build time
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line; builds are identified by commit only.
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", Name, Short(), BuildTime)
}

// Short returns the abbreviated commit hash.
func Short() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
