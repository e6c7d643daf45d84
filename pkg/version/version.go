// Package version provides build metadata for depscope.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the current depscope version, set via ldflags.
	Version = "dev"

	// BuildTime is when the binary was built, set via ldflags.
	BuildTime = "unknown"

	// Commit is the git commit the binary was built from, set via ldflags.
	Commit = "unknown"
)

// Info returns version information as a formatted string.
func Info() string {
	commitID := Commit
	if len(commitID) > 8 {
		commitID = commitID[:8]
	}
	return fmt.Sprintf("depscope %s (%s) - %s %s/%s",
		Version, commitID, BuildTime, runtime.GOOS, runtime.GOARCH)
}
