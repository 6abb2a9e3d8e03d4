// Package version holds build metadata, set at link time with
// -ldflags "-X floroz/pkg/version.Version=...".
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// String returns a one-line summary of the build.
func String() string {
	return fmt.Sprintf("floroz %s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
