package version

import (
	"fmt"
	"runtime"
)

var (
	VersionPrefix = "dev"     // Set via -ldflags
	VersionDate   = "edge"    // Set via -ldflags - Value should be: YYYYMMDD
	CommitHash    = "unknown" // Set via -ldflags
)

// Print returns the version string shown by `qakit --version`.
func Print() string {
	return fmt.Sprintf(`%s-%s-%s`, VersionPrefix, VersionDate, CommitHash)
}

// Detailed adds the Go toolchain and platform, for bug reports.
func Detailed() string {
	return fmt.Sprintf("qakit %s (%s, %s/%s)", Print(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
