// Package version holds build information for solbench.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/EmundoT/solbench/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version. Binaries built with `go install`
// carry no ldflags, so the module version from the build info is used.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String renders the --version output.
func String() string {
	return fmt.Sprintf("solbench %s\n  commit: %s\n  built:  %s", GetVersion(), Commit, Date)
}
