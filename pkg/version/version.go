// Package version holds build-time version information for the server binary.
package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build time via -ldflags.
var (
	// BinaryName is the name of the server binary
	BinaryName = "rancher-api-mcp-server"

	// Version is the semantic version of the build
	Version = "dev"

	// GitCommit is the git commit hash of the build
	GitCommit = "unknown"

	// BuildDate is the date the binary was built
	BuildDate = "unknown"

	// GoVersion is the Go runtime version used to build the binary
	GoVersion = runtime.Version()

	// Platform is the os/arch combination the binary was built for
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns a multi-line human-readable version report
func GetVersionInfo() string {
	return fmt.Sprintf(`%s
 Version:    %s
 Git commit: %s
 Built:      %s
 Go version: %s
 Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}
