package tui

import "fmt"

// Build metadata, overridden with
// -ldflags "-X github.com/akyairhashvil/taskgraph/internal/tui.GitCommit=..."
var (
	AppVersion = "0.1.0"
	GitCommit  = ""
	BuildTime  = ""
)

// VersionString is shown in the header and by -version.
func VersionString() string {
	if GitCommit == "" {
		return AppVersion
	}
	if BuildTime == "" {
		return fmt.Sprintf("%s (%s)", AppVersion, GitCommit)
	}
	return fmt.Sprintf("%s (%s, %s)", AppVersion, GitCommit, BuildTime)
}
