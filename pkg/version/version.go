package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, overridden at build time via ldflags:
//
//	-X github.com/MacroPower/versync/pkg/version.Version=1.0.0
var (
	Version   = "0.0.0-dev"
	Revision  = ""
	BuildDate = "unknown"
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// GetVersionString returns the version with revision and build date.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Revision, BuildDate)
}
