package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/samber/lo"
)

// Version information, overridden with -ldflags at release time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if i, ok := debug.ReadBuildInfo(); ok && Commit == "none" {
		if vcsv, ok := lo.Find(i.Settings, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		}); ok {
			Commit = vcsv.Value
		}
	}
}

func versionTemplate() string {
	return fmt.Sprintf("minigrep version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
