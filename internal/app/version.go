package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden at link time, e.g.
// -ldflags "-X github.com/heartmarshall/lexicon-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary. Commit and build time fall
// back to the VCS stamp embedded by the Go toolchain.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, commit, built)
}
