package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/habitflow-backend/internal/app.Version=1.0.0"
//
// Commit and BuildTime fall back to the VCS stamp the go command embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const unknown = "unknown"

// BuildVersion returns the version string shown in startup logs, the health
// endpoint and habitctl --version.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromVCS(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// fromVCS fills commit and built from vcs.* build settings when they were
// not set by ldflags. A dirty tree marks the revision with "+dirty".
func fromVCS(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, stamp string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if commit == unknown && revision != "" {
		commit = revision[:min(12, len(revision))]
		if dirty {
			commit += "+dirty"
		}
	}
	if built == unknown && stamp != "" {
		built = stamp
	}
	return commit, built
}
