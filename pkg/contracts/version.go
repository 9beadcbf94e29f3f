package contracts

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is the analyzer release
const Version = "0.3.0"

// Commit and BuildTime are set with -ldflags "-X". When left empty the VCS
// stamp recorded by the go command is used instead.
var (
	Commit    = ""
	BuildTime = ""
)

// Build identifies the running analyzer binary
type Build struct {
	Version string
	Commit  string
	Time    string
	Dirty   bool
	Go      string
}

// CurrentBuild resolves the build identity of this binary
func CurrentBuild() Build {
	b := Build{Version: Version, Commit: Commit, Time: BuildTime, Go: runtime.Version()}
	if info, ok := debug.ReadBuildInfo(); ok {
		b = b.withSettings(info.Settings)
	}
	return b
}

func (b Build) withSettings(settings []debug.BuildSetting) Build {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Time == "" {
				b.Time = s.Value
			}
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	return b
}

// String renders the build as printed by -version
func (b Build) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "netflix-titles analyzer %s", b.Version)

	var details []string
	if b.Commit != "" {
		commit := b.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if b.Dirty {
			commit += "+dirty"
		}
		details = append(details, "commit "+commit)
	}
	if b.Time != "" {
		details = append(details, "built "+b.Time)
	}
	if b.Go != "" {
		details = append(details, b.Go)
	}
	if len(details) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(details, ", "))
	}
	return sb.String()
}
