package app

import "runtime/debug"

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/animal-rescue-backend/internal/app.Version=1.4.0"
//
// When Commit is not injected it falls back to the VCS revision recorded by
// the Go toolchain.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			if BuildTime == "unknown" {
				BuildTime = s.Value
			}
		}
	}
}

// BuildVersion returns the version string used in startup logs.
func BuildVersion() string {
	return Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
}
