package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/ptwebhook/ptwebhook/internal/version.Version=v1.2.3 \
//	                   -X github.com/ptwebhook/ptwebhook/internal/version.Commit=abc123"
//
// Otherwise they are filled from the module build info, falling back to
// "dev" and "unknown".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// populateFromBuildInfo reads the module version (set by `go install
// module@version`) and VCS settings from Go's build info.
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified {
			Commit += "-dirty"
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is the User-Agent header sent to Discord
func UserAgent() string {
	return "ptwebhook/" + strings.TrimPrefix(Version, "v")
}
