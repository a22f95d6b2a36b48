package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X .../internal/version.Version=..." at release time.
var (
	Version = "dev"
	Commit  string
	Date    string
)

// Info describes the build in structured form.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Get returns the linked-in values, filling gaps from the embedded VCS stamp.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi == nil {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func (i Info) String() string {
	commit := coalesce(i.Commit, "unknown")
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("battle %s commit[%s] date[%s] %s",
		i.Version, commit, coalesce(i.Date, "unknown"), coalesce(i.GoVersion, "go?"))
}

// String returns a human-readable build string.
func String() string {
	return Get().String()
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
