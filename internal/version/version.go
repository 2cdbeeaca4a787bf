// Package version reports rgen build information.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is set via ldflags during build.
var Version = "dev"

// ModelSchemaVersion is bumped when the JSON/YAML shape of the extracted
// route model changes. Consumers of `rgen inspect` can use it to detect
// incompatible dumps.
const ModelSchemaVersion = 1

// Info describes the running binary.
type Info struct {
	Version       string `json:"version"`
	ModelSchema   int    `json:"model_schema"`
	GoVersion     string `json:"go_version"`
	Revision      string `json:"revision,omitempty"`
	RevisionDirty bool   `json:"dirty,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetInfo returns version information, including VCS data when the binary
// was built from a checkout.
func GetInfo() Info {
	info := Info{
		Version:     Version,
		ModelSchema: ModelSchemaVersion,
		GoVersion:   runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				info.RevisionDirty = s.Value == "true"
			}
		}
	}
	return info
}

// String formats the info for `rgen --version`.
func (i Info) String() string {
	s := i.Version
	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		s += " (" + rev
		if i.RevisionDirty {
			s += "-dirty"
		}
		s += ")"
	}
	return s + " " + i.GoVersion
}
