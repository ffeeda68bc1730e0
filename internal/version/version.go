package version

import (
	"fmt"
	"runtime/debug"
)

// ModuleVersion returns the module version if the binary was built from
// a tagged module, otherwise a description of the git commit it was built
// from, or "unknown".
func ModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	version := info.Main.Version
	if version != "(devel)" && version != "" {
		return version
	}

	// The vcs.* settings are only present for "go build" in a git
	// checkout without explicit source files on the command line.
	m := make(map[string]string)
	for _, setting := range info.Settings {
		m[setting.Key] = setting.Value
	}
	revision, ok := m["vcs.revision"]
	if !ok {
		return "(devel)"
	}
	version = "git " + revision
	if t, ok := m["vcs.time"]; ok {
		version += " " + t
	}
	// Untracked files count as modifications too.
	if m["vcs.modified"] != "false" {
		version += " (with local changes)"
	}
	return version
}

func DisplayVersion(tool string) {
	fmt.Printf("%s (merkle-fixtures module) %s\n", tool, ModuleVersion())
}
