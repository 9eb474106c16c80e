// Package version reports the build version of gco.
package version

import (
	"runtime/debug"
	"strings"
)

const defaultModule = "github.com/Johannes-Berggren/gco"

// buildVersion is set via -ldflags "-X github.com/Johannes-Berggren/gco/internal/version.buildVersion=...".
var buildVersion = ""

// Current returns the ldflags version, the module version from build info,
// or a VCS pseudo version, in that order.
func Current() string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "v0.0.0-unknown"
	}
	return fromBuildInfo(info)
}

// Module returns the main module path from build info when available.
func Module() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			return path
		}
	}
	return defaultModule
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "v0.0.0-unknown"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + revision
	if dirty {
		v += "+dirty"
	}
	return v
}
