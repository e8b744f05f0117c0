// Package version reports the running build's version and how it was
// installed.
package version

import "runtime/debug"

// Effective returns v when it was set at build time via ldflags, falling
// back to the Go build info.
func Effective(v string) string {
	info, ok := debug.ReadBuildInfo()
	return resolve(v, info, ok)
}

func resolve(v string, info *debug.BuildInfo, ok bool) string {
	if v != "" {
		return v
	}
	if !ok || info == nil {
		return "unknown"
	}

	// Check module version
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision == "" {
		return "devel"
	}
	ver := "devel+" + shortRevision(revision)
	if dirty {
		ver += "+dirty"
	}
	return ver
}

// shortRevision returns the first 12 chars of a revision.
func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
