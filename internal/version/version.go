// Package version reports the build version of plotsite.
package version

import (
	"os/exec"
	"runtime/debug"
	"strings"
)

// Version will be set during build time via ldflags, fallback to build info or Git
var Version = "dev"

// BuildTime will be set during build time via ldflags
var BuildTime = "unknown"

// GitCommit will be set during build time via ldflags
var GitCommit = "unknown"

// GetVersionInfo returns the version string
func GetVersionInfo() string {
	if Version != "dev" {
		return Version
	}
	if v := moduleVersion(); v != "" {
		return v
	}
	return getGitVersion()
}

// GetFullVersionInfo returns the version with build time and commit when known
func GetFullVersionInfo() string {
	version := GetVersionInfo()
	commit := GitCommit
	if commit == "unknown" {
		commit = vcsRevision()
	}

	switch {
	case BuildTime != "unknown" && commit != "unknown":
		return version + " (built " + BuildTime + ", commit " + commit + ")"
	case commit != "unknown":
		return version + " (commit " + commit + ")"
	default:
		return version
	}
}

// moduleVersion returns the main module version recorded by `go install`
func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return ""
	}
	return strings.TrimPrefix(v, "v")
}

// vcsRevision returns the short commit stamped into the binary by the Go toolchain
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
}

// getGitVersion attempts to get version from Git tags
func getGitVersion() string {
	cmd := exec.Command("git", "describe", "--tags", "--abbrev=0")
	if output, err := cmd.Output(); err == nil {
		if version := strings.TrimSpace(string(output)); version != "" {
			return strings.TrimPrefix(version, "v")
		}
	}

	cmd = exec.Command("git", "rev-parse", "--short", "HEAD")
	if output, err := cmd.Output(); err == nil {
		if commit := strings.TrimSpace(string(output)); commit != "" {
			return "dev-" + commit
		}
	}

	return "dev-unknown"
}
