package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfoUsesLdflags(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "1.2.3"
	if got := GetVersionInfo(); got != "1.2.3" {
		t.Errorf("GetVersionInfo() = %q, want 1.2.3", got)
	}
}

func TestGetFullVersionInfo(t *testing.T) {
	prevV, prevB, prevC := Version, BuildTime, GitCommit
	t.Cleanup(func() { Version, BuildTime, GitCommit = prevV, prevB, prevC })

	Version, BuildTime, GitCommit = "1.2.3", "2026-01-02", "abc1234"
	if got := GetFullVersionInfo(); got != "1.2.3 (built 2026-01-02, commit abc1234)" {
		t.Errorf("GetFullVersionInfo() = %q", got)
	}

	BuildTime = "unknown"
	if got := GetFullVersionInfo(); got != "1.2.3 (commit abc1234)" {
		t.Errorf("GetFullVersionInfo() = %q", got)
	}
}

func TestDevVersionFallback(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "dev"
	if got := GetVersionInfo(); got == "" || got == "dev" {
		t.Errorf("dev build should resolve a fallback version, got %q", got)
	}
	if !strings.HasPrefix(GetFullVersionInfo(), GetVersionInfo()) {
		t.Error("full version should start with the short version")
	}
}
