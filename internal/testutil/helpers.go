package testutil

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/testutil/fixtures"
)

// PlotRoot is the plot directory used by in-memory fixtures
const PlotRoot = "/plots"

// MemFS returns an empty in-memory filesystem with PlotRoot created
func MemFS(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(PlotRoot, 0755); err != nil {
		t.Fatalf("Failed to create plot root: %v", err)
	}
	return fs
}

// WriteFile writes content to name, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()

	if err := fs.MkdirAll(path.Dir(name), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// WriteMetadata writes a meta_data.json document to dir
func WriteMetadata(t *testing.T, fs afero.Fs, dir string, doc map[string]any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal metadata: %v", err)
	}
	name := path.Join(dir, "meta_data.json")
	WriteFile(t, fs, name, string(data))
	return name
}

// WriteTeam writes a team directory under PlotRoot holding a single
// "default" dataset built from b
func WriteTeam(t *testing.T, fs afero.Fs, team string, b *fixtures.DatasetBuilder) string {
	t.Helper()

	return WriteMetadata(t, fs, path.Join(PlotRoot, team), map[string]any{
		"default": b.Build(),
	})
}
