package metadata

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/testutil"
	"github.com/DrCognito/StaticAnalysisSite/internal/testutil/fixtures"
)

func TestBuildIndex(t *testing.T) {
	fs := testutil.MemFS(t)
	alpha := testutil.WriteTeam(t, fs, "Alpha", fixtures.NewDatasetBuilder("Alpha"))
	testutil.WriteTeam(t, fs, "Team Bravo", fixtures.NewDatasetBuilder("Team Bravo"))
	testutil.WriteFile(t, fs, "/plots/Charlie/notes.json", "{}")
	nested := testutil.WriteMetadata(t, fs, "/plots/league/Delta", map[string]any{"default": map[string]any{}})

	idx, err := BuildIndex(fs, testutil.PlotRoot, "meta_data.json")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}

	want := []string{"Alpha", "Delta", "Team Bravo"}
	if got := idx.Teams(); !reflect.DeepEqual(got, want) {
		t.Errorf("Teams() = %v, want %v", got, want)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}

	if p, ok := idx.Lookup("Alpha"); !ok || p != alpha {
		t.Errorf("Lookup(Alpha) = %q, %v; want %q", p, ok, alpha)
	}
	if p, ok := idx.Lookup("Delta"); !ok || p != nested {
		t.Errorf("Lookup(Delta) = %q, %v; want %q", p, ok, nested)
	}
	if _, ok := idx.Lookup("Charlie"); ok {
		t.Error("Charlie has no metadata file and should not be indexed")
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	fs := testutil.MemFS(t)

	idx, err := BuildIndex(fs, testutil.PlotRoot, "meta_data.json")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	if idx.Len() != 0 || len(idx.Teams()) != 0 {
		t.Errorf("expected empty index, got %v", idx.Teams())
	}
}

func TestBuildIndexMissingRoot(t *testing.T) {
	if _, err := BuildIndex(afero.NewMemMapFs(), "/nowhere", "meta_data.json"); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestBuildIndexDuplicateTeamLaterWins(t *testing.T) {
	fs := testutil.MemFS(t)
	testutil.WriteMetadata(t, fs, "/plots/a/Alpha", map[string]any{})
	later := testutil.WriteMetadata(t, fs, "/plots/b/Alpha", map[string]any{})

	idx, err := BuildIndex(fs, testutil.PlotRoot, "meta_data.json")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	if p, _ := idx.Lookup("Alpha"); p != later {
		t.Errorf("Lookup(Alpha) = %q, want %q", p, later)
	}
}

func TestTeamName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/plots/Alpha/meta_data.json", "Alpha"},
		{"plots/Team Liquid/meta_data.json", "Team Liquid"},
		{`C:\plots\OG\meta_data.json`, "OG"},
		{`plots\nested/Mixed\meta_data.json`, "Mixed"},
		{"meta_data.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := TeamName(tt.path); got != tt.want {
				t.Errorf("TeamName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
