package views

import (
	"reflect"
	"testing"
)

func TestBuildNav(t *testing.T) {
	nav := BuildNav("Team Alpha", NewRoutes("/"))

	if len(nav) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(nav))
	}

	want := []NavEntry{
		{"Back", "/"},
		{"Team Alpha", "/Team%20Alpha/"},
		{"DIRE", ""},
		{"Drafts", "/Team%20Alpha/dire/draft.html"},
		{"Wards", "/Team%20Alpha/dire/wards.html"},
		{"Positioning", "/Team%20Alpha/dire/positioning.html"},
		{"Smokes", "/Team%20Alpha/dire/smoke.html"},
		{"Scans", "/Team%20Alpha/dire/scan.html"},
		{"RADIANT", ""},
		{"Drafts", "/Team%20Alpha/radiant/draft.html"},
		{"Wards", "/Team%20Alpha/radiant/wards.html"},
		{"Positioning", "/Team%20Alpha/radiant/positioning.html"},
		{"Smokes", "/Team%20Alpha/radiant/smoke.html"},
		{"Scans", "/Team%20Alpha/radiant/scan.html"},
		{"", ""},
		{"Summary", "/Team%20Alpha/summary/"},
	}
	if !reflect.DeepEqual(nav, want) {
		t.Errorf("BuildNav() =\n%+v\nwant\n%+v", nav, want)
	}
}

func TestBuildNavHeadersHaveNoLinks(t *testing.T) {
	for _, team := range []string{"A", "OG", "Team Spirit"} {
		nav := BuildNav(team, NewRoutes("/site/"))
		for _, i := range []int{2, 8, 14} {
			if nav[i].Link != "" {
				t.Errorf("%s: entry %d should have no link, got %q", team, i+1, nav[i].Link)
			}
		}
		if nav[14].Label != "" {
			t.Errorf("%s: separator has label %q", team, nav[14].Label)
		}
	}
}

func TestRoutesBaseURL(t *testing.T) {
	r := NewRoutes("/dota")

	if got := r.Index(); got != "/dota/" {
		t.Errorf("Index() = %q", got)
	}
	if got := r.Plot("OG", Radiant, PlotWards); got != "/dota/OG/radiant/wards.html" {
		t.Errorf("Plot() = %q", got)
	}
	if got := r.WinRateChart("OG"); got != "/dota/OG/winrate.svg" {
		t.Errorf("WinRateChart() = %q", got)
	}
	if got := len(r.Pages("OG")); got != 3+len(Sides)*len(Plots) {
		t.Errorf("Pages() returned %d pages", got)
	}
}

func TestReserved(t *testing.T) {
	for team, want := range map[string]bool{"static": true, "Static": false, "Alpha": false, "": false} {
		if got := Reserved(team); got != want {
			t.Errorf("Reserved(%q) = %v, want %v", team, got, want)
		}
	}
}
