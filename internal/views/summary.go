package views

import (
	"github.com/DrCognito/StaticAnalysisSite/internal/assets"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
)

// SummaryPlot is one titled plot on the summary page
type SummaryPlot struct {
	Key   string
	Title string
	Plot  string
}

// Summary is the view model for /{team}/summary/
type Summary struct {
	Team  string
	Plots []SummaryPlot
}

// AssembleSummary collects the side-independent plots of a dataset
func AssembleSummary(team string, ds *metadata.Dataset) *Summary {
	items := []struct {
		key, title, path string
	}{
		{"draft_summary", "Draft Summary", ds.DraftSummary},
		{"hero_picks", "Hero Picks", ds.HeroPicks},
		{"pair_picks", "Pair Picks", ds.PairPicks},
		{"pick_context", "Pick Context", ds.PickContext},
		{"win_rate", "Win Rate", ds.WinRate},
		{"rune_control", "Rune Control", ds.RuneControl},
	}

	s := &Summary{Team: team, Plots: make([]SummaryPlot, len(items))}
	for i, it := range items {
		s.Plots[i] = SummaryPlot{Key: it.key, Title: it.title, Plot: assets.Normalize(it.path)}
	}
	return s
}
