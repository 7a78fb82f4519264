package views

import (
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
)

// SideSection holds every plot of one side for the overview page
type SideSection struct {
	Side        Side
	WinRate     *float64
	Matches     *int
	Draft       PlotLink
	Wards       Wards
	Positioning Positioning
	Smoke       PlotLink
	Scan        PlotLink
}

// Overview is the view model for /{team}/
type Overview struct {
	Team     string
	Dataset  string
	Datasets []string
	Replays  []ReplayPair
	Sides    []SideSection
}

// AssembleOverview builds the team page: paired replays plus every side's
// sections. datasets may be nil when no selector should be shown.
func AssembleOverview(team, dataset string, datasets []string, ds *metadata.Dataset) *Overview {
	ov := &Overview{
		Team:     team,
		Dataset:  dataset,
		Datasets: datasets,
		Replays:  PairReplays(ds.ReplaysDire, ds.ReplaysRadiant),
	}

	for _, side := range Sides {
		data, _ := ds.Side(string(side))
		ov.Sides = append(ov.Sides, SideSection{
			Side:        side,
			WinRate:     data.WinRate,
			Matches:     data.Matches,
			Draft:       Draft(side, data),
			Wards:       WardSection(side, ds.WardNames, data),
			Positioning: PositionSection(side, ds.PlayerNames, data),
			Smoke:       Smoke(side, data),
			Scan:        Scan(side, data),
		})
	}
	return ov
}
