package metadata

// Dataset is one analysis scope inside a team's metadata file
type Dataset struct {
	ReplaysDire    []int64  `json:"replays_dire"`
	ReplaysRadiant []int64  `json:"replays_radiant"`
	PlayerNames    []string `json:"player_names"`

	DraftsDire    string `json:"plot_dire_drafts"`
	DraftsRadiant string `json:"plot_radiant_drafts"`

	WardNames   []string `json:"plot_ward_names"`
	WardDire    []string `json:"plot_ward_dire"`
	WardRadiant []string `json:"plot_ward_radiant"`

	// Positioning slots are only produced for players with enough games.
	PositionDire    []string `json:"plot_pos_dire,omitempty"`
	PositionRadiant []string `json:"plot_pos_radiant,omitempty"`

	SmokeDire    string `json:"plot_smoke_dire"`
	SmokeRadiant string `json:"plot_smoke_radiant"`
	ScanDire     string `json:"plot_scan_dire"`
	ScanRadiant  string `json:"plot_scan_radiant"`

	DraftSummary string `json:"plot_draft_summary"`
	HeroPicks    string `json:"plot_hero_picks"`
	PairPicks    string `json:"plot_pair_picks"`
	PickContext  string `json:"plot_pick_context"`
	WinRate      string `json:"plot_win_rate"`
	RuneControl  string `json:"plot_rune_control"`

	WinRateDire    *float64 `json:"stat_win_rate_dire,omitempty"`
	WinRateRadiant *float64 `json:"stat_win_rate_radiant,omitempty"`
	MatchesDire    *int     `json:"stat_matches_dire,omitempty"`
	MatchesRadiant *int     `json:"stat_matches_radiant,omitempty"`
}

// SideData is the slice of a Dataset belonging to one side
type SideData struct {
	Replays   []int64
	Drafts    string
	Wards     []string
	Positions []string
	Smoke     string
	Scan      string
	WinRate   *float64
	Matches   *int
}

// Side returns the fields for "dire" or "radiant"
func (d *Dataset) Side(side string) (SideData, bool) {
	switch side {
	case "dire":
		return SideData{
			Replays:   d.ReplaysDire,
			Drafts:    d.DraftsDire,
			Wards:     d.WardDire,
			Positions: d.PositionDire,
			Smoke:     d.SmokeDire,
			Scan:      d.ScanDire,
			WinRate:   d.WinRateDire,
			Matches:   d.MatchesDire,
		}, true
	case "radiant":
		return SideData{
			Replays:   d.ReplaysRadiant,
			Drafts:    d.DraftsRadiant,
			Wards:     d.WardRadiant,
			Positions: d.PositionRadiant,
			Smoke:     d.SmokeRadiant,
			Scan:      d.ScanRadiant,
			WinRate:   d.WinRateRadiant,
			Matches:   d.MatchesRadiant,
		}, true
	default:
		return SideData{}, false
	}
}
