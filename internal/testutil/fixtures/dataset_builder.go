package fixtures

import "fmt"

// DatasetBuilder provides a fluent API for building metadata dataset objects
// in the shape the plot pipeline writes them (Windows separators included).
type DatasetBuilder struct {
	team string
	data map[string]any
}

// NewDatasetBuilder creates a dataset with every required key populated
func NewDatasetBuilder(team string) *DatasetBuilder {
	p := func(name string) string {
		return fmt.Sprintf(`%s\%s.png`, team, name)
	}

	return &DatasetBuilder{
		team: team,
		data: map[string]any{
			"replays_dire":        []int64{100, 200},
			"replays_radiant":     []int64{50},
			"player_names":        []string{"p1", "p2", "p3", "p4", "p5"},
			"plot_dire_drafts":    p(`dire\drafts`),
			"plot_radiant_drafts": p(`radiant\drafts`),
			"plot_ward_names":     []string{"0-10 min", "10-20 min", "20-30 min"},
			"plot_ward_dire": []string{
				p(`dire\wards_t1`), p(`dire\wards_t2`), p(`dire\wards_t3`),
			},
			"plot_ward_radiant": []string{
				p(`radiant\wards_t1`), p(`radiant\wards_t2`), p(`radiant\wards_t3`),
			},
			"plot_pos_dire": []string{
				p(`dire\pos_1`), p(`dire\pos_2`), p(`dire\pos_3`), p(`dire\pos_4`), p(`dire\pos_5`),
			},
			"plot_pos_radiant": []string{
				p(`radiant\pos_1`), p(`radiant\pos_2`), p(`radiant\pos_3`), p(`radiant\pos_4`), p(`radiant\pos_5`),
			},
			"plot_smoke_dire":       p(`dire\smoke`),
			"plot_smoke_radiant":    p(`radiant\smoke`),
			"plot_scan_dire":        p(`dire\scan`),
			"plot_scan_radiant":     p(`radiant\scan`),
			"plot_draft_summary":    p("draft_summary"),
			"plot_hero_picks":       p("hero_picks"),
			"plot_pair_picks":       p("pair_picks"),
			"plot_pick_context":     p("pick_context"),
			"plot_win_rate":         p("win_rate"),
			"plot_rune_control":     p("rune_control"),
			"stat_win_rate_dire":    0.5,
			"stat_win_rate_radiant": 0.25,
		},
	}
}

// WithReplays sets both sides' replay lists
func (b *DatasetBuilder) WithReplays(dire, radiant []int64) *DatasetBuilder {
	b.data["replays_dire"] = dire
	b.data["replays_radiant"] = radiant
	return b
}

// WithWardNames sets the ordered ward plot names
func (b *DatasetBuilder) WithWardNames(names ...string) *DatasetBuilder {
	b.data["plot_ward_names"] = names
	return b
}

// WithWardPlots sets one side's ward plot paths
func (b *DatasetBuilder) WithWardPlots(side string, paths ...string) *DatasetBuilder {
	b.data["plot_ward_"+side] = paths
	return b
}

// WithPositions sets one side's positioning plot paths
func (b *DatasetBuilder) WithPositions(side string, paths ...string) *DatasetBuilder {
	b.data["plot_pos_"+side] = paths
	return b
}

// WithPlayers sets the player names
func (b *DatasetBuilder) WithPlayers(names ...string) *DatasetBuilder {
	b.data["player_names"] = names
	return b
}

// WithWinRates sets both sides' win rates
func (b *DatasetBuilder) WithWinRates(dire, radiant float64) *DatasetBuilder {
	b.data["stat_win_rate_dire"] = dire
	b.data["stat_win_rate_radiant"] = radiant
	return b
}

// Set overrides a single key
func (b *DatasetBuilder) Set(key string, value any) *DatasetBuilder {
	b.data[key] = value
	return b
}

// Without removes a key
func (b *DatasetBuilder) Without(key string) *DatasetBuilder {
	delete(b.data, key)
	return b
}

// Build returns the dataset object
func (b *DatasetBuilder) Build() map[string]any {
	out := make(map[string]any, len(b.data))
	for k, v := range b.data {
		out[k] = v
	}
	return out
}
