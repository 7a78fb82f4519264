package views

import (
	"fmt"

	"github.com/DrCognito/StaticAnalysisSite/internal/assets"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
)

// MaxPositions is the number of positioning slots shown per side
const MaxPositions = 5

// PlotLink is a single plot with the anchor of its page section
type PlotLink struct {
	Link string
	Plot string
}

// WardPlot pairs a ward plot with its display name
type WardPlot struct {
	Name string
	Plot string
}

// Wards is the ward section of one side
type Wards struct {
	Link  string
	Plots []WardPlot
}

// PositionSlot is one player's positioning plot
type PositionSlot struct {
	Link   string
	Player string
	Plot   string
}

// Positioning is the positioning section of one side
type Positioning struct {
	Link    string
	Players []string
	Plots   []string
	Slots   []PositionSlot
}

// PlotPage is the view model for /{team}/{side}/{plot}.html. Exactly one of
// the section fields is set, matching Plot.
type PlotPage struct {
	Team string
	Side Side
	Plot Plot

	Draft       *PlotLink
	Wards       *Wards
	Positioning *Positioning
	Smoke       *PlotLink
	Scan        *PlotLink
}

// Title returns the page heading
func (p *PlotPage) Title() string {
	return fmt.Sprintf("%s %s %s", p.Team, p.Side.Title(), p.Plot.Label())
}

// AssemblePlot builds the view model for one side and plot category
func AssemblePlot(team string, ds *metadata.Dataset, side Side, plot Plot) (*PlotPage, error) {
	data, ok := ds.Side(string(side))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}

	page := &PlotPage{Team: team, Side: side, Plot: plot}
	switch plot {
	case PlotDraft:
		v := Draft(side, data)
		page.Draft = &v
	case PlotWards:
		v := WardSection(side, ds.WardNames, data)
		page.Wards = &v
	case PlotPositioning:
		v := PositionSection(side, ds.PlayerNames, data)
		page.Positioning = &v
	case PlotSmoke:
		v := Smoke(side, data)
		page.Smoke = &v
	case PlotScan:
		v := Scan(side, data)
		page.Scan = &v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlot, plot)
	}
	return page, nil
}

// Draft returns the side's draft plot
func Draft(side Side, data metadata.SideData) PlotLink {
	return PlotLink{Link: anchor(side, "drafts"), Plot: assets.Normalize(data.Drafts)}
}

// Smoke returns the side's smoke plot
func Smoke(side Side, data metadata.SideData) PlotLink {
	return PlotLink{Link: anchor(side, "smoke"), Plot: assets.Normalize(data.Smoke)}
}

// Scan returns the side's scan plot
func Scan(side Side, data metadata.SideData) PlotLink {
	return PlotLink{Link: anchor(side, "scan"), Plot: assets.Normalize(data.Scan)}
}

// WardSection pairs the side's ward plots with the dataset's ward names.
// Duplicate paths are dropped keeping the first occurrence, then names and
// paths are paired in order until either list runs out.
func WardSection(side Side, names []string, data metadata.SideData) Wards {
	paths := dedupe(data.Wards)

	n := len(paths)
	if len(names) < n {
		n = len(names)
	}

	plots := make([]WardPlot, n)
	for i := 0; i < n; i++ {
		plots[i] = WardPlot{Name: names[i], Plot: assets.Normalize(paths[i])}
	}
	return Wards{Link: anchor(side, "wards"), Plots: plots}
}

// PositionSection returns the player names and up to MaxPositions
// positioning plots. Slot N links to #<side>_posN.
func PositionSection(side Side, players []string, data metadata.SideData) Positioning {
	positions := data.Positions
	if len(positions) > MaxPositions {
		positions = positions[:MaxPositions]
	}

	plots := assets.NormalizeAll(positions)
	slots := make([]PositionSlot, len(plots))
	for i, p := range plots {
		slots[i] = PositionSlot{
			Link: anchor(side, fmt.Sprintf("pos%d", i+1)),
			Plot: p,
		}
		if i < len(players) {
			slots[i].Player = players[i]
		}
	}

	return Positioning{
		Link:    anchor(side, "pos1"),
		Players: append([]string(nil), players...),
		Plots:   plots,
		Slots:   slots,
	}
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
