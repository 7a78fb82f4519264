// Package views shapes metadata datasets into the values page templates render.
package views

import (
	"fmt"

	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
)

var (
	ErrUnknownSide = fmt.Errorf("side %w", metadata.ErrNotFound)
	ErrUnknownPlot = fmt.Errorf("plot %w", metadata.ErrNotFound)
)

// Side is one of the two match sides
type Side string

const (
	Dire    Side = "dire"
	Radiant Side = "radiant"
)

// Sides lists every side in display order
var Sides = []Side{Dire, Radiant}

// ParseSide validates a side taken from a URL
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Dire, Radiant:
		return Side(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Title returns the upper-case heading used in navigation
func (s Side) Title() string {
	switch s {
	case Dire:
		return "DIRE"
	case Radiant:
		return "RADIANT"
	default:
		return string(s)
	}
}

// Plot is a per-side plot category
type Plot string

const (
	PlotDraft       Plot = "draft"
	PlotWards       Plot = "wards"
	PlotPositioning Plot = "positioning"
	PlotSmoke       Plot = "smoke"
	PlotScan        Plot = "scan"
)

// Plots lists every per-side category in navigation order
var Plots = []Plot{PlotDraft, PlotWards, PlotPositioning, PlotSmoke, PlotScan}

// ParsePlot validates a plot category taken from a URL
func ParsePlot(s string) (Plot, error) {
	for _, p := range Plots {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlot, s)
}

// Label returns the navigation label for the category
func (p Plot) Label() string {
	switch p {
	case PlotDraft:
		return "Drafts"
	case PlotWards:
		return "Wards"
	case PlotPositioning:
		return "Positioning"
	case PlotSmoke:
		return "Smokes"
	case PlotScan:
		return "Scans"
	default:
		return string(p)
	}
}

// anchor builds the in-page fragment for a side section, e.g. "#dire_scan"
func anchor(side Side, section string) string {
	return "#" + string(side) + "_" + section
}
