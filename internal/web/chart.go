package web

import (
	"bytes"
	"net/http"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
)

var (
	direColor    = drawing.ColorFromHex("c23c2a")
	radiantColor = drawing.ColorFromHex("92a525")
)

// WinRateChartHandler renders the per-side win rate of the default dataset
// as an SVG bar chart. Sides without a recorded rate are drawn at zero.
func (s *Server) WinRateChartHandler(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)

	ds, err := s.loader.Load(team, "")
	if err != nil {
		s.fail(w, r, err, logging.Team(team))
		return
	}

	var buf bytes.Buffer
	if err := winRateChart(team, ds).Render(chart.SVG, &buf); err != nil {
		s.fail(w, r, err, logging.Team(team))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func winRateChart(team string, ds *metadata.Dataset) chart.BarChart {
	bar := func(label string, rate *float64, color drawing.Color) chart.Value {
		v := chart.Value{
			Label: label,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
		if rate != nil {
			v.Value = *rate
		} else {
			v.Label += " (n/a)"
		}
		return v
	}

	return chart.BarChart{
		Title:      team + " win rate",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      400,
		Height:     300,
		BarWidth:   80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: []chart.Value{
			bar("Dire", ds.WinRateDire, direColor),
			bar("Radiant", ds.WinRateRadiant, radiantColor),
		},
	}
}
