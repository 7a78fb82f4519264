package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
	"github.com/DrCognito/StaticAnalysisSite/internal/views"
)

// TeamLink is one entry of the index page
type TeamLink struct {
	Name string
	Link string
}

// IndexData is the view model for the index page
type IndexData struct {
	Teams []TeamLink
}

// TeamData wraps the overview with links only the server knows
type TeamData struct {
	*views.Overview
	ChartURL string
	Selector []TeamLink
}

// IndexHandler lists every known team
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	teams := s.Teams()
	data := IndexData{Teams: make([]TeamLink, len(teams))}
	for i, t := range teams {
		data.Teams[i] = TeamLink{Name: t, Link: s.routes.Team(t)}
	}

	s.render(w, r, "index", pageData{Title: "Teams", Page: data})
}

// TeamHandler renders the team overview. ?dataset= selects a non-default
// dataset.
func (s *Server) TeamHandler(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)
	dataset := r.URL.Query().Get("dataset")

	ds, err := s.loader.Load(team, dataset)
	if err != nil {
		s.fail(w, r, err, logging.Team(team), logging.Dataset(dataset))
		return
	}
	if dataset == "" {
		dataset = s.loader.DefaultDataset()
	}

	var datasets []string
	if !s.config.Static {
		if datasets, err = s.loader.Datasets(team); err != nil {
			s.fail(w, r, err, logging.Team(team))
			return
		}
	}

	data := TeamData{
		Overview: views.AssembleOverview(team, dataset, datasets, ds),
		ChartURL: s.routes.WinRateChart(team),
	}
	if len(datasets) > 1 {
		for _, name := range datasets {
			data.Selector = append(data.Selector, TeamLink{
				Name: name,
				Link: s.routes.Team(team) + "?dataset=" + url.QueryEscape(name),
			})
		}
	}

	s.render(w, r, "team", pageData{
		Title: team,
		Nav:   views.BuildNav(team, s.routes),
		Page:  data,
	})
}

// SummaryHandler renders the side-independent summary plots
func (s *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)

	ds, err := s.loader.Load(team, "")
	if err != nil {
		s.fail(w, r, err, logging.Team(team))
		return
	}

	s.render(w, r, "summary", pageData{
		Title: team + " Summary",
		Nav:   views.BuildNav(team, s.routes),
		Page:  views.AssembleSummary(team, ds),
	})
}

// PlotHandler renders one side's plot category
func (s *Server) PlotHandler(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)

	side, err := views.ParseSide(chi.URLParam(r, "side"))
	if err != nil {
		s.fail(w, r, err, logging.Team(team))
		return
	}
	plot, err := views.ParsePlot(chi.URLParam(r, "plot"))
	if err != nil {
		s.fail(w, r, err, logging.Team(team))
		return
	}

	ds, err := s.loader.Load(team, "")
	if err != nil {
		s.fail(w, r, err, logging.Page(team, string(side), string(plot))...)
		return
	}

	page, err := views.AssemblePlot(team, ds, side, plot)
	if err != nil {
		s.fail(w, r, err, logging.Page(team, string(side), string(plot))...)
		return
	}

	s.render(w, r, string(plot), pageData{
		Title: page.Title(),
		Nav:   views.BuildNav(team, s.routes),
		Page:  page,
	})
}

// HealthHandler reports liveness
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// fail maps not-found errors to 404 and everything else to a logged 500
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, attrs ...any) {
	if errors.Is(err, metadata.ErrNotFound) {
		http.NotFound(w, r)
		return
	}

	attrs = append(attrs, logging.URL(r.URL.Path), logging.Err(err))
	logging.Error("Failed to load page data", attrs...)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// teamParam returns the unescaped team name from the URL
func teamParam(r *http.Request) string {
	raw := chi.URLParam(r, "team")
	if team, err := url.PathUnescape(raw); err == nil {
		return team
	}
	return raw
}
