package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/afero"
)

// router configures all HTTP routes. Pages live under the base URL; the
// health check always answers at the root.
func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.HealthHandler)

	if s.basePath == "" {
		s.pageRoutes(r)
		return r
	}

	r.Get("/", http.RedirectHandler(s.config.BaseURL, http.StatusFound).ServeHTTP)
	r.Route(s.basePath, s.pageRoutes)
	return r
}

// pageRoutes registers the site pages relative to the base URL
func (s *Server) pageRoutes(r chi.Router) {
	r.Get("/", s.IndexHandler)

	// Serve static files
	plots := s.Path("/static/plots/")
	r.Handle("/static/plots/*", http.StripPrefix(plots, http.FileServer(afero.NewHttpFs(s.plots))))
	r.Get("/static/*", s.StaticHandler)

	r.Route("/{team}", func(r chi.Router) {
		r.Get("/", s.TeamHandler)
		r.Get("/summary/", s.SummaryHandler)
		r.Get("/winrate.svg", s.WinRateChartHandler)
		r.Get("/{side}/{plot}.html", s.PlotHandler)
	})
}
