// Package web serves team analysis pages over HTTP.
package web

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/assets"
	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
	"github.com/DrCognito/StaticAnalysisSite/internal/views"
)

// Config controls presentation
type Config struct {
	Title   string
	BaseURL string

	// Static hides controls that need a live server, such as the dataset
	// selector, for pages rendered by the exporter.
	Static bool
}

// Server represents the web server
type Server struct {
	loader    *metadata.Loader
	linker    *assets.Linker
	routes    *views.Routes
	plots     afero.Fs
	config    Config
	basePath  string // BaseURL without its trailing slash; "" at the root
	templates map[string]*template.Template
	staticFS  fs.FS
	handler   http.Handler
}

// New creates a new web server reading datasets through loader
func New(loader *metadata.Loader, cfg Config) (*Server, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}
	if cfg.Title == "" {
		cfg.Title = "Dota 2 Team Analysis"
	}

	idx := loader.Index()
	server := &Server{
		loader:    loader,
		linker:    assets.NewLinker(cfg.BaseURL),
		routes:    views.NewRoutes(cfg.BaseURL),
		plots:     afero.NewReadOnlyFs(afero.NewBasePathFs(idx.Fs(), idx.Root())),
		config:    cfg,
		basePath:  strings.TrimSuffix(cfg.BaseURL, "/"),
		templates: make(map[string]*template.Template),
		staticFS:  StaticFS,
	}

	for _, team := range idx.Teams() {
		if views.Reserved(team) {
			path, _ := idx.Lookup(team)
			logging.Warn("Team name is reserved by the site and will not be served",
				logging.Team(team),
				logging.File(path))
		}
	}

	if err := server.loadTemplates(); err != nil {
		return nil, err
	}
	server.handler = server.router()
	return server, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Path returns the request path that serves page, a root-relative URL such
// as "/Alpha/", under the configured base URL
func (s *Server) Path(page string) string {
	return s.basePath + page
}

// Routes returns the URL naming used in rendered links
func (s *Server) Routes() *views.Routes {
	return s.routes
}

// Teams returns every team the server can render. Teams whose name collides
// with a site route are left out.
func (s *Server) Teams() []string {
	all := s.loader.Index().Teams()
	teams := make([]string, 0, len(all))
	for _, team := range all {
		if !views.Reserved(team) {
			teams = append(teams, team)
		}
	}
	return teams
}

// PlotFs returns the plot directory as a read-only filesystem
func (s *Server) PlotFs() afero.Fs {
	return s.plots
}

// StaticFiles lists the embedded static asset names, relative to /static/
func (s *Server) StaticFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(s.staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p[len("static/"):])
		}
		return nil
	})
	return files, err
}
