package web

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/views"
)

// pageNames lists every page template under templates/
var pageNames = []string{
	"index",
	"team",
	"summary",
	string(views.PlotDraft),
	string(views.PlotWards),
	string(views.PlotPositioning),
	string(views.PlotSmoke),
	string(views.PlotScan),
}

// placeholder stands in for a missing replay or statistic
const placeholder = "—"

// pageData is handed to the "base" template of every page
type pageData struct {
	SiteTitle string
	Title     string
	Nav       []views.NavEntry
	Page      any
}

// loadTemplates parses each page together with the layout and partials
func (s *Server) loadTemplates() error {
	funcMap := template.FuncMap{
		"static": func(p string) (string, error) {
			return s.linker.URL("static", p)
		},
		"replay": func(id *int64) string {
			if id == nil {
				return placeholder
			}
			return strconv.FormatInt(*id, 10)
		},
		"percent": func(rate *float64) string {
			if rate == nil {
				return placeholder
			}
			return fmt.Sprintf("%.1f%%", *rate*100)
		},
		"count": func(n *int) string {
			if n == nil {
				return placeholder
			}
			return strconv.Itoa(*n)
		},
		"anchor": func(link string) string {
			return strings.TrimPrefix(link, "#")
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(TemplatesFS,
			"templates/base.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	return nil
}

// page wraps a parsed template as a templ component
func (s *Server) page(name string, data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, ok := s.templates[name]
		if !ok {
			return fmt.Errorf("template %s not loaded", name)
		}
		return tmpl.ExecuteTemplate(w, "base", data)
	})
}

// render writes a full page. Output is buffered, so a failing template
// produces a clean 500 rather than a truncated page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	data.SiteTitle = s.config.Title

	templ.Handler(s.page(name, data),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.Error("Template render failed",
					"template", name,
					logging.Err(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
