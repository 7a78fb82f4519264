package views

import (
	"net/url"
	"strings"
)

// NavEntry is one sidebar line. An empty Link renders as plain text.
type NavEntry struct {
	Label string
	Link  string
}

// Router names the site's page URLs
type Router interface {
	Index() string
	Team(team string) string
	Summary(team string) string
	Plot(team string, side Side, plot Plot) string
}

// reservedTeams are top-level path segments the site uses for itself
var reservedTeams = map[string]bool{
	"static": true,
}

// Reserved reports whether a team of this name would be shadowed by a site route
func Reserved(team string) bool {
	return reservedTeams[team]
}

// BuildNav returns the fixed sidebar for a team: back link, team link, a
// header and five plot links per side, a blank separator and the summary.
func BuildNav(team string, r Router) []NavEntry {
	nav := make([]NavEntry, 0, 4+len(Sides)*(1+len(Plots)))
	nav = append(nav,
		NavEntry{Label: "Back", Link: r.Index()},
		NavEntry{Label: team, Link: r.Team(team)},
	)
	for _, side := range Sides {
		nav = append(nav, NavEntry{Label: side.Title()})
		for _, plot := range Plots {
			nav = append(nav, NavEntry{Label: plot.Label(), Link: r.Plot(team, side, plot)})
		}
	}
	nav = append(nav,
		NavEntry{},
		NavEntry{Label: "Summary", Link: r.Summary(team)},
	)
	return nav
}

// Routes is the Router for a site mounted at a base URL
type Routes struct {
	base string
}

// NewRoutes creates a Router whose URLs start with baseURL
func NewRoutes(baseURL string) *Routes {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Routes{base: baseURL}
}

func (r *Routes) Index() string {
	return r.base
}

func (r *Routes) Team(team string) string {
	return r.base + url.PathEscape(team) + "/"
}

func (r *Routes) Summary(team string) string {
	return r.Team(team) + "summary/"
}

func (r *Routes) Plot(team string, side Side, plot Plot) string {
	return r.Team(team) + string(side) + "/" + string(plot) + ".html"
}

// WinRateChart returns the URL of the team's win-rate SVG
func (r *Routes) WinRateChart(team string) string {
	return r.Team(team) + "winrate.svg"
}

// Pages returns the site-relative paths of every page for team, the order
// used by the static export.
func (r *Routes) Pages(team string) []string {
	pages := []string{r.Team(team), r.Summary(team), r.WinRateChart(team)}
	for _, side := range Sides {
		for _, plot := range Plots {
			pages = append(pages, r.Plot(team, side, plot))
		}
	}
	return pages
}
