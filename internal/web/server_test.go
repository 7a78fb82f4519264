package web

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/metadata"
	"github.com/DrCognito/StaticAnalysisSite/internal/testutil"
	"github.com/DrCognito/StaticAnalysisSite/internal/testutil/fixtures"
)

func newTestServer(t *testing.T, cfg Config, setup func(fs afero.Fs)) *Server {
	t.Helper()

	fs := testutil.MemFS(t)
	testutil.WriteTeam(t, fs, "Alpha", fixtures.NewDatasetBuilder("Alpha"))
	testutil.WriteTeam(t, fs, "Team Bravo", fixtures.NewDatasetBuilder("Team Bravo"))
	testutil.WriteFile(t, fs, "/plots/Alpha/dire/scan.png", "PNG")
	if setup != nil {
		setup(fs)
	}

	idx, err := metadata.BuildIndex(fs, testutil.PlotRoot, "meta_data.json")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	loader, err := metadata.NewLoader(idx, "default")
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	s, err := New(loader, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexHandler(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`href="/Alpha/"`, `href="/Team%20Bravo/"`, "Team Bravo", "Dota 2 Team Analysis"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestTeamHandlerPairsReplays(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/Alpha/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()

	first := strings.Index(body, `<td class="replay">200</td><td class="replay">50</td>`)
	second := strings.Index(body, `<td class="replay">100</td><td class="replay">—</td>`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("replay rows wrong or out of order (first=%d second=%d)", first, second)
	}

	for _, want := range []string{
		`id="dire_drafts"`,
		`id="radiant_scan"`,
		`id="dire_pos5"`,
		`href="/Alpha/dire/scan.html"`,
		`href="/Alpha/summary/"`,
		`src="/Alpha/winrate.svg"`,
		"50.0%",
		"25.0%",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("team page missing %q", want)
		}
	}
	if strings.Contains(body, "?dataset=") {
		t.Error("single-dataset team should not show a selector")
	}
}

func TestTeamHandlerDatasetSelector(t *testing.T) {
	setup := func(fs afero.Fs) {
		testutil.WriteMetadata(t, fs, "/plots/Charlie", map[string]any{
			"default":  fixtures.NewDatasetBuilder("Charlie").Build(),
			"playoffs": fixtures.NewDatasetBuilder("Charlie").WithReplays([]int64{999}, []int64{}).Build(),
		})
	}

	live := newTestServer(t, Config{}, setup)
	rec := get(t, live, "/Charlie/?dataset=playoffs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<td class="replay">999</td>`) {
		t.Error("playoffs dataset not rendered")
	}
	if !strings.Contains(body, "?dataset=default") {
		t.Error("selector missing")
	}

	static := newTestServer(t, Config{Static: true}, setup)
	if body := get(t, static, "/Charlie/").Body.String(); strings.Contains(body, "?dataset=") {
		t.Error("static pages must not link to query-string datasets")
	}
}

func TestPlotHandler(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/Alpha/dire/scan.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `src="/static/plots/Alpha/dire/scan.png"`) {
		t.Error("scan page missing normalized plot link")
	}
	if strings.Count(body, "<img ") != 1 {
		t.Errorf("scan page should have exactly one plot, got %d", strings.Count(body, "<img "))
	}
	if !strings.Contains(body, `<li class="nav-header">DIRE</li>`) {
		t.Error("navigation missing")
	}
}

func TestAllPlotPagesRender(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	for _, side := range []string{"dire", "radiant"} {
		for _, plot := range []string{"draft", "wards", "positioning", "smoke", "scan"} {
			target := "/Team%20Bravo/" + side + "/" + plot + ".html"
			rec := get(t, s, target)
			if rec.Code != http.StatusOK {
				t.Errorf("%s: status = %d", target, rec.Code)
				continue
			}
			if strings.Contains(rec.Body.String(), `\`) {
				t.Errorf("%s: backslash in output", target)
			}
		}
	}
}

func TestSummaryHandler(t *testing.T) {
	s := newTestServer(t, Config{BaseURL: "/dota/"}, nil)

	rec := get(t, s, "/dota/Team%20Bravo/summary/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`src="/dota/static/plots/Team%20Bravo/hero_picks.png"`,
		`src="/dota/static/plots/Team%20Bravo/rune_control.png"`,
		`href="/dota/static/style.css"`,
		`href="/dota/"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	paths := []string{
		"/Nobody/",
		"/Nobody/summary/",
		"/Nobody/winrate.svg",
		"/Nobody/dire/scan.html",
		"/Alpha/dire/unknownplot.html",
		"/Alpha/spectator/scan.html",
		"/Alpha/?dataset=missing",
		"/static/missing.css",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			if rec := get(t, s, p); rec.Code != http.StatusNotFound {
				t.Errorf("GET %s = %d, want 404", p, rec.Code)
			}
		})
	}
}

func TestInvalidMetadataIsServerError(t *testing.T) {
	s := newTestServer(t, Config{}, func(fs afero.Fs) {
		testutil.WriteMetadata(t, fs, "/plots/Broken", map[string]any{"default": map[string]any{}})
		testutil.WriteFile(t, fs, "/plots/Garbled/meta_data.json", "{not json")
	})

	for _, p := range []string{"/Broken/", "/Broken/dire/scan.html", "/Garbled/summary/"} {
		rec := get(t, s, p)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s = %d, want 500", p, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "meta_data.json") {
			t.Errorf("GET %s leaked error details", p)
		}
	}
}

func TestStaticHandler(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/static/style.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	rec = get(t, s, "/static/plots/Alpha/dire/scan.png")
	if rec.Code != http.StatusOK || rec.Body.String() != "PNG" {
		t.Errorf("plot file = %d %q", rec.Code, rec.Body.String())
	}
}

func TestStaticFiles(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	files, err := s.StaticFiles()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range files {
		if f == "style.css" {
			found = true
		}
	}
	if !found {
		t.Errorf("StaticFiles() = %v, want style.css", files)
	}
}

func TestWinRateChart(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/Alpha/winrate.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, Config{}, nil)

	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

var siteLink = regexp.MustCompile(`(?:href|src)="(/dota/[^"#]*)"`)

func TestBaseURL(t *testing.T) {
	s := newTestServer(t, Config{BaseURL: "/dota/"}, nil)

	rec := get(t, s, "/")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dota/" {
		t.Errorf("root = %d -> %q, want redirect to /dota/", rec.Code, rec.Header().Get("Location"))
	}
	if rec := get(t, s, "/Alpha/"); rec.Code != http.StatusNotFound {
		t.Errorf("/Alpha/ outside the base URL = %d, want 404", rec.Code)
	}
	if rec := get(t, s, "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d", rec.Code)
	}

	// Every page and asset a rendered page links to must resolve. Plot images
	// are only checked where the fixture wrote one.
	seen := map[string]bool{}
	for _, page := range []string{"/dota/", "/dota/Alpha/", "/dota/Alpha/dire/scan.html"} {
		rec := get(t, s, page)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s = %d", page, rec.Code)
		}
		for _, m := range siteLink.FindAllStringSubmatch(rec.Body.String(), -1) {
			link := m[1]
			if seen[link] || (strings.HasPrefix(link, "/dota/static/plots/") && link != "/dota/static/plots/Alpha/dire/scan.png") {
				continue
			}
			seen[link] = true
			if rec := get(t, s, link); rec.Code != http.StatusOK {
				t.Errorf("link %s on %s = %d", link, page, rec.Code)
			}
		}
	}

	for _, want := range []string{
		"/dota/Alpha/",
		"/dota/Team%20Bravo/",
		"/dota/static/style.css",
		"/dota/Alpha/dire/scan.html",
		"/dota/Alpha/summary/",
		"/dota/Alpha/winrate.svg",
		"/dota/static/plots/Alpha/dire/scan.png",
	} {
		if !seen[want] {
			t.Errorf("no rendered page links to %s", want)
		}
	}
}

func TestReservedTeamName(t *testing.T) {
	s := newTestServer(t, Config{}, func(fs afero.Fs) {
		testutil.WriteTeam(t, fs, "static", fixtures.NewDatasetBuilder("static"))
	})

	for _, team := range s.Teams() {
		if team == "static" {
			t.Fatalf("Teams() = %v, reserved name included", s.Teams())
		}
	}
	if len(s.Teams()) != 2 {
		t.Errorf("Teams() = %v", s.Teams())
	}
	if body := get(t, s, "/").Body.String(); strings.Contains(body, `href="/static/"`) {
		t.Error("index links to a team shadowed by /static/")
	}
	if rec := get(t, s, "/static/style.css"); rec.Code != http.StatusOK {
		t.Errorf("style.css = %d", rec.Code)
	}
}
