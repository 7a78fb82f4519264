// Package export freezes the site into static files.
package export

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/DrCognito/StaticAnalysisSite/internal/cache"
	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
	"github.com/DrCognito/StaticAnalysisSite/internal/views"
	"github.com/DrCognito/StaticAnalysisSite/internal/web"
)

// Options controls a freeze run
type Options struct {
	OutputDir string
	CopyPlots bool

	// MetadataFilename is skipped when copying the plot directory
	MetadataFilename string
}

// Stats summarises a freeze run
type Stats struct {
	Pages    int
	Written  int
	Skipped  int
	Removed  int
	Assets   int
	Plots    int
	Duration time.Duration
}

// Freezer renders every page through the live handler and writes the
// results under OutputDir
type Freezer struct {
	server   *web.Server
	out      afero.Fs
	opts     Options
	manifest *cache.Manifest
}

// New creates a freezer. manifest may be nil, in which case every page is
// rewritten on every run.
func New(server *web.Server, out afero.Fs, opts Options, manifest *cache.Manifest) *Freezer {
	return &Freezer{
		server:   server,
		out:      out,
		opts:     opts,
		manifest: manifest,
	}
}

// Pages enumerates every page URL of the site: the index, then for each team
// its overview, summary, chart and one page per side and plot category.
func (f *Freezer) Pages() []string {
	routes := views.NewRoutes("/")
	pages := []string{routes.Index()}
	for _, team := range f.server.Teams() {
		pages = append(pages, routes.Pages(team)...)
	}
	return pages
}

// Freeze writes the whole site
func (f *Freezer) Freeze(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	if err := f.out.MkdirAll(f.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	pages := f.Pages()
	current := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current[page] = struct{}{}

		written, err := f.freezePage(ctx, page)
		if err != nil {
			return nil, err
		}
		stats.Pages++
		if written {
			stats.Written++
		} else {
			stats.Skipped++
		}
	}

	if f.manifest != nil {
		removed, err := f.prune(ctx, current)
		if err != nil {
			return nil, err
		}
		stats.Removed = removed
	}

	assets, err := f.copyStatic(ctx)
	if err != nil {
		return nil, err
	}
	stats.Assets = assets

	if f.opts.CopyPlots {
		plots, err := f.copyPlots(ctx)
		if err != nil {
			return nil, err
		}
		stats.Plots = plots
	}

	stats.Duration = time.Since(start)
	logging.Info("Site frozen",
		"output", f.opts.OutputDir,
		logging.Count("page", stats.Pages),
		logging.Count("written", stats.Written),
		logging.Count("skipped", stats.Skipped),
		logging.Count("plot", stats.Plots),
		logging.Duration("freeze", stats.Duration))

	return stats, nil
}

// freezePage renders one page and writes it unless the manifest shows it is
// unchanged and the file is still present
func (f *Freezer) freezePage(ctx context.Context, page string) (bool, error) {
	body, err := f.fetch(ctx, page)
	if err != nil {
		return false, err
	}

	file := f.target(page)
	if f.manifest != nil {
		same, err := f.manifest.Unchanged(ctx, page, body)
		if err != nil {
			return false, err
		}
		if exists, _ := afero.Exists(f.out, file); same && exists {
			logging.Debug("Page unchanged", logging.URL(page))
			return false, nil
		}
	}

	if err := f.write(file, body); err != nil {
		return false, err
	}
	if f.manifest != nil {
		if err := f.manifest.Record(ctx, page, body); err != nil {
			return false, err
		}
	}

	logging.Debug("Page written", logging.URL(page), logging.File(file))
	return true, nil
}

// prune removes files of pages recorded by an earlier run that no longer exist
func (f *Freezer) prune(ctx context.Context, current map[string]struct{}) (int, error) {
	recorded, err := f.manifest.Pages(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, page := range recorded {
		if _, ok := current[page]; ok {
			continue
		}
		file := f.target(page)
		if err := f.out.Remove(file); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove stale page %s: %w", file, err)
		}
		if err := f.manifest.Forget(ctx, page); err != nil {
			return removed, err
		}
		logging.Info("Removed stale page", logging.URL(page))
		removed++
	}
	return removed, nil
}

// copyStatic writes the embedded assets by requesting them like any page
func (f *Freezer) copyStatic(ctx context.Context) (int, error) {
	files, err := f.server.StaticFiles()
	if err != nil {
		return 0, fmt.Errorf("list static assets: %w", err)
	}

	for _, name := range files {
		page := "/static/" + name
		body, err := f.fetch(ctx, page)
		if err != nil {
			return 0, err
		}
		if err := f.write(f.target(page), body); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

// copyPlots mirrors the plot directory under static/plots, skipping metadata
// files and files whose copy is already up to date
func (f *Freezer) copyPlots(ctx context.Context) (int, error) {
	src := f.server.PlotFs()
	copied := 0

	err := afero.Walk(src, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() || info.Name() == f.opts.MetadataFilename {
			return nil
		}

		dst := filepath.Join(f.opts.OutputDir, "static", "plots", filepath.FromSlash(strings.TrimPrefix(p, "/")))
		if existing, err := f.out.Stat(dst); err == nil &&
			existing.Size() == info.Size() && !existing.ModTime().Before(info.ModTime()) {
			return nil
		}

		data, err := afero.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("read plot %s: %w", p, err)
		}
		if err := f.write(dst, data); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy plots: %w", err)
	}
	return copied, nil
}

// fetch renders page through the server handler. Anything but 200 is an
// error, so a broken team fails the export instead of producing a 404 file.
func (f *Freezer) fetch(ctx context.Context, page string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, f.server.Path(page), nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("render %s: status %d", page, rec.Code)
	}
	return rec.Body.Bytes(), nil
}

func (f *Freezer) write(file string, data []byte) error {
	if err := f.out.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", file, err)
	}
	if err := afero.WriteFile(f.out, file, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

func (f *Freezer) target(page string) string {
	return filepath.Join(f.opts.OutputDir, filepath.FromSlash(FilePath(page)))
}

// FilePath maps a page URL to its file path relative to the output
// directory: the path is unescaped and a trailing slash becomes index.html.
func FilePath(page string) string {
	p := page
	if u, err := url.PathUnescape(page); err == nil {
		p = u
	}

	dir := strings.HasSuffix(p, "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if dir {
		return path.Join(p, "index.html")
	}
	return p
}
