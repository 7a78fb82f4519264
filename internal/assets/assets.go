// Package assets turns plot paths stored in metadata into site URLs.
package assets

import (
	"fmt"
	"strings"
)

// PlotPrefix is prepended to every normalised plot path
const PlotPrefix = "plots/"

// Normalize converts a stored plot path into a forward-slash path under
// PlotPrefix. Stored paths may use Windows separators.
func Normalize(rel string) string {
	p := strings.ReplaceAll(rel, `\`, "/")
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return PlotPrefix + p
		}
	}
}

// NormalizeAll applies Normalize to every path, returning a new slice
func NormalizeAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = Normalize(p)
	}
	return out
}

// Linker resolves asset paths to URLs by kind
type Linker struct {
	prefixes map[string]string
}

// NewLinker creates a linker for a site rooted at baseURL. The "static" kind
// maps to <baseURL>static/.
func NewLinker(baseURL string) *Linker {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Linker{
		prefixes: map[string]string{
			"static": baseURL + "static/",
		},
	}
}

// URL returns the URL of path under kind
func (l *Linker) URL(kind, path string) (string, error) {
	prefix, ok := l.prefixes[kind]
	if !ok {
		return "", fmt.Errorf("unknown asset kind %q", kind)
	}
	return prefix + strings.TrimPrefix(path, "/"), nil
}
