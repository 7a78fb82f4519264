package web

import (
	"io"
	"net/http"
	"path"
	"strings"
)

// StaticHandler serves static files from the embedded filesystem
func (s *Server) StaticHandler(w http.ResponseWriter, r *http.Request) {
	requestPath := strings.TrimPrefix(r.URL.Path, s.Path("/static/"))

	// Security check: prevent directory traversal
	if strings.Contains(requestPath, "..") {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	file, err := s.staticFS.Open(path.Join("static", requestPath))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	if info, err := file.Stat(); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType(requestPath))
	w.Header().Set("Cache-Control", "public, max-age=3600")

	io.Copy(w, file)
}

// contentType picks a MIME type from the file extension
func contentType(name string) string {
	switch path.Ext(name) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".ico":
		return "image/x-icon"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	default:
		return "text/plain; charset=utf-8"
	}
}
