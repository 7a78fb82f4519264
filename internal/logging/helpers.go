package logging

import (
	"log/slog"
	"time"
)

// Common field helpers for consistent structured logging

// Team creates the team name field
func Team(name string) slog.Attr {
	return slog.String("team", name)
}

// Dataset creates the dataset name field
func Dataset(name string) slog.Attr {
	return slog.String("dataset", name)
}

// Page creates fields identifying a rendered plot page
func Page(team, side, plot string) []any {
	return []any{
		slog.String("team", team),
		slog.String("side", side),
		slog.String("plot", plot),
	}
}

// Duration logs duration in milliseconds
func Duration(name string, d time.Duration) slog.Attr {
	return slog.Int64(name+"_ms", d.Milliseconds())
}

// Err creates error field
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Count creates count field
func Count(name string, count int) slog.Attr {
	return slog.Int(name+"_count", count)
}

// HTTP creates HTTP request fields
func HTTP(method, path string, status int) []any {
	return []any{
		slog.String("http_method", method),
		slog.String("http_path", path),
		slog.Int("http_status", status),
	}
}

// File creates file path field
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// URL creates a site URL field
func URL(u string) slog.Attr {
	return slog.String("url", u)
}
