package assets

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows separators", `Alpha\dire\drafts.png`, "plots/Alpha/dire/drafts.png"},
		{"forward slashes", "Alpha/dire/scan.png", "plots/Alpha/dire/scan.png"},
		{"mixed", `Alpha/dire\smoke.png`, "plots/Alpha/dire/smoke.png"},
		{"leading slash", "/Alpha/x.png", "plots/Alpha/x.png"},
		{"leading dot slash", `.\Alpha\x.png`, "plots/Alpha/x.png"},
		{"bare file", "x.png", "plots/x.png"},
		{"empty", "", "plots/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAllDoesNotMutate(t *testing.T) {
	in := []string{`a\b.png`, "c/d.png"}
	got := NormalizeAll(in)

	want := []string{"plots/a/b.png", "plots/c/d.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAll() = %v, want %v", got, want)
	}
	if in[0] != `a\b.png` {
		t.Error("input slice was modified")
	}
}

func TestLinkerURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		kind    string
		path    string
		want    string
		wantErr bool
	}{
		{"root site", "/", "static", "plots/Alpha/x.png", "/static/plots/Alpha/x.png", false},
		{"sub path", "/dota/", "static", "style.css", "/dota/static/style.css", false},
		{"missing trailing slash", "/dota", "static", "/style.css", "/dota/static/style.css", false},
		{"unknown kind", "/", "media", "x.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLinker(tt.base).URL(tt.kind, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("URL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}
