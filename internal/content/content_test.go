package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/docs/intro.mdx":                    {Data: []byte("# Intro\n\n## Why\n")},
		"data/docs/getting-started/install.md":   {Data: []byte("# Install\n\n## Helm\n")},
		"data/docs/backends/index.mdx":           {Data: []byte("# Backends\n")},
		"data/docs/legacy.html":                  {Data: []byte("<html><head><title>Legacy</title></head><body><h2>Old</h2></body></html>")},
		"data/docs/getting-started/install.html": {Data: []byte("<h1>shadowed</h1>")},
	}
}

func TestLoader_ResolvesExtensions(t *testing.T) {
	l := &Loader{FS: testFS(), Dir: "data/docs", Parsers: NewParsers("github")}

	tests := []struct {
		route  string
		title  string
		source string
	}{
		{"intro", "Intro", "data/docs/intro.mdx"},
		{"/getting-started/install/", "Install", "data/docs/getting-started/install.md"},
		{"backends", "Backends", "data/docs/backends/index.mdx"},
		{"legacy", "Legacy", "data/docs/legacy.html"},
	}
	for _, tt := range tests {
		page, err := l.Load(tt.route)
		if err != nil {
			t.Fatalf("Load(%q): %v", tt.route, err)
		}
		if page.Title != tt.title {
			t.Errorf("Load(%q): expected title %q, got %q", tt.route, tt.title, page.Title)
		}
		if page.Source != tt.source {
			t.Errorf("Load(%q): expected source %q, got %q", tt.route, tt.source, page.Source)
		}
		if page.Route != strings.Trim(tt.route, "/") {
			t.Errorf("Load(%q): unexpected route %q", tt.route, page.Route)
		}
	}
}

func TestLoader_NotFound(t *testing.T) {
	l := &Loader{FS: testFS(), Dir: "data/docs", Parsers: NewParsers("github")}
	for _, route := range []string{"missing", "", "../secrets", "getting-started/../../x"} {
		_, err := l.Load(route)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q): expected ErrNotFound, got %v", route, err)
		}
	}
}

func TestForFile(t *testing.T) {
	ps := NewParsers("github")
	if p, err := ps.ForFile("a.MDX"); err != nil || p != Parser(ps.Markdown) {
		t.Errorf("expected markdown parser for .MDX, got %T (%v)", p, err)
	}
	if p, err := ps.ForFile("a.htm"); err != nil || p != Parser(ps.HTML) {
		t.Errorf("expected html parser for .htm, got %T (%v)", p, err)
	}
	if _, err := ps.ForFile("a.pdf"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("notes.txt") {
		t.Error(".txt should not be supported")
	}
}

func TestContentHashHex_Consistency(t *testing.T) {
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got := ContentHashHex([]byte("hello world")); got != want {
		t.Errorf("expected hash %q, got %q", want, got)
	}
}
