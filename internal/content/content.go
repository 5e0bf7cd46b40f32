// Package content turns documentation sources (markdown, MDX, HTML) into
// rendered pages with their table of contents.
package content

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsite/internal/toc"
)

// ErrNotFound is returned when no source file exists for a route.
var ErrNotFound = errors.New("page not found")

// Page is a rendered documentation page.
type Page struct {
	Route    string         `json:"route"`
	Source   string         `json:"source"`
	Title    string         `json:"title"`
	Meta     map[string]any `json:"meta,omitempty"`
	HTML     string         `json:"html"`
	Headings []*toc.Heading `json:"-"`
	TOC      []*toc.Heading `json:"toc"`
	Hash     string         `json:"hash"`
}

// Parser converts raw page bytes into a Page.
type Parser interface {
	Parse(src []byte, filename string) (*Page, error)
}

// SupportedExtensions lists the page source extensions, in lookup order.
var SupportedExtensions = []string{".mdx", ".md", ".markdown", ".html", ".htm"}

// Parsers holds one configured parser per source format. A Parsers value is
// safe for concurrent use.
type Parsers struct {
	Markdown *MarkdownParser
	HTML     *HTMLParser
}

// NewParsers builds the parser set. highlightStyle names the chroma style
// used for fenced code blocks.
func NewParsers(highlightStyle string) *Parsers {
	return &Parsers{
		Markdown: NewMarkdownParser(highlightStyle),
		HTML:     &HTMLParser{},
	}
}

// ForFile returns the appropriate parser for a filename.
func (p *Parsers) ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".mdx", ".markdown":
		return p.Markdown, nil
	case ".html", ".htm":
		return p.HTML, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Loader resolves routes to source files under Dir in FS and parses them.
type Loader struct {
	FS      fs.FS
	Dir     string
	Parsers *Parsers
}

// Load renders the page for route, e.g. "getting-started/install". It tries
// <route><ext> for every supported extension, then <route>/index<ext>.
func (l *Loader) Load(route string) (*Page, error) {
	route = strings.Trim(route, "/")
	if route == "" || !fs.ValidPath(route) {
		return nil, ErrNotFound
	}

	for _, base := range []string{route, route + "/index"} {
		for _, ext := range SupportedExtensions {
			name := path.Join(l.Dir, base+ext)
			data, err := fs.ReadFile(l.FS, name)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}

			p, err := l.Parsers.ForFile(name)
			if err != nil {
				return nil, err
			}
			page, err := p.Parse(data, name)
			if err != nil {
				return nil, err
			}
			page.Route = route
			return page, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", route, ErrNotFound)
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

func titleFor(meta map[string]any, headings []*toc.Heading, filename string) string {
	if t, ok := meta["title"].(string); ok && t != "" {
		return t
	}
	for _, h := range headings {
		if h.Level == 1 && h.Text != "" {
			return h.Text
		}
	}
	base := path.Base(filepath.ToSlash(filename))
	return strings.TrimSuffix(base, path.Ext(base))
}
