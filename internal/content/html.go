package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/docsite/internal/toc"
	"golang.org/x/net/html"
)

// HTMLParser handles pages authored directly in HTML. Only the <body> is
// kept; its headings get the same anchors as markdown headings.
type HTMLParser struct{}

func (p *HTMLParser) Parse(src []byte, filename string) (*Page, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", filename, err)
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}
	headings := toc.ExtractHTML(root)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, fmt.Errorf("render html %s: %w", filename, err)
		}
	}

	var meta map[string]any
	if t := findElement(doc, "title"); t != nil {
		if title := textContent(t); title != "" {
			meta = map[string]any{"title": title}
		}
	}

	return &Page{
		Source:   filename,
		Title:    titleFor(meta, headings, filename),
		Meta:     meta,
		HTML:     buf.String(),
		Headings: headings,
		TOC:      toc.Build(headings),
		Hash:     ContentHashHex(src),
	}, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
