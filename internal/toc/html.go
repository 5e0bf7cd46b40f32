package toc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractHTML is Extract for HTML documents. Every h1-h6 element under root
// has its children replaced with the anchor markup, and the headings are
// returned in document order. Heading text is the direct text children with
// edge whitespace trimmed, as in Extract. root is modified in place, so
// callers pass a tree they parsed themselves.
func ExtractHTML(root *html.Node) []*Heading {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && headingLevel(n.DataAtom) > 0 {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	headings := make([]*Heading, 0, len(found))
	for _, n := range found {
		level := headingLevel(n.DataAtom)
		txt := directText(n)
		slug := Slugify(txt)
		headings = append(headings, &Heading{Text: txt, Slug: slug, Level: level})
		rewriteHTML(n, slug, txt)
	}
	return headings
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func directText(n *html.Node) string {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(buf.String())
}

func rewriteHTML(n *html.Node, slug, txt string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	target := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr:     []html.Attribute{{Key: "id", Val: slug}},
	}
	link := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "class", Val: "anchor"},
			{Key: "href", Val: "#" + slug},
		},
	}
	link.AppendChild(&html.Node{Type: html.TextNode, Data: "# "})
	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: txt})

	n.AppendChild(target)
	n.AppendChild(link)
	n.AppendChild(span)
}
