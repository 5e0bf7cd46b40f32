package toc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindAnchoredHeading is the node kind of a rewritten heading.
var KindAnchoredHeading = ast.NewNodeKind("AnchoredHeading")

// AnchoredHeading replaces an ast.Heading after extraction. It renders as a
// heading carrying an anchor target and a permalink to itself. Label is the
// decoded heading text.
type AnchoredHeading struct {
	ast.BaseBlock
	Level int
	Slug  string
	Label string
}

var _ ast.Node = (*AnchoredHeading)(nil)

func (n *AnchoredHeading) Kind() ast.NodeKind {
	return KindAnchoredHeading
}

func (n *AnchoredHeading) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Level": strconv.Itoa(n.Level),
		"Slug":  n.Slug,
		"Label": n.Label,
	}, nil)
}

// Markup returns the raw HTML the node renders to.
func (n *AnchoredHeading) Markup() string {
	var buf bytes.Buffer
	writeAnchored(&buf, n.Level, n.Slug, n.Label)
	return buf.String()
}

type byteWriter interface {
	WriteString(s string) (int, error)
	Write(p []byte) (int, error)
}

func writeAnchored(w byteWriter, level int, slug, txt string) {
	esc := util.EscapeHTML([]byte(slug))
	fmt.Fprintf(w, "<h%d>", level)
	w.WriteString(`<a id="`)
	w.Write(esc)
	w.WriteString(`"></a><a class="anchor" href="#`)
	w.Write(esc)
	w.WriteString(`"># </a><span>`)
	w.Write(util.EscapeHTML([]byte(txt)))
	fmt.Fprintf(w, "</span></h%d>\n", level)
}

// Extract walks doc in document order, replaces every heading with an
// AnchoredHeading and returns the headings as a flat list. Only the direct
// plain-text children of a heading contribute to its text, decoded and
// trimmed of edge whitespace.
func Extract(doc ast.Node, source []byte) []*Heading {
	var found []*ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			found = append(found, h)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	headings := make([]*Heading, 0, len(found))
	for _, h := range found {
		txt := headingText(h, source)
		slug := Slugify(txt)
		headings = append(headings, &Heading{Text: txt, Slug: slug, Level: h.Level})

		anchored := &AnchoredHeading{Level: h.Level, Slug: slug, Label: txt}
		if parent := h.Parent(); parent != nil {
			parent.ReplaceChild(parent, h, anchored)
		}
	}
	return headings
}

func headingText(h *ast.Heading, source []byte) string {
	var buf, run bytes.Buffer
	// Adjacent text segments are decoded together so an escape split
	// across two nodes still resolves.
	flush := func() {
		buf.Write(decode(run.Bytes()))
		run.Reset()
	}
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			if t.IsRaw() {
				flush()
				buf.Write(t.Segment.Value(source))
				continue
			}
			run.Write(t.Segment.Value(source))
		case *ast.String:
			flush()
			buf.Write(t.Value)
		}
	}
	flush()
	return strings.TrimSpace(buf.String())
}

// decode resolves backslash escapes and character references the way the
// html renderer does, so "Q&amp;A" reads "Q&A".
func decode(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

var headingsKey = parser.NewContextKey()

// Get returns the flat heading list recorded for the conversion that used pc.
func Get(pc parser.Context) []*Heading {
	v, _ := pc.Get(headingsKey).([]*Heading)
	return v
}

// TOC returns the table of contents for the conversion that used pc.
func TOC(pc parser.Context) []*Heading {
	return Build(Get(pc))
}

type transformer struct{}

func (transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	pc.Set(headingsKey, Extract(doc, reader.Source()))
}

type anchorRenderer struct{}

func (anchorRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAnchoredHeading, renderAnchored)
}

func renderAnchored(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	h := n.(*AnchoredHeading)
	writeAnchored(w, h.Level, h.Slug, h.Label)
	return ast.WalkSkipChildren, nil
}

type extension struct{}

// Extension installs the heading rewrite into a goldmark.Markdown. The
// headings of each conversion are read back with Get or TOC on the
// parser.Context passed to Convert.
var Extension goldmark.Extender = extension{}

func (extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(transformer{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(anchorRenderer{}, 100),
	))
}
