package toc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

func TestExtractHTML(t *testing.T) {
	input := `<html><body>
<h1>Ensemble</h1>
<p>Intro</p>
<h2>Getting <em>really</em> Started</h2>
<section><h3>Kind cluster</h3></section>
</body></html>`

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := ExtractHTML(doc)
	want := []*Heading{
		{Text: "Ensemble", Slug: "ensemble", Level: 1},
		{Text: "Getting  Started", Slug: "getting-started", Level: 2},
		{Text: "Kind cluster", Slug: "kind-cluster", Level: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	wantMarkup := `<h3><a id="kind-cluster"></a><a class="anchor" href="#kind-cluster"># </a><span>Kind cluster</span></h3>`
	if !strings.Contains(out, wantMarkup) {
		t.Errorf("expected %q in rendered html:\n%s", wantMarkup, out)
	}
	if strings.Contains(out, "<em>") {
		t.Errorf("expected heading inline markup to be replaced, got:\n%s", out)
	}

	roots := Build(got)
	if len(roots) != 1 || len(roots[0].Children) != 1 {
		t.Errorf("expected one root with one child, got %+v", roots)
	}
}

func TestExtractHTML_NoHeadings(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<p>nothing here</p>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := ExtractHTML(doc); len(got) != 0 {
		t.Errorf("expected no headings, got %d", len(got))
	}
}

func TestExtractHTML_TextMatchesMarkdown(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<h2>\n  Deploy <em>fast</em> with <code>kubectl</code>\n</h2>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fromHTML := ExtractHTML(doc)

	md := goldmark.New(goldmark.WithExtensions(Extension))
	_, pc := convert(t, md, "## Deploy *fast* with `kubectl`\n")
	fromMarkdown := Get(pc)

	if diff := cmp.Diff(fromMarkdown, fromHTML); diff != "" {
		t.Errorf("html and markdown headings differ (-markdown +html):\n%s", diff)
	}
	if len(fromHTML) != 1 || fromHTML[0].Text != "Deploy  with" {
		t.Errorf("expected trimmed text %q, got %+v", "Deploy  with", fromHTML)
	}
}
