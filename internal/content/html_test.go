package content

import (
	"strings"
	"testing"
)

func TestHTMLParser_BodyOnlyWithAnchors(t *testing.T) {
	input := `<html><head><title>Operator Internals</title><script>x()</script></head>
<body><h1>Internals</h1><p>Reconcile loop.</p><h2>Scheduler</h2><h3>Placement</h3></body></html>`

	p := &HTMLParser{}
	page, err := p.Parse([]byte(input), "internals.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Title != "Operator Internals" {
		t.Errorf("expected title from <title>, got %q", page.Title)
	}
	if strings.Contains(page.HTML, "<script>") || strings.Contains(page.HTML, "<body>") {
		t.Errorf("expected only body children, got:\n%s", page.HTML)
	}
	if !strings.Contains(page.HTML, `<a class="anchor" href="#scheduler"># </a>`) {
		t.Errorf("expected scheduler permalink, got:\n%s", page.HTML)
	}
	if len(page.TOC) != 1 || page.TOC[0].Slug != "scheduler" {
		t.Fatalf("expected scheduler as only root, got %+v", page.TOC)
	}
	if len(page.TOC[0].Children) != 1 || page.TOC[0].Children[0].Slug != "placement" {
		t.Errorf("expected placement under scheduler, got %+v", page.TOC[0].Children)
	}
}

func TestHTMLParser_Fragment(t *testing.T) {
	p := &HTMLParser{}
	page, err := p.Parse([]byte("<h2>Only</h2>"), "fragment.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title != "fragment" {
		t.Errorf("expected filename title, got %q", page.Title)
	}
	if len(page.TOC) != 1 {
		t.Errorf("expected 1 toc root, got %d", len(page.TOC))
	}
}
