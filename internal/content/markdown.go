package content

import (
	"bytes"
	"fmt"

	"github.com/dgallion1/docsite/internal/toc"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownParser renders markdown and MDX pages using goldmark. MDX
// component tags are passed through as raw HTML.
type MarkdownParser struct {
	md goldmark.Markdown
}

// NewMarkdown returns the goldmark configuration shared by docs pages and
// the changelog.
func NewMarkdown(highlightStyle string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			toc.Extension,
			highlighting.NewHighlighting(highlighting.WithStyle(highlightStyle)),
		),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

func NewMarkdownParser(highlightStyle string) *MarkdownParser {
	return &MarkdownParser{md: NewMarkdown(highlightStyle)}
}

func (p *MarkdownParser) Parse(src []byte, filename string) (*Page, error) {
	meta, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := p.md.Convert(body, &buf, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}

	headings := toc.Get(pc)
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
