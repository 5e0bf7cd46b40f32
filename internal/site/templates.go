package site

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/dgallion1/docsite/internal/changelog"
	"github.com/dgallion1/docsite/internal/sidebar"
	"github.com/dgallion1/docsite/internal/toc"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type navItem struct {
	Name     string
	Href     string
	Active   bool
	Children []navItem
}

type layoutData struct {
	Title string
	Nav   []navItem
	Body  template.HTML
	TOC   []*toc.Heading
}

type releaseView struct {
	Version string
	Content template.HTML
}

// trusted marks rendered page HTML as safe. Page sources live in the site
// repository and may embed raw HTML.
func trusted(s string) template.HTML {
	return template.HTML(s)
}

func navItems(routes []sidebar.Route, active string) []navItem {
	items := make([]navItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, navItem{
			Name:     r.Name,
			Href:     r.Href,
			Active:   active != "" && r.Href == active,
			Children: navItems(r.Routes, active),
		})
	}
	return items
}

func renderPage(w io.Writer, data layoutData) error {
	return templates.ExecuteTemplate(w, "layout", data)
}

func renderChangelog(w io.Writer, entries []changelog.Entry, nav []navItem) error {
	views := make([]releaseView, 0, len(entries))
	for _, e := range entries {
		views = append(views, releaseView{Version: e.Version, Content: trusted(e.Content)})
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "changelog", views); err != nil {
		return err
	}
	return renderPage(w, layoutData{
		Title: "Changelog",
		Nav:   nav,
		Body:  trusted(body.String()),
	})
}
