// Package toc extracts document headings, rewrites them into anchored
// headings, and folds the flat heading list into a table of contents.
package toc

// Heading is a single document heading. Text is the decoded text of the
// heading's direct plain-text children with edge whitespace trimmed, the
// same for markdown and HTML sources. Children holds the headings nested
// one level directly beneath it, in document order.
type Heading struct {
	Text     string     `json:"text"`
	Slug     string     `json:"slug"`
	Level    int        `json:"level"`
	Children []*Heading `json:"children"`
}

// RootLevel is the only heading level exposed as a TOC root. The level-1
// heading is the page title and is never part of the navigable TOC.
const RootLevel = 2

// Build folds a flat, document-ordered heading list into a tree and returns
// the level-2 roots.
//
// Each heading is attached to the nearest preceding heading exactly one
// level above it. Headings with no such ancestor stay unattached, and only
// level-2 entries survive the final filter, so an orphaned level-3 heading
// is dropped. The input records are not modified.
//
// TODO: promote orphaned headings to roots once the docs UI can render
// mixed-level roots.
func Build(flat []*Heading) []*Heading {
	headings := make([]*Heading, len(flat))
	for i, h := range flat {
		headings[i] = &Heading{Text: h.Text, Slug: h.Slug, Level: h.Level}
	}

	for i := len(headings) - 1; i >= 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if headings[i].Level-1 == headings[j].Level {
				// Prepending while walking backwards leaves children in
				// document order.
				headings[j].Children = append([]*Heading{headings[i]}, headings[j].Children...)
				break
			}
		}
	}

	roots := make([]*Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level == RootLevel {
			roots = append(roots, h)
		}
	}
	return roots
}

// Walk visits every heading in the tree in pre-order.
func Walk(roots []*Heading, fn func(h *Heading, depth int)) {
	var walk func(hs []*Heading, depth int)
	walk = func(hs []*Heading, depth int) {
		for _, h := range hs {
			fn(h, depth)
			walk(h.Children, depth+1)
		}
	}
	walk(roots, 0)
}
