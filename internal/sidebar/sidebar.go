// Package sidebar loads the docs navigation tree and flattens it into the
// list of routes a static build has to render.
package sidebar

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Route is a navigation entry. Group headers usually have no Href and only
// carry nested Routes.
type Route struct {
	Name   string  `json:"name" yaml:"name"`
	Href   string  `json:"href,omitempty" yaml:"href,omitempty"`
	Routes []Route `json:"routes,omitempty" yaml:"routes,omitempty"`
}

// Sidebar is the on-disk shape of a sidebar file.
type Sidebar struct {
	Routes []Route `json:"sidebar" yaml:"sidebar"`
}

// Load decodes a sidebar file. The format is picked from the file
// extension: .yaml/.yml are YAML, anything else is JSON.
func Load(r io.Reader, filename string) (*Sidebar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sidebar: %w", err)
	}

	var sb Sidebar
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sb); err != nil {
			return nil, fmt.Errorf("parse sidebar %s: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(data, &sb); err != nil {
			return nil, fmt.Errorf("parse sidebar %s: %w", filename, err)
		}
	}
	return &sb, nil
}

// Walk calls fn for every route in pre-order, parents before children.
func Walk(routes []Route, fn func(r Route)) {
	for _, r := range routes {
		fn(r)
		Walk(r.Routes, fn)
	}
}

// Flatten returns the Href of every route that has one, in Walk order, with
// prefix trimmed from the front when present.
func Flatten(routes []Route, prefix string) []string {
	paths := []string{}
	Walk(routes, func(r Route) {
		if r.Href == "" {
			return
		}
		paths = append(paths, strings.TrimPrefix(r.Href, prefix))
	})
	return paths
}

// StaticPaths is Flatten with every path split into its segments.
func StaticPaths(routes []Route, prefix string) [][]string {
	flat := Flatten(routes, prefix)
	out := make([][]string, 0, len(flat))
	for _, p := range flat {
		out = append(out, strings.Split(p, "/"))
	}
	return out
}

// First returns the first route with an Href, or false if there is none.
func First(routes []Route) (Route, bool) {
	var first Route
	found := false
	Walk(routes, func(r Route) {
		if !found && r.Href != "" {
			first, found = r, true
		}
	})
	return first, found
}

// Contains reports whether href is one of the sidebar's routes.
func Contains(routes []Route, href string) bool {
	found := false
	Walk(routes, func(r Route) {
		if r.Href == href {
			found = true
		}
	})
	return found
}
