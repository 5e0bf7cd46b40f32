// Package site ties content, sidebar and changelog together: it renders
// pages behind a cache for the server and drives the static build.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/docsite/internal/changelog"
	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/content"
	"github.com/dgallion1/docsite/internal/metrics"
	"github.com/dgallion1/docsite/internal/sidebar"
	"github.com/yuin/goldmark"
)

// Site renders the documentation pages and changelog found in an fs.FS
// rooted at the content directory.
type Site struct {
	cfg     config.Config
	fsys    fs.FS
	loader  *content.Loader
	md      goldmark.Markdown
	log     *slog.Logger
	metrics *metrics.Metrics
	cache   *Cache

	mu      sync.RWMutex
	sidebar *sidebar.Sidebar
}

// New loads the sidebar and prepares the renderers. m may be nil.
func New(cfg config.Config, fsys fs.FS, log *slog.Logger, m *metrics.Metrics) (*Site, error) {
	parsers := content.NewParsers(cfg.HighlightStyle)
	s := &Site{
		cfg:  cfg,
		fsys: fsys,
		loader: &content.Loader{
			FS:      fsys,
			Dir:     cfg.DocsDir,
			Parsers: parsers,
		},
		md:      content.NewMarkdown(cfg.HighlightStyle),
		log:     log,
		metrics: m,
		cache:   NewCache(cfg.CacheTTL),
	}
	if err := s.reloadSidebar(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Site) reloadSidebar() error {
	f, err := s.fsys.Open(s.cfg.SidebarFile)
	if err != nil {
		return fmt.Errorf("open sidebar: %w", err)
	}
	defer f.Close()

	sb, err := sidebar.Load(f, s.cfg.SidebarFile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sidebar = sb
	s.mu.Unlock()
	return nil
}

// Routes returns the sidebar navigation tree.
func (s *Site) Routes() []sidebar.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebar.Routes
}

// Paths returns the sidebar routes with the docs prefix removed, in
// navigation order.
func (s *Site) Paths() []string {
	return sidebar.Flatten(s.Routes(), s.cfg.DocsPrefix)
}

// StaticPaths returns Paths split into path segments.
func (s *Site) StaticPaths() [][]string {
	return sidebar.StaticPaths(s.Routes(), s.cfg.DocsPrefix)
}

// IsRoute reports whether route is listed in the sidebar.
func (s *Site) IsRoute(route string) bool {
	return sidebar.Contains(s.Routes(), s.cfg.DocsPrefix+strings.Trim(route, "/"))
}

// Page returns the rendered page for route, from cache when fresh.
func (s *Site) Page(route string) (*content.Page, error) {
	route = strings.Trim(route, "/")
	if page, ok := s.cache.Get(route); ok {
		s.countLookup("hit")
		return page, nil
	}
	s.countLookup("miss")

	page, err := s.render(route)
	if err != nil {
		return nil, err
	}
	s.cache.Put(route, page)
	return page, nil
}

func (s *Site) render(route string) (*content.Page, error) {
	start := time.Now()
	page, err := s.loader.Load(route)
	s.observeRender("docs", start, err)
	if err != nil {
		return nil, err
	}
	s.log.Debug("rendered page", "route", route, "source", page.Source, "headings", len(page.Headings))
	return page, nil
}

// Changelog reads and renders the CHANGELOG file. Per-version supplements
// are read from ChangelogDir inside the content FS.
func (s *Site) Changelog() ([]changelog.Entry, error) {
	start := time.Now()
	entries, err := s.changelog()
	s.observeRender("changelog", start, err)
	return entries, err
}

func (s *Site) changelog() ([]changelog.Entry, error) {
	f, err := os.Open(s.cfg.ChangelogFile)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("changelog not found", "path", s.cfg.ChangelogFile)
		return []changelog.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open changelog: %w", err)
	}
	defer f.Close()

	entries, err := changelog.Parse(f)
	if err != nil {
		return nil, err
	}
	if err := changelog.Render(entries, s.fsys, s.cfg.ChangelogDir, s.md); err != nil {
		return nil, err
	}
	return entries, nil
}

// Purge drops all cached pages and reloads the sidebar.
func (s *Site) Purge() error {
	s.cache.Purge()
	if s.metrics != nil {
		s.metrics.CachePurgesTotal.Inc()
	}
	return s.reloadSidebar()
}

// CleanupCache evicts expired pages.
func (s *Site) CleanupCache() {
	s.cache.Cleanup()
}

// RenderHTML renders page inside the site layout.
func (s *Site) RenderHTML(page *content.Page) ([]byte, error) {
	var buf bytes.Buffer
	err := renderPage(&buf, layoutData{
		Title: page.Title,
		Nav:   navItems(s.Routes(), s.cfg.DocsPrefix+page.Route),
		Body:  trusted(page.HTML),
		TOC:   page.TOC,
	})
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", page.Route, err)
	}
	return buf.Bytes(), nil
}

// RenderChangelogHTML renders the changelog entries inside the site layout.
func (s *Site) RenderChangelogHTML(entries []changelog.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderChangelog(&buf, entries, navItems(s.Routes(), "")); err != nil {
		return nil, fmt.Errorf("layout changelog: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Site) countLookup(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookupsTotal.WithLabelValues(result).Inc()
	}
}

func (s *Site) observeRender(kind string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.RendersTotal.WithLabelValues(kind, result).Inc()
	s.metrics.RenderDurationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
