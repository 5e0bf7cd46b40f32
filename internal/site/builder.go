package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// BuildResult summarizes a static build.
type BuildResult struct {
	Pages     int           `json:"pages"`
	Changelog int           `json:"changelog_entries"`
	Duration  time.Duration `json:"duration"`
}

// Builder writes the whole site to disk.
type Builder struct {
	site    *Site
	log     *slog.Logger
	workers int
}

func NewBuilder(s *Site, log *slog.Logger, workers int) *Builder {
	if workers <= 0 {
		workers = 1
	}
	return &Builder{site: s, log: log, workers: workers}
}

// Build renders every sidebar route and the changelog into outDir:
//
//	docs/<route>/index.html
//	docs/<route>/toc.json
//	docs/paths.json
//	changelog/index.html
//
// Routes are rendered by a bounded pool of workers. The first failure
// cancels the remaining pages and is returned.
func (b *Builder) Build(ctx context.Context, outDir string) (BuildResult, error) {
	start := time.Now()
	paths := b.site.Paths()
	b.log.Info("building site", "routes", len(paths), "workers", b.workers, "out", outDir)

	var pages atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for _, route := range paths {
		route := route
		if gctx.Err() != nil {
			break
		}
		if strings.Contains(route, "://") {
			b.log.Debug("skipping external route", "href", route)
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := b.buildPage(outDir, route); err != nil {
				b.log.Error("page failed", "route", route, "error", err)
				return err
			}
			pages.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BuildResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	if err := writeJSON(filepath.Join(outDir, "docs", "paths.json"), map[string]any{
		"paths":        paths,
		"static_paths": b.site.StaticPaths(),
	}); err != nil {
		return BuildResult{}, err
	}

	entries, err := b.site.Changelog()
	if err != nil {
		return BuildResult{}, fmt.Errorf("changelog: %w", err)
	}
	html, err := b.site.RenderChangelogHTML(entries)
	if err != nil {
		return BuildResult{}, err
	}
	if err := writeFile(filepath.Join(outDir, "changelog", "index.html"), html); err != nil {
		return BuildResult{}, err
	}

	res := BuildResult{
		Pages:     int(pages.Load()),
		Changelog: len(entries),
		Duration:  time.Since(start),
	}
	b.log.Info("build complete", "pages", res.Pages, "changelog_entries", res.Changelog, "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func (b *Builder) buildPage(outDir, route string) error {
	page, err := b.site.render(route)
	if err != nil {
		return fmt.Errorf("render %s: %w", route, err)
	}
	html, err := b.site.RenderHTML(page)
	if err != nil {
		return err
	}

	dir := filepath.Join(outDir, "docs", filepath.FromSlash(page.Route))
	if err := writeFile(filepath.Join(dir, "index.html"), html); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "toc.json"), page.TOC)
}

func writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return writeFile(name, data)
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
