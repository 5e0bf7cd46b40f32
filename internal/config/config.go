package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Content layout
	ContentDir    string // root of the site data, e.g. website/data
	DocsDir       string // docs pages, relative to ContentDir
	DocsPrefix    string // URL prefix trimmed from sidebar hrefs
	SidebarFile   string // relative to ContentDir
	ChangelogFile string // absolute or relative to the working directory
	ChangelogDir  string // per-version supplements, relative to ContentDir

	// Static build
	OutputDir   string
	WorkerCount int

	// Rendering
	HighlightStyle string

	// Serving
	CacheTTL    time.Duration
	Watch       bool
	AdminAPIKey string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		ContentDir:    envOr("CONTENT_DIR", "data"),
		DocsDir:       envOr("DOCS_DIR", "docs"),
		DocsPrefix:    envOr("DOCS_PREFIX", "/docs/"),
		SidebarFile:   envOr("SIDEBAR_FILE", "sidebar-docs.json"),
		ChangelogFile: envOr("CHANGELOG_FILE", "../CHANGELOG.md"),
		ChangelogDir:  envOr("CHANGELOG_DIR", "changelog"),

		OutputDir:   envOr("OUTPUT_DIR", "out"),
		WorkerCount: envInt("WORKER_COUNT", 4),

		HighlightStyle: envOr("HIGHLIGHT_STYLE", "github"),

		CacheTTL:    envDuration("CACHE_TTL", 10*time.Minute),
		Watch:       envBool("WATCH", false),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("CONTENT_DIR is required")
	}
	if c.SidebarFile == "" {
		return fmt.Errorf("SIDEBAR_FILE is required")
	}
	if !strings.HasPrefix(c.DocsPrefix, "/") || !strings.HasSuffix(c.DocsPrefix, "/") {
		return fmt.Errorf("DOCS_PREFIX must start and end with '/', got %q", c.DocsPrefix)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
