package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CONTENT_DIR", "DOCS_PREFIX", "WORKER_COUNT", "CACHE_TTL", "WATCH"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %q", cfg.Port)
	}
	if cfg.DocsPrefix != "/docs/" {
		t.Errorf("expected default docs prefix, got %q", cfg.DocsPrefix)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m cache ttl, got %s", cfg.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CONTENT_DIR", "/srv/site")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("WATCH", "true")

	cfg := Load()
	if cfg.ContentDir != "/srv/site" {
		t.Errorf("expected content dir override, got %q", cfg.ContentDir)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s ttl, got %s", cfg.CacheTTL)
	}
	if !cfg.Watch {
		t.Error("expected watch enabled")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-2")
	t.Setenv("CACHE_TTL", "soon")
	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected fallback worker count, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected fallback ttl, got %s", cfg.CacheTTL)
	}
}

func TestValidate_DocsPrefix(t *testing.T) {
	cfg := Load()
	cfg.DocsPrefix = "docs"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for prefix without slashes")
	}
}
