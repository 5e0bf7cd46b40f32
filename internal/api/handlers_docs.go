package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/docsite/internal/content"
	"github.com/dgallion1/docsite/internal/sidebar"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// handleDocsIndex redirects to the first page of the sidebar.
func (s *Server) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	first, ok := sidebar.First(s.site.Routes())
	if !ok || !strings.HasPrefix(first.Href, s.cfg.DocsPrefix) {
		jsonError(w, "no documentation pages", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, first.Href, http.StatusFound)
}

// handleDocsPage serves a docs page inside the site layout.
func (s *Server) handleDocsPage(w http.ResponseWriter, r *http.Request) {
	page, ok := s.page(w, r)
	if !ok {
		return
	}

	body, err := s.site.RenderHTML(page)
	if err != nil {
		s.log.Error("layout failed", "route", page.Route, "error", err)
		jsonError(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// handleDocsJSON serves a rendered page with its table of contents.
func (s *Server) handleDocsJSON(w http.ResponseWriter, r *http.Request) {
	page, ok := s.page(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

// handlePaths lists the routes a static build renders.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paths":        s.site.Paths(),
		"static_paths": s.site.StaticPaths(),
	})
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	if err := s.site.Purge(); err != nil {
		s.log.Error("purge failed", "error", err)
		jsonError(w, "purge failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("cache purged", "request_id", middleware.GetReqID(r.Context()))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"purged": true})
}

// page resolves the catch-all route parameter to a rendered page and writes
// the error response itself when it can't. Only sidebar routes are served.
func (s *Server) page(w http.ResponseWriter, r *http.Request) (*content.Page, bool) {
	route := strings.Trim(chi.URLParam(r, "*"), "/")
	if route == "" || !s.site.IsRoute(route) {
		jsonError(w, "page not found", http.StatusNotFound)
		return nil, false
	}

	page, err := s.site.Page(route)
	if errors.Is(err, content.ErrNotFound) {
		s.log.Warn("sidebar route has no source", "route", route)
		jsonError(w, "page not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.log.Error("render failed", "route", route, "error", err)
		jsonError(w, "failed to render page", http.StatusInternalServerError)
		return nil, false
	}

	etag := `"` + page.Hash[:16] + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return nil, false
	}
	return page, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
