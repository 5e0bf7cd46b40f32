package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleChangelogPage(w http.ResponseWriter, r *http.Request) {
	entries, err := s.site.Changelog()
	if err != nil {
		s.log.Error("changelog failed", "error", err)
		jsonError(w, "failed to render changelog", http.StatusInternalServerError)
		return
	}
	body, err := s.site.RenderChangelogHTML(entries)
	if err != nil {
		s.log.Error("changelog layout failed", "error", err)
		jsonError(w, "failed to render changelog", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (s *Server) handleChangelogJSON(w http.ResponseWriter, r *http.Request) {
	entries, err := s.site.Changelog()
	if err != nil {
		s.log.Error("changelog failed", "error", err)
		jsonError(w, "failed to render changelog", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"versions": entries})
}
