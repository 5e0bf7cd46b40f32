package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/metrics"
	"github.com/dgallion1/docsite/internal/site"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the documentation site.
type Server struct {
	router  chi.Router
	site    *site.Site
	metrics *metrics.Metrics
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(s *site.Site, m *metrics.Metrics, log *slog.Logger, cfg config.Config) *Server {
	srv := &Server{
		site:    s,
		metrics: m,
		log:     log,
		cfg:     cfg,
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(Instrument(s.metrics))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Get("/docs", s.handleDocsIndex)
	r.Get("/docs/*", s.handleDocsPage)
	r.Get("/changelog", s.handleChangelogPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/docs/paths", s.handlePaths)
		r.Get("/docs/*", s.handleDocsJSON)
		r.Get("/changelog", s.handleChangelogJSON)

		// Admin endpoints exist only when a key is configured.
		if s.cfg.AdminAPIKey != "" {
			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(s.cfg.AdminAPIKey, s.log))
				r.Post("/admin/purge", s.handlePurge)
			})
		}
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
