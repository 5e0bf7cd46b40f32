package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/api"
	"github.com/dgallion1/docsite/internal/metrics"
	"github.com/dgallion1/docsite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation site over HTTP",
	Long: `Serve rendered docs pages, their JSON form, the changelog and
Prometheus metrics. Pages are cached for --cache-ttl; with --watch the cache
is purged whenever a file under the content dir changes.

Examples:
  docsite serve --port 3000
  docsite serve --watch --content-dir website/data`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		m := metrics.New()
		s, err := newSite(m)
		if err != nil {
			return err
		}

		if cfg.Watch {
			w, err := site.NewWatcher(cfg.ContentDir, s.Purge, log)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
		}

		go func() {
			ticker := time.NewTicker(cfg.CacheTTL)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					s.CleanupCache()
				}
			}
		}()

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      api.NewServer(s, m, log, cfg),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sigCh:
			case <-ctx.Done():
				return
			}
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting docsite", "port", cfg.Port, "content_dir", cfg.ContentDir, "watch", cfg.Watch)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "listen port")
	serveCmd.Flags().DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "how long rendered pages stay cached")
	serveCmd.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "purge the cache when content changes")
	rootCmd.AddCommand(serveCmd)
}
