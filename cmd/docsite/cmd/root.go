package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/metrics"
	"github.com/dgallion1/docsite/internal/site"
)

var (
	cfg      = config.Load()
	logLevel string
	log      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Serve and build a documentation website",
	Long: `docsite renders markdown, MDX and HTML documentation pages with
anchored headings and a table of contents, navigated by a sidebar file.

Configuration comes from the environment (CONTENT_DIR, DOCS_PREFIX, ...)
and any flag given on the command line overrides it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return cfg.Validate()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "root of the site data")
	f.StringVar(&cfg.DocsDir, "docs-dir", cfg.DocsDir, "docs pages, relative to the content dir")
	f.StringVar(&cfg.DocsPrefix, "docs-prefix", cfg.DocsPrefix, "URL prefix trimmed from sidebar hrefs")
	f.StringVar(&cfg.SidebarFile, "sidebar", cfg.SidebarFile, "sidebar file, relative to the content dir")
	f.StringVar(&cfg.ChangelogFile, "changelog-file", cfg.ChangelogFile, "CHANGELOG.md to render")
	f.StringVar(&cfg.ChangelogDir, "changelog-dir", cfg.ChangelogDir, "per-version changelog supplements, relative to the content dir")
	f.StringVar(&cfg.HighlightStyle, "highlight-style", cfg.HighlightStyle, "chroma style for code blocks")
	f.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

// newSite opens the configured content directory.
func newSite(m *metrics.Metrics) (*site.Site, error) {
	return site.New(cfg, os.DirFS(cfg.ContentDir), log, m)
}
