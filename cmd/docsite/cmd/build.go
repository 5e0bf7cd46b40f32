package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the whole site to static files",
	Long: `Render every sidebar route, its table of contents and the changelog
into the output directory.

Examples:
  docsite build --out out --workers 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSite(nil)
		if err != nil {
			return err
		}
		res, err := site.NewBuilder(s, log, cfg.WorkerCount).Build(cmd.Context(), cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Printf("Built %d pages and %d changelog entries into %s in %s\n",
			res.Pages, res.Changelog, cfg.OutputDir, res.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "output directory")
	buildCmd.Flags().IntVarP(&cfg.WorkerCount, "workers", "j", cfg.WorkerCount, "pages rendered in parallel")
	rootCmd.AddCommand(buildCmd)
}
