package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var changelogJSON bool

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render the changelog",
	Long: `Parse the changelog file, merge the per-version supplements and print
the released versions, newest first. With --json the rendered HTML of each
version is included.

Examples:
  docsite changelog --changelog-file ../CHANGELOG.md
  docsite changelog --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSite(nil)
		if err != nil {
			return err
		}
		entries, err := s.Changelog()
		if err != nil {
			return err
		}
		if changelogJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"versions": entries})
		}
		for _, e := range entries {
			fmt.Println(e.Version)
		}
		return nil
	},
}

func init() {
	changelogCmd.Flags().BoolVar(&changelogJSON, "json", false, "print versions with rendered HTML as JSON")
	rootCmd.AddCommand(changelogCmd)
}
