package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var pathsJSON bool

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the routes named by the sidebar",
	Long: `List every sidebar route with the docs prefix removed, in navigation
order. With --json the routes are printed as path segment arrays.

Examples:
  docsite paths
  docsite paths --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSite(nil)
		if err != nil {
			return err
		}
		if pathsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s.StaticPaths())
		}
		fmt.Println(strings.Join(s.Paths(), "\n"))
		return nil
	},
}

func init() {
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "print path segments as JSON")
	rootCmd.AddCommand(pathsCmd)
}
