package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/content"
	"github.com/dgallion1/docsite/internal/toc"
)

var tocJSON bool

var tocCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "Print the table of contents of a page source",
	Long: `Parse a markdown, MDX or HTML file and print its table of contents.
Only level-2 headings are roots; deeper headings nest beneath them.

Examples:
  docsite toc data/docs/intro.mdx
  docsite toc --json data/docs/intro.mdx`,
	Args: cobra.ExactArgs(1),
	// Reads a single file, so the content dir need not exist.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		src, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		p, err := content.NewParsers(cfg.HighlightStyle).ForFile(name)
		if err != nil {
			return err
		}
		page, err := p.Parse(src, name)
		if err != nil {
			return err
		}

		if tocJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(page.TOC)
		}
		toc.Walk(page.TOC, func(h *toc.Heading, depth int) {
			fmt.Printf("%s- %s (#%s)\n", strings.Repeat("  ", depth), h.Text, h.Slug)
		})
		return nil
	},
}

func init() {
	tocCmd.Flags().BoolVar(&tocJSON, "json", false, "print the tree as JSON")
	rootCmd.AddCommand(tocCmd)
}
