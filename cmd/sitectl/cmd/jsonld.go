package cmd

import (
	"fmt"

	"github.com/nfrund/ledgerline/cmd/sitectl/internal/output"
	"github.com/nfrund/ledgerline/internal/handlers"
	"github.com/spf13/cobra"
)

func newJSONLDCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "jsonld <slug>",
		Short: "Print the structured data embedded in a page",
		Long:  `Print the schema.org JSON-LD blocks the server embeds in a page, as a
JSON array. Paste a block into a rich results tester to check it.

Examples:
  sitectl jsonld home
  sitectl jsonld vat-returns --origin https://www.example.co.uk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			page, err := catalog.Page(args[0])
			if err != nil {
				return fmt.Errorf("page '%s' not found, use 'sitectl pages list' to see all pages", args[0])
			}

			blocks, err := handlers.StructuredData(opts.origin, catalog.Site(), page)
			if err != nil {
				return fmt.Errorf("build structured data for '%s': %w", page.Slug, err)
			}
			if blocks == nil {
				blocks = []any{}
			}
			return output.JSON(cmd.OutOrStdout(), blocks)
		},
	}
}
