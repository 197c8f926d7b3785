package cmd

import (
	"strconv"

	"github.com/nfrund/ledgerline/cmd/sitectl/internal/output"
	"github.com/spf13/cobra"
)

type pageRow struct {
	Slug       string `json:"slug"`
	Kind       string `json:"kind"`
	Path       string `json:"path"`
	Title      string `json:"title"`
	LeadForm   bool   `json:"lead_form"`
	LeadSource string `json:"lead_source,omitempty"`
	FAQs       int    `json:"faqs"`
}

func newPagesCmd(opts *globalOptions) *cobra.Command {
	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "Explore the site's content pages",
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every page with its URL and lead form settings",
		Long:  `List every content page in site order.

Examples:
  sitectl pages list
  sitectl pages list --format json
  sitectl pages list --content-dir ./content`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			var rows []pageRow
			for _, p := range catalog.Pages() {
				row := pageRow{
					Slug:     p.Slug,
					Kind:     string(p.Kind),
					Path:     p.Path(),
					Title:    p.Title,
					LeadForm: p.LeadForm.Enabled,
					FAQs:     len(p.FAQs),
				}
				if p.LeadForm.Enabled {
					row.LeadSource = p.LeadSource()
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if f == output.FormatJSON {
				return output.JSON(out, struct {
					Pages []pageRow `json:"pages"`
					Count int       `json:"count"`
				}{rows, len(rows)})
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				source := r.LeadSource
				if source == "" {
					source = "-"
				}
				table = append(table, []string{r.Slug, r.Kind, r.Path, output.Truncate(r.Title, 40), source, strconv.Itoa(r.FAQs)})
			}
			return output.Table(out, []string{"SLUG", "KIND", "PATH", "TITLE", "LEAD SOURCE", "FAQS"}, table)
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")

	pagesCmd.AddCommand(listCmd)
	return pagesCmd
}
