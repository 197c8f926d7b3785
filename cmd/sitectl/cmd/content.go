package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newContentCmd(opts *globalOptions) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Work with the site's content files",
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the content without starting the server",
		Long:  `Load site.yaml and pages/*.yaml, render their markdown and check every
page the way the server does at startup and on reload.

Examples:
  sitectl content validate
  sitectl content validate --content-dir ./content`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog, err := opts.loadCatalog()
			if err != nil {
				fmt.Fprintf(out, "❌ Content in %s is invalid\n", opts.sourceName())
				return err
			}

			pages := catalog.Pages()
			fmt.Fprintf(out, "✅ Content in %s is valid\n", opts.sourceName())
			fmt.Fprintf(out, "   Business: %s\n", catalog.Site().Business.Name)
			fmt.Fprintf(out, "   Pages: %d (%d services)\n", len(pages), len(catalog.Services()))
			return nil
		},
	}

	contentCmd.AddCommand(validateCmd)
	return contentCmd
}
