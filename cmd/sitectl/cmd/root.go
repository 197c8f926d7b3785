// Package cmd implements sitectl, the command-line companion to the site
// server. It inspects the content the server would load without starting it.
package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/ledgerline/internal/config"
	"github.com/nfrund/ledgerline/internal/content"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	contentDir string
	origin     string
}

// NewRootCmd builds the sitectl command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Inspect and validate the site's content and events",
		Long:  `sitectl is a command-line tool for the accountancy site.

It loads the same content the server does, either the embedded defaults
or the directory named by --content-dir (CONTENT_DIR), and reports on it.

Use "sitectl [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.contentDir, "content-dir", os.Getenv("CONTENT_DIR"), "Directory holding site.yaml and pages/ (embedded content when empty)")
	root.PersistentFlags().StringVar(&opts.origin, "origin", originFromEnv(), "Absolute site origin used for structured data URLs")

	root.AddCommand(
		newVersionCmd(),
		newPagesCmd(opts),
		newJSONLDCmd(opts),
		newContentCmd(opts),
		newTopicsCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func originFromEnv() string {
	return config.FromEnv(os.Getenv).SiteOrigin
}

// loadCatalog loads and validates the content selected by --content-dir.
func (o *globalOptions) loadCatalog() (*content.Catalog, error) {
	fsys, err := content.Source(o.contentDir)
	if err != nil {
		return nil, err
	}
	return content.NewCatalog(fsys)
}

func (o *globalOptions) sourceName() string {
	if o.contentDir == "" {
		return "embedded content"
	}
	return o.contentDir
}
