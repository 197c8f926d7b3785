package cmd

import (
	"fmt"
	"strings"

	"github.com/nfrund/ledgerline/cmd/sitectl/internal/output"
	"github.com/nfrund/ledgerline/internal/topics"
	"github.com/spf13/cobra"

	// Event declarations register their topics on import.
	_ "github.com/nfrund/ledgerline/internal/analytics"
	_ "github.com/nfrund/ledgerline/internal/leads"
)

func newTopicsCmd() *cobra.Command {
	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "Explore the event topics modules publish and subscribe to",
		Long:  `Topics carry events between modules: a submitted enquiry, a failed relay,
a click on a call or WhatsApp link.

Examples:
  sitectl topics list
  sitectl topics list --module leads --format json
  sitectl topics get leads.enquiry.submitted`,
	}
	topicsCmd.AddCommand(newTopicsListCmd(), newTopicsGetCmd())
	return topicsCmd
}

func newTopicsListCmd() *cobra.Command {
	var format, module string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			registry := topics.Default()
			list := registry.List()
			if module != "" {
				list = registry.ListByModule(module)
			}

			out := cmd.OutOrStdout()
			if f == output.FormatJSON {
				if list == nil {
					list = []topics.Topic{}
				}
				return output.JSON(out, struct {
					Topics []topics.Topic `json:"topics"`
					Count  int            `json:"count"`
				}{list, len(list)})
			}

			if len(list) == 0 {
				msg := "No topics found"
				if module != "" {
					msg += fmt.Sprintf(" matching: module '%s'", module)
				}
				fmt.Fprintln(out, msg)
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, t := range list {
				rows = append(rows, []string{t.Name, t.Module, t.TypeName, output.Truncate(t.Description, 50)})
			}
			return output.Table(out, []string{"NAME", "MODULE", "PAYLOAD", "DESCRIPTION"}, rows)
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	listCmd.Flags().StringVarP(&module, "module", "m", "", "Filter topics by module name")
	return listCmd
}

func newTopicsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <topic-name>",
		Short: "Show a topic's module, payload type and fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := topics.ValidateName(name); err != nil {
				return err
			}
			t, ok := topics.Default().Get(name)
			if !ok {
				return fmt.Errorf("topic '%s' not found, use 'sitectl topics list' to see all topics", name)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Topic: %s\n", t.Name)
			fmt.Fprintf(out, "   Module: %s\n", t.Module)
			fmt.Fprintf(out, "   Description: %s\n", t.Description)
			fmt.Fprintf(out, "   Payload: %s\n", t.TypeName)
			if len(t.PayloadFields) > 0 {
				fmt.Fprintf(out, "   Fields: %s\n", strings.Join(t.PayloadFields, ", "))
			}
			return nil
		},
	}
}
