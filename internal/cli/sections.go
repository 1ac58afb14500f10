package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"aivanta-site/internal/sections"
)

func newSectionsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the registered page section types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := sections.DefaultRegistry()
			out := cmd.OutOrStdout()

			if asJSON {
				raw, err := registry.MarshalMetadataJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(raw))
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("Type", "Name", "Page", "Scripts")
			for _, meta := range registry.ListMetadata() {
				table.Append(meta.Type, meta.Name, meta.Page, strings.Join(meta.Scripts, " "))
			}
			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print metadata as JSON")
	return cmd
}
