package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aivanta-site/internal/catalog"
)

func newCatalogCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the compiled-in site content",
	}
	cmd.AddCommand(
		newCatalogValidateCommand(deps),
		newCatalogListCommand(deps),
		newCatalogExportCommand(deps),
	)
	return cmd
}

func newCatalogValidateCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check slugs and ids for duplicates and dangling references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := deps.Catalog()
			if err := cat.Validate(); err != nil {
				return fmt.Errorf("catalog is invalid: %w", err)
			}

			stats := cat.Stats()
			fmt.Fprintf(cmd.OutOrStdout(),
				"catalog ok: %d categories, %d sub-services, %d use cases, %d faq, %d process steps, %d tools\n",
				stats.Categories, stats.SubServices, stats.UseCases, stats.FAQ, stats.ProcessSteps, stats.Tools)
			return nil
		},
	}
}

func newCatalogListCommand(deps Deps) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print catalog entries as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := deps.Catalog()
			out := cmd.OutOrStdout()

			switch kind {
			case "categories":
				return listCategories(out, cat)
			case "subservices":
				return listSubServices(out, cat)
			case "usecases":
				return listUseCases(out, cat)
			case "faq":
				return listFAQ(out, cat)
			default:
				return fmt.Errorf("unknown kind %q (categories, subservices, usecases, faq)", kind)
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "categories", "what to list: categories, subservices, usecases, faq")
	return cmd
}

func listCategories(out io.Writer, cat *catalog.Catalog) error {
	table := tablewriter.NewWriter(out)
	table.Header("Slug", "Title", "Icon", "Sub-services", "Use cases")
	for _, c := range cat.Categories() {
		table.Append(c.Slug, c.Title, string(c.Icon), strconv.Itoa(len(c.SubServices)), strconv.Itoa(len(cat.UseCasesFor(c.Slug))))
	}
	return table.Render()
}

func listSubServices(out io.Writer, cat *catalog.Catalog) error {
	table := tablewriter.NewWriter(out)
	table.Header("Category", "ID", "Title")
	for _, c := range cat.Categories() {
		for _, sub := range c.SubServices {
			table.Append(c.Slug, sub.ID, sub.Title)
		}
	}
	return table.Render()
}

func listUseCases(out io.Writer, cat *catalog.Catalog) error {
	table := tablewriter.NewWriter(out)
	table.Header("ID", "Category", "Title")
	for _, uc := range cat.UseCases() {
		table.Append(uc.ID, uc.Category, uc.Title)
	}
	return table.Render()
}

func listFAQ(out io.Writer, cat *catalog.Catalog) error {
	table := tablewriter.NewWriter(out)
	table.Header("#", "Question")
	for i, item := range cat.FAQ() {
		table.Append(strconv.Itoa(i+1), item.Question)
	}
	return table.Render()
}

func newCatalogExportCommand(deps Deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportCatalog(cmd.OutOrStdout(), deps.Catalog().Snapshot(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func exportCatalog(out io.Writer, content catalog.Content, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(content)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (json, yaml)", format)
	}
}
