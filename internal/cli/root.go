// Package cli implements sitectl, the maintenance tool for the site content
// and its runtime.
package cli

import (
	"github.com/spf13/cobra"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/config"
)

// Deps are the collaborators commands run against. Tests swap them out.
type Deps struct {
	Catalog func() *catalog.Catalog
	Config  func() *config.Config
}

func defaultDeps() Deps {
	return Deps{
		Catalog: catalog.Default,
		Config:  config.New,
	}
}

// NewRootCommand builds the sitectl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Maintenance tool for the Aivanta site",
		Long: `sitectl checks and exports the compiled-in site content, lists the
registered page sections, flushes the rendered page cache and runs the server.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCatalogCommand(deps),
		newSectionsCommand(),
		newCacheCommand(deps),
		newServeCommand(deps),
	)
	return root
}
