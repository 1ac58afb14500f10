package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aivanta-site/internal/handlers"
	"aivanta-site/pkg/cache"
)

func newCacheCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered page cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Drop every cached page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config()
			pageCache, err := cache.NewCache(cfg.RedisURL, true)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			defer pageCache.Close()

			removed, err := handlers.FlushPageCache(cmd.Context(), pageCache)
			if err != nil {
				return fmt.Errorf("flush page cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached pages\n", removed)
			return nil
		},
	})
	return cmd
}
