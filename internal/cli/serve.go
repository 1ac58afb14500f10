package cli

import (
	"time"

	"github.com/spf13/cobra"

	"aivanta-site/internal/app"
	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/validator"
)

func newServeCommand(deps Deps) *cobra.Command {
	var port string
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config()
			if port != "" {
				cfg.Port = port
			}
			logger.InitWithLevel(cfg.LogLevel)
			validator.Init()

			application, err := app.New(cfg, app.Options{Catalog: deps.Catalog()})
			if err != nil {
				return err
			}
			return application.Serve(cmd.Context(), shutdownTimeout)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "grace period for in-flight requests")
	return cmd
}
