package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"procsim/internal/api"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timeline API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := api.NewApp(api.NewHandler(logger, cfg.Quantum))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			go func() {
				<-ctx.Done()
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			logger.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
