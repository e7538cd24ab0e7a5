package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"estate-listings/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			catalog, err := a.loadCatalog(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}

			srv := server.New(catalog, a.logger, server.WithPageSize(a.cfg.PageSize))
			return srv.ListenAndServe(ctx, a.cfg.HTTPAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (or HTTP_ADDR env)")
	return cmd
}
