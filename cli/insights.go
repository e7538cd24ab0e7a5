package cli

import (
	"github.com/spf13/cobra"

	"estate-listings/services"
)

func newInsightsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print the market summary of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := services.NewInsightService(a.logger)
			svc.Print(cmd.OutOrStdout(), svc.Generate(catalog.Listings()))
			return nil
		},
	}
}
