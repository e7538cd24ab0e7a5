package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate-listings/services"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the dataset's listings in the configured database",
		Long:  "seed cleans the dataset's listings and replaces the listings table of the database selected by DB_DRIVER with them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			listings := services.NewCleaner(a.logger).Clean(ds.Listings)
			if len(listings) == 0 {
				return fmt.Errorf("seed: all %d listings were dropped during cleaning", len(ds.Listings))
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Write(cmd.Context(), listings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d listings into %s\n", len(listings), a.cfg.DBDriver)
			return nil
		},
	}
}
