package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate-listings/services"
	"estate-listings/storage"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		qf  queryFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every listing matching the filters to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.listingQuery()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = a.cfg.CSVOutputPath
			}

			catalog, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			matched := services.Filter(catalog.Listings(), q.ListingType, q.Filter)
			services.SortListings(matched, q.Sort)

			w, err := storage.NewCSVWriter(out)
			if err != nil {
				return err
			}
			if err := w.Write(cmd.Context(), matched); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("csv: close: %w", err)
			}

			a.logger.Info("[export] Wrote %d listings to %s", len(matched), out)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d listings to %s\n", len(matched), out)
			return nil
		},
	}

	qf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output CSV path (or CSV_OUTPUT_PATH env)")
	return cmd
}
