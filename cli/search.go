package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"estate-listings/models"
	"estate-listings/services"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		qf       queryFlags
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter, sort and page through listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.listingQuery()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("page-size") {
				pageSize = a.cfg.PageSize
			}
			q.Page = models.PageSpec{Size: pageSize, Number: page}

			catalog, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			result, err := services.NewQueryEngine(a.logger).Query(catalog.Listings(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printListings(out, result.Listings)
			fmt.Fprintf(out, "\nPage %d of %d (%d listings, %d filters active)\n",
				result.Page, result.TotalPages, result.TotalCount,
				services.ActiveFilterCount(q.Filter, models.DefaultPriceRange(q.ListingType)))
			return nil
		},
	}

	qf.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", models.DefaultPageSize, "Listings per page (or PAGE_SIZE env)")
	return cmd
}

func printListings(w io.Writer, listings []*models.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No listings found.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-5s  %-32s  %-18s  %14s  %4s  %5s\n", "ID", "TYPE", "TITLE", "LOCATION", "PRICE", "BEDS", "BATHS")
	fmt.Fprintf(w, "%-6s  %-5s  %-32s  %-18s  %14s  %4s  %5s\n", "--", "----", "-----", "--------", "-----", "----", "-----")
	for _, l := range listings {
		fmt.Fprintf(w, "%-6s  %-5s  %-32s  %-18s  %14s  %4d  %5d\n",
			l.ID, l.ListingType, clip(l.Title, 32), clip(l.Location(), 18), formatPrice(l), l.Bedrooms, l.Bathrooms)
	}
}

// formatPrice renders "$1,250,000" or "$2,400/mo".
func formatPrice(l *models.Listing) string {
	s := "$" + humanize.Commaf(l.Price)
	if l.PriceType == models.PriceRent {
		s += "/mo"
	}
	return s
}

// clip shortens s to at most n runes, marking the cut with an ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
