package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"estate-listings/models"
	"estate-listings/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(listings []*models.Listing) *models.InsightReport {
	report := &models.InsightReport{
		ListingsByLocation: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	byType := make(map[models.ListingType][]*models.Listing)
	cityTotals := make(map[string]float64)
	cityPriced := make(map[string]int)

	for _, l := range listings {
		byType[l.ListingType] = append(byType[l.ListingType], l)
		if l.Featured {
			report.Featured++
		}
		if l.Status == models.StatusAvailable {
			report.Available++
		}

		loc := l.Location()
		report.ListingsByLocation[loc]++
		// Rents and sale prices do not average together.
		if l.PriceType != models.PriceRent && l.Price > 0 {
			cityTotals[loc] += l.Price
			cityPriced[loc]++
		}
	}

	for _, t := range []models.ListingType{models.ListingBuy, models.ListingRent, models.ListingSell} {
		if group := byType[t]; len(group) > 0 {
			report.ByType = append(report.ByType, priceStats(t, group))
		}
	}

	for loc, count := range report.ListingsByLocation {
		summary := models.CitySummary{Location: loc, PropertyCount: count}
		if n := cityPriced[loc]; n > 0 {
			summary.AveragePrice = round2(cityTotals[loc] / float64(n))
		}
		report.Cities = append(report.Cities, summary)
	}
	sort.Slice(report.Cities, func(i, j int) bool {
		if report.Cities[i].PropertyCount != report.Cities[j].PropertyCount {
			return report.Cities[i].PropertyCount > report.Cities[j].PropertyCount
		}
		return report.Cities[i].Location < report.Cities[j].Location
	})

	s.logger.Debug("[insights] Report over %d listings in %d cities", report.TotalListings, len(report.Cities))
	return report
}

// priceStats only counts listings with a positive price.
func priceStats(t models.ListingType, group []*models.Listing) models.PriceStats {
	stats := models.PriceStats{ListingType: t, Count: len(group)}

	var total float64
	priced := 0
	for _, l := range group {
		if l.Price <= 0 {
			continue
		}
		if priced == 0 || l.Price < stats.MinPrice {
			stats.MinPrice = l.Price
		}
		if priced == 0 || l.Price > stats.MaxPrice {
			stats.MaxPrice = l.Price
			stats.MostExpensive = l
		}
		total += l.Price
		priced++
	}
	if priced > 0 {
		stats.AveragePrice = round2(total / float64(priced))
	}
	return stats
}

func (s *InsightService) Print(w io.Writer, r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintf(w, "  MARKET INSIGHTS\n")
	fmt.Fprintf(w, "%s\n\n", sep)

	fmt.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Total listings : %d\n", r.TotalListings)
	fmt.Fprintf(w, "  Available      : %d\n", r.Available)
	fmt.Fprintf(w, "  Featured       : %d\n", r.Featured)
	fmt.Fprintln(w)

	for _, st := range r.ByType {
		fmt.Fprintf(w, "  %s listings (%d)\n", strings.ToUpper(string(st.ListingType)), st.Count)
		fmt.Fprintf(w, "  %s\n", thin)
		if st.AveragePrice > 0 {
			fmt.Fprintf(w, "  Average price : %s\n", money(st.AveragePrice))
			fmt.Fprintf(w, "  Minimum price : %s\n", money(st.MinPrice))
			fmt.Fprintf(w, "  Maximum price : %s\n", money(st.MaxPrice))
		} else {
			fmt.Fprintf(w, "  No price data available\n")
		}
		if st.MostExpensive != nil {
			fmt.Fprintf(w, "  Top listing   : %s (%s)\n", truncate(st.MostExpensive.Title, 36), st.MostExpensive.Location())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  Listings by Location\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Cities) == 0 {
		fmt.Fprintf(w, "  No location data\n")
	}
	for _, c := range r.Cities {
		bar := strings.Repeat("█", c.PropertyCount)
		fmt.Fprintf(w, "  %-24s %s (%d)", truncate(c.Location, 22), bar, c.PropertyCount)
		if c.AveragePrice > 0 {
			fmt.Fprintf(w, " avg %s", money(c.AveragePrice))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%s\n\n", sep)
}

// money renders a price as "$1,250,000".
func money(f float64) string {
	return "$" + humanize.Commaf(round2(f))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
