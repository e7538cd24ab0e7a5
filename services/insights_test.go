package services

import (
	"bytes"
	"strings"
	"testing"

	"estate-listings/models"
)

func sampleListings() []*models.Listing {
	return []*models.Listing{
		{ID: "a", ListingType: models.ListingBuy, PriceType: models.PriceSale, Title: "Villa A", Price: 900000, City: "Austin", State: "TX", Status: models.StatusAvailable, Featured: true},
		{ID: "b", ListingType: models.ListingBuy, PriceType: models.PriceSale, Title: "Condo B", Price: 300000, City: "Austin", State: "TX", Status: models.StatusPending},
		{ID: "c", ListingType: models.ListingRent, PriceType: models.PriceRent, Title: "Loft C", Price: 2500, City: "Austin", State: "TX", Status: models.StatusAvailable},
		{ID: "d", ListingType: models.ListingRent, PriceType: models.PriceRent, Title: "Flat D", Price: 0, City: "Miami", State: "FL", Status: models.StatusRented},
		{ID: "e", ListingType: models.ListingSell, PriceType: models.PriceSale, Title: "House E", Price: 600000, City: "Miami", State: "FL", Status: models.StatusSold},
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if r.TotalListings != 5 {
		t.Errorf("TotalListings: got %d, want 5", r.TotalListings)
	}
	if r.Available != 2 || r.Featured != 1 {
		t.Errorf("Available/Featured: got %d/%d, want 2/1", r.Available, r.Featured)
	}
	if len(r.ByType) != 3 {
		t.Fatalf("ByType: got %d groups, want 3", len(r.ByType))
	}
}

func TestInsightPrices(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	buy := r.ByType[0]
	if buy.ListingType != models.ListingBuy {
		t.Fatalf("ByType[0]: got %s, want buy", buy.ListingType)
	}
	if buy.AveragePrice != 600000 || buy.MinPrice != 300000 || buy.MaxPrice != 900000 {
		t.Errorf("buy stats: got avg=%.0f min=%.0f max=%.0f", buy.AveragePrice, buy.MinPrice, buy.MaxPrice)
	}
	if buy.MostExpensive == nil || buy.MostExpensive.ID != "a" {
		t.Errorf("buy MostExpensive: got %+v, want a", buy.MostExpensive)
	}

	rent := r.ByType[1]
	if rent.Count != 2 || rent.AveragePrice != 2500 {
		t.Errorf("rent stats: got count=%d avg=%.0f, want 2 and 2500 (zero price ignored)", rent.Count, rent.AveragePrice)
	}
}

func TestInsightCitySummaries(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())

	if r.ListingsByLocation["Austin, TX"] != 3 || r.ListingsByLocation["Miami, FL"] != 2 {
		t.Errorf("ListingsByLocation: got %v", r.ListingsByLocation)
	}
	if len(r.Cities) != 2 || r.Cities[0].Location != "Austin, TX" {
		t.Fatalf("Cities: got %+v, want Austin first", r.Cities)
	}
	// Austin averages sale prices only: (900000 + 300000) / 2.
	if r.Cities[0].AveragePrice != 600000 {
		t.Errorf("Austin average: got %.0f, want 600000", r.Cities[0].AveragePrice)
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(nil)
	if r.TotalListings != 0 {
		t.Errorf("expected 0 total listings for empty input")
	}
}

func TestInsightPrint(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	var buf bytes.Buffer
	svc.Print(&buf, svc.Generate(sampleListings()))

	out := buf.String()
	for _, want := range []string{"MARKET INSIGHTS", "$900,000", "Austin, TX"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
