package models

import (
	"fmt"
	"strings"
)

// PriceRange is an inclusive [Min, Max] price window. A Max of zero or less
// leaves the upper end open.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Max <= 0 || price <= r.Max
}

// Default price windows of the Buy and Rent pages.
var (
	BuyPriceRange  = PriceRange{Min: 0, Max: 5_000_000}
	RentPriceRange = PriceRange{Min: 0, Max: 10_000}
)

// DefaultPriceRange returns the page-wide default window for a listing type.
func DefaultPriceRange(t ListingType) PriceRange {
	if t == ListingRent {
		return RentPriceRange
	}
	return BuyPriceRange
}

// FilterSpec holds the user-selected predicates. Every zero value means
// "no filter" for that dimension.
type FilterSpec struct {
	Search       string       `json:"search,omitempty"`
	Location     string       `json:"location,omitempty"`
	Type         PropertyType `json:"type,omitempty"`
	PriceRange   PriceRange   `json:"priceRange"`
	MinBedrooms  int          `json:"minBedrooms,omitempty"`
	MinBathrooms int          `json:"minBathrooms,omitempty"`
	Amenities    []string     `json:"amenities,omitempty"`
	PetFriendly  bool         `json:"petFriendly,omitempty"`
	Furnished    bool         `json:"furnished,omitempty"`
}

// SortSpec selects the result ordering.
type SortSpec string

const (
	SortNewest    SortSpec = "newest"
	SortPriceDesc SortSpec = "price-desc"
	SortPriceAsc  SortSpec = "price-asc"
)

// ParseSort accepts the canonical names plus the option values used by the
// Buy ("price-high", "price-low") and Rent ("rent-high", "rent-low") pages.
// An empty string means newest.
func ParseSort(s string) (SortSpec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return SortNewest, nil
	case "price-desc", "price-high", "rent-high":
		return SortPriceDesc, nil
	case "price-asc", "price-low", "rent-low":
		return SortPriceAsc, nil
	}
	return "", fmt.Errorf("sort %q: %w", s, ErrUnknownValue)
}

// DefaultPageSize is the number of cards per page on the listing pages.
const DefaultPageSize = 9

// PageSpec selects one page of the sorted result. Number is 1-indexed.
type PageSpec struct {
	Size   int `json:"size"`
	Number int `json:"number"`
}

// ListingQuery bundles everything a listing page sends to the query engine.
// ListingType is the page-level pin; an empty value matches every listing.
type ListingQuery struct {
	ListingType ListingType `json:"listingType,omitempty"`
	Filter      FilterSpec  `json:"filter"`
	Sort        SortSpec    `json:"sort"`
	Page        PageSpec    `json:"page"`
}

// QueryResult is one page of a filtered, sorted listing sequence.
type QueryResult struct {
	TotalCount int        `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	Listings   []*Listing `json:"listings"`
}
