package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ListingType pins a listing to the Buy, Rent or Sell section of the site.
type ListingType string

const (
	ListingBuy  ListingType = "buy"
	ListingRent ListingType = "rent"
	ListingSell ListingType = "sell"
)

// PropertyType is the structural type of a property.
type PropertyType string

const (
	House     PropertyType = "house"
	Apartment PropertyType = "apartment"
	Condo     PropertyType = "condo"
	Townhouse PropertyType = "townhouse"
	Villa     PropertyType = "villa"
)

// AllTypes is the option label meaning "no type filter".
const AllTypes = "All Types"

// PropertyTypes lists the structural types in display order.
var PropertyTypes = []PropertyType{House, Apartment, Condo, Townhouse, Villa}

// Status is the market status of a listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
)

// PriceType says whether Price is a sale price or a monthly rent.
type PriceType string

const (
	PriceSale PriceType = "sale"
	PriceRent PriceType = "rent"
)

// ErrUnknownValue is returned by the Parse helpers for values outside the enum.
var ErrUnknownValue = errors.New("unknown value")

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseListingType parses "buy", "rent" or "sell" in any case.
func ParseListingType(s string) (ListingType, error) {
	switch t := ListingType(normalise(s)); t {
	case ListingBuy, ListingRent, ListingSell:
		return t, nil
	}
	return "", fmt.Errorf("listing type %q: %w", s, ErrUnknownValue)
}

// ParsePropertyType parses a structural type in any case.
func ParsePropertyType(s string) (PropertyType, error) {
	t := PropertyType(normalise(s))
	for _, known := range PropertyTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("property type %q: %w", s, ErrUnknownValue)
}

// ParsePropertyTypeFilter is ParsePropertyType for filter input: an empty
// string and the "All Types" label both mean no filter and return "".
func ParsePropertyTypeFilter(s string) (PropertyType, error) {
	if normalise(s) == "" || normalise(s) == normalise(AllTypes) {
		return "", nil
	}
	return ParsePropertyType(s)
}

// ParseStatus parses a listing status in any case.
func ParseStatus(s string) (Status, error) {
	switch st := Status(normalise(s)); st {
	case StatusAvailable, StatusPending, StatusSold, StatusRented:
		return st, nil
	}
	return "", fmt.Errorf("status %q: %w", s, ErrUnknownValue)
}

// ParsePriceType parses "sale" or "rent". An empty value is derived from the
// listing type by the caller.
func ParsePriceType(s string) (PriceType, error) {
	switch pt := PriceType(normalise(s)); pt {
	case PriceSale, PriceRent:
		return pt, nil
	}
	return "", fmt.Errorf("price type %q: %w", s, ErrUnknownValue)
}

// RawListing is a dataset row as it appears in the YAML/JSON dataset file,
// before enum parsing and price cleaning.
type RawListing struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Address       string   `yaml:"address" json:"address"`
	City          string   `yaml:"city" json:"city"`
	State         string   `yaml:"state" json:"state"`
	Price         string   `yaml:"price" json:"price"`
	PriceType     string   `yaml:"priceType" json:"priceType"`
	Type          string   `yaml:"type" json:"type"`
	Bedrooms      int      `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms     int      `yaml:"bathrooms" json:"bathrooms"`
	Sqft          int      `yaml:"sqft" json:"sqft"`
	Image         string   `yaml:"image" json:"image"`
	Images        []string `yaml:"images" json:"images"`
	Featured      bool     `yaml:"featured" json:"featured"`
	Status        string   `yaml:"status" json:"status"`
	ListingType   string   `yaml:"listingType" json:"listingType"`
	Amenities     []string `yaml:"amenities" json:"amenities"`
	YearBuilt     int      `yaml:"yearBuilt" json:"yearBuilt"`
	Parking       int      `yaml:"parking" json:"parking"`
	Furnished     bool     `yaml:"furnished" json:"furnished"`
	PetFriendly   bool     `yaml:"petFriendly" json:"petFriendly"`
	AvailableDate string   `yaml:"availableDate" json:"availableDate"`
	Description   string   `yaml:"description" json:"description"`
}

// Listing is a cleaned, typed property record. Listings are shared read-only
// between queries and must never be modified after loading.
type Listing struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	Price         float64      `json:"price"`
	PriceType     PriceType    `json:"priceType"`
	Type          PropertyType `json:"type"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	Sqft          int          `json:"sqft"`
	Image         string       `json:"image,omitempty"`
	Images        []string     `json:"images,omitempty"`
	Featured      bool         `json:"featured"`
	Status        Status       `json:"status"`
	ListingType   ListingType  `json:"listingType"`
	Amenities     []string     `json:"amenities"`
	YearBuilt     int          `json:"yearBuilt,omitempty"`
	Parking       int          `json:"parking"`
	Furnished     bool         `json:"furnished"`
	PetFriendly   bool         `json:"petFriendly"`
	AvailableDate *time.Time   `json:"availableDate,omitempty"`
	Description   string       `json:"description,omitempty"`
}

// Location renders the "City, State" string the location filter matches against.
func (l *Listing) Location() string {
	return l.City + ", " + l.State
}

// HasAmenity reports whether the listing carries the exact amenity tag.
func (l *Listing) HasAmenity(a string) bool {
	for _, have := range l.Amenities {
		if have == a {
			return true
		}
	}
	return false
}
