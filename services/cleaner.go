package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"estate-listings/models"
	"estate-listings/utils"
)

var (
	// priceRegexp captures the numeric part of "$1,250,000", "$2,400/mo" or "$1.2M"
	priceRegexp = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([kKmM]\b)?`)
)

// availableDateLayout is the format of the optional availableDate field.
const availableDateLayout = "2006-01-02"

// Cleaner transforms dataset rows into typed, validated Listings.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean converts raw rows in order. Rows with an empty or duplicate id, an
// unknown enum value or an unreadable price are dropped with a warning.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.Listing {
	seen := utils.NewIDSet()
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			c.logger.Warn("[cleaner] Dropping listing with empty id: %s", r.Title)
			continue
		}

		if seen.Contains(id) {
			c.logger.Debug("[cleaner] Duplicate id skipped: %s", id)
			continue
		}

		listing, err := c.convert(id, r)
		if err != nil {
			c.logger.Warn("[cleaner] Dropping listing %s: %v", id, err)
			continue
		}
		seen.Add(id)
		result = append(result, listing)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

func (c *Cleaner) convert(id string, r *models.RawListing) (*models.Listing, error) {
	listingType, err := models.ParseListingType(r.ListingType)
	if err != nil {
		return nil, err
	}
	propertyType, err := models.ParsePropertyType(r.Type)
	if err != nil {
		return nil, err
	}

	status := models.StatusAvailable
	if strings.TrimSpace(r.Status) != "" {
		if status, err = models.ParseStatus(r.Status); err != nil {
			return nil, err
		}
	}

	priceType := models.PriceSale
	if listingType == models.ListingRent {
		priceType = models.PriceRent
	}
	if strings.TrimSpace(r.PriceType) != "" {
		if priceType, err = models.ParsePriceType(r.PriceType); err != nil {
			return nil, err
		}
	}

	price, ok := parsePrice(r.Price)
	if !ok {
		return nil, fmt.Errorf("price %q: %w", r.Price, models.ErrUnknownValue)
	}

	var available *time.Time
	if d := strings.TrimSpace(r.AvailableDate); d != "" {
		t, err := time.Parse(availableDateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("available date %q: %w", d, err)
		}
		available = &t
	}

	return &models.Listing{
		ID:            id,
		Title:         normaliseText(r.Title),
		Address:       normaliseText(r.Address),
		City:          normaliseText(r.City),
		State:         normaliseText(r.State),
		Price:         price,
		PriceType:     priceType,
		Type:          propertyType,
		Bedrooms:      nonNegative(r.Bedrooms),
		Bathrooms:     nonNegative(r.Bathrooms),
		Sqft:          nonNegative(r.Sqft),
		Image:         strings.TrimSpace(r.Image),
		Images:        r.Images,
		Featured:      r.Featured,
		Status:        status,
		ListingType:   listingType,
		Amenities:     normaliseAmenities(r.Amenities),
		YearBuilt:     r.YearBuilt,
		Parking:       nonNegative(r.Parking),
		Furnished:     r.Furnished,
		PetFriendly:   r.PetFriendly,
		AvailableDate: available,
		Description:   normaliseText(r.Description),
	}, nil
}

// parsePrice extracts a price from display text.
// Examples:
//
//	"$1,250,000" → 1250000
//	"$2,400/mo"  → 2400
//	"$1.2M"      → 1200000
func parsePrice(raw string) (float64, bool) {
	match := priceRegexp.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return 0, false
	}

	val, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(match[2]) {
	case "k":
		val *= 1_000
	case "m":
		val *= 1_000_000
	}
	return math.Round(val*100) / 100, true
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// normaliseAmenities trims tags and drops blanks and repeats, keeping order.
func normaliseAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = normaliseText(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
