package server

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"estate-listings/models"
	"estate-listings/services"
)

func badParam(field, msg string) error {
	return &services.ValidationError{Field: field, Msg: msg}
}

func intParam(v url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badParam(key, "must be an integer")
	}
	return n, nil
}

func floatParam(v url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badParam(key, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, badParam(key, "must be a finite number")
	}
	return f, nil
}

func boolParam(v url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badParam(key, "must be true or false")
	}
	return b, nil
}

// minCountParam reads a bedroom or bathroom minimum. "any" and "" mean 0.
func minCountParam(v url.Values, key string) (int, error) {
	if strings.EqualFold(strings.TrimSpace(v.Get(key)), "any") {
		return 0, nil
	}
	n, err := intParam(v, key, 0)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, badParam(key, "must not be negative")
	}
	return n, nil
}

func csvParam(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseListingQuery turns the query string of GET /api/listings into a
// ListingQuery. Page size validation is left to the query engine.
func parseListingQuery(v url.Values, defaultPageSize int) (models.ListingQuery, error) {
	var q models.ListingQuery

	if raw := v.Get("listingType"); strings.TrimSpace(raw) != "" {
		t, err := models.ParseListingType(raw)
		if err != nil {
			return q, badParam("listingType", "must be buy, rent or sell")
		}
		q.ListingType = t
	}

	propType, err := models.ParsePropertyTypeFilter(v.Get("type"))
	if err != nil {
		return q, badParam("type", "unknown property type")
	}

	minPrice, err := floatParam(v, "minPrice", 0)
	if err != nil {
		return q, err
	}
	maxPrice, err := floatParam(v, "maxPrice", 0)
	if err != nil {
		return q, err
	}
	if minPrice < 0 || maxPrice < 0 {
		return q, badParam("minPrice", "prices must not be negative")
	}
	if maxPrice > 0 && minPrice > maxPrice {
		return q, badParam("minPrice", "must not exceed maxPrice")
	}

	bedrooms, err := minCountParam(v, "bedrooms")
	if err != nil {
		return q, err
	}
	bathrooms, err := minCountParam(v, "bathrooms")
	if err != nil {
		return q, err
	}
	petFriendly, err := boolParam(v, "petFriendly")
	if err != nil {
		return q, err
	}
	furnished, err := boolParam(v, "furnished")
	if err != nil {
		return q, err
	}

	sort, err := models.ParseSort(v.Get("sort"))
	if err != nil {
		return q, badParam("sort", "must be newest, price-desc or price-asc")
	}

	page, err := intParam(v, "page", 1)
	if err != nil {
		return q, err
	}
	pageSize, err := intParam(v, "pageSize", defaultPageSize)
	if err != nil {
		return q, err
	}

	q.Filter = models.FilterSpec{
		Search:       strings.TrimSpace(v.Get("q")),
		Location:     strings.TrimSpace(v.Get("location")),
		Type:         propType,
		PriceRange:   models.PriceRange{Min: minPrice, Max: maxPrice},
		MinBedrooms:  bedrooms,
		MinBathrooms: bathrooms,
		Amenities:    csvParam(v, "amenities"),
		PetFriendly:  petFriendly,
		Furnished:    furnished,
	}
	q.Sort = sort
	q.Page = models.PageSpec{Size: pageSize, Number: page}
	return q, nil
}
