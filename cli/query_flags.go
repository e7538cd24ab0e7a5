package cli

import (
	"github.com/spf13/cobra"

	"estate-listings/models"
)

// queryFlags are the listing filter flags shared by search and export.
type queryFlags struct {
	listingType  string
	search       string
	location     string
	propertyType string
	minPrice     float64
	maxPrice     float64
	bedrooms     int
	bathrooms    int
	amenities    []string
	petFriendly  bool
	furnished    bool
	sort         string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.listingType, "type", "", "Listing type: buy, rent or sell (all when empty)")
	fs.StringVarP(&f.search, "query", "q", "", "Text search over title and address")
	fs.StringVar(&f.location, "location", "", `Location substring, e.g. "Austin, TX"`)
	fs.StringVar(&f.propertyType, "property-type", "", "house, apartment, condo, townhouse or villa")
	fs.Float64Var(&f.minPrice, "min-price", 0, "Minimum price")
	fs.Float64Var(&f.maxPrice, "max-price", 0, "Maximum price (0 for no limit)")
	fs.IntVar(&f.bedrooms, "bedrooms", 0, "Minimum bedrooms (0 for any)")
	fs.IntVar(&f.bathrooms, "bathrooms", 0, "Minimum bathrooms (0 for any)")
	fs.StringSliceVar(&f.amenities, "amenity", nil, "Required amenity, repeatable or comma separated")
	fs.BoolVar(&f.petFriendly, "pet-friendly", false, "Only pet-friendly listings")
	fs.BoolVar(&f.furnished, "furnished", false, "Only furnished listings")
	fs.StringVar(&f.sort, "sort", "newest", "newest, price-desc or price-asc")
}

func (f *queryFlags) listingQuery() (models.ListingQuery, error) {
	var q models.ListingQuery

	if f.listingType != "" {
		t, err := models.ParseListingType(f.listingType)
		if err != nil {
			return q, err
		}
		q.ListingType = t
	}
	propType, err := models.ParsePropertyTypeFilter(f.propertyType)
	if err != nil {
		return q, err
	}
	sort, err := models.ParseSort(f.sort)
	if err != nil {
		return q, err
	}

	q.Filter = models.FilterSpec{
		Search:       f.search,
		Location:     f.location,
		Type:         propType,
		PriceRange:   models.PriceRange{Min: f.minPrice, Max: f.maxPrice},
		MinBedrooms:  f.bedrooms,
		MinBathrooms: f.bathrooms,
		Amenities:    f.amenities,
		PetFriendly:  f.petFriendly,
		Furnished:    f.furnished,
	}
	q.Sort = sort
	return q, nil
}
