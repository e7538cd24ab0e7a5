package services

import (
	"strings"

	"golang.org/x/exp/slices"

	"estate-listings/models"
	"estate-listings/utils"
)

// QueryEngine runs the filter → sort → paginate pipeline behind the Buy and
// Rent pages. It holds no state between calls.
type QueryEngine struct {
	logger *utils.Logger
}

// NewQueryEngine creates a QueryEngine with the given logger.
func NewQueryEngine(logger *utils.Logger) *QueryEngine {
	return &QueryEngine{logger: logger}
}

// Query filters records, stably sorts the survivors and returns the requested
// page. records is never modified. A page past the last one (or below 1)
// yields an empty slice; only a non-positive page size is an error.
func (e *QueryEngine) Query(records []*models.Listing, q models.ListingQuery) (*models.QueryResult, error) {
	if q.Page.Size <= 0 {
		return nil, invalid("page.size", "must be positive, got %d", q.Page.Size)
	}

	filtered := Filter(records, q.ListingType, q.Filter)
	SortListings(filtered, q.Sort)

	total := len(filtered)
	result := &models.QueryResult{
		TotalCount: total,
		TotalPages: pageCount(total, q.Page.Size),
		Page:       q.Page.Number,
		PageSize:   q.Page.Size,
		Listings:   pageSlice(filtered, q.Page),
	}

	e.logger.Debug("[query] %s: %d of %d listings match, page %d/%d",
		displayType(q.ListingType), total, len(records), q.Page.Number, result.TotalPages)
	return result, nil
}

// Filter returns, in input order, the records that pass every active
// predicate. The returned slice is freshly allocated.
func Filter(records []*models.Listing, listingType models.ListingType, f models.FilterSpec) []*models.Listing {
	m := newMatcher(listingType, f)
	out := make([]*models.Listing, 0, len(records))
	for _, l := range records {
		if m.match(l) {
			out = append(out, l)
		}
	}
	return out
}

// SortListings orders listings in place. Ties keep their relative order.
func SortListings(listings []*models.Listing, s models.SortSpec) {
	switch s {
	case models.SortPriceDesc:
		slices.SortStableFunc(listings, func(a, b *models.Listing) int {
			return comparePrice(b.Price, a.Price)
		})
	case models.SortPriceAsc:
		slices.SortStableFunc(listings, func(a, b *models.Listing) int {
			return comparePrice(a.Price, b.Price)
		})
	}
}

// ActiveFilterCount counts the filter dimensions that differ from their
// default, for the badge on the Filters button.
func ActiveFilterCount(f models.FilterSpec, defaultRange models.PriceRange) int {
	active := []bool{
		f.Location != "",
		f.Type != "",
		f.MinBedrooms > 0,
		f.MinBathrooms > 0,
		len(f.Amenities) > 0,
		f.PetFriendly,
		f.Furnished,
		priceNarrowed(f.PriceRange, defaultRange),
	}

	n := 0
	for _, a := range active {
		if a {
			n++
		}
	}
	return n
}

func priceNarrowed(r, def models.PriceRange) bool {
	if r.Min > def.Min {
		return true
	}
	return r.Max > 0 && (def.Max <= 0 || r.Max < def.Max)
}

// matcher holds the lower-cased forms of the filter so each record check
// does not redo them.
type matcher struct {
	listingType models.ListingType
	search      string
	f           models.FilterSpec
}

func newMatcher(listingType models.ListingType, f models.FilterSpec) matcher {
	return matcher{
		listingType: listingType,
		search:      strings.ToLower(f.Search),
		f:           f,
	}
}

func (m matcher) match(l *models.Listing) bool {
	if m.listingType != "" && l.ListingType != m.listingType {
		return false
	}
	if m.search != "" &&
		!strings.Contains(strings.ToLower(l.Title), m.search) &&
		!strings.Contains(strings.ToLower(l.Address), m.search) {
		return false
	}
	if m.f.Location != "" && !strings.Contains(l.Location(), m.f.Location) {
		return false
	}
	if m.f.Type != "" && l.Type != m.f.Type {
		return false
	}
	if !m.f.PriceRange.Contains(l.Price) {
		return false
	}
	if m.f.MinBedrooms > 0 && l.Bedrooms < m.f.MinBedrooms {
		return false
	}
	if m.f.MinBathrooms > 0 && l.Bathrooms < m.f.MinBathrooms {
		return false
	}
	for _, a := range m.f.Amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	if m.f.PetFriendly && !l.PetFriendly {
		return false
	}
	if m.f.Furnished && !l.Furnished {
		return false
	}
	return true
}

func pageSlice(listings []*models.Listing, p models.PageSpec) []*models.Listing {
	if p.Number < 1 {
		return []*models.Listing{}
	}
	// Compare page indexes before multiplying so huge inputs cannot overflow.
	if len(listings) == 0 || p.Number-1 > (len(listings)-1)/p.Size {
		return []*models.Listing{}
	}
	start := (p.Number - 1) * p.Size
	end := len(listings)
	if end-start > p.Size {
		end = start + p.Size
	}
	return listings[start:end]
}

// pageCount is ceil(total/size) without the overflow of total+size-1.
func pageCount(total, size int) int {
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func displayType(t models.ListingType) string {
	if t == "" {
		return "all"
	}
	return string(t)
}
