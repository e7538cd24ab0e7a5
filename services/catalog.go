package services

import (
	"fmt"
	"sort"

	"estate-listings/models"
)

// featuredCount is how many cards the home page shows per tab.
const featuredCount = 4

// Catalog owns the listing collection and the static site content. It is
// built once at startup and only read afterwards.
type Catalog struct {
	listings []*models.Listing
	byID     map[string]*models.Listing
	content  models.Content
}

// NewCatalog indexes listings by id. listings must already be cleaned.
func NewCatalog(listings []*models.Listing, content models.Content) *Catalog {
	byID := make(map[string]*models.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	return &Catalog{listings: listings, byID: byID, content: content}
}

// Listings returns the collection in dataset order. Callers must not modify it.
func (c *Catalog) Listings() []*models.Listing {
	return c.listings
}

func (c *Catalog) Len() int { return len(c.listings) }

// Listing looks a listing up by id.
func (c *Catalog) Listing(id string) (*models.Listing, error) {
	l, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("listing %q: %w", id, ErrNotFound)
	}
	return l, nil
}

// Featured returns the home-page preview for a tab: the first listings of
// that type for buy and rent, the first featured listings for sell.
func (c *Catalog) Featured(tab models.ListingType) []*models.Listing {
	out := make([]*models.Listing, 0, featuredCount)
	for _, l := range c.listings {
		if len(out) == featuredCount {
			break
		}
		keep := l.ListingType == tab
		if tab == models.ListingSell {
			keep = l.Featured
		}
		if keep {
			out = append(out, l)
		}
	}
	return out
}

// FilterOptions are the choices offered by the filter sidebar.
type FilterOptions struct {
	Locations     []string             `json:"locations"`
	PropertyTypes []string             `json:"propertyTypes"`
	Amenities     []string             `json:"amenities"`
	BuyPrice      models.PriceRange    `json:"buyPriceRange"`
	RentPrice     models.PriceRange    `json:"rentPriceRange"`
	Sorts         []models.SortSpec    `json:"sorts"`
	ListingTypes  []models.ListingType `json:"listingTypes"`
}

// FilterOptions derives the sidebar choices from the collection.
func (c *Catalog) FilterOptions() FilterOptions {
	locations := make(map[string]struct{})
	amenities := make(map[string]struct{})
	for _, l := range c.listings {
		locations[l.Location()] = struct{}{}
		for _, a := range l.Amenities {
			amenities[a] = struct{}{}
		}
	}

	types := []string{models.AllTypes}
	for _, t := range models.PropertyTypes {
		types = append(types, string(t))
	}

	return FilterOptions{
		Locations:     sortedKeys(locations),
		PropertyTypes: types,
		Amenities:     sortedKeys(amenities),
		BuyPrice:      models.BuyPriceRange,
		RentPrice:     models.RentPriceRange,
		Sorts:         []models.SortSpec{models.SortNewest, models.SortPriceDesc, models.SortPriceAsc},
		ListingTypes:  []models.ListingType{models.ListingBuy, models.ListingRent, models.ListingSell},
	}
}

func (c *Catalog) Agents() []models.Agent {
	return c.content.Agents
}

// Agent looks an agent up by id.
func (c *Catalog) Agent(id string) (*models.Agent, error) {
	for i := range c.content.Agents {
		if c.content.Agents[i].ID == id {
			return &c.content.Agents[i], nil
		}
	}
	return nil, fmt.Errorf("agent %q: %w", id, ErrNotFound)
}

// Testimonials returns the testimonials of one client type, or all of them
// when t is empty.
func (c *Catalog) Testimonials(t models.TestimonialType) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(c.content.Testimonials))
	for _, tm := range c.content.Testimonials {
		if t == "" || tm.Type == t {
			out = append(out, tm)
		}
	}
	return out
}

func (c *Catalog) Neighborhoods() []models.Neighborhood {
	return c.content.Neighborhoods
}

// FAQs returns the questions of one category, or all of them when cat is empty.
func (c *Catalog) FAQs(cat models.FAQCategory) []models.FAQ {
	out := make([]models.FAQ, 0, len(c.content.FAQs))
	for _, f := range c.content.FAQs {
		if cat == "" || f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
