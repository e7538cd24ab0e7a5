package services

import (
	"estate-listings/models"
	"estate-listings/utils"
)

// Favorites is the wishlist behind the heart button on listing cards. There
// is one list per process.
type Favorites struct {
	catalog *Catalog
	ids     *utils.IDSet
}

func NewFavorites(catalog *Catalog) *Favorites {
	return &Favorites{catalog: catalog, ids: utils.NewIDSet()}
}

func (f *Favorites) IsFavorite(id string) bool {
	return f.ids.Contains(id)
}

// Toggle flips the favorite state of a listing and returns the new state.
func (f *Favorites) Toggle(id string) (bool, error) {
	if _, err := f.catalog.Listing(id); err != nil {
		return false, err
	}
	return f.ids.Toggle(id), nil
}

// Listings returns the favorite listings in dataset order.
func (f *Favorites) Listings() []*models.Listing {
	out := make([]*models.Listing, 0, f.ids.Size())
	for _, l := range f.catalog.Listings() {
		if f.ids.Contains(l.ID) {
			out = append(out, l)
		}
	}
	return out
}
