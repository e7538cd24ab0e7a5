package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"estate-listings/models"
	"estate-listings/services"
)

type listingsPage struct {
	Listings      []*models.Listing `json:"listings"`
	ActiveFilters int               `json:"activeFilters"`
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	q, err := parseListingQuery(r.URL.Query(), s.pageSize)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	result, err := s.engine.Query(s.catalog.Listings(), q)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	respondPage(w, reqID, listingsPage{
		Listings:      result.Listings,
		ActiveFilters: services.ActiveFilterCount(q.Filter, models.DefaultPriceRange(q.ListingType)),
	}, models.NewPagination(result))
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	l, err := s.catalog.Listing(chi.URLParam(r, "id"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), l)
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	tab := models.ListingBuy
	if raw := r.URL.Query().Get("tab"); strings.TrimSpace(raw) != "" {
		t, err := models.ParseListingType(raw)
		if err != nil {
			s.respondErr(w, r, badParam("tab", "must be buy, rent or sell"))
			return
		}
		tab = t
	}
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.Featured(tab))
}

func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.FilterOptions())
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.favorites.Listings())
}

type favoriteState struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	on, err := s.favorites.Toggle(id)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), favoriteState{ID: id, Favorite: on})
}
