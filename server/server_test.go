package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estate-listings/models"
	"estate-listings/services"
	"estate-listings/storage"
	"estate-listings/utils"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	ds, err := storage.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	logger := utils.NewDiscardLogger()
	listings := services.NewCleaner(logger).Clean(ds.Listings)
	return New(services.NewCatalog(listings, ds.Content), logger)
}

// envelope is used to decode the standard response envelope.
type envelope struct {
	Status     string             `json:"status"`
	RequestID  string             `json:"request_id"`
	Timestamp  string             `json:"timestamp"`
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Error      *models.APIError   `json:"error"`
}

func do(t *testing.T, srv *Server, method, path, body string, wantStatus int) envelope {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != wantStatus {
		t.Fatalf("%s %s: status=%d, want %d, body=%s", method, path, w.Code, wantStatus, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON: %v", method, path, err)
	}
	return env
}

func doGet(t *testing.T, srv *Server, path string) envelope {
	t.Helper()
	return do(t, srv, http.MethodGet, path, "", http.StatusOK)
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (data=%s)", err, env.Data)
	}
}

func TestHealth(t *testing.T) {
	env := doGet(t, testServer(t), "/api/health")
	if env.Status != "ok" || env.RequestID == "" {
		t.Errorf("envelope: status=%q request_id=%q", env.Status, env.RequestID)
	}
	var data healthResponse
	decodeData(t, env, &data)
	if data.Listings != 27 {
		t.Errorf("listings = %d; want 27", data.Listings)
	}
}

func TestListListingsBuyPage(t *testing.T) {
	env := doGet(t, testServer(t), "/api/listings?listingType=buy")

	var data listingsPage
	decodeData(t, env, &data)
	if len(data.Listings) != 9 {
		t.Errorf("page size: got %d listings, want 9", len(data.Listings))
	}
	pg := env.Pagination
	if pg == nil {
		t.Fatal("missing pagination")
	}
	if pg.TotalCount != 14 || pg.TotalPages != 2 || pg.Page != 1 || !pg.HasMore {
		t.Errorf("pagination = %+v; want 14 total over 2 pages", pg)
	}
	for _, l := range data.Listings {
		if l.ListingType != models.ListingBuy {
			t.Errorf("listing %s has type %s", l.ID, l.ListingType)
		}
	}
}

func TestListListingsRentSortedLow(t *testing.T) {
	env := doGet(t, testServer(t), "/api/listings?listingType=rent&sort=rent-low&pageSize=3")

	var data listingsPage
	decodeData(t, env, &data)
	if len(data.Listings) != 3 {
		t.Fatalf("got %d listings, want 3", len(data.Listings))
	}
	if data.Listings[0].Price != 1450 {
		t.Errorf("cheapest rent = %.0f; want 1450", data.Listings[0].Price)
	}
	for i := 1; i < len(data.Listings); i++ {
		if data.Listings[i-1].Price > data.Listings[i].Price {
			t.Errorf("not ascending at %d", i)
		}
	}
	if env.Pagination.TotalPages != 4 {
		t.Errorf("total pages = %d; want 4", env.Pagination.TotalPages)
	}
}

func TestListListingsFilters(t *testing.T) {
	srv := testServer(t)
	tests := []struct {
		query     string
		wantCount int
		wantPills int
	}{
		{"listingType=buy&bedrooms=5", 4, 1},
		{"listingType=buy&bedrooms=any", 14, 0},
		{"listingType=buy&amenities=Pool,Gym", 4, 1},
		{"listingType=rent&petFriendly=true&furnished=true", 3, 2},
		{"listingType=buy&location=Austin", 3, 1},
		{"q=townhouse", 4, 0},
		{"listingType=rent&maxPrice=2000", 3, 1},
		{"listingType=buy&type=All%20Types", 14, 0},
	}
	for _, tt := range tests {
		env := doGet(t, srv, "/api/listings?"+tt.query)
		var data listingsPage
		decodeData(t, env, &data)
		if env.Pagination.TotalCount != tt.wantCount {
			t.Errorf("GET ?%s: total = %d; want %d", tt.query, env.Pagination.TotalCount, tt.wantCount)
		}
		if data.ActiveFilters != tt.wantPills {
			t.Errorf("GET ?%s: activeFilters = %d; want %d", tt.query, data.ActiveFilters, tt.wantPills)
		}
	}
}

func TestListListingsRejectsBadInput(t *testing.T) {
	srv := testServer(t)
	for _, query := range []string{
		"pageSize=0",
		"sort=cheapest",
		"listingType=lease",
		"type=castle",
		"bedrooms=two",
		"minPrice=-5",
		"minPrice=500&maxPrice=100",
		"petFriendly=maybe",
		"maxPrice=NaN",
		"minPrice=Inf",
		"minPrice=-Inf",
	} {
		env := do(t, srv, http.MethodGet, "/api/listings?"+query, "", http.StatusBadRequest)
		if env.Error == nil || env.Error.Code != models.ErrValidation {
			t.Errorf("GET ?%s: error = %+v; want VALIDATION_ERROR", query, env.Error)
		}
	}
}

func TestListListingsPagePastEnd(t *testing.T) {
	env := doGet(t, testServer(t), "/api/listings?listingType=buy&page=5")
	var data listingsPage
	decodeData(t, env, &data)
	if len(data.Listings) != 0 {
		t.Errorf("page past end: got %d listings, want 0", len(data.Listings))
	}
	if env.Pagination.Page != 5 || env.Pagination.HasMore {
		t.Errorf("pagination = %+v; want page 5 without more", env.Pagination)
	}
}

func TestListListingsHugePageValues(t *testing.T) {
	srv := testServer(t)

	env := doGet(t, srv, "/api/listings?listingType=buy&page=1024819115206086202")
	var data listingsPage
	decodeData(t, env, &data)
	if len(data.Listings) != 0 || env.Pagination.HasMore {
		t.Errorf("huge page: got %d listings, pagination %+v; want none", len(data.Listings), env.Pagination)
	}

	env = doGet(t, srv, "/api/listings?listingType=buy&pageSize=9223372036854775807")
	data = listingsPage{}
	decodeData(t, env, &data)
	if len(data.Listings) != 14 || env.Pagination.TotalPages != 1 {
		t.Errorf("huge page size: got %d listings over %d pages; want 14 over 1",
			len(data.Listings), env.Pagination.TotalPages)
	}

	env = doGet(t, srv, "/api/listings?listingType=buy&pageSize=9223372036854775807&page=9223372036854775807")
	data = listingsPage{}
	decodeData(t, env, &data)
	if len(data.Listings) != 0 {
		t.Errorf("huge page and size: got %d listings; want 0", len(data.Listings))
	}
}

func TestGetListing(t *testing.T) {
	srv := testServer(t)

	var l models.Listing
	decodeData(t, doGet(t, srv, "/api/listings/4"), &l)
	if l.Title != "Hillside Villa with Views" {
		t.Errorf("title = %q", l.Title)
	}

	env := do(t, srv, http.MethodGet, "/api/listings/nope", "", http.StatusNotFound)
	if env.Error == nil || env.Error.Code != models.ErrNotFound {
		t.Errorf("error = %+v; want NOT_FOUND", env.Error)
	}
}

func TestFeatured(t *testing.T) {
	srv := testServer(t)
	tests := []struct {
		tab  string
		want int
	}{
		{"", 4},
		{"rent", 4},
		{"sell", 4},
	}
	for _, tt := range tests {
		var got []models.Listing
		decodeData(t, doGet(t, srv, "/api/featured?tab="+tt.tab), &got)
		if len(got) != tt.want {
			t.Errorf("featured(%q): got %d, want %d", tt.tab, len(got), tt.want)
		}
	}
	do(t, srv, http.MethodGet, "/api/featured?tab=lease", "", http.StatusBadRequest)
}

func TestFilterOptions(t *testing.T) {
	var opts services.FilterOptions
	decodeData(t, doGet(t, testServer(t), "/api/filters/options"), &opts)
	if len(opts.Locations) == 0 || opts.PropertyTypes[0] != models.AllTypes {
		t.Errorf("options = %+v", opts)
	}
	if opts.RentPrice.Max != 10000 {
		t.Errorf("rent price max = %.0f; want 10000", opts.RentPrice.Max)
	}
}

func TestFavoritesFlow(t *testing.T) {
	srv := testServer(t)

	var state favoriteState
	decodeData(t, do(t, srv, http.MethodPost, "/api/favorites/3", "", http.StatusOK), &state)
	if !state.Favorite {
		t.Error("first toggle should favorite")
	}

	var favs []models.Listing
	decodeData(t, doGet(t, srv, "/api/favorites"), &favs)
	if len(favs) != 1 || favs[0].ID != "3" {
		t.Errorf("favorites = %v; want [3]", favs)
	}

	decodeData(t, do(t, srv, http.MethodPost, "/api/favorites/3", "", http.StatusOK), &state)
	if state.Favorite {
		t.Error("second toggle should unfavorite")
	}
	do(t, srv, http.MethodPost, "/api/favorites/999", "", http.StatusNotFound)
}

func TestCreateLead(t *testing.T) {
	srv := testServer(t)

	body := `{"name":"Jane Doe","email":"jane@example.com","message":"Is it still available?","listingId":"2","agentId":"agent-1","viewingDate":"2024-07-01","viewingTime":"10:00 AM"}`
	var lead models.Lead
	decodeData(t, do(t, srv, http.MethodPost, "/api/leads", body, http.StatusAccepted), &lead)
	if !strings.HasPrefix(lead.ID, "lead_") {
		t.Errorf("lead id = %q; want lead_ prefix", lead.ID)
	}
	if lead.Form.Subject != models.DefaultSubject {
		t.Errorf("subject = %q; want default", lead.Form.Subject)
	}

	var inbox []models.Lead
	decodeData(t, doGet(t, srv, "/api/leads"), &inbox)
	if len(inbox) != 1 {
		t.Errorf("inbox size = %d; want 1", len(inbox))
	}
}

func TestCreateLeadRejectsInvalid(t *testing.T) {
	srv := testServer(t)

	env := do(t, srv, http.MethodPost, "/api/leads", `{"name":"Jane","message":"hi"}`, http.StatusBadRequest)
	if env.Error == nil || len(env.Error.Details) != 1 || env.Error.Details[0].Field != "email" {
		t.Errorf("error = %+v; want email field detail", env.Error)
	}
	do(t, srv, http.MethodPost, "/api/leads", `{not json`, http.StatusBadRequest)
}

func TestEstimates(t *testing.T) {
	srv := testServer(t)

	var mortgage services.MortgageEstimate
	decodeData(t, doGet(t, srv, "/api/estimates/mortgage"), &mortgage)
	if math.Abs(mortgage.MonthlyPayment-2528.27) > 0.01 {
		t.Errorf("default mortgage = %.2f; want 2528.27", mortgage.MonthlyPayment)
	}

	var rent services.RentAffordability
	decodeData(t, doGet(t, srv, "/api/estimates/rent?income=5000"), &rent)
	if rent.MaxRent != 1500 {
		t.Errorf("max rent = %.0f; want 1500", rent.MaxRent)
	}

	var home services.HomeValueEstimate
	decodeData(t, doGet(t, srv, "/api/estimates/home-value?sqft=2000&bedrooms=3&bathrooms=2"), &home)
	if home.Value != 805000 {
		t.Errorf("home value = %.0f; want 805000", home.Value)
	}

	do(t, srv, http.MethodGet, "/api/estimates/mortgage?rate=-1", "", http.StatusBadRequest)
	do(t, srv, http.MethodGet, "/api/estimates/rent?income=abc", "", http.StatusBadRequest)

	for _, path := range []string{
		"/api/estimates/rent?income=NaN",
		"/api/estimates/rent?income=Inf",
		"/api/estimates/mortgage?price=Inf&down=0",
		"/api/estimates/mortgage?rate=NaN",
	} {
		env := do(t, srv, http.MethodGet, path, "", http.StatusBadRequest)
		if env.Error == nil || env.Error.Code != models.ErrValidation {
			t.Errorf("GET %s: error = %+v; want VALIDATION_ERROR", path, env.Error)
		}
	}
}

func TestStaticContent(t *testing.T) {
	srv := testServer(t)

	var testimonials []models.Testimonial
	decodeData(t, doGet(t, srv, "/api/testimonials?type=buyer"), &testimonials)
	if len(testimonials) != 2 {
		t.Errorf("buyer testimonials = %d; want 2", len(testimonials))
	}

	var faqs []models.FAQ
	decodeData(t, doGet(t, srv, "/api/faqs?category=renting"), &faqs)
	if len(faqs) != 1 {
		t.Errorf("renting faqs = %d; want 1", len(faqs))
	}

	var agents []models.Agent
	decodeData(t, doGet(t, srv, "/api/agents"), &agents)
	if len(agents) != 3 {
		t.Errorf("agents = %d; want 3", len(agents))
	}

	do(t, srv, http.MethodGet, "/api/testimonials?type=landlord", "", http.StatusBadRequest)
	do(t, srv, http.MethodGet, "/api/faqs?category=taxes", "", http.StatusBadRequest)
}

func TestInsightsEndpoint(t *testing.T) {
	var report models.InsightReport
	decodeData(t, doGet(t, testServer(t), "/api/insights"), &report)
	if report.TotalListings != 27 || len(report.ByType) != 3 {
		t.Errorf("report: total=%d types=%d", report.TotalListings, len(report.ByType))
	}
}

func TestUnknownRoute(t *testing.T) {
	env := do(t, testServer(t), http.MethodGet, "/api/nope", "", http.StatusNotFound)
	if env.Status != "error" {
		t.Errorf("status = %q; want error", env.Status)
	}
}
