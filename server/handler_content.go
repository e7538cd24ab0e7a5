package server

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"estate-listings/models"
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Listings  int    `json:"listings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Listings:  s.catalog.Len(),
	})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.insights.Generate(s.catalog.Listings()))
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.Agents())
}

func (s *Server) handleNeighborhoods(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.Neighborhoods())
}

func (s *Server) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	t := models.TestimonialType(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))
	switch t {
	case "", models.TestimonialBuyer, models.TestimonialSeller, models.TestimonialRenter:
	default:
		s.respondErr(w, r, badParam("type", "must be buyer, seller or renter"))
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.Testimonials(t))
}

func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	c := models.FAQCategory(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category"))))
	switch c {
	case "", models.FAQBuying, models.FAQSelling, models.FAQRenting, models.FAQGeneral:
	default:
		s.respondErr(w, r, badParam("category", "must be buying, selling, renting or general"))
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), s.catalog.FAQs(c))
}
