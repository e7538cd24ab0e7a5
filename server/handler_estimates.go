package server

import (
	"net/http"

	"estate-listings/services"
)

func (s *Server) handleMortgage(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	def := services.DefaultMortgage

	price, err := floatParam(v, "price", def.Price)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	down, err := floatParam(v, "down", def.DownPayment)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	rate, err := floatParam(v, "rate", def.RatePercent)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	years, err := intParam(v, "years", def.Years)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	est, err := services.EstimateMortgage(services.MortgageInput{
		Price: price, DownPayment: down, RatePercent: rate, Years: years,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), est)
}

func (s *Server) handleRentAffordability(w http.ResponseWriter, r *http.Request) {
	income, err := floatParam(r.URL.Query(), "income", 0)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	est, err := services.EstimateRentAffordability(income)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), est)
}

func (s *Server) handleHomeValue(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	sqft, err := intParam(v, "sqft", 0)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	bedrooms, err := intParam(v, "bedrooms", 0)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	bathrooms, err := intParam(v, "bathrooms", 0)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	est, err := services.EstimateHomeValue(sqft, bedrooms, bathrooms)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), est)
}
