package services

import "math"

// MortgageInput describes a fixed-rate loan. RatePercent is the annual rate,
// e.g. 6.5 for 6.5%.
type MortgageInput struct {
	Price       float64 `json:"price"`
	DownPayment float64 `json:"downPayment"`
	RatePercent float64 `json:"ratePercent"`
	Years       int     `json:"years"`
}

// DefaultMortgage is the calculator preset on the Buy page.
var DefaultMortgage = MortgageInput{Price: 500_000, DownPayment: 100_000, RatePercent: 6.5, Years: 30}

type MortgageEstimate struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}

// EstimateMortgage computes the amortised monthly payment
// P·r / (1 − (1+r)^−n) with r the monthly rate and n the number of payments.
// A zero rate spreads the principal evenly.
func EstimateMortgage(in MortgageInput) (*MortgageEstimate, error) {
	switch {
	case !finite(in.Price):
		return nil, invalid("price", "must be a finite number")
	case !finite(in.DownPayment):
		return nil, invalid("downPayment", "must be a finite number")
	case !finite(in.RatePercent):
		return nil, invalid("ratePercent", "must be a finite number")
	case in.Price < 0:
		return nil, invalid("price", "must not be negative")
	case in.DownPayment < 0:
		return nil, invalid("downPayment", "must not be negative")
	case in.DownPayment > in.Price:
		return nil, invalid("downPayment", "exceeds price")
	case in.RatePercent < 0:
		return nil, invalid("ratePercent", "must not be negative")
	case in.Years <= 0:
		return nil, invalid("years", "must be positive")
	}

	principal := in.Price - in.DownPayment
	n := float64(in.Years) * 12
	r := in.RatePercent / 100 / 12

	var monthly float64
	if r == 0 {
		monthly = principal / n
	} else {
		monthly = principal * r / (1 - math.Pow(1+r, -n))
	}

	total := monthly * n
	if !finite(monthly) || !finite(total) {
		return nil, invalid("price", "is too large")
	}
	return &MortgageEstimate{
		Principal:      principal,
		MonthlyPayment: round2(monthly),
		TotalPaid:      round2(total),
		TotalInterest:  round2(total - principal),
	}, nil
}

// Shares of monthly income used by the rent affordability widget.
const (
	affordableRentShare = 0.3
	moveInCostShare     = 0.9
)

type RentAffordability struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
	MaxRent       float64 `json:"maxRent"`
	MoveInCost    float64 `json:"moveInCost"`
}

// EstimateRentAffordability applies the 30% rule for rent and estimates the
// move-in cost (first month plus deposit) as 90% of income.
func EstimateRentAffordability(monthlyIncome float64) (*RentAffordability, error) {
	if !finite(monthlyIncome) {
		return nil, invalid("income", "must be a finite number")
	}
	if monthlyIncome < 0 {
		return nil, invalid("income", "must not be negative")
	}
	return &RentAffordability{
		MonthlyIncome: monthlyIncome,
		MaxRent:       math.Round(monthlyIncome * affordableRentShare),
		MoveInCost:    math.Round(monthlyIncome * moveInCostShare),
	}, nil
}

// Home value model weights.
const (
	valuePerSqft     = 350
	valuePerBedroom  = 25_000
	valuePerBathroom = 15_000
	valueSpread      = 0.1
)

type HomeValueEstimate struct {
	Value float64 `json:"value"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// EstimateHomeValue prices a home from its size and room counts, rounded to
// the nearest thousand, with a ±10% range.
func EstimateHomeValue(sqft, bedrooms, bathrooms int) (*HomeValueEstimate, error) {
	switch {
	case sqft < 0:
		return nil, invalid("sqft", "must not be negative")
	case bedrooms < 0:
		return nil, invalid("bedrooms", "must not be negative")
	case bathrooms < 0:
		return nil, invalid("bathrooms", "must not be negative")
	}

	raw := float64(sqft)*valuePerSqft + float64(bedrooms)*valuePerBedroom + float64(bathrooms)*valuePerBathroom
	value := math.Round(raw/1000) * 1000
	return &HomeValueEstimate{
		Value: value,
		Low:   math.Round(value * (1 - valueSpread)),
		High:  math.Round(value * (1 + valueSpread)),
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
