package models

// PriceStats summarises the listings of one listing type.
type PriceStats struct {
	ListingType   ListingType `json:"listingType"`
	Count         int         `json:"count"`
	AveragePrice  float64     `json:"averagePrice"`
	MinPrice      float64     `json:"minPrice"`
	MaxPrice      float64     `json:"maxPrice"`
	MostExpensive *Listing    `json:"mostExpensive,omitempty"`
}

// CitySummary is the per-city aggregate shown as a neighborhood card.
type CitySummary struct {
	Location      string  `json:"location"`
	PropertyCount int     `json:"propertyCount"`
	AveragePrice  float64 `json:"averagePrice"`
}

// InsightReport holds the computed analytics over the listing collection.
type InsightReport struct {
	TotalListings      int            `json:"totalListings"`
	ByType             []PriceStats   `json:"byType"`
	ListingsByLocation map[string]int `json:"listingsByLocation"`
	Cities             []CitySummary  `json:"cities"`
	Featured           int            `json:"featured"`
	Available          int            `json:"available"`
}
