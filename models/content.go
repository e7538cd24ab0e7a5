package models

// Agent is a listing agent shown on the About and Contact pages.
type Agent struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Title           string   `yaml:"title" json:"title"`
	Image           string   `yaml:"image" json:"image,omitempty"`
	Phone           string   `yaml:"phone" json:"phone"`
	Email           string   `yaml:"email" json:"email"`
	Bio             string   `yaml:"bio" json:"bio"`
	PropertiesSold  int      `yaml:"propertiesSold" json:"propertiesSold"`
	Rating          float64  `yaml:"rating" json:"rating"`
	Specializations []string `yaml:"specializations" json:"specializations"`
}

// TestimonialType is the kind of client who wrote a testimonial.
type TestimonialType string

const (
	TestimonialBuyer  TestimonialType = "buyer"
	TestimonialSeller TestimonialType = "seller"
	TestimonialRenter TestimonialType = "renter"
)

type Testimonial struct {
	ID     string          `yaml:"id" json:"id"`
	Name   string          `yaml:"name" json:"name"`
	Image  string          `yaml:"image" json:"image,omitempty"`
	Rating int             `yaml:"rating" json:"rating"`
	Text   string          `yaml:"text" json:"text"`
	Type   TestimonialType `yaml:"type" json:"type"`
	Date   string          `yaml:"date" json:"date"`
}

// Neighborhood is a featured area. AvgPrice and PropertyCount are the
// marketing figures from the dataset, not derived from the listings.
type Neighborhood struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Image         string  `yaml:"image" json:"image,omitempty"`
	AvgPrice      float64 `yaml:"avgPrice" json:"avgPrice"`
	PropertyCount int     `yaml:"propertyCount" json:"propertyCount"`
	Description   string  `yaml:"description" json:"description"`
}

// FAQCategory groups questions on the Contact page.
type FAQCategory string

const (
	FAQBuying  FAQCategory = "buying"
	FAQSelling FAQCategory = "selling"
	FAQRenting FAQCategory = "renting"
	FAQGeneral FAQCategory = "general"
)

type FAQ struct {
	ID       string      `yaml:"id" json:"id"`
	Question string      `yaml:"question" json:"question"`
	Answer   string      `yaml:"answer" json:"answer"`
	Category FAQCategory `yaml:"category" json:"category"`
}

// Content is the static, non-listing part of the dataset.
type Content struct {
	Agents        []Agent        `yaml:"agents" json:"agents"`
	Testimonials  []Testimonial  `yaml:"testimonials" json:"testimonials"`
	Neighborhoods []Neighborhood `yaml:"neighborhoods" json:"neighborhoods"`
	FAQs          []FAQ          `yaml:"faqs" json:"faqs"`
}
