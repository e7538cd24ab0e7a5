package models

import "time"

// DefaultSubject is used when a contact form arrives without a subject.
const DefaultSubject = "General Inquiry"

// ContactForm is the payload of the Contact page form. The viewing fields
// request a visit with an agent and must be given together.
type ContactForm struct {
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Subject     string `json:"subject,omitempty" validate:"omitempty,max=120"`
	Message     string `json:"message" validate:"required,max=5000"`
	ListingID   string `json:"listingId,omitempty"`
	AgentID     string `json:"agentId,omitempty"`
	ViewingDate string `json:"viewingDate,omitempty" validate:"required_with=ViewingTime,omitempty,datetime=2006-01-02"`
	ViewingTime string `json:"viewingTime,omitempty" validate:"required_with=ViewingDate,omitempty,max=20"`
}

// Lead is an accepted contact submission.
type Lead struct {
	ID         string      `json:"id"`
	ReceivedAt time.Time   `json:"receivedAt"`
	Form       ContactForm `json:"form"`
}
