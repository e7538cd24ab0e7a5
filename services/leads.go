package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"estate-listings/models"
	"estate-listings/utils"
)

// LeadService accepts Contact page submissions. Delivery is simulated: leads
// are kept in an in-memory inbox and logged.
type LeadService struct {
	logger   *utils.Logger
	catalog  *Catalog
	validate *validator.Validate

	mu    sync.Mutex
	inbox []models.Lead

	now   func() time.Time
	newID func() string
}

// NewLeadService creates a LeadService that checks listing and agent ids
// against catalog.
func NewLeadService(catalog *Catalog, logger *utils.Logger) *LeadService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return &LeadService{
		logger:   logger,
		catalog:  catalog,
		validate: v,
		now:      time.Now,
		newID:    func() string { return "lead_" + uuid.NewString() },
	}
}

// Submit validates and records a contact form.
func (s *LeadService) Submit(form models.ContactForm) (*models.Lead, error) {
	form = trimForm(form)
	if form.Subject == "" {
		form.Subject = models.DefaultSubject
	}

	if err := s.validate.Struct(form); err != nil {
		return nil, validationFrom(err)
	}
	if form.ListingID != "" {
		if _, err := s.catalog.Listing(form.ListingID); err != nil {
			return nil, invalid("listingId", "unknown listing %q", form.ListingID)
		}
	}
	if form.AgentID != "" {
		if _, err := s.catalog.Agent(form.AgentID); err != nil {
			return nil, invalid("agentId", "unknown agent %q", form.AgentID)
		}
	}

	lead := models.Lead{ID: s.newID(), ReceivedAt: s.now().UTC(), Form: form}

	s.mu.Lock()
	s.inbox = append(s.inbox, lead)
	s.mu.Unlock()

	s.logger.Info("[leads] Received %s from %s (subject: %s)", lead.ID, form.Email, form.Subject)
	return &lead, nil
}

// Inbox returns a snapshot of the accepted leads, oldest first.
func (s *LeadService) Inbox() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lead, len(s.inbox))
	copy(out, s.inbox)
	return out
}

func trimForm(f models.ContactForm) models.ContactForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	f.ListingID = strings.TrimSpace(f.ListingID)
	f.AgentID = strings.TrimSpace(f.AgentID)
	f.ViewingDate = strings.TrimSpace(f.ViewingDate)
	f.ViewingTime = strings.TrimSpace(f.ViewingTime)
	return f
}

// validationFrom reports the first failing field as a ValidationError.
func validationFrom(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return invalid(fe.Field(), "failed %q validation", fe.Tag())
	}
	return fmt.Errorf("leads: validate: %w", err)
}
