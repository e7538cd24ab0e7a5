package server

import (
	"encoding/json"
	"net/http"

	"estate-listings/models"
)

// maxLeadBody caps the size of a contact form submission.
const maxLeadBody = 64 << 10

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBody)).Decode(&form); err != nil {
		s.respondErr(w, r, badParam("", "invalid JSON body: "+err.Error()))
		return
	}

	lead, err := s.leads.Submit(form)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondAccepted(w, RequestIDFromContext(r.Context()), lead)
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.leads.Inbox())
}
