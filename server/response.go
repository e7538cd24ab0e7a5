package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"estate-listings/models"
	"estate-listings/services"
)

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil, nil)
}

func respondAccepted(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusAccepted, reqID, data, nil, nil)
}

// respondPage writes one page of a listing query with its pagination block.
func respondPage(w http.ResponseWriter, reqID string, data any, pg *models.Pagination) {
	respondJSON(w, http.StatusOK, reqID, data, pg, nil)
}

func respondError(w http.ResponseWriter, reqID string, status int, apiErr *models.APIError) {
	respondJSON(w, status, reqID, nil, nil, apiErr)
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, pg *models.Pagination, apiErr *models.APIError) {
	resp := models.Response{
		RequestID:  reqID,
		Timestamp:  time.Now().UTC(),
		Data:       data,
		Pagination: pg,
		Error:      apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondErr maps a service error onto the envelope: invalid input is a 400,
// unknown ids a 404 and everything else a 500.
func (s *Server) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestIDFromContext(r.Context())

	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, reqID, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrValidation,
			Message: err.Error(),
			Details: []models.FieldError{{Field: ve.Field, Message: ve.Msg}},
		})
	case errors.Is(err, services.ErrInvalidArgument), errors.Is(err, models.ErrUnknownValue):
		respondError(w, reqID, http.StatusBadRequest, &models.APIError{Code: models.ErrValidation, Message: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		respondError(w, reqID, http.StatusNotFound, &models.APIError{Code: models.ErrNotFound, Message: err.Error()})
	default:
		s.logger.Error("[server] %s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, reqID, http.StatusInternalServerError, &models.APIError{Code: models.ErrInternal, Message: "internal error"})
	}
}
