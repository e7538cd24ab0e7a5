package models

import (
	"fmt"
	"time"
)

// Response is the envelope every API response is wrapped in.
type Response struct {
	Status     string      `json:"status"`
	RequestID  string      `json:"request_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *APIError   `json:"error"`
}

// Pagination describes the page of a listing query returned in Data.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// NewPagination builds the envelope pagination block from a query result.
func NewPagination(r *QueryResult) *Pagination {
	return &Pagination{
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalCount: r.TotalCount,
		TotalPages: r.TotalPages,
		HasMore:    r.Page >= 1 && r.Page < r.TotalPages,
	}
}

type ErrorCode string

const (
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
)

// APIError is the error block of a failed response.
type APIError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError points a validation failure at one input field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
