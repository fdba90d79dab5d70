// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/jobmatch/internal/breaker"
	"github.com/tomtom215/jobmatch/internal/catalog"
	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/recommend"
	"github.com/tomtom215/jobmatch/internal/validation"
)

// Error codes returned in the response envelope.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = validation.CodeValidationError
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeNoOverlap          = "NO_COMMON_ITEMS"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// ErrNoCommonItems is returned when two users never rated the same job.
var ErrNoCommonItems = errors.New("users have no rated jobs in common")

// classifyError maps domain and backend errors onto HTTP status and code.
func classifyError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, feedback.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, "feedback not found"
	case errors.Is(err, catalog.ErrItemNotFound):
		return http.StatusNotFound, ErrCodeNotFound, "job not found"
	case errors.Is(err, ErrNoCommonItems):
		return http.StatusNotFound, ErrCodeNoOverlap, ErrNoCommonItems.Error()
	case errors.Is(err, feedback.ErrInvalidEvent):
		return http.StatusBadRequest, ErrCodeValidation, "invalid feedback event"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout, "request timed out"
	case breaker.Rejected(err):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "backend temporarily unavailable, retry later"
	case errors.Is(err, feedback.ErrClosed),
		errors.Is(err, recommend.ErrFeedbackUnavailable),
		errors.Is(err, recommend.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "backend unavailable"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "internal server error"
	}
}
