// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/models"
	"github.com/tomtom215/jobmatch/internal/validation"
)

// maxBodyBytes caps request bodies; feedback events are tiny.
const maxBodyBytes = 64 << 10

// sanitizeLogValue strips control characters from user-supplied values
// before they reach the logs.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// respondJSON writes the envelope. Request ID comes from the request context.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	response.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	if response.Metadata.Timestamp.IsZero() {
		response.Metadata.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess writes a 200 envelope with the elapsed time since start.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	respondStatus(w, r, http.StatusOK, start, data)
}

func respondStatus(w http.ResponseWriter, r *http.Request, status int, start time.Time, data interface{}) {
	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error envelope. err, when set, is logged but never
// echoed to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", code).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondServiceError classifies err and writes the matching error envelope.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	respondError(w, r, status, code, message, err)
}

// respondValidation writes a 400 with per-field details.
func respondValidation(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
		Status: models.StatusError,
		Error:  apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// paramError reports a query parameter that failed to parse.
func paramError(name, value, want string) *models.APIError {
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s must be %s", name, want),
		Details: map[string]interface{}{"field": name, "value": sanitizeLogValue(value)},
	}
}

// queryParser collects the first parse failure across several parameters.
type queryParser struct {
	r   *http.Request
	err *models.APIError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

// Int returns the parameter or def when absent.
func (p *queryParser) Int(name string, def int) int {
	raw := p.r.URL.Query().Get(name)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = paramError(name, raw, "an integer")
		return def
	}
	return v
}

// Float returns the parameter or def when absent.
func (p *queryParser) Float(name string, def float64) float64 {
	raw := p.r.URL.Query().Get(name)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = paramError(name, raw, "a number")
		return def
	}
	return v
}

// String returns the trimmed parameter.
func (p *queryParser) String(name string) string {
	return strings.TrimSpace(p.r.URL.Query().Get(name))
}

// Err returns the first parse failure.
func (p *queryParser) Err() *models.APIError {
	return p.err
}

// decodeJSONBody decodes a single JSON object, rejecting unknown fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}
