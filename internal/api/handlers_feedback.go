// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/models"
)

// RecordFeedback handles PUT /api/v1/feedback
//
// Body: {"user_id": "...", "job_id": "...", "signal": "like"|"dislike", "timestamp": optional RFC3339}.
// A second event for the same user and job replaces the first. The job must
// exist in the catalog.
func (h *Handler) RecordFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FeedbackRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	event, err := req.Event(h.now())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	if _, err := h.catalog.Get(ctx, event.ItemID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.feedback.Record(ctx, event); err != nil {
		respondServiceError(w, r, err)
		return
	}

	logging.FromContext(ctx, h.logger).Debug().
		Str("job_id", event.ItemID).
		Stringer("signal", event.Signal).
		Msg("feedback recorded")

	respondSuccess(w, r, start, event)
}

// RemoveFeedback handles DELETE /api/v1/feedback/{userID}/{jobID}
func (h *Handler) RemoveFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := FeedbackKeyRequest{
		UserID: chi.URLParam(r, "userID"),
		JobID:  chi.URLParam(r, "jobID"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	if err := h.feedback.Remove(ctx, req.UserID, req.JobID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, map[string]string{
		"user_id": req.UserID,
		"job_id":  req.JobID,
	})
}

// UserFeedback handles GET /api/v1/users/{userID}/feedback
//
// Unknown users have no feedback and get an empty list.
func (h *Handler) UserFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := UserRequest{UserID: chi.URLParam(r, "userID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	events, err := h.feedback.ForUser(ctx, req.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.FeedbackListResponse{
		UserID:   req.UserID,
		Count:    len(events),
		Feedback: events,
	})
}

// UserJobFeedback handles GET /api/v1/users/{userID}/feedback/{jobID}
func (h *Handler) UserJobFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := FeedbackKeyRequest{
		UserID: chi.URLParam(r, "userID"),
		JobID:  chi.URLParam(r, "jobID"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	events, err := h.feedback.ForUser(ctx, req.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	for _, e := range events {
		if e.ItemID == req.JobID {
			respondSuccess(w, r, start, e)
			return
		}
	}
	respondServiceError(w, r, feedback.ErrNotFound)
}
