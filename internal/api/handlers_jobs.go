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

	"github.com/tomtom215/jobmatch/internal/models"
)

// jobRequest addresses a listing by path.
type jobRequest struct {
	JobID string `json:"job_id" validate:"entityid"`
}

// ListJobs handles GET /api/v1/jobs
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := h.catalog.Items(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.JobsResponse{
		Count: len(items),
		Jobs:  items,
	})
}

// GetJob handles GET /api/v1/jobs/{jobID}
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := jobRequest{JobID: chi.URLParam(r, "jobID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	item, err := h.catalog.Get(ctx, req.JobID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, item)
}
