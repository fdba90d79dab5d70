// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/jobmatch/internal/models"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// Health status values.
const (
	healthOK       = "healthy"
	healthDegraded = "degraded"
	healthDown     = "down"
)

// Health handles GET /health
//
// Always answers 200 while the process is serving; a failing dependency makes
// the overall status "degraded". Use /health/ready for load balancer checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, start, h.healthReport(r.Context()))
}

// HealthLive handles GET /health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, start, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HealthReady handles GET /health/ready, returning 503 while any dependency fails.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report := h.healthReport(r.Context())

	status := http.StatusOK
	if report.Status != healthOK {
		status = http.StatusServiceUnavailable
	}
	respondStatus(w, r, status, start, report)
}

func (h *Handler) healthReport(ctx context.Context) models.HealthResponse {
	report := models.HealthResponse{
		Status:     healthOK,
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]models.ComponentHealth, len(h.checks)),
	}

	for _, hc := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := hc.Check(checkCtx)
		cancel()

		if err != nil {
			report.Status = healthDegraded
			report.Components[hc.Name] = models.ComponentHealth{Status: healthDown, Detail: err.Error()}
			continue
		}
		report.Components[hc.Name] = models.ComponentHealth{Status: healthOK}
	}
	return report
}
