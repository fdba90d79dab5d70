// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

// requestTimeout bounds each handler's backend work.
const requestTimeout = 10 * time.Second

// defaultSimilarLimit is the neighbor count when limit is absent.
const defaultSimilarLimit = 10

// FeedbackStore is the subset of feedback.Store the handlers use.
type FeedbackStore interface {
	Record(ctx context.Context, event recommend.FeedbackEvent) error
	Remove(ctx context.Context, userID, itemID string) error
	ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error)
}

// JobCatalog is the subset of catalog.Catalog the handlers use.
type JobCatalog interface {
	Items(ctx context.Context) ([]recommend.Item, error)
	Get(ctx context.Context, id string) (recommend.Item, error)
}

// HealthCheck probes one dependency for /health.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handler holds the dependencies of all HTTP endpoints.
type Handler struct {
	service   *recommend.Service
	feedback  FeedbackStore
	catalog   JobCatalog
	checks    []HealthCheck
	startTime time.Time
	now       func() time.Time
	logger    zerolog.Logger
}

// NewHandler creates a Handler.
//
//nolint:gocritic // logger passed by value at construction time
func NewHandler(service *recommend.Service, store FeedbackStore, jobs JobCatalog, logger zerolog.Logger, checks ...HealthCheck) *Handler {
	return &Handler{
		service:   service,
		feedback:  store,
		catalog:   jobs,
		checks:    checks,
		startTime: time.Now(),
		now:       time.Now,
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// methodOrDefault parses a method query value, using the service default
// when empty. Invalid names were already rejected by validation.
func (h *Handler) methodOrDefault(name string) recommend.SimilarityMethod {
	if name == "" {
		return h.service.Defaults().SimilarityMethod
	}
	method, err := recommend.ParseSimilarityMethod(name)
	if err != nil {
		return h.service.Defaults().SimilarityMethod
	}
	return method
}
