// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/metrics"
)

var (
	// ErrFeedbackUnavailable wraps failures reading the feedback source.
	ErrFeedbackUnavailable = errors.New("feedback source unavailable")

	// ErrCatalogUnavailable wraps failures reading the job catalog.
	ErrCatalogUnavailable = errors.New("job catalog unavailable")
)

// FeedbackSource supplies the full feedback set for a computation.
type FeedbackSource interface {
	All(ctx context.Context) ([]FeedbackEvent, error)
}

// CatalogSource supplies candidate listings.
type CatalogSource interface {
	Items(ctx context.Context) ([]Item, error)
}

// Service binds an Engine to live feedback and catalog sources. Each call
// takes a fresh snapshot, so results always reflect the latest recorded
// feedback.
type Service struct {
	engine   *Engine
	feedback FeedbackSource
	catalog  CatalogSource
	defaults HybridOptions
	logger   zerolog.Logger
}

// NewService creates a Service. defaults supplies the options used when a
// request leaves fields unset.
//
//nolint:gocritic // defaults and logger passed by value at construction time
func NewService(engine *Engine, feedback FeedbackSource, catalog CatalogSource, defaults HybridOptions, logger zerolog.Logger) *Service {
	return &Service{
		engine:   engine,
		feedback: feedback,
		catalog:  catalog,
		defaults: defaults,
		logger:   logger.With().Str("component", "recommend_service").Logger(),
	}
}

// Engine returns the underlying engine.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Defaults returns the configured request defaults.
func (s *Service) Defaults() HybridOptions {
	return s.defaults
}

func (s *Service) loadFeedback(ctx context.Context, op string) ([]FeedbackEvent, error) {
	events, err := s.feedback.All(ctx)
	if err != nil {
		metrics.RecordRecommendError(op, "feedback")
		return nil, fmt.Errorf("%w: %w", ErrFeedbackUnavailable, err)
	}
	metrics.RecordFeedbackLoad(len(events))
	return events, nil
}

func (s *Service) loadCatalog(ctx context.Context, op string) ([]Item, error) {
	items, err := s.catalog.Items(ctx)
	if err != nil {
		metrics.RecordRecommendError(op, "catalog")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return items, nil
}

// SimilarUsers returns up to topN neighbors of userID.
func (s *Service) SimilarUsers(ctx context.Context, userID string, topN int, method SimilarityMethod, minCommonItems int) ([]SimilarityResult, error) {
	const op = "similar_users"
	start := time.Now()

	events, err := s.loadFeedback(ctx, op)
	if err != nil {
		return nil, err
	}
	if minCommonItems <= 0 {
		minCommonItems = s.defaults.MinCommonItems
	}

	results := s.engine.FindSimilarUsers(events, userID, topN, method, minCommonItems)
	metrics.RecordRecommendation(op, time.Since(start), len(results))
	logging.FromContext(ctx, s.logger).Debug().
		Str("method", method.String()).
		Int("results", len(results)).
		Msg("similar users computed")
	return results, nil
}

// Similarity compares two users. The boolean is false when they share no
// rated items.
func (s *Service) Similarity(ctx context.Context, userA, userB string, method SimilarityMethod) (SimilarityResult, bool, error) {
	const op = "similarity"
	start := time.Now()

	events, err := s.loadFeedback(ctx, op)
	if err != nil {
		return SimilarityResult{}, false, err
	}

	res, ok := s.engine.CalculateUserSimilarity(events, userA, userB, method)
	n := 0
	if ok {
		n = 1
	}
	metrics.RecordRecommendation(op, time.Since(start), n)
	return res, ok, nil
}

// Recommend returns collaborative recommendations for userID. Zero fields in
// opts fall back to the service defaults.
//
//nolint:gocritic // opts passed by value so callers can reuse their copy
func (s *Service) Recommend(ctx context.Context, userID string, topN int, opts Options) ([]Recommendation, error) {
	const op = "recommend"
	start := time.Now()

	events, err := s.loadFeedback(ctx, op)
	if err != nil {
		return nil, err
	}
	items, err := s.loadCatalog(ctx, op)
	if err != nil {
		return nil, err
	}

	recs := s.engine.RecommendJobs(userID, items, events, topN, s.merge(opts))
	metrics.RecordRecommendation(op, time.Since(start), len(recs))
	logging.FromContext(ctx, s.logger).Debug().
		Int("feedback_events", len(events)).
		Int("catalog_items", len(items)).
		Int("results", len(recs)).
		Msg("recommendations computed")
	return recs, nil
}

// RecommendHybrid returns blended collaborative and content recommendations.
//
//nolint:gocritic // opts passed by value so callers can reuse their copy
func (s *Service) RecommendHybrid(ctx context.Context, userID string, topN int, opts HybridOptions) ([]Recommendation, error) {
	const op = "recommend_hybrid"
	start := time.Now()

	events, err := s.loadFeedback(ctx, op)
	if err != nil {
		return nil, err
	}
	items, err := s.loadCatalog(ctx, op)
	if err != nil {
		return nil, err
	}

	opts.Options = s.merge(opts.Options)
	if opts.CollaborativeWeight == 0 && opts.ContentWeight == 0 {
		opts.CollaborativeWeight = s.defaults.CollaborativeWeight
		opts.ContentWeight = s.defaults.ContentWeight
	}

	recs := s.engine.RecommendJobsHybrid(userID, items, events, topN, opts)
	metrics.RecordRecommendation(op, time.Since(start), len(recs))
	return recs, nil
}

// Matrix computes the all-pairs similarity matrix over the current feedback.
func (s *Service) Matrix(ctx context.Context, method SimilarityMethod) (*SimilarityMatrix, error) {
	const op = "matrix"
	start := time.Now()

	events, err := s.loadFeedback(ctx, op)
	if err != nil {
		metrics.RecordMatrixRun(time.Since(start), 0, err)
		return nil, err
	}

	m, err := s.engine.SimilarityMatrix(ctx, events, method)
	if err != nil {
		metrics.RecordMatrixRun(time.Since(start), 0, err)
		return nil, err
	}
	metrics.RecordMatrixRun(time.Since(start), len(m.Users), nil)
	return m, nil
}

// merge fills unset request options from the service defaults.
// MinRecommendScore below zero selects the default; zero is a real threshold.
//
//nolint:gocritic // small value copy
func (s *Service) merge(opts Options) Options {
	def := s.defaults.Options
	if opts.SimilarUsersCount <= 0 {
		opts.SimilarUsersCount = def.SimilarUsersCount
	}
	if opts.MinCommonItems <= 0 {
		opts.MinCommonItems = def.MinCommonItems
	}
	if !opts.SimilarityMethod.Valid() {
		opts.SimilarityMethod = def.SimilarityMethod
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = def.MaxCandidates
	}
	if opts.MinRecommendScore < 0 {
		opts.MinRecommendScore = def.MinRecommendScore
	}
	return opts
}
