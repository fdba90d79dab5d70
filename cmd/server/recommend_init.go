// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/jobmatch/internal/config"
	"github.com/tomtom215/jobmatch/internal/recommend"
	"github.com/tomtom215/jobmatch/internal/supervisor"
	"github.com/tomtom215/jobmatch/internal/supervisor/services"
)

// initRecommend builds the engine and service, and registers the matrix job
// when MATRIX_ENABLED is set.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, b *backends, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*recommend.Service, error) {
	engine, err := recommend.NewEngine(cfg.Recommend.Tuning, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	defaults := cfg.Recommend.HybridOptions()
	svc := recommend.NewService(engine, b.feedback, b.catalog, defaults, logger)

	logger.Info().
		Int("similar_users", defaults.SimilarUsersCount).
		Int("min_common_items", defaults.MinCommonItems).
		Str("method", defaults.SimilarityMethod.String()).
		Int("max_candidates", defaults.MaxCandidates).
		Float64("min_score", defaults.MinRecommendScore).
		Msg("recommendation service initialized")

	if !cfg.Matrix.Enabled {
		logger.Info().Msg("similarity matrix job disabled (MATRIX_ENABLED=false)")
		return svc, nil
	}

	tree.AddJobService(services.NewMatrixService(svc, services.MatrixServiceConfig{
		Interval: cfg.Matrix.Interval,
		Method:   cfg.Matrix.SimilarityMethod(),
		Output:   cfg.Matrix.Output,
	}, logger))
	return svc, nil
}
