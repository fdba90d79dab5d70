// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

// MatrixBuilder computes the all-pairs similarity matrix.
// Satisfied by *recommend.Service.
type MatrixBuilder interface {
	Matrix(ctx context.Context, method recommend.SimilarityMethod) (*recommend.SimilarityMatrix, error)
}

// MatrixServiceConfig controls the periodic matrix job.
type MatrixServiceConfig struct {
	// Interval between runs. Default: 6h.
	Interval time.Duration

	// Method used for every run.
	Method recommend.SimilarityMethod

	// Output is the JSON file each successful run replaces.
	Output string

	// RunTimeout bounds a single run. Default: 30m.
	RunTimeout time.Duration
}

// MatrixService rebuilds the similarity matrix on a schedule and writes it
// to disk for offline analysis. It runs once at startup, then every Interval.
type MatrixService struct {
	builder MatrixBuilder
	config  MatrixServiceConfig
	logger  zerolog.Logger
}

// NewMatrixService creates the service.
//
//nolint:gocritic // logger passed by value at construction time
func NewMatrixService(builder MatrixBuilder, cfg MatrixServiceConfig, logger zerolog.Logger) *MatrixService {
	if cfg.Interval <= 0 {
		cfg.Interval = 6 * time.Hour
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 30 * time.Minute
	}
	return &MatrixService{
		builder: builder,
		config:  cfg,
		logger:  logger.With().Str("service", "similarity-matrix").Logger(),
	}
}

// Serve implements suture.Service. A failed run is logged and retried on
// the next tick; it never crashes the service.
func (s *MatrixService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Str("method", s.config.Method.String()).
		Str("output", s.config.Output).
		Msg("similarity matrix service starting")

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("initial matrix run failed (will retry on schedule)")
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("similarity matrix service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled matrix run failed")
			}
		}
	}
}

// RunOnce computes one matrix and writes it to Output.
func (s *MatrixService) RunOnce(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	start := time.Now()
	m, err := s.builder.Matrix(runCtx, s.config.Method)
	if err != nil {
		return fmt.Errorf("compute matrix: %w", err)
	}

	if err := writeMatrix(s.config.Output, m); err != nil {
		return err
	}

	s.logger.Info().
		Int("users", len(m.Users)).
		Dur("duration", time.Since(start)).
		Msg("similarity matrix written")
	return nil
}

// writeMatrix replaces path atomically so readers never see a partial file.
func writeMatrix(path string, m *recommend.SimilarityMatrix) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode matrix: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create matrix dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".matrix-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write matrix: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close matrix: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// String identifies the service in supervisor logs.
func (s *MatrixService) String() string {
	return "similarity-matrix"
}
