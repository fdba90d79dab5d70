// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/jobmatch/internal/api"
	"github.com/tomtom215/jobmatch/internal/catalog"
	"github.com/tomtom215/jobmatch/internal/config"
	"github.com/tomtom215/jobmatch/internal/database"
	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// jobCatalog is what both the service and the HTTP handlers need from a catalog.
type jobCatalog interface {
	recommend.CatalogSource
	api.JobCatalog
}

// backends holds the opened storage so main can close it on exit.
type backends struct {
	db       *database.DB
	feedback feedback.Store
	catalog  jobCatalog
}

// openBackends connects MongoDB when a backend needs it, then opens the
// feedback store and the job catalog.
func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{}

	var mdb *mongo.Database
	if cfg.NeedsMongo() {
		db, err := database.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}
		b.db = db
		mdb = db.Database()
	}

	store, err := feedback.Open(ctx, cfg.Feedback, mdb)
	if err != nil {
		b.close(ctx)
		return nil, fmt.Errorf("open feedback store: %w", err)
	}
	b.feedback = store
	logging.Info().Str("backend", cfg.Feedback.Backend).Msg("feedback store opened")

	switch cfg.Catalog.Backend {
	case config.CatalogMongo:
		b.catalog = catalog.NewMongoCatalog(mdb, cfg.Catalog.Collection, cfg.Catalog.Breaker)
		logging.Info().Str("collection", cfg.Catalog.Collection).Msg("mongo job catalog configured")
	default:
		jobs, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			b.close(ctx)
			return nil, fmt.Errorf("load job catalog: %w", err)
		}
		b.catalog = jobs
		logging.Info().Str("path", cfg.Catalog.Path).Int("jobs", jobs.Len()).Msg("job catalog loaded")
	}

	return b, nil
}

// healthChecks returns the probes exposed on /health.
func (b *backends) healthChecks() []api.HealthCheck {
	checks := []api.HealthCheck{{
		Name: "feedback",
		Check: func(ctx context.Context) error {
			return feedback.Check(ctx, b.feedback)
		},
	}}
	if b.db != nil {
		checks = append(checks, api.HealthCheck{Name: "mongodb", Check: b.db.Ping})
	}
	return checks
}

func (b *backends) close(ctx context.Context) {
	if b.feedback != nil {
		if err := b.feedback.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing feedback store")
		}
	}
	if b.db != nil {
		if err := b.db.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("error closing mongodb")
		}
	}
}
