// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package main

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/jobmatch/internal/catalog"
	"github.com/tomtom215/jobmatch/internal/config"
	"github.com/tomtom215/jobmatch/internal/database"
	"github.com/tomtom215/jobmatch/internal/feedback"
	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// session is the configuration plus whichever stores a command opened.
type session struct {
	cfg      *config.Config
	db       *database.DB
	feedback feedback.Store
}

func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg}
	if cfg.NeedsMongo() {
		db, err := database.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}
		s.db = db
	}
	return s, nil
}

func (s *session) mongo() *mongo.Database {
	if s.db == nil {
		return nil
	}
	return s.db.Database()
}

// feedbackStore opens the configured store once.
func (s *session) feedbackStore(ctx context.Context) (feedback.Store, error) {
	if s.feedback != nil {
		return s.feedback, nil
	}
	if s.cfg.Feedback.Backend == feedback.BackendMemory {
		return nil, errors.New("FEEDBACK_BACKEND=memory has no persisted events; use badger, redis or mongo")
	}
	store, err := feedback.Open(ctx, s.cfg.Feedback, s.mongo())
	if err != nil {
		return nil, fmt.Errorf("open feedback store: %w", err)
	}
	s.feedback = store
	return store, nil
}

// catalogSource returns the configured job catalog.
func (s *session) catalogSource() (recommend.CatalogSource, error) {
	if s.cfg.Catalog.Backend == config.CatalogMongo {
		return catalog.NewMongoCatalog(s.mongo(), s.cfg.Catalog.Collection, s.cfg.Catalog.Breaker), nil
	}
	return catalog.LoadFile(s.cfg.Catalog.Path)
}

// service wires an engine over the opened stores using configured defaults.
func (s *session) service(ctx context.Context) (*recommend.Service, error) {
	store, err := s.feedbackStore(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := s.catalogSource()
	if err != nil {
		return nil, err
	}
	engine, err := recommend.NewEngine(s.cfg.Recommend.Tuning, logging.Logger())
	if err != nil {
		return nil, err
	}
	return recommend.NewService(engine, store, cat, s.cfg.Recommend.HybridOptions(), logging.Logger()), nil
}

func (s *session) close(ctx context.Context) {
	if s.feedback != nil {
		if err := s.feedback.Close(); err != nil {
			logging.Error().Err(err).Msg("close feedback store")
		}
	}
	if s.db != nil {
		if err := s.db.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("close mongodb")
		}
	}
}

// withSession opens a session, runs fn and closes it.
func withSession(ctx context.Context, fn func(*session) error) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close(context.WithoutCancel(ctx))
	return fn(s)
}
