// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"

	"github.com/tomtom215/jobmatch/internal/breaker"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// GuardedStore wraps a remote Store with a circuit breaker and rate limiter.
// ErrNotFound and ErrInvalidEvent are caller outcomes and never trip it.
type GuardedStore struct {
	next Store
	cb   *breaker.Breaker
}

// NewGuardedStore wraps next.
//
//nolint:gocritic // cfg passed by value at construction time
func NewGuardedStore(next Store, cfg breaker.Config) *GuardedStore {
	return &GuardedStore{
		next: next,
		cb:   breaker.New(cfg, ErrNotFound, ErrInvalidEvent),
	}
}

// Record implements Store.
func (g *GuardedStore) Record(ctx context.Context, event recommend.FeedbackEvent) error {
	return g.cb.Do(ctx, func() error {
		return g.next.Record(ctx, event)
	})
}

// Remove implements Store.
func (g *GuardedStore) Remove(ctx context.Context, userID, itemID string) error {
	return g.cb.Do(ctx, func() error {
		return g.next.Remove(ctx, userID, itemID)
	})
}

// ForUser implements Store.
func (g *GuardedStore) ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error) {
	return breaker.Cast[[]recommend.FeedbackEvent](g.cb.Execute(ctx, func() (any, error) {
		return g.next.ForUser(ctx, userID)
	}))
}

// All implements Store.
func (g *GuardedStore) All(ctx context.Context) ([]recommend.FeedbackEvent, error) {
	return breaker.Cast[[]recommend.FeedbackEvent](g.cb.Execute(ctx, func() (any, error) {
		return g.next.All(ctx)
	}))
}

// Close implements Store.
func (g *GuardedStore) Close() error {
	return g.next.Close()
}

// Breaker exposes the guard for health reporting.
func (g *GuardedStore) Breaker() *breaker.Breaker {
	return g.cb
}
