// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/jobmatch/internal/metrics"
	"github.com/tomtom215/jobmatch/internal/recommend"
	"github.com/tomtom215/jobmatch/internal/validation"
)

// Backend names used in configuration and metric labels.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

var (
	// ErrNotFound is returned when no feedback exists for a user/item pair.
	ErrNotFound = errors.New("feedback not found")

	// ErrInvalidEvent is returned by Record for events that fail validation.
	ErrInvalidEvent = errors.New("invalid feedback event")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("feedback store closed")
)

// Store persists like/dislike events. Each (user, item) pair holds at most
// one event; recording again replaces it.
type Store interface {
	// Record upserts the event for its (user, item) pair.
	Record(ctx context.Context, event recommend.FeedbackEvent) error

	// Remove deletes the pair's event, returning ErrNotFound when absent.
	Remove(ctx context.Context, userID, itemID string) error

	// ForUser returns the user's events, newest first.
	ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error)

	// All returns every stored event ordered by user then item.
	All(ctx context.Context) ([]recommend.FeedbackEvent, error)

	// Close releases the backend.
	Close() error
}

// observe records the outcome of a backend call and returns err unchanged.
func observe(backend, operation string, err error) error {
	metrics.RecordStoreOperation(backend, operation, err, errors.Is(err, ErrNotFound))
	return err
}

func checkEvent(event *recommend.FeedbackEvent) error {
	if verr := validation.ValidateStruct(event); verr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, verr)
	}
	if event.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}
	return nil
}

// sortByUserItem orders events for All.
func sortByUserItem(events []recommend.FeedbackEvent) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].UserID != events[j].UserID {
			return events[i].UserID < events[j].UserID
		}
		return events[i].ItemID < events[j].ItemID
	})
}

// sortNewestFirst orders events for ForUser. Equal timestamps fall back to item ID.
func sortNewestFirst(events []recommend.FeedbackEvent) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.After(events[j].Timestamp)
		}
		return events[i].ItemID < events[j].ItemID
	})
}
