// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

// MemoryStore keeps feedback in process memory. It is the default backend and
// the one used by unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]map[string]recommend.FeedbackEvent
	closed bool
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]map[string]recommend.FeedbackEvent)}
}

// NewMemoryStoreFrom seeds a store with events. Later events for the same
// pair replace earlier ones. Invalid events are rejected.
func NewMemoryStoreFrom(events []recommend.FeedbackEvent) (*MemoryStore, error) {
	s := NewMemoryStore()
	for _, e := range events {
		if err := s.Record(context.Background(), e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Record implements Store.
func (s *MemoryStore) Record(ctx context.Context, event recommend.FeedbackEvent) error {
	if err := checkEvent(&event); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	items, ok := s.users[event.UserID]
	if !ok {
		items = make(map[string]recommend.FeedbackEvent)
		s.users[event.UserID] = items
	}
	items[event.ItemID] = event
	return observe(BackendMemory, "record", nil)
}

// Remove implements Store.
func (s *MemoryStore) Remove(ctx context.Context, userID, itemID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	items := s.users[userID]
	if _, ok := items[itemID]; !ok {
		return observe(BackendMemory, "remove", ErrNotFound)
	}
	delete(items, itemID)
	if len(items) == 0 {
		delete(s.users, userID)
	}
	return observe(BackendMemory, "remove", nil)
}

// ForUser implements Store.
func (s *MemoryStore) ForUser(ctx context.Context, userID string) ([]recommend.FeedbackEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	events := lo.Values(s.users[userID])
	sortNewestFirst(events)
	return events, observe(BackendMemory, "for_user", nil)
}

// All implements Store.
func (s *MemoryStore) All(ctx context.Context) ([]recommend.FeedbackEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	events := make([]recommend.FeedbackEvent, 0, len(s.users))
	for _, items := range s.users {
		events = append(events, lo.Values(items)...)
	}
	sortByUserItem(events)
	return events, observe(BackendMemory, "all", nil)
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
