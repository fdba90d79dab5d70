// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"fmt"
)

// Pinger is implemented by stores that can probe their backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check reports whether s can serve requests. An open breaker on a guarded
// store is unhealthy even when the backend itself answers a ping.
func Check(ctx context.Context, s Store) error {
	if g, ok := s.(*GuardedStore); ok {
		if state := g.cb.State(); state == "open" {
			return fmt.Errorf("%s: circuit breaker %s", g.cb.Name(), state)
		}
		s = g.next
	}
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Ping implements Pinger.
func (s *MemoryStore) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Ping implements Pinger.
func (s *BadgerStore) Ping(context.Context) error {
	return s.checkOpen()
}

// Ping implements Pinger.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
