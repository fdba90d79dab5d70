// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func event(user, item string, signal recommend.Signal, offset time.Duration) recommend.FeedbackEvent {
	return recommend.FeedbackEvent{
		UserID:    user,
		ItemID:    item,
		Signal:    signal,
		Timestamp: baseTime.Add(offset),
	}
}

// runStoreSuite checks the behavior every backend must share.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("record and list", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, e := range []recommend.FeedbackEvent{
			event("u2", "j1", recommend.SignalLike, 0),
			event("u1", "j2", recommend.SignalDislike, time.Minute),
			event("u1", "j1", recommend.SignalLike, 2*time.Minute),
		} {
			if err := s.Record(ctx, e); err != nil {
				t.Fatalf("Record(%+v): %v", e, err)
			}
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatalf("All: %v", err)
		}
		want := [][2]string{{"u1", "j1"}, {"u1", "j2"}, {"u2", "j1"}}
		if len(all) != len(want) {
			t.Fatalf("All returned %d events, want %d", len(all), len(want))
		}
		for i, w := range want {
			if all[i].UserID != w[0] || all[i].ItemID != w[1] {
				t.Errorf("All[%d] = %s/%s, want %s/%s", i, all[i].UserID, all[i].ItemID, w[0], w[1])
			}
		}
	})

	t.Run("record replaces pair", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if err := s.Record(ctx, event("u1", "j1", recommend.SignalLike, 0)); err != nil {
			t.Fatal(err)
		}
		if err := s.Record(ctx, event("u1", "j1", recommend.SignalDislike, time.Hour)); err != nil {
			t.Fatal(err)
		}

		events, err := s.ForUser(ctx, "u1")
		if err != nil {
			t.Fatal(err)
		}
		if len(events) != 1 {
			t.Fatalf("ForUser returned %d events, want 1", len(events))
		}
		if events[0].Signal != recommend.SignalDislike {
			t.Errorf("Signal = %v, want dislike", events[0].Signal)
		}
		if !events[0].Timestamp.Equal(baseTime.Add(time.Hour)) {
			t.Errorf("Timestamp = %v, want %v", events[0].Timestamp, baseTime.Add(time.Hour))
		}
	})

	t.Run("separator characters keep pairs distinct", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if err := s.Record(ctx, event("a_b", "c", recommend.SignalLike, 0)); err != nil {
			t.Fatal(err)
		}
		if err := s.Record(ctx, event("a", "b_c", recommend.SignalDislike, time.Minute)); err != nil {
			t.Fatal(err)
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 2 {
			t.Fatalf("All returned %d events, want 2", len(all))
		}

		if err := s.Remove(ctx, "a", "b_c"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		kept, err := s.ForUser(ctx, "a_b")
		if err != nil {
			t.Fatal(err)
		}
		if len(kept) != 1 || kept[0].ItemID != "c" || kept[0].Signal != recommend.SignalLike {
			t.Errorf("ForUser(a_b) = %+v, want the single like on c", kept)
		}
	})

	t.Run("for user newest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for i, item := range []string{"j1", "j2", "j3"} {
			if err := s.Record(ctx, event("u1", item, recommend.SignalLike, time.Duration(i)*time.Minute)); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.Record(ctx, event("u2", "j9", recommend.SignalLike, time.Hour)); err != nil {
			t.Fatal(err)
		}

		events, err := s.ForUser(ctx, "u1")
		if err != nil {
			t.Fatal(err)
		}
		got := make([]string, len(events))
		for i, e := range events {
			got[i] = e.ItemID
		}
		want := []string{"j3", "j2", "j1"}
		if len(got) != len(want) {
			t.Fatalf("ForUser = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("ForUser = %v, want %v", got, want)
			}
		}
	})

	t.Run("unknown user is empty", func(t *testing.T) {
		s := newStore(t)
		events, err := s.ForUser(context.Background(), "nobody")
		if err != nil {
			t.Fatal(err)
		}
		if len(events) != 0 {
			t.Errorf("ForUser(nobody) = %v, want empty", events)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if err := s.Record(ctx, event("u1", "j1", recommend.SignalLike, 0)); err != nil {
			t.Fatal(err)
		}
		if err := s.Remove(ctx, "u1", "j1"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if err := s.Remove(ctx, "u1", "j1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("second Remove err = %v, want ErrNotFound", err)
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 0 {
			t.Errorf("All after remove = %v, want empty", all)
		}
	})

	t.Run("rejects invalid events", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		tests := []struct {
			name  string
			event recommend.FeedbackEvent
		}{
			{"missing user", event("", "j1", recommend.SignalLike, 0)},
			{"missing item", event("u1", "", recommend.SignalLike, 0)},
			{"bad signal", event("u1", "j1", recommend.Signal(7), 0)},
			{"slash in item", event("u1", "a/b", recommend.SignalLike, 0)},
			{"zero timestamp", recommend.FeedbackEvent{UserID: "u1", ItemID: "j1", Signal: recommend.SignalLike}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if err := s.Record(ctx, tt.event); !errors.Is(err, ErrInvalidEvent) {
					t.Errorf("Record err = %v, want ErrInvalidEvent", err)
				}
			})
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s := NewMemoryStore()
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestMemoryStoreClosed(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.All(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("All after Close err = %v, want ErrClosed", err)
	}
}

func TestNewMemoryStoreFromKeepsLatest(t *testing.T) {
	s, err := NewMemoryStoreFrom([]recommend.FeedbackEvent{
		event("u1", "j1", recommend.SignalLike, 0),
		event("u1", "j1", recommend.SignalDislike, time.Minute),
	})
	if err != nil {
		t.Fatal(err)
	}
	all, err := s.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Signal != recommend.SignalDislike {
		t.Errorf("All = %+v, want single dislike", all)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), Config{Backend: "cassandra"}, nil); err == nil {
		t.Error("expected error for unknown backend")
	}
	if _, err := Open(context.Background(), Config{Backend: BackendMongo}, nil); err == nil {
		t.Error("expected error for mongo backend without database")
	}
}
