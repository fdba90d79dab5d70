// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const floatTolerance = 1e-9

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func like(user, item string) FeedbackEvent {
	return FeedbackEvent{UserID: user, ItemID: item, Signal: SignalLike, Timestamp: epoch}
}

func dislike(user, item string) FeedbackEvent {
	return FeedbackEvent{UserID: user, ItemID: item, Signal: SignalDislike, Timestamp: epoch}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultTuning(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{ID: id, Title: "Job " + id}
	}
	return out
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// tasteFixture: target T shares a+,b+,c- with N1 and N2 and is the exact
// opposite of N3.
//
//	N1 also likes x and dislikes y
//	N2 also likes x and z
//	N3 also likes y and w
func tasteFixture() []FeedbackEvent {
	return []FeedbackEvent{
		like("T", "a"), like("T", "b"), dislike("T", "c"),

		like("N1", "a"), like("N1", "b"), dislike("N1", "c"),
		like("N1", "x"), dislike("N1", "y"),

		like("N2", "a"), like("N2", "b"), dislike("N2", "c"),
		like("N2", "x"), like("N2", "z"),

		dislike("N3", "a"), dislike("N3", "b"), like("N3", "c"),
		like("N3", "y"), like("N3", "w"),
	}
}
