// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"fmt"
	"testing"
)

func TestFindSimilarUsersOrdering(t *testing.T) {
	e := newTestEngine(t)
	feedback := []FeedbackEvent{
		like("T", "a"), like("T", "b"), like("T", "c"), like("T", "d"),

		// cosine 1 over three items
		like("P1", "a"), like("P1", "b"), like("P1", "c"),
		// cosine 1 over four items, wins the tie on overlap
		like("P2", "a"), like("P2", "b"), like("P2", "c"), like("P2", "d"),
		// cosine 1/3 remapped to 2/3
		like("P3", "a"), dislike("P3", "b"), like("P3", "c"),
		// cosine 1 over three items, ties P1 and loses on ID
		like("P4", "b"), like("P4", "c"), like("P4", "d"),
		// too little overlap
		like("P5", "a"),
	}

	got := e.FindSimilarUsers(feedback, "T", 10, MethodCosine, 3)

	want := []string{"P2", "P1", "P4", "P3"}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors (%+v), want %d", len(got), got, len(want))
	}
	for i, id := range want {
		if got[i].PeerUserID != id {
			t.Errorf("neighbor[%d] = %s, want %s", i, got[i].PeerUserID, id)
		}
	}
	if !approxEqual(got[3].Score, 2.0/3) {
		t.Errorf("P3 score = %v, want 2/3", got[3].Score)
	}
}

func TestFindSimilarUsersEdgeCases(t *testing.T) {
	e := newTestEngine(t)
	feedback := tasteFixture()

	tests := []struct {
		name      string
		target    string
		topN      int
		minCommon int
		wantLen   int
	}{
		{"default fixture", "T", 10, 3, 3},
		{"truncates to topN", "T", 2, 3, 2},
		{"min common above max overlap", "T", 10, 5, 0},
		{"cold user", "nobody", 10, 1, 0},
		{"zero topN", "T", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FindSimilarUsers(feedback, tt.target, tt.topN, MethodHybrid, tt.minCommon)
			if got == nil {
				t.Fatal("FindSimilarUsers returned nil")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d (%+v)", len(got), tt.wantLen, got)
			}
			for _, n := range got {
				if n.PeerUserID == tt.target {
					t.Error("target listed as its own neighbor")
				}
				if n.CommonItemCount < tt.minCommon {
					t.Errorf("neighbor %s has %d common items, below %d", n.PeerUserID, n.CommonItemCount, tt.minCommon)
				}
			}
		})
	}
}

func TestFindSimilarUsersSortedWithinTolerance(t *testing.T) {
	e := newTestEngine(t)
	tol := e.Tuning().ScoreTolerance

	for _, method := range []SimilarityMethod{MethodHybrid, MethodCosine, MethodPearson, MethodJaccard} {
		got := e.FindSimilarUsers(tasteFixture(), "T", 10, method, 1)
		for i := 1; i < len(got); i++ {
			if got[i-1].Score < got[i].Score-tol {
				t.Errorf("%s: neighbor %d (%v) ranked above higher score %v", method, i-1, got[i-1].Score, got[i].Score)
			}
		}
	}
}

// Scores 0.0008 apart chain across tolerance boundaries; the best peer must
// still come first and survive truncation.
func TestFindSimilarUsersCloseScoresStayOrdered(t *testing.T) {
	e := newTestEngine(t)

	const targetItems, shared = 1250, 625
	var feedback []FeedbackEvent
	for i := 0; i < targetItems; i++ {
		feedback = append(feedback, like("T", fmt.Sprintf("job-%04d", i)))
	}

	// Equal overlap; extra items only widen the Jaccard union.
	// a-peer 625/1254, b-peer 625/1252, c-peer 625/1250.
	extras := map[string]int{"a-peer": 4, "b-peer": 2, "c-peer": 0}
	for peer, n := range extras {
		for i := 0; i < shared; i++ {
			feedback = append(feedback, like(peer, fmt.Sprintf("job-%04d", i)))
		}
		for i := 0; i < n; i++ {
			feedback = append(feedback, like(peer, fmt.Sprintf("%s-extra-%d", peer, i)))
		}
	}

	got := e.FindSimilarUsers(feedback, "T", 3, MethodJaccard, 1)
	if len(got) != 3 {
		t.Fatalf("got %d neighbors, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("not non-increasing at %d: %.4f then %.4f", i, got[i-1].Score, got[i].Score)
		}
	}

	want := []string{"c-peer", "b-peer", "a-peer"}
	for i, id := range want {
		if got[i].PeerUserID != id {
			t.Errorf("neighbor %d = %s, want %s", i, got[i].PeerUserID, id)
		}
	}

	top := e.FindSimilarUsers(feedback, "T", 1, MethodJaccard, 1)
	if len(top) != 1 || top[0].PeerUserID != "c-peer" {
		t.Errorf("top-1 = %+v, want c-peer", top)
	}
}

func TestSortNeighborsTransitive(t *testing.T) {
	e := newTestEngine(t)
	neighbors := []SimilarityResult{
		{PeerUserID: "P1", Score: 0.5000, CommonItemCount: 5},
		{PeerUserID: "P2", Score: 0.5008, CommonItemCount: 5},
		{PeerUserID: "P3", Score: 0.5016, CommonItemCount: 5},
	}

	e.sortNeighbors(neighbors)

	for i, id := range []string{"P3", "P2", "P1"} {
		if neighbors[i].PeerUserID != id {
			t.Errorf("position %d = %s, want %s", i, neighbors[i].PeerUserID, id)
		}
	}
}
