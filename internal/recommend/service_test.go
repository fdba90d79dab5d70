// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubFeedback struct {
	events []FeedbackEvent
	err    error
	calls  int
}

func (s *stubFeedback) All(context.Context) ([]FeedbackEvent, error) {
	s.calls++
	return s.events, s.err
}

type stubCatalog struct {
	items []Item
	err   error
}

func (s *stubCatalog) Items(context.Context) ([]Item, error) {
	return s.items, s.err
}

func newTestService(t *testing.T, fb FeedbackSource, cat CatalogSource) *Service {
	t.Helper()
	return NewService(newTestEngine(t), fb, cat, DefaultHybridOptions(), zerolog.Nop())
}

func TestServiceRecommend(t *testing.T) {
	fb := &stubFeedback{events: tasteFixture()}
	svc := newTestService(t, fb, &stubCatalog{items: items("x", "y", "z", "w")})

	recs, err := svc.Recommend(context.Background(), "T", 5, Options{MinRecommendScore: -1})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Item.ID != "x" {
		t.Errorf("Recommend = %+v, want x then z", recs)
	}

	// A zero threshold is honored rather than replaced by the default.
	recs, err = svc.Recommend(context.Background(), "T", 5, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Errorf("Recommend with zero threshold returned %d items, want 3", len(recs))
	}
	if fb.calls != 2 {
		t.Errorf("feedback loaded %d times, want once per call", fb.calls)
	}
}

func TestServiceSourceErrors(t *testing.T) {
	backendErr := errors.New("connection refused")
	ctx := context.Background()

	t.Run("feedback", func(t *testing.T) {
		svc := newTestService(t, &stubFeedback{err: backendErr}, &stubCatalog{})

		_, err := svc.Recommend(ctx, "T", 5, Options{})
		if !errors.Is(err, ErrFeedbackUnavailable) || !errors.Is(err, backendErr) {
			t.Errorf("Recommend err = %v, want ErrFeedbackUnavailable wrapping backend error", err)
		}
		if _, err := svc.SimilarUsers(ctx, "T", 5, MethodHybrid, 1); !errors.Is(err, backendErr) {
			t.Errorf("SimilarUsers err = %v", err)
		}
		if _, _, err := svc.Similarity(ctx, "T", "N1", MethodHybrid); !errors.Is(err, backendErr) {
			t.Errorf("Similarity err = %v", err)
		}
		if _, err := svc.Matrix(ctx, MethodHybrid); !errors.Is(err, backendErr) {
			t.Errorf("Matrix err = %v", err)
		}
	})

	t.Run("catalog", func(t *testing.T) {
		svc := newTestService(t, &stubFeedback{events: tasteFixture()}, &stubCatalog{err: backendErr})

		_, err := svc.RecommendHybrid(ctx, "T", 5, HybridOptions{})
		if !errors.Is(err, ErrCatalogUnavailable) || !errors.Is(err, backendErr) {
			t.Errorf("RecommendHybrid err = %v, want ErrCatalogUnavailable wrapping backend error", err)
		}
	})
}

func TestServiceSimilarUsersAndSimilarity(t *testing.T) {
	svc := newTestService(t, &stubFeedback{events: tasteFixture()}, &stubCatalog{})
	ctx := context.Background()

	// minCommon 0 selects the configured default of 3.
	users, err := svc.SimilarUsers(ctx, "T", 2, MethodHybrid, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[0].PeerUserID != "N1" || users[1].PeerUserID != "N2" {
		t.Errorf("SimilarUsers = %+v, want N1, N2", users)
	}

	res, ok, err := svc.Similarity(ctx, "T", "N3", MethodCosine)
	if err != nil || !ok {
		t.Fatalf("Similarity = %+v, %v, %v", res, ok, err)
	}
	if !approxEqual(res.Score, 0) {
		t.Errorf("T/N3 cosine = %v, want 0", res.Score)
	}

	if _, ok, _ := svc.Similarity(ctx, "T", "ghost", MethodCosine); ok {
		t.Error("similarity with unknown user should be absent")
	}
}

func TestServiceMatrix(t *testing.T) {
	svc := newTestService(t, &stubFeedback{events: tasteFixture()}, &stubCatalog{})
	m, err := svc.Matrix(context.Background(), MethodJaccard)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Users) != 4 || m.Method != MethodJaccard {
		t.Errorf("Matrix = %+v", m)
	}
}
