// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
)

func TestSimilarityMatrix(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MatrixWorkers = 2
	e, err := NewEngine(tuning, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	feedback := append(tasteFixture(), like("loner", "q"))
	m, err := e.SimilarityMatrix(context.Background(), feedback, MethodHybrid)
	if err != nil {
		t.Fatalf("SimilarityMatrix: %v", err)
	}

	if want := []string{"N1", "N2", "N3", "T", "loner"}; !slices.Equal(m.Users, want) {
		t.Fatalf("Users = %v, want %v", m.Users, want)
	}

	for i, a := range m.Users {
		if m.Scores[i][i] != 1 {
			t.Errorf("diagonal[%s] = %v, want 1", a, m.Scores[i][i])
		}
		for j, b := range m.Users {
			if m.Scores[i][j] != m.Scores[j][i] {
				t.Errorf("matrix not symmetric at %s,%s", a, b)
			}
			if i == j {
				continue
			}
			res, ok := e.CalculateUserSimilarity(feedback, a, b, MethodHybrid)
			want := 0.0
			if ok {
				want = res.Score
			}
			if !approxEqual(m.Scores[i][j], want) {
				t.Errorf("Scores[%s][%s] = %v, want %v", a, b, m.Scores[i][j], want)
			}
		}
	}

	if got, ok := m.Score("T", "N1"); !ok || !approxEqual(got, 1) {
		t.Errorf("Score(T, N1) = %v, %v; want 1, true", got, ok)
	}
	if got, ok := m.Score("T", "loner"); !ok || got != 0 {
		t.Errorf("Score(T, loner) = %v, %v; want 0, true", got, ok)
	}
	if _, ok := m.Score("T", "ghost"); ok {
		t.Error("Score with unknown user should report false")
	}
}

func TestSimilarityMatrixCanceled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.SimilarityMatrix(ctx, tasteFixture(), MethodCosine)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSimilarityMatrixInvalidMethod(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SimilarityMatrix(context.Background(), tasteFixture(), SimilarityMethod(9)); err == nil {
		t.Error("expected error for invalid method")
	}
}

func TestSimilarityMatrixEmpty(t *testing.T) {
	e := newTestEngine(t)
	m, err := e.SimilarityMatrix(context.Background(), nil, MethodHybrid)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Users) != 0 || len(m.Scores) != 0 {
		t.Errorf("empty feedback produced %+v", m)
	}
}
