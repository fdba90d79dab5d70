// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

type stubBuilder struct {
	err   error
	calls atomic.Int32
}

func (b *stubBuilder) Matrix(_ context.Context, method recommend.SimilarityMethod) (*recommend.SimilarityMatrix, error) {
	b.calls.Add(1)
	if b.err != nil {
		return nil, b.err
	}
	return &recommend.SimilarityMatrix{
		Method:     method,
		Users:      []string{"u1", "u2"},
		Scores:     [][]float64{{1, 0.5}, {0.5, 1}},
		ComputedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func TestMatrixServiceRunOnce(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "matrix.json")
	svc := NewMatrixService(&stubBuilder{}, MatrixServiceConfig{
		Method: recommend.MethodJaccard,
		Output: out,
	}, zerolog.Nop())

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var m recommend.SimilarityMatrix
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if m.Method != recommend.MethodJaccard || len(m.Users) != 2 {
		t.Errorf("matrix = %+v", m)
	}
	if score, ok := m.Score("u1", "u2"); !ok || score != 0.5 {
		t.Errorf("Score(u1, u2) = %v, %v", score, ok)
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(out), ".matrix-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestMatrixServiceRunOnceError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "matrix.json")
	builder := &stubBuilder{err: recommend.ErrFeedbackUnavailable}
	svc := NewMatrixService(builder, MatrixServiceConfig{Output: out}, zerolog.Nop())

	if err := svc.RunOnce(context.Background()); !errors.Is(err, recommend.ErrFeedbackUnavailable) {
		t.Errorf("RunOnce = %v, want ErrFeedbackUnavailable", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite failure: %v", err)
	}
}

func TestMatrixServiceServe(t *testing.T) {
	builder := &stubBuilder{err: errors.New("backend down")}
	svc := NewMatrixService(builder, MatrixServiceConfig{
		Interval: 20 * time.Millisecond,
		Output:   filepath.Join(t.TempDir(), "matrix.json"),
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	// Failed runs do not stop the loop; only cancellation does.
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve = %v, want deadline exceeded", err)
	}
	if got := builder.calls.Load(); got < 2 {
		t.Errorf("builder called %d times, want startup run plus ticks", got)
	}
}

func TestNewMatrixServiceDefaults(t *testing.T) {
	svc := NewMatrixService(&stubBuilder{}, MatrixServiceConfig{}, zerolog.Nop())
	if svc.config.Interval != 6*time.Hour || svc.config.RunTimeout != 30*time.Minute {
		t.Errorf("config = %+v", svc.config)
	}
}
