// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package breaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/jobmatch/internal/metrics"
)

var (
	errBackend  = errors.New("backend down")
	errNotFound = errors.New("not found")
)

func testConfig(name string) Config {
	cfg := DefaultConfig(name)
	cfg.MinRequests = 2
	cfg.FailureRatio = 0.5
	cfg.Timeout = time.Hour
	return cfg
}

func TestShouldTrip(t *testing.T) {
	tests := []struct {
		name   string
		counts gobreaker.Counts
		want   bool
	}{
		{"no requests", gobreaker.Counts{}, false},
		{"below minimum", gobreaker.Counts{Requests: 1, TotalFailures: 1}, false},
		{"ratio below threshold", gobreaker.Counts{Requests: 10, TotalFailures: 5}, false},
		{"ratio at threshold", gobreaker.Counts{Requests: 10, TotalFailures: 6}, true},
		{"all failures", gobreaker.Counts{Requests: 12, TotalFailures: 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldTrip(tt.counts, 10, 0.6); got != tt.want {
				t.Errorf("shouldTrip(%+v) = %v, want %v", tt.counts, got, tt.want)
			}
		})
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	b := New(testConfig("test-open"))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := b.Do(ctx, func() error { return errBackend }); !errors.Is(err, errBackend) {
			t.Fatalf("call %d: err = %v, want %v", i, err, errBackend)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	called := false
	err := b.Do(ctx, func() error {
		called = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if called {
		t.Error("function ran while breaker was open")
	}

	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-open")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
}

func TestBreakerIgnoresExpectedErrors(t *testing.T) {
	b := New(testConfig("test-ignore"), errNotFound)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := b.Do(ctx, func() error { return errNotFound })
		if !errors.Is(err, errNotFound) {
			t.Fatalf("err = %v, want %v", err, errNotFound)
		}
	}

	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreakerRateLimit(t *testing.T) {
	cfg := testConfig("test-throttle")
	cfg.RateLimit = 1
	cfg.RateBurst = 1
	b := New(cfg)

	if err := b.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := b.Do(ctx, func() error { return nil })
	if !errors.Is(err, ErrThrottled) {
		t.Errorf("second call err = %v, want ErrThrottled", err)
	}
	if got := testutil.ToFloat64(metrics.FeedbackSourceThrottled.WithLabelValues("test-throttle")); got != 1 {
		t.Errorf("feedback_source_throttled_total = %v, want 1", got)
	}
}

func TestCast(t *testing.T) {
	tests := []struct {
		name    string
		result  any
		err     error
		want    []string
		wantErr bool
	}{
		{name: "typed result", result: []string{"a"}, want: []string{"a"}},
		{name: "nil result", result: nil, want: nil},
		{name: "error passthrough", err: errBackend, wantErr: true},
		{name: "wrong type", result: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast[[]string](tt.result, tt.err)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Cast() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Errorf("Cast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"open state", gobreaker.ErrOpenState, true},
		{"half-open overflow", gobreaker.ErrTooManyRequests, true},
		{"throttled", fmt.Errorf("feedback-redis: %w: %w", ErrThrottled, context.DeadlineExceeded), true},
		{"backend failure", errBackend, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rejected(tt.err); got != tt.want {
				t.Errorf("Rejected(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
