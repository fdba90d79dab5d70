// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package breaker guards calls to remote collaborators (feedback stores,
// job catalogs) with a circuit breaker and a client-side rate limiter.
//
// The circuit breaker uses real time (via sony/gobreaker) for its interval
// and timeout. Unit tests should exercise the trip logic through counts,
// not by waiting on timers.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/metrics"
)

// ErrThrottled is returned when the rate limiter cannot grant a token before
// the caller's context ends.
var ErrThrottled = errors.New("request throttled")

// Config controls a Breaker.
type Config struct {
	// Name labels metrics and logs.
	Name string `koanf:"name"`

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests" validate:"gte=1"`

	// Interval resets failure counts while closed.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MinRequests is the minimum sample before the failure ratio is trusted.
	MinRequests uint32 `koanf:"min_requests" validate:"gte=1"`

	// FailureRatio opens the breaker when reached.
	FailureRatio float64 `koanf:"failure_ratio" validate:"gt=0,lte=1"`

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`

	// RateBurst is the limiter bucket size.
	RateBurst int `koanf:"rate_burst" validate:"gte=0"`
}

// DefaultConfig returns breaker settings suited to a database-backed store.
func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
		RateLimit:    0,
		RateBurst:    20,
	}
}

// Breaker wraps calls with circuit breaking and optional rate limiting.
type Breaker struct {
	name    string
	cb      *gobreaker.CircuitBreaker[any]
	limiter *rate.Limiter
}

// New creates a Breaker. Errors matching any of ignore (via errors.Is) count as
// successes, so expected outcomes such as "not found" never trip the breaker.
//
//nolint:gocritic // cfg passed by value at construction time
func New(cfg Config, ignore ...error) *Breaker {
	name := cfg.Name
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return shouldTrip(counts, minRequests, ratio)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			for _, target := range ignore {
				if errors.Is(err, target) {
					return true
				}
			}
			// A caller giving up is not a collaborator failure.
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	}

	b := &Breaker{
		name: name,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		b.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return b
}

// shouldTrip opens the breaker once enough requests have been seen and the
// failure ratio reaches the threshold.
func shouldTrip(counts gobreaker.Counts, minRequests uint32, ratio float64) bool {
	if counts.Requests < minRequests || counts.Requests == 0 {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= ratio
}

// Name returns the breaker's metric label.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current breaker state as a string.
func (b *Breaker) State() string {
	return stateToString(b.cb.State())
}

// Execute runs fn under the limiter and the circuit breaker.
// Errors from fn are returned unchanged.
func (b *Breaker) Execute(ctx context.Context, fn func() (any, error)) (any, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			metrics.FeedbackSourceThrottled.WithLabelValues(b.name).Inc()
			return nil, fmt.Errorf("%s: %w: %w", b.name, ErrThrottled, err)
		}
	}

	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("request rejected by circuit breaker")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).
				Set(float64(b.cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// Do runs fn for operations without a result.
func (b *Breaker) Do(ctx context.Context, fn func() error) error {
	_, err := b.Execute(ctx, func() (any, error) {
		return nil, fn()
	})
	return err
}

// Rejected reports whether err came from the breaker or limiter refusing the
// call, rather than from the guarded operation itself.
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		errors.Is(err, ErrThrottled)
}

// Cast unwraps an Execute result into its concrete type.
func Cast[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
