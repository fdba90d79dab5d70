// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation operations in seconds, including feedback retrieval",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"}, // "similar_users", "similarity", "recommend", "recommend_hybrid"
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of results returned per recommendation operation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"operation"},
	)

	RecommendEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_empty_total",
			Help: "Total number of recommendation operations that returned no results",
		},
		[]string{"operation"},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_errors_total",
			Help: "Total number of recommendation operations that failed in a collaborator",
		},
		[]string{"operation", "source"}, // source: "feedback", "catalog"
	)

	FeedbackEventsLoaded = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_events_loaded",
			Help:    "Number of feedback events materialized per request",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		},
	)

	// Feedback Store Metrics
	FeedbackStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_store_operations_total",
			Help: "Total number of feedback store operations",
		},
		[]string{"backend", "operation", "result"}, // result: "success", "not_found", "error"
	)

	FeedbackSourceThrottled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_source_throttled_total",
			Help: "Total number of feedback reads rejected by the local rate limiter",
		},
		[]string{"name"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Similarity Matrix Metrics
	MatrixDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_matrix_duration_seconds",
			Help:    "Duration of similarity matrix batch runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 900},
		},
	)

	MatrixUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_matrix_users",
			Help: "Number of users in the most recent similarity matrix",
		},
	)

	MatrixRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "similarity_matrix_runs_total",
			Help: "Total number of similarity matrix batch runs",
		},
		[]string{"result"}, // "success", "error", "canceled"
	)

	MatrixLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_matrix_last_success_timestamp",
			Help: "Unix timestamp of the last successful similarity matrix run",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the latency and result size of a recommendation operation.
func RecordRecommendation(operation string, duration time.Duration, results int) {
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
	RecommendResults.WithLabelValues(operation).Observe(float64(results))
	if results == 0 {
		RecommendEmpty.WithLabelValues(operation).Inc()
	}
}

// RecordRecommendError records a collaborator failure during a recommendation operation.
func RecordRecommendError(operation, source string) {
	RecommendErrors.WithLabelValues(operation, source).Inc()
}

// RecordFeedbackLoad records how many feedback events a request materialized.
func RecordFeedbackLoad(events int) {
	FeedbackEventsLoaded.Observe(float64(events))
}

// RecordStoreOperation records a feedback store call. notFound marks lookups
// that completed but found nothing.
func RecordStoreOperation(backend, operation string, err error, notFound bool) {
	result := "success"
	switch {
	case notFound:
		result = "not_found"
	case err != nil:
		result = "error"
	}
	FeedbackStoreOperations.WithLabelValues(backend, operation, result).Inc()
}

// RecordMatrixRun records a similarity matrix batch run.
func RecordMatrixRun(duration time.Duration, users int, err error) {
	switch {
	case err == nil:
		MatrixRuns.WithLabelValues("success").Inc()
		MatrixDuration.Observe(duration.Seconds())
		MatrixUsers.Set(float64(users))
		MatrixLastSuccess.Set(float64(time.Now().Unix()))
	case isCanceled(err):
		MatrixRuns.WithLabelValues("canceled").Inc()
	default:
		MatrixRuns.WithLabelValues("error").Inc()
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
