// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - recommend_duration_seconds: Operation latency including feedback retrieval (histogram)
    Labels: operation
  - recommend_results: Result count per operation (histogram)
  - recommend_empty_total: Operations returning nothing (counter)
  - recommend_errors_total: Collaborator failures (counter)
    Labels: operation, source
  - feedback_events_loaded: Feedback set size per request (histogram)

Feedback Store Metrics:
  - feedback_store_operations_total: Store calls (counter)
    Labels: backend, operation, result
  - feedback_source_throttled_total: Reads rejected by the rate limiter (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

Similarity Matrix Metrics:
  - similarity_matrix_duration_seconds (histogram)
  - similarity_matrix_users (gauge)
  - similarity_matrix_runs_total: Runs by result (counter)
  - similarity_matrix_last_success_timestamp (gauge)

# Usage

	metrics.RecordRecommendation("recommend", time.Since(start), len(recs))
	metrics.RecordStoreOperation("badger", "record", err, false)
*/
package metrics
