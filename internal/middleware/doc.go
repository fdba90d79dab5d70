// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: UUID request tracking, propagated through logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both are plain func(http.Handler) http.Handler and are installed with chi's
r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests with the matched chi route pattern (for
example /api/v1/users/{userID}/recommendations), so it must run inside a chi
router to avoid one series per user.
*/
package middleware
