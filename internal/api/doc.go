// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package api exposes the recommender over HTTP using the Chi router.

Routes:

	GET    /api/v1/users/{userID}/similar                 nearest neighbors
	GET    /api/v1/users/{userID}/similarity/{peerID}     pairwise score
	GET    /api/v1/users/{userID}/recommendations         collaborative ranking
	GET    /api/v1/users/{userID}/recommendations/hybrid  collaborative + content
	GET    /api/v1/users/{userID}/feedback                a user's events
	GET    /api/v1/users/{userID}/feedback/{jobID}        a single event
	PUT    /api/v1/feedback                               record like/dislike
	DELETE /api/v1/feedback/{userID}/{jobID}              retract an event
	GET    /api/v1/jobs                                   catalog listing
	GET    /api/v1/jobs/{jobID}                           one listing
	GET    /health, /health/live, /health/ready
	GET    /metrics                                       Prometheus

Every JSON answer uses models.APIResponse. Query and path parameters are
bound into request structs and checked with the validation package; a
failure returns 400 VALIDATION_ERROR with per-field details.

Backend failures are mapped by classifyError: an open circuit breaker or
throttled source yields 503, a handler timeout 504, unknown users or jobs
404. Unknown users are not an error for the read endpoints: they simply get
empty results.
*/
package api
