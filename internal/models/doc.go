// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package models defines the HTTP wire shapes of the Jobmatch API.

Domain types (FeedbackEvent, Item, Recommendation, SimilarityResult) live in
package recommend and carry their own JSON tags. This package adds the
response envelope shared by every endpoint and the list payloads that wrap
domain values:

  - APIResponse: {status, data, metadata, error}
  - Metadata: timestamp, query time and request ID
  - APIError: code, message and optional details
  - SimilarUsersResponse, SimilarityResponse, RecommendationsResponse,
    FeedbackListResponse, JobsResponse, HealthResponse
*/
package models
