// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Field names in errors come from the json tag, so API clients
// see the same names they sent.
//
// Custom tags:
//   - entityid: user and job identifiers (1-128 chars, no control characters, no '/')
//   - simmethod: one of hybrid, cosine, pearson, jaccard (empty allowed)
//
// Example:
//
//	type SimilarUsersRequest struct {
//	    UserID string `json:"user_id" validate:"required,entityid"`
//	    Limit  int    `json:"limit" validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code / apiErr.Message / apiErr.Details
//	}
package validation
