// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package models

import (
	"time"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

// SimilarUsersResponse lists a user's nearest neighbors.
type SimilarUsersResponse struct {
	UserID string                       `json:"user_id"`
	Method recommend.SimilarityMethod   `json:"method"`
	Count  int                          `json:"count"`
	Users  []recommend.SimilarityResult `json:"users"`
}

// SimilarityResponse is the similarity of one user pair.
type SimilarityResponse struct {
	UserID      string                     `json:"user_id"`
	PeerUserID  string                     `json:"peer_user_id"`
	Method      recommend.SimilarityMethod `json:"method"`
	Score       float64                    `json:"score"`
	CommonItems int                        `json:"common_items"`
}

// RecommendationsResponse lists ranked job listings for a user.
type RecommendationsResponse struct {
	UserID          string                     `json:"user_id"`
	Method          recommend.SimilarityMethod `json:"method"`
	Hybrid          bool                       `json:"hybrid"`
	Count           int                        `json:"count"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// FeedbackListResponse lists a user's feedback, newest first.
type FeedbackListResponse struct {
	UserID   string                    `json:"user_id"`
	Count    int                       `json:"count"`
	Feedback []recommend.FeedbackEvent `json:"feedback"`
}

// JobsResponse lists the catalog.
type JobsResponse struct {
	Count int              `json:"count"`
	Jobs  []recommend.Item `json:"jobs"`
}

// HealthResponse reports liveness and backend reachability.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Uptime     string                     `json:"uptime"`
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth is the state of one dependency.
type ComponentHealth struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}
