// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"time"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

// Request structs carry go-playground/validator tags and are validated with
// validateRequest before the service is called. Path parameters are copied in
// so IDs get the same entityid check as body fields.

// SimilarUsersRequest is GET /users/{userID}/similar.
type SimilarUsersRequest struct {
	UserID    string `json:"user_id" validate:"entityid"`
	Limit     int    `json:"limit" validate:"min=1,max=100"`
	Method    string `json:"method" validate:"simmethod"`
	MinCommon int    `json:"min_common" validate:"min=0,max=1000"`
}

// SimilarityRequest is GET /users/{userID}/similarity/{peerID}.
type SimilarityRequest struct {
	UserID string `json:"user_id" validate:"entityid"`
	PeerID string `json:"peer_id" validate:"entityid"`
	Method string `json:"method" validate:"simmethod"`
}

// RecommendationsRequest is GET /users/{userID}/recommendations.
// MinScore is -1 when the caller did not send min_score.
type RecommendationsRequest struct {
	UserID       string  `json:"user_id" validate:"entityid"`
	Limit        int     `json:"limit" validate:"min=1,max=100"`
	Method       string  `json:"method" validate:"simmethod"`
	MinCommon    int     `json:"min_common" validate:"min=0,max=1000"`
	SimilarUsers int     `json:"similar_users" validate:"min=0,max=1000"`
	MinScore     float64 `json:"min_score" validate:"gte=-1,lte=1"`

	CollaborativeWeight float64 `json:"collaborative_weight" validate:"gte=0,lte=1"`
	ContentWeight       float64 `json:"content_weight" validate:"gte=0,lte=1"`
}

// Options converts the request into engine options; zero fields fall back
// to the service defaults, including the configured MaxCandidates cap.
func (r *RecommendationsRequest) Options() recommend.Options {
	method, err := recommend.ParseSimilarityMethod(r.Method)
	if err != nil || r.Method == "" {
		method = recommend.SimilarityMethod(-1)
	}
	return recommend.Options{
		SimilarUsersCount: r.SimilarUsers,
		MinCommonItems:    r.MinCommon,
		SimilarityMethod:  method,
		MinRecommendScore: r.MinScore,
	}
}

// FeedbackRequest is the PUT /feedback body.
type FeedbackRequest struct {
	UserID    string     `json:"user_id" validate:"entityid"`
	JobID     string     `json:"job_id" validate:"entityid"`
	Signal    string     `json:"signal" validate:"oneof=like dislike"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Event converts the request, stamping now when no timestamp was sent.
func (r *FeedbackRequest) Event(now time.Time) (recommend.FeedbackEvent, error) {
	signal, err := recommend.ParseSignal(r.Signal)
	if err != nil {
		return recommend.FeedbackEvent{}, err
	}
	ts := now
	if r.Timestamp != nil && !r.Timestamp.IsZero() {
		ts = *r.Timestamp
	}
	return recommend.FeedbackEvent{
		UserID:    r.UserID,
		ItemID:    r.JobID,
		Signal:    signal,
		Timestamp: ts.UTC(),
	}, nil
}

// FeedbackKeyRequest addresses one feedback entry by path.
type FeedbackKeyRequest struct {
	UserID string `json:"user_id" validate:"entityid"`
	JobID  string `json:"job_id" validate:"entityid"`
}

// UserRequest addresses a user by path.
type UserRequest struct {
	UserID string `json:"user_id" validate:"entityid"`
}
