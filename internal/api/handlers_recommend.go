// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/jobmatch/internal/logging"
	"github.com/tomtom215/jobmatch/internal/models"
	"github.com/tomtom215/jobmatch/internal/recommend"
)

// SimilarUsers handles GET /api/v1/users/{userID}/similar
//
// Query: limit (1-100, default 10), method, min_common (0 selects the default).
func (h *Handler) SimilarUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := newQueryParser(r)
	req := SimilarUsersRequest{
		UserID:    chi.URLParam(r, "userID"),
		Limit:     q.Int("limit", defaultSimilarLimit),
		Method:    q.String("method"),
		MinCommon: q.Int("min_common", 0),
	}
	if apiErr := q.Err(); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	method := h.methodOrDefault(req.Method)
	users, err := h.service.SimilarUsers(ctx, req.UserID, req.Limit, method, req.MinCommon)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.SimilarUsersResponse{
		UserID: req.UserID,
		Method: method,
		Count:  len(users),
		Users:  users,
	})
}

// Similarity handles GET /api/v1/users/{userID}/similarity/{peerID}
//
// Users with no jobs in common have no defined similarity and get a 404 with
// code NO_COMMON_ITEMS.
func (h *Handler) Similarity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := newQueryParser(r)
	req := SimilarityRequest{
		UserID: chi.URLParam(r, "userID"),
		PeerID: chi.URLParam(r, "peerID"),
		Method: q.String("method"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	method := h.methodOrDefault(req.Method)
	result, ok, err := h.service.Similarity(ctx, req.UserID, req.PeerID, method)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !ok {
		respondServiceError(w, r, ErrNoCommonItems)
		return
	}

	respondSuccess(w, r, start, models.SimilarityResponse{
		UserID:      req.UserID,
		PeerUserID:  req.PeerID,
		Method:      result.Method,
		Score:       result.Score,
		CommonItems: result.CommonItemCount,
	})
}

// parseRecommendationsRequest binds path and query parameters shared by the
// collaborative and hybrid endpoints.
func parseRecommendationsRequest(r *http.Request) (RecommendationsRequest, *models.APIError) {
	q := newQueryParser(r)
	req := RecommendationsRequest{
		UserID:              chi.URLParam(r, "userID"),
		Limit:               q.Int("limit", recommend.DefaultTopN),
		Method:              q.String("method"),
		MinCommon:           q.Int("min_common", 0),
		SimilarUsers:        q.Int("similar_users", 0),
		MinScore:            q.Float("min_score", -1),
		CollaborativeWeight: q.Float("collaborative_weight", 0),
		ContentWeight:       q.Float("content_weight", 0),
	}
	if apiErr := q.Err(); apiErr != nil {
		return req, apiErr
	}
	return req, validateRequest(&req)
}

// Recommendations handles GET /api/v1/users/{userID}/recommendations
//
// Query: limit (1-100, default 5), method, min_common, similar_users,
// min_score (0-1; omitted uses the configured default).
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := parseRecommendationsRequest(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	opts := req.Options()
	recs, err := h.service.Recommend(ctx, req.UserID, req.Limit, opts)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.RecommendationsResponse{
		UserID:          req.UserID,
		Method:          h.methodOrDefault(req.Method),
		Count:           len(recs),
		Recommendations: recs,
	})
}

// HybridRecommendations handles GET /api/v1/users/{userID}/recommendations/hybrid
//
// Accepts the same query as Recommendations plus collaborative_weight and
// content_weight; leaving both at zero selects the configured blend.
func (h *Handler) HybridRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := parseRecommendationsRequest(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(logging.ContextWithUserID(r.Context(), req.UserID), requestTimeout)
	defer cancel()

	opts := recommend.HybridOptions{
		Options:             req.Options(),
		CollaborativeWeight: req.CollaborativeWeight,
		ContentWeight:       req.ContentWeight,
	}
	recs, err := h.service.RecommendHybrid(ctx, req.UserID, req.Limit, opts)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.RecommendationsResponse{
		UserID:          req.UserID,
		Method:          h.methodOrDefault(req.Method),
		Hybrid:          true,
		Count:           len(recs),
		Recommendations: recs,
	})
}
