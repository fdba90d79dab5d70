// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Engine scores users and job listings from implicit feedback.
// It holds only immutable tuning and is safe for concurrent use.
type Engine struct {
	tuning Tuning
	logger zerolog.Logger
}

// NewEngine creates an engine with the given tuning.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(tuning Tuning, logger zerolog.Logger) (*Engine, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	return &Engine{
		tuning: tuning,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Tuning returns the engine's scoring constants.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// ========== User Similarity ==========

// CalculateUserSimilarity compares userA against userB.
// The boolean is false when the two users share no rated items, which means
// no relationship can be asserted, or when method is not a defined method.
func (e *Engine) CalculateUserSimilarity(feedback []FeedbackEvent, userA, userB string, method SimilarityMethod) (SimilarityResult, bool) {
	va := BuildRatingVector(feedback, userA)
	vb := BuildRatingVector(feedback, userB)
	return e.compare(userB, va, vb, method)
}

// compare scores peer's vector against the target's vector. An undefined
// method reports absence.
func (e *Engine) compare(peerID string, target, peer RatingVector, method SimilarityMethod) (SimilarityResult, bool) {
	common := len(commonItems(target, peer))
	if common == 0 {
		return SimilarityResult{}, false
	}

	var score float64
	switch method {
	case MethodCosine:
		score = CosineSimilarity(target, peer)
	case MethodPearson:
		score = PearsonCorrelation(target, peer)
	case MethodJaccard:
		score = JaccardSimilarity(target, peer)
	case MethodHybrid:
		score = e.hybridScore(target, peer, common)
	default:
		e.logger.Warn().Int("method", int(method)).Msg("unknown similarity method")
		return SimilarityResult{}, false
	}

	return SimilarityResult{
		PeerUserID:      peerID,
		Score:           score,
		CommonItemCount: common,
		Method:          method,
	}, true
}

// hybridScore blends cosine and Pearson. Pearson's share grows with overlap
// and is capped so cosine always contributes.
func (e *Engine) hybridScore(target, peer RatingVector, common int) float64 {
	pearsonWeight := math.Min(float64(common)/e.tuning.HybridPearsonDivisor, e.tuning.HybridPearsonCap)
	cosineWeight := 1 - pearsonWeight

	return cosineWeight*CosineSimilarity(target, peer) + pearsonWeight*PearsonCorrelation(target, peer)
}

// scoreBucket quantizes a score to the tie tolerance. Scores sharing a bucket
// are ordered by the caller's tie-breaks. Bucket comparison is transitive.
func (e *Engine) scoreBucket(score float64) float64 {
	if e.tuning.ScoreTolerance == 0 {
		return score
	}
	return math.Round(score / e.tuning.ScoreTolerance)
}
