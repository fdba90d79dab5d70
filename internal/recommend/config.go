// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"fmt"
	"runtime"
)

// Tuning holds the empirically chosen constants of the scoring pipeline.
// All fields are exposed through configuration so they can be re-tuned
// without code changes.
type Tuning struct {
	// HybridPearsonDivisor converts common-item count into Pearson weight
	// (weight = common / divisor, capped by HybridPearsonCap).
	HybridPearsonDivisor float64 `json:"hybrid_pearson_divisor" koanf:"hybrid_pearson_divisor" validate:"gt=0"`

	// HybridPearsonCap is the maximum share Pearson can take in the hybrid blend.
	HybridPearsonCap float64 `json:"hybrid_pearson_cap" koanf:"hybrid_pearson_cap" validate:"gte=0,lte=1"`

	// RatingWeight scales the normalized predicted rating in the collaborative score.
	RatingWeight float64 `json:"rating_weight" koanf:"rating_weight" validate:"gte=0,lte=1"`

	// EvidenceDivisor converts contributor count into the evidence bonus.
	EvidenceDivisor float64 `json:"evidence_divisor" koanf:"evidence_divisor" validate:"gt=0"`

	// EvidenceCap is the maximum evidence bonus.
	EvidenceCap float64 `json:"evidence_cap" koanf:"evidence_cap" validate:"gte=0,lte=1"`

	// ScoreTolerance is the bucket width within which two scores count as tied.
	ScoreTolerance float64 `json:"score_tolerance" koanf:"score_tolerance" validate:"gte=0"`

	// StrongReasonThreshold is the collaborative score for strong reason wording.
	StrongReasonThreshold float64 `json:"strong_reason_threshold" koanf:"strong_reason_threshold"`

	// ModerateReasonThreshold is the collaborative score for moderate reason wording.
	ModerateReasonThreshold float64 `json:"moderate_reason_threshold" koanf:"moderate_reason_threshold"`

	// MatrixWorkers bounds the goroutines used by SimilarityMatrix.
	// Zero means runtime.NumCPU().
	MatrixWorkers int `json:"matrix_workers" koanf:"matrix_workers" validate:"gte=0"`
}

// DefaultTuning returns the production constants.
func DefaultTuning() Tuning {
	return Tuning{
		HybridPearsonDivisor:    10,
		HybridPearsonCap:        0.6,
		RatingWeight:            0.8,
		EvidenceDivisor:         5,
		EvidenceCap:             0.2,
		ScoreTolerance:          0.001,
		StrongReasonThreshold:   0.8,
		ModerateReasonThreshold: 0.6,
		MatrixWorkers:           0,
	}
}

// Validate checks the tuning for values that would break score normalization.
//
//nolint:gocritic // value receiver keeps Tuning immutable at call sites
func (t Tuning) Validate() error {
	if t.HybridPearsonDivisor <= 0 {
		return fmt.Errorf("hybrid_pearson_divisor must be positive, got %f", t.HybridPearsonDivisor)
	}
	if t.HybridPearsonCap < 0 || t.HybridPearsonCap > 1 {
		return fmt.Errorf("hybrid_pearson_cap must be in [0, 1], got %f", t.HybridPearsonCap)
	}
	if t.RatingWeight < 0 || t.RatingWeight > 1 {
		return fmt.Errorf("rating_weight must be in [0, 1], got %f", t.RatingWeight)
	}
	if t.EvidenceDivisor <= 0 {
		return fmt.Errorf("evidence_divisor must be positive, got %f", t.EvidenceDivisor)
	}
	if t.EvidenceCap < 0 || t.EvidenceCap > 1 {
		return fmt.Errorf("evidence_cap must be in [0, 1], got %f", t.EvidenceCap)
	}
	if t.ScoreTolerance < 0 {
		return fmt.Errorf("score_tolerance must be non-negative, got %f", t.ScoreTolerance)
	}
	if t.ModerateReasonThreshold > t.StrongReasonThreshold {
		return fmt.Errorf("moderate_reason_threshold must be <= strong_reason_threshold, got %f > %f",
			t.ModerateReasonThreshold, t.StrongReasonThreshold)
	}
	if t.MatrixWorkers < 0 {
		return fmt.Errorf("matrix_workers must be non-negative, got %d", t.MatrixWorkers)
	}
	return nil
}

func (t Tuning) workers() int {
	if t.MatrixWorkers > 0 {
		return t.MatrixWorkers
	}
	return runtime.NumCPU()
}
