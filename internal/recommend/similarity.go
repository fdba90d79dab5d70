// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"math"
)

// ========== Similarity Metrics ==========

// CosineSimilarity compares the two users' ratings on the items both rated.
// Magnitudes are restricted to the common items. The raw cosine in [-1, 1]
// is remapped to [0, 1]. No common items, or a zero magnitude, yields 0.
func CosineSimilarity(a, b RatingVector) float64 {
	common := commonItems(a, b)
	if len(common) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for _, id := range common {
		ra, rb := float64(a[id]), float64(b[id])
		dot += ra * rb
		magA += ra * ra
		magB += rb * rb
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return remapUnit(dot / (math.Sqrt(magA) * math.Sqrt(magB)))
}

// PearsonCorrelation computes the correlation of the two users' ratings over
// the items both rated, using means taken over those common items only.
// Fewer than two common items, or zero variance on either side, yields 0.
// The raw correlation in [-1, 1] is remapped to [0, 1].
func PearsonCorrelation(a, b RatingVector) float64 {
	common := commonItems(a, b)
	n := len(common)
	if n < 2 {
		return 0
	}

	var sumA, sumB float64
	for _, id := range common {
		sumA += float64(a[id])
		sumB += float64(b[id])
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var cov, varA, varB float64
	for _, id := range common {
		da := float64(a[id]) - meanA
		db := float64(b[id]) - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return 0
	}

	return remapUnit(cov / denom)
}

// JaccardSimilarity is |A ∩ B| / |A ∪ B| over rated item IDs. Signal values
// are ignored. Two empty vectors yield 0.
func JaccardSimilarity(a, b RatingVector) float64 {
	setA, setB := a.ItemSet(), b.ItemSet()

	union := setA.Union(setB).Cardinality()
	if union == 0 {
		return 0
	}

	return float64(setA.Intersect(setB).Cardinality()) / float64(union)
}

// remapUnit maps a correlation-style value from [-1, 1] onto [0, 1].
// Rounding error can push |x| a hair past 1, so the result is clamped.
func remapUnit(x float64) float64 {
	v := (x + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
