// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"fmt"
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// RecommendJobs ranks the catalog items target has not rated yet.
//
// Zero-valued option fields fall back to DefaultOptions and a non-positive
// topN falls back to DefaultTopN. When target has no qualifying neighbors the
// result is empty; there is no popularity fallback. At most
// min(topN, opts.MaxCandidates) recommendations are returned.
//
//nolint:gocritic // opts passed by value so callers can reuse their copy
func (e *Engine) RecommendJobs(target string, catalog []Item, feedback []FeedbackEvent, topN int, opts Options) []Recommendation {
	opts = opts.withDefaults()
	if topN <= 0 {
		topN = DefaultTopN
	}
	return e.rank(indexFeedback(feedback), target, catalog, topN, opts)
}

//nolint:gocritic // opts is a small value type
func (e *Engine) rank(idx *ratingIndex, target string, catalog []Item, topN int, opts Options) []Recommendation {
	recs := make([]Recommendation, 0)

	neighbors := e.findNeighbors(idx, target, opts.SimilarUsersCount, opts.SimilarityMethod, opts.MinCommonItems)
	if len(neighbors) == 0 {
		return recs
	}

	rated := idx.vector(target).ItemSet()
	seen := mapset.NewThreadUnsafeSet[string]()
	candidates := lo.Filter(catalog, func(item Item, _ int) bool {
		if rated.Contains(item.ID) || seen.Contains(item.ID) {
			return false
		}
		seen.Add(item.ID)
		return true
	})

	for i := range candidates {
		prediction := predict(candidates[i].ID, neighbors, idx)
		if prediction.ContributingUsers == 0 {
			continue
		}

		normalized := (prediction.Rating + 1) / 2
		evidence := math.Min(float64(prediction.ContributingUsers)/e.tuning.EvidenceDivisor, e.tuning.EvidenceCap)
		collaborative := normalized*e.tuning.RatingWeight + evidence
		score := math.Min(1, collaborative)

		if score < opts.MinRecommendScore {
			continue
		}

		recs = append(recs, Recommendation{
			Item:  candidates[i],
			Score: score,
			Breakdown: ScoreBreakdown{
				CollaborativeScore: collaborative,
				PredictedRating:    normalized,
				ContributingUsers:  prediction.ContributingUsers,
			},
			Reason: e.reason(prediction.ContributingUsers, normalized, collaborative),
		})
	}

	e.sortRecommendations(recs)

	limit := min(topN, opts.MaxCandidates)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	e.logger.Debug().
		Str("target", target).
		Int("neighbors", len(neighbors)).
		Int("candidates", len(candidates)).
		Int("returned", len(recs)).
		Msg("recommendations ranked")

	return recs
}

// sortRecommendations orders by score bucket descending. Scores in the same
// bucket are ordered by contributor count descending, then item ID.
func (e *Engine) sortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if ka, kb := e.scoreBucket(a.Score), e.scoreBucket(b.Score); ka != kb {
			return ka > kb
		}
		if a.Breakdown.ContributingUsers != b.Breakdown.ContributingUsers {
			return a.Breakdown.ContributingUsers > b.Breakdown.ContributingUsers
		}
		return a.Item.ID < b.Item.ID
	})
}

// reason builds the human-readable explanation shown next to a recommendation.
func (e *Engine) reason(contributors int, normalizedRating, collaborative float64) string {
	switch {
	case contributors == 0:
		return "New listing"
	case contributors == 1:
		return "A user with similar taste liked this job"
	case collaborative >= e.tuning.StrongReasonThreshold:
		likePct := int(math.Round(normalizedRating * 100))
		return fmt.Sprintf("%d users with similar taste rated this job highly (%d%% liked it)", contributors, likePct)
	case collaborative >= e.tuning.ModerateReasonThreshold:
		return fmt.Sprintf("%d users with similar taste rated this job", contributors)
	default:
		return fmt.Sprintf("%d users rated this job", contributors)
	}
}
