// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"sort"
)

// FindSimilarUsers returns up to topN users most similar to target.
//
// Peers sharing fewer than minCommonItems rated items are skipped. Results are
// ordered by score descending; scores in the same tolerance bucket are ordered by
// common-item count descending, then by peer ID. A target without feedback,
// no qualifying peers, or an undefined method yields an empty slice.
func (e *Engine) FindSimilarUsers(feedback []FeedbackEvent, target string, topN int, method SimilarityMethod, minCommonItems int) []SimilarityResult {
	return e.findNeighbors(indexFeedback(feedback), target, topN, method, minCommonItems)
}

func (e *Engine) findNeighbors(idx *ratingIndex, target string, topN int, method SimilarityMethod, minCommonItems int) []SimilarityResult {
	neighbors := make([]SimilarityResult, 0)

	targetVec := idx.vector(target)
	if len(targetVec) == 0 || topN <= 0 {
		return neighbors
	}

	for _, peerID := range idx.users {
		if peerID == target {
			continue
		}

		result, ok := e.compare(peerID, targetVec, idx.vectors[peerID], method)
		if !ok || result.CommonItemCount < minCommonItems {
			continue
		}
		neighbors = append(neighbors, result)
	}

	e.sortNeighbors(neighbors)

	if len(neighbors) > topN {
		neighbors = neighbors[:topN]
	}

	e.logger.Debug().
		Str("target", target).
		Str("method", method.String()).
		Int("neighbors", len(neighbors)).
		Msg("neighbors selected")

	return neighbors
}

// sortNeighbors orders by score bucket descending, then common-item count
// descending, then peer ID.
func (e *Engine) sortNeighbors(neighbors []SimilarityResult) {
	sort.SliceStable(neighbors, func(i, j int) bool {
		a, b := neighbors[i], neighbors[j]
		if ka, kb := e.scoreBucket(a.Score), e.scoreBucket(b.Score); ka != kb {
			return ka > kb
		}
		if a.CommonItemCount != b.CommonItemCount {
			return a.CommonItemCount > b.CommonItemCount
		}
		return a.PeerUserID < b.PeerUserID
	})
}
