// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

// neutralContentScore is used when the target has no feedback of their own.
const neutralContentScore = 0.5

// RecommendJobsHybrid blends collaborative recommendations with a content
// score derived from the target's own like-rate.
//
// It draws 2*topN collaborative candidates, rescores each as
// score*CollaborativeWeight + content*ContentWeight, re-sorts, and returns
// at most topN. When both weights are zero the 0.7/0.3 defaults apply.
//
//nolint:gocritic // opts passed by value so callers can reuse their copy
func (e *Engine) RecommendJobsHybrid(target string, catalog []Item, feedback []FeedbackEvent, topN int, opts HybridOptions) []Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if opts.CollaborativeWeight == 0 && opts.ContentWeight == 0 {
		def := DefaultHybridOptions()
		opts.CollaborativeWeight = def.CollaborativeWeight
		opts.ContentWeight = def.ContentWeight
	}

	idx := indexFeedback(feedback)
	recs := e.rank(idx, target, catalog, topN*2, opts.Options.withDefaults())

	content := contentScore(idx.vector(target))
	for i := range recs {
		recs[i].Score = recs[i].Score*opts.CollaborativeWeight + content*opts.ContentWeight
	}

	e.sortRecommendations(recs)

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

// contentScore is the share of the user's ratings that are likes.
func contentScore(vec RatingVector) float64 {
	if len(vec) == 0 {
		return neutralContentScore
	}

	likes := 0
	for _, rating := range vec {
		if rating > 0 {
			likes++
		}
	}
	return float64(likes) / float64(len(vec))
}
