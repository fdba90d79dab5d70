// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

// PredictRating estimates the target's rating for itemID as the
// similarity-weighted mean of the neighbors' ratings on it.
// Neighbors who did not rate the item contribute nothing. When nobody
// contributes, or the similarity sum is zero, the prediction is
// {Rating: 0, ContributingUsers: 0}.
func (e *Engine) PredictRating(itemID string, neighbors []SimilarityResult, feedback []FeedbackEvent) Prediction {
	return predict(itemID, neighbors, indexFeedback(feedback))
}

func predict(itemID string, neighbors []SimilarityResult, idx *ratingIndex) Prediction {
	var weightedSum, similaritySum float64
	contributors := 0

	for _, n := range neighbors {
		rating, ok := idx.vector(n.PeerUserID)[itemID]
		if !ok {
			continue
		}
		weightedSum += float64(rating) * n.Score
		similaritySum += n.Score
		contributors++
	}

	if contributors == 0 || similaritySum == 0 {
		return Prediction{}
	}

	return Prediction{
		Rating:            weightedSum / similaritySum,
		ContributingUsers: contributors,
	}
}
