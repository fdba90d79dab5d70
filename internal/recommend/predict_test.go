// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"testing"
)

func TestPredictRating(t *testing.T) {
	e := newTestEngine(t)
	feedback := []FeedbackEvent{
		like("n1", "x"),
		dislike("n2", "x"),
		like("n3", "y"),
	}

	tests := []struct {
		name      string
		item      string
		neighbors []SimilarityResult
		want      Prediction
	}{
		{
			name: "weighted average",
			item: "x",
			neighbors: []SimilarityResult{
				{PeerUserID: "n1", Score: 0.75},
				{PeerUserID: "n2", Score: 0.25},
			},
			want: Prediction{Rating: 0.5, ContributingUsers: 2},
		},
		{
			name: "skips neighbors that did not rate",
			item: "y",
			neighbors: []SimilarityResult{
				{PeerUserID: "n1", Score: 0.9},
				{PeerUserID: "n3", Score: 0.4},
			},
			want: Prediction{Rating: 1, ContributingUsers: 1},
		},
		{
			name:      "no contributors",
			item:      "z",
			neighbors: []SimilarityResult{{PeerUserID: "n1", Score: 1}},
			want:      Prediction{},
		},
		{
			name:      "zero similarity sum",
			item:      "x",
			neighbors: []SimilarityResult{{PeerUserID: "n1", Score: 0}},
			want:      Prediction{},
		},
		{
			name: "no neighbors",
			item: "x",
			want: Prediction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.PredictRating(tt.item, tt.neighbors, feedback)
			if got.ContributingUsers != tt.want.ContributingUsers || !approxEqual(got.Rating, tt.want.Rating) {
				t.Errorf("PredictRating() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
