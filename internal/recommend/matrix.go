// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// SimilarityMatrix holds pairwise similarity for every user in a feedback set.
// Users is sorted; Scores[i][j] is the similarity of Users[i] and Users[j].
type SimilarityMatrix struct {
	Method     SimilarityMethod `json:"method"`
	Users      []string         `json:"users"`
	Scores     [][]float64      `json:"scores"`
	ComputedAt time.Time        `json:"computed_at"`
}

// Score returns the similarity between two users in the matrix.
// The boolean is false when either user is not present.
func (m *SimilarityMatrix) Score(userA, userB string) (float64, bool) {
	i, okA := slices.BinarySearch(m.Users, userA)
	j, okB := slices.BinarySearch(m.Users, userB)
	if !okA || !okB {
		return 0, false
	}
	return m.Scores[i][j], true
}

// SimilarityMatrix computes similarity for all user pairs.
//
// The diagonal is 1 and pairs without common items score 0. Work is O(n^2)
// in the number of users and is spread over Tuning.MatrixWorkers goroutines.
// This is a batch routine; request paths never call it.
func (e *Engine) SimilarityMatrix(ctx context.Context, feedback []FeedbackEvent, method SimilarityMethod) (*SimilarityMatrix, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("invalid similarity method %d", int(method))
	}

	start := time.Now()
	idx := indexFeedback(feedback)
	n := len(idx.users)

	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, n)
		scores[i][i] = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.tuning.workers())

	// Row i owns cells (i, j) and (j, i) for every j > i, so rows never
	// write the same cell.
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			userA := idx.users[i]
			vecA := idx.vectors[userA]
			for j := i + 1; j < n; j++ {
				result, ok := e.compare(idx.users[j], vecA, idx.vectors[idx.users[j]], method)
				if !ok {
					continue
				}
				scores[i][j] = result.Score
				scores[j][i] = result.Score
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}

	e.logger.Info().
		Int("users", n).
		Str("method", method.String()).
		Dur("duration", time.Since(start)).
		Msg("similarity matrix computed")

	return &SimilarityMatrix{
		Method:     method,
		Users:      idx.users,
		Scores:     scores,
		ComputedAt: time.Now().UTC(),
	}, nil
}
