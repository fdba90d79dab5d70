// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

// Package recommend implements user-based collaborative filtering over implicit
// like/dislike feedback on job listings.
//
// # Pipeline
//
// A recommendation request flows through the following stages:
//
//   - Rating vectors: each user's feedback becomes a sparse itemID -> +1/-1 map
//   - Similarity: cosine, Pearson and Jaccard metrics over two vectors
//   - User similarity: a single metric or the overlap-weighted hybrid blend
//   - Neighbors: the target's top-N peers above a minimum-overlap gate
//   - Prediction: similarity-weighted average of neighbor ratings per item
//   - Ranking: evidence-adjusted scores, reasons and a top-N cut
//
// # Determinism
//
// Every stage is a pure function of its inputs. Sorts break ties on a
// secondary key (common-item count or contributor count, then ID) so
// identical inputs always yield identical output order.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultTuning(), logger)
//	if err != nil {
//	    return err
//	}
//
//	recs := engine.RecommendJobs("u1", catalog, feedback, 5, recommend.DefaultOptions())
//
// Callers that read feedback from a store should go through Service, which
// materializes the full feedback set before invoking the engine.
//
// # Thread Safety
//
// Engine holds only immutable tuning parameters and is safe for concurrent
// use. No state is shared between calls.
//
// # Batch Work
//
// SimilarityMatrix computes all user pairs and is O(n^2). It is intended for
// offline jobs (see cmd/simmatrix) and is never invoked by request paths.
package recommend
