// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// RatingVector maps itemID to the user's signed rating (+1 like, -1 dislike).
type RatingVector map[string]int

// BuildRatingVector extracts userID's ratings from the feedback set.
// When an item was rated more than once, the event appearing last wins.
// A user without events yields an empty (non-nil) vector.
func BuildRatingVector(feedback []FeedbackEvent, userID string) RatingVector {
	vec := make(RatingVector)
	for i := range feedback {
		if feedback[i].UserID == userID {
			vec[feedback[i].ItemID] = feedback[i].Signal.Value()
		}
	}
	return vec
}

// ItemSet returns the rated item IDs as a set.
func (v RatingVector) ItemSet() mapset.Set[string] {
	return mapset.NewThreadUnsafeSetFromMapKeys(v)
}

// commonItems returns the item IDs rated in both vectors, sorted for
// reproducible floating-point accumulation.
func commonItems(a, b RatingVector) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	common := make([]string, 0, len(a))
	for id := range a {
		if _, ok := b[id]; ok {
			common = append(common, id)
		}
	}
	slices.Sort(common)
	return common
}

// ratingIndex holds every user's vector for one request.
type ratingIndex struct {
	users   []string
	vectors map[string]RatingVector
}

// indexFeedback builds all rating vectors in a single pass over the feedback set.
func indexFeedback(feedback []FeedbackEvent) *ratingIndex {
	vectors := make(map[string]RatingVector)
	for i := range feedback {
		ev := &feedback[i]
		vec, ok := vectors[ev.UserID]
		if !ok {
			vec = make(RatingVector)
			vectors[ev.UserID] = vec
		}
		vec[ev.ItemID] = ev.Signal.Value()
	}

	users := lo.Keys(vectors)
	slices.Sort(users)

	return &ratingIndex{users: users, vectors: vectors}
}

// vector returns the user's ratings, or an empty vector for unknown users.
func (idx *ratingIndex) vector(userID string) RatingVector {
	if vec, ok := idx.vectors[userID]; ok {
		return vec
	}
	return RatingVector{}
}
