// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package api

import (
	"testing"
	"time"

	"github.com/tomtom215/jobmatch/internal/recommend"
)

func TestRecommendationsRequestOptions(t *testing.T) {
	tests := []struct {
		name       string
		req        RecommendationsRequest
		wantMethod recommend.SimilarityMethod
		wantValid  bool
	}{
		{"method omitted", RecommendationsRequest{MinScore: -1}, recommend.SimilarityMethod(-1), false},
		{"cosine", RecommendationsRequest{Method: "cosine"}, recommend.MethodCosine, true},
		{"case insensitive", RecommendationsRequest{Method: "Jaccard"}, recommend.MethodJaccard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.req.Options()
			if opts.SimilarityMethod != tt.wantMethod || opts.SimilarityMethod.Valid() != tt.wantValid {
				t.Errorf("method = %v, want %v", opts.SimilarityMethod, tt.wantMethod)
			}
			if opts.MinRecommendScore != tt.req.MinScore {
				t.Errorf("min score = %v, want %v", opts.MinRecommendScore, tt.req.MinScore)
			}
			if opts.MaxCandidates != 0 {
				t.Errorf("MaxCandidates = %d, want 0 so the configured cap applies", opts.MaxCandidates)
			}
		})
	}
}

func TestFeedbackRequestEvent(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	sent := time.Date(2026, 4, 30, 18, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	tests := []struct {
		name    string
		req     FeedbackRequest
		want    time.Time
		wantErr bool
	}{
		{"stamped by server", FeedbackRequest{UserID: "u", JobID: "j", Signal: "like"}, now, false},
		{"client timestamp kept in UTC", FeedbackRequest{UserID: "u", JobID: "j", Signal: "dislike", Timestamp: &sent}, sent.UTC(), false},
		{"bad signal", FeedbackRequest{UserID: "u", JobID: "j", Signal: "meh"}, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := tt.req.Event(now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !event.Timestamp.Equal(tt.want) || event.Timestamp.Location() != time.UTC {
				t.Errorf("timestamp = %v, want %v UTC", event.Timestamp, tt.want)
			}
			if event.ItemID != "j" {
				t.Errorf("item = %q", event.ItemID)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	if apiErr := validateRequest(&SimilarUsersRequest{UserID: "u", Limit: 5}); apiErr != nil {
		t.Errorf("valid request rejected: %+v", apiErr)
	}
	apiErr := validateRequest(&SimilarUsersRequest{UserID: "a/b", Limit: 0})
	if apiErr == nil {
		t.Fatal("invalid request accepted")
	}
	if apiErr.Code != ErrCodeValidation {
		t.Errorf("code = %s", apiErr.Code)
	}
}
