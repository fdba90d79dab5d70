// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package recommend

import (
	"fmt"
	"strings"
	"time"
)

// Signal is the implicit feedback a user gave to a job listing.
type Signal int

const (
	// SignalDislike marks a swipe-left / "not interested" event.
	SignalDislike Signal = iota

	// SignalLike marks a swipe-right / "interested" event.
	SignalLike
)

// String returns the wire name of the signal.
func (s Signal) String() string {
	switch s {
	case SignalLike:
		return "like"
	case SignalDislike:
		return "dislike"
	default:
		return "unknown"
	}
}

// Value returns the signed unit encoding of the signal: +1 for like, -1 for dislike.
func (s Signal) Value() int {
	if s == SignalLike {
		return 1
	}
	return -1
}

// MarshalText implements encoding.TextMarshaler.
func (s Signal) MarshalText() ([]byte, error) {
	switch s {
	case SignalLike, SignalDislike:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid signal %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signal) UnmarshalText(text []byte) error {
	parsed, err := ParseSignal(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSignal converts "like" or "dislike" (case-insensitive) into a Signal.
func ParseSignal(v string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "like":
		return SignalLike, nil
	case "dislike":
		return SignalDislike, nil
	default:
		return SignalDislike, fmt.Errorf("unknown signal %q", v)
	}
}

// FeedbackEvent is a single recorded like/dislike.
// Events are immutable once recorded; the engine only reads them.
type FeedbackEvent struct {
	// UserID identifies the user who gave the feedback.
	UserID string `json:"user_id" bson:"userId" validate:"required,entityid"`

	// ItemID identifies the job listing.
	ItemID string `json:"item_id" bson:"itemId" validate:"required,entityid"`

	// Signal is the like/dislike value.
	Signal Signal `json:"signal" bson:"signal" validate:"oneof=0 1"`

	// Timestamp is when the feedback was recorded.
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// SimilarityMethod selects how two users are compared.
type SimilarityMethod int

const (
	// MethodHybrid blends cosine and Pearson by overlap size. This is the default.
	MethodHybrid SimilarityMethod = iota

	// MethodCosine is cosine similarity over common items.
	MethodCosine

	// MethodPearson is Pearson correlation over common items.
	MethodPearson

	// MethodJaccard is set overlap of rated items, ignoring signal values.
	MethodJaccard
)

// String returns the method name.
func (m SimilarityMethod) String() string {
	switch m {
	case MethodHybrid:
		return "hybrid"
	case MethodCosine:
		return "cosine"
	case MethodPearson:
		return "pearson"
	case MethodJaccard:
		return "jaccard"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined methods.
func (m SimilarityMethod) Valid() bool {
	switch m {
	case MethodHybrid, MethodCosine, MethodPearson, MethodJaccard:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SimilarityMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid similarity method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SimilarityMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseSimilarityMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseSimilarityMethod converts a method name into a SimilarityMethod.
// An empty string selects MethodHybrid.
func ParseSimilarityMethod(v string) (SimilarityMethod, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "hybrid":
		return MethodHybrid, nil
	case "cosine":
		return MethodCosine, nil
	case "pearson":
		return MethodPearson, nil
	case "jaccard":
		return MethodJaccard, nil
	default:
		return MethodHybrid, fmt.Errorf("unknown similarity method %q", v)
	}
}

// SimilarityResult describes how similar a peer is to the target user.
type SimilarityResult struct {
	// PeerUserID is the user compared against the target.
	PeerUserID string `json:"peer_user_id"`

	// Score is the similarity normalized to [0, 1].
	Score float64 `json:"score"`

	// CommonItemCount is the number of items both users rated (always >= 1).
	CommonItemCount int `json:"common_item_count"`

	// Method is the method that produced Score.
	Method SimilarityMethod `json:"method"`
}

// Item is a job listing from the catalog.
// Only ID participates in scoring; the remaining fields are carried for display.
type Item struct {
	ID             string    `json:"id" yaml:"id" bson:"_id" validate:"required"`
	Title          string    `json:"title" yaml:"title" bson:"title"`
	Company        string    `json:"company" yaml:"company" bson:"company"`
	Location       string    `json:"location,omitempty" yaml:"location" bson:"location,omitempty"`
	WorkType       string    `json:"work_type,omitempty" yaml:"work_type" bson:"workType,omitempty"`
	SalaryMin      int       `json:"salary_min,omitempty" yaml:"salary_min" bson:"salaryMin,omitempty"`
	SalaryMax      int       `json:"salary_max,omitempty" yaml:"salary_max" bson:"salaryMax,omitempty"`
	Currency       string    `json:"currency,omitempty" yaml:"currency" bson:"currency,omitempty"`
	RequiredSkills []string  `json:"required_skills,omitempty" yaml:"required_skills" bson:"requiredSkills,omitempty"`
	PostedAt       time.Time `json:"posted_at,omitempty" yaml:"posted_at" bson:"postedAt,omitempty"`
}

// ScoreBreakdown explains how a recommendation score was assembled.
type ScoreBreakdown struct {
	// CollaborativeScore is the evidence-adjusted score before capping at 1.
	CollaborativeScore float64 `json:"collaborative_score"`

	// PredictedRating is the neighbor-weighted rating normalized to [0, 1].
	PredictedRating float64 `json:"predicted_rating"`

	// ContributingUsers is how many neighbors rated the item.
	ContributingUsers int `json:"contributing_users"`
}

// Recommendation is a scored job listing for one target user.
type Recommendation struct {
	Item      Item           `json:"item"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reason    string         `json:"reason"`
}

// Prediction is the output of the rating predictor for a single item.
type Prediction struct {
	// Rating is in [-1, 1]; zero when ContributingUsers is zero.
	Rating float64

	// ContributingUsers is the number of neighbors that rated the item.
	ContributingUsers int
}

// Options controls a collaborative recommendation request.
type Options struct {
	// SimilarUsersCount is the number of neighbors to consider.
	SimilarUsersCount int `json:"similar_users_count" koanf:"similar_users_count" validate:"gte=1"`

	// MinCommonItems is the minimum overlap a neighbor must have with the target.
	MinCommonItems int `json:"min_common_items" koanf:"min_common_items" validate:"gte=1"`

	// SimilarityMethod is the metric used to rank neighbors.
	SimilarityMethod SimilarityMethod `json:"similarity_method" koanf:"similarity_method"`

	// MaxCandidates caps the number of returned recommendations.
	MaxCandidates int `json:"max_candidates" koanf:"max_candidates" validate:"gte=1"`

	// MinRecommendScore drops recommendations scoring below it.
	MinRecommendScore float64 `json:"min_recommend_score" koanf:"min_recommend_score" validate:"gte=0,lte=1"`
}

// DefaultOptions returns the standard request options.
func DefaultOptions() Options {
	return Options{
		SimilarUsersCount: 10,
		MinCommonItems:    3,
		SimilarityMethod:  MethodHybrid,
		MaxCandidates:     20,
		MinRecommendScore: 0.3,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
// MinRecommendScore is left untouched since zero is a meaningful threshold.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SimilarUsersCount <= 0 {
		o.SimilarUsersCount = def.SimilarUsersCount
	}
	if o.MinCommonItems <= 0 {
		o.MinCommonItems = def.MinCommonItems
	}
	if !o.SimilarityMethod.Valid() {
		o.SimilarityMethod = def.SimilarityMethod
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = def.MaxCandidates
	}
	return o
}

// HybridOptions extends Options with the collaborative/content blend used by
// RecommendJobsHybrid.
type HybridOptions struct {
	Options

	// CollaborativeWeight scales the collaborative score.
	CollaborativeWeight float64 `json:"collaborative_weight" koanf:"collaborative_weight" validate:"gte=0,lte=1"`

	// ContentWeight scales the content score.
	ContentWeight float64 `json:"content_weight" koanf:"content_weight" validate:"gte=0,lte=1"`
}

// DefaultHybridOptions returns DefaultOptions with a 0.7/0.3 blend.
func DefaultHybridOptions() HybridOptions {
	return HybridOptions{
		Options:             DefaultOptions(),
		CollaborativeWeight: 0.7,
		ContentWeight:       0.3,
	}
}

// DefaultTopN is the number of recommendations returned when the caller asks for zero.
const DefaultTopN = 5
