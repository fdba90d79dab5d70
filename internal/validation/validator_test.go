// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

type recommendRequest struct {
	UserID   string  `json:"user_id" validate:"required,entityid"`
	Limit    int     `json:"limit" validate:"min=1,max=100"`
	Method   string  `json:"method" validate:"simmethod"`
	MinScore float64 `json:"min_score" validate:"gte=0,lte=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      recommendRequest
		wantFields []string
	}{
		{
			name:  "valid request",
			input: recommendRequest{UserID: "u1", Limit: 10, Method: "hybrid", MinScore: 0.3},
		},
		{
			name:  "empty method is allowed",
			input: recommendRequest{UserID: "u1", Limit: 1},
		},
		{
			name:  "method is case-insensitive",
			input: recommendRequest{UserID: "u1", Limit: 1, Method: "Pearson"},
		},
		{
			name:       "missing user",
			input:      recommendRequest{Limit: 10},
			wantFields: []string{"user_id"},
		},
		{
			name:       "user id with slash",
			input:      recommendRequest{UserID: "a/b", Limit: 10},
			wantFields: []string{"user_id"},
		},
		{
			name:       "user id with newline",
			input:      recommendRequest{UserID: "a\nb", Limit: 10},
			wantFields: []string{"user_id"},
		},
		{
			name:       "user id too long",
			input:      recommendRequest{UserID: strings.Repeat("x", 129), Limit: 10},
			wantFields: []string{"user_id"},
		},
		{
			name:       "limit out of range and unknown method",
			input:      recommendRequest{UserID: "u1", Limit: 500, Method: "euclid"},
			wantFields: []string{"limit", "method"},
		},
		{
			name:       "score above one",
			input:      recommendRequest{UserID: "u1", Limit: 5, MinScore: 1.5},
			wantFields: []string{"min_score"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)

			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want errors on %v", tt.wantFields)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("got %d field errors (%v), want %d", len(verr.Fields), verr, len(tt.wantFields))
			}
			for i, want := range tt.wantFields {
				if verr.Fields[i].Field != want {
					t.Errorf("Fields[%d].Field = %q, want %q", i, verr.Fields[i].Field, want)
				}
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		verr := ValidateStruct(&recommendRequest{Limit: 10})
		if verr == nil {
			t.Fatal("expected validation error")
		}

		apiErr := verr.ToAPIError()
		if apiErr.Code != CodeValidationError {
			t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
		}
		if apiErr.Message != "user_id is required" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "user_id is required")
		}
		if apiErr.Details["field"] != "user_id" {
			t.Errorf("Details[field] = %v, want user_id", apiErr.Details["field"])
		}
	})

	t.Run("multiple fields", func(t *testing.T) {
		verr := ValidateStruct(&recommendRequest{UserID: "u1", Limit: 0, Method: "bogus"})
		if verr == nil {
			t.Fatal("expected validation error")
		}

		apiErr := verr.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]FieldError)
		if !ok {
			t.Fatalf("Details[fields] has type %T, want []FieldError", apiErr.Details["fields"])
		}
		if len(fields) != 2 {
			t.Errorf("len(fields) = %d, want 2", len(fields))
		}
		if !strings.Contains(apiErr.Message, "limit must be at least 1") {
			t.Errorf("Message = %q, want limit message", apiErr.Message)
		}
	})

	t.Run("empty error", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "Validation failed")
		}
	})
}
