package api

import (
	"strings"
	"testing"
)

func TestValidationResult_Add(t *testing.T) {
	result := &ValidationResult{}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.add("field1", "error message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding an issue")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}
	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidateSearchRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       SearchRequest
		wantValid bool
		wantField string
	}{
		{
			name:      "zero value request",
			req:       SearchRequest{},
			wantValid: true,
		},
		{
			name:      "query at the byte limit",
			req:       SearchRequest{Query: strings.Repeat("q", maxQueryLength)},
			wantValid: true,
		},
		{
			name:      "query over the byte limit",
			req:       SearchRequest{Query: strings.Repeat("q", maxQueryLength+1)},
			wantValid: false,
			wantField: "query",
		},
		{
			name:      "negative page",
			req:       SearchRequest{Page: -1},
			wantValid: false,
			wantField: "page",
		},
		{
			name:      "page size at the limit",
			req:       SearchRequest{PageSize: maxPageSize},
			wantValid: true,
		},
		{
			name:      "page size over the limit",
			req:       SearchRequest{PageSize: maxPageSize + 1},
			wantValid: false,
			wantField: "page_size",
		},
		{
			name:      "negative page size",
			req:       SearchRequest{PageSize: -1},
			wantValid: false,
			wantField: "page_size",
		},
		{
			name:      "negative max price",
			req:       SearchRequest{MaxPrice: -0.01},
			wantValid: false,
			wantField: "max_price",
		},
		{
			name:      "min rating at the cap",
			req:       SearchRequest{MinRating: 5},
			wantValid: true,
		},
		{
			name:      "min rating over the cap",
			req:       SearchRequest{MinRating: 5.01},
			wantValid: false,
			wantField: "min_rating",
		},
		{
			name:      "negative min rating",
			req:       SearchRequest{MinRating: -1},
			wantValid: false,
			wantField: "min_rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSearchRequest(&tt.req)

			if tt.wantValid {
				if result.HasErrors() {
					t.Errorf("Expected no issues, got %+v", result.Errors)
				}
				return
			}

			if !result.HasErrors() {
				t.Fatal("Expected validation issues, got none")
			}
			found := false
			for _, issue := range result.Errors {
				if issue.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected an issue on field '%s', got %+v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestValidateSuggestRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantValid bool
	}{
		{"empty query", "", true},
		{"query at the byte limit", strings.Repeat("q", maxQueryLength), true},
		{"query over the byte limit", strings.Repeat("q", maxQueryLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSuggestRequest(&SuggestRequest{Query: tt.query})
			if tt.wantValid && result.HasErrors() {
				t.Errorf("Expected no issues, got %+v", result.Errors)
			}
			if !tt.wantValid && !result.HasErrors() {
				t.Error("Expected validation issues, got none")
			}
		})
	}
}
