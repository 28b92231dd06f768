package api

// Request validation for the search surface. Queries themselves are
// untrusted free text the engine is total over; validation only
// rejects structurally bad paging and filter values at the API edge.

const (
	maxQueryLength = 2048
	maxPageSize    = 100
	maxRating      = 5
)

// ValidationIssue describes a single invalid field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects issues found in a request.
type ValidationResult struct {
	Errors []ValidationIssue `json:"errors"`
}

// HasErrors reports whether any issue was recorded.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message})
}

// ValidateSearchRequest checks paging bounds and filter ranges.
func ValidateSearchRequest(req *SearchRequest) *ValidationResult {
	result := &ValidationResult{}

	if len(req.Query) > maxQueryLength {
		result.add("query", "query must not exceed 2048 bytes")
	}
	if req.Page < 0 {
		result.add("page", "page must not be negative")
	}
	if req.PageSize < 0 {
		result.add("page_size", "page_size must not be negative")
	}
	if req.PageSize > maxPageSize {
		result.add("page_size", "page_size must not exceed 100")
	}
	if req.MaxPrice < 0 {
		result.add("max_price", "max_price must not be negative")
	}
	if req.MinRating < 0 || req.MinRating > maxRating {
		result.add("min_rating", "min_rating must be between 0 and 5")
	}

	return result
}

// ValidateSuggestRequest checks the category suggestion request.
func ValidateSuggestRequest(req *SuggestRequest) *ValidationResult {
	result := &ValidationResult{}
	if len(req.Query) > maxQueryLength {
		result.add("query", "query must not exceed 2048 bytes")
	}
	return result
}
