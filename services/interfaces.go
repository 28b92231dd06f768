package services

import (
	"context"

	"github.com/urbanhive/marketplace-search/model"
)

// FilterClause is one "field contains value" leaf of the broadened
// search predicate. Clauses produced for a search are OR-combined by
// the candidate source; the engine knows nothing about the backing
// store's query language beyond this shape.
type FilterClause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"` // always "contains" for built predicates
	Value    string `json:"value"`
}

// CandidateFilters are the caller-supplied structured filters applied
// alongside the token predicate: category equality, location
// substring, price ceiling and rating floor. Zero values disable the
// corresponding filter.
type CandidateFilters struct {
	Category  string  `json:"category,omitempty"`
	Location  string  `json:"location,omitempty"`
	MaxPrice  float64 `json:"max_price,omitempty"`
	MinRating float64 `json:"min_rating,omitempty"`
}

// SearchQuery is a single relevance search request.
type SearchQuery struct {
	Query    string           `json:"query"`
	Filters  CandidateFilters `json:"filters"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// RankedHit pairs a candidate listing with its relevance score.
type RankedHit struct {
	Service model.Service `json:"service"`
	Score   float64       `json:"score"`
}

// SearchResult is the ranked response for a SearchQuery.
type SearchResult struct {
	Hits             []RankedHit `json:"hits"`
	Total            int         `json:"total"`
	Page             int         `json:"page"`
	PageSize         int         `json:"page_size"`
	Took             int64       `json:"took"` // milliseconds
	QueryID          string      `json:"query_id"`
	InferredCategory string      `json:"inferred_category,omitempty"`
	Tokens           []string    `json:"tokens,omitempty"` // token set used for matching
}

// Searcher runs relevance searches.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResult, error)
}

// CandidateSource returns listings matching an OR-combined contains
// predicate plus structured filters, most-recent-first. A nil or empty
// predicate matches every listing that passes the structured filters.
type CandidateSource interface {
	FindCandidates(predicate []FilterClause, filters CandidateFilters) []model.Service
}

// Translator converts a possibly non-English query to English. It may
// fail or time out; callers must fall back to the original text on any
// error, so implementations never need to guarantee success.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ListingWriter manages the listing catalog behind the search surface.
type ListingWriter interface {
	AddServices(listings []model.Service) error
	DeleteService(serviceID string) error
	DeleteAllServices() error
}

// ListingReader exposes stored listings for non-search reads.
type ListingReader interface {
	ListServices(page, pageSize int) ([]model.Service, int)
	GetService(serviceID string) (model.Service, error)
}

// SearchProvider is the full surface the API layer depends on.
type SearchProvider interface {
	Searcher
	ListingWriter
	ListingReader
	Categories() []model.Category
	SuggestCategory(query string) (string, bool)
}
