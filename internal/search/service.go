// Package search implements the relevance scorer, the stable ranker
// and the search orchestration: translate, infer a category, tokenize,
// build the store predicate, rank the candidates the store returns.
package search

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/urbanhive/marketplace-search/config"
	"github.com/urbanhive/marketplace-search/internal/category"
	"github.com/urbanhive/marketplace-search/internal/predicate"
	"github.com/urbanhive/marketplace-search/internal/textutil"
	"github.com/urbanhive/marketplace-search/internal/tokenizer"
	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/services"
)

// Service implements the relevance search over a candidate source.
// It fulfills the services.Searcher interface. All scoring state is
// request-scoped; a Service is safe for concurrent use.
type Service struct {
	source     services.CandidateSource
	translator services.Translator
	settings   *config.EngineSettings
	categories []model.Category
}

// NewService creates a new search Service. The translator is optional
// (nil disables translation); everything else is required.
func NewService(source services.CandidateSource, translator services.Translator, settings *config.EngineSettings, categories []model.Category) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("candidate source cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	return &Service{
		source:     source,
		translator: translator,
		settings:   settings,
		categories: categories,
	}, nil
}

// Score assigns a non-negative relevance score to a candidate:
//   - phrase weight once when the normalized query appears in the
//     normalized title or category,
//   - per-token weights for title, category and description hits,
//     each counted independently,
//   - a rating boost of min(cap, rating) * factor, clamping untrusted
//     out-of-range ratings.
func (s *Service) Score(listing model.Service, rawQuery string, tokens []string) float64 {
	title := textutil.Normalize(listing.Title)
	description := textutil.Normalize(listing.Description)
	cat := textutil.Normalize(listing.Category)
	weights := s.settings.Weights

	score := 0.0
	normQuery := textutil.Normalize(rawQuery)
	if normQuery != "" && (strings.Contains(title, normQuery) || strings.Contains(cat, normQuery)) {
		score += weights.PhraseMatch
	}

	for _, token := range tokens {
		if strings.Contains(title, token) {
			score += weights.TitleToken
		}
		if strings.Contains(cat, token) {
			score += weights.CategoryToken
		}
		if strings.Contains(description, token) {
			score += weights.DescriptionToken
		}
	}

	rating := listing.RatingOrZero()
	if rating > weights.RatingCap {
		rating = weights.RatingCap
	}
	score += rating * weights.RatingFactor

	return score
}

// Rank orders candidates by descending relevance score. The sort is
// stable: candidates with equal scores keep their input order, which
// is whatever the store returned (most-recent-first). Output length
// always equals input length.
func (s *Service) Rank(candidates []model.Service, rawQuery string, tokens []string) []model.Service {
	hits := s.rankHits(candidates, rawQuery, tokens)
	ranked := make([]model.Service, len(hits))
	for i, hit := range hits {
		ranked[i] = hit.Service
	}
	return ranked
}

// rankHits scores and stably sorts candidates, keeping the scores for
// the API response.
func (s *Service) rankHits(candidates []model.Service, rawQuery string, tokens []string) []services.RankedHit {
	scored := make([]scoredCandidate, len(candidates))
	for i, listing := range candidates {
		scored[i] = scoredCandidate{listing: listing, score: s.Score(listing, rawQuery, tokens)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	hits := make([]services.RankedHit, len(scored))
	for i, sc := range scored {
		hits[i] = services.RankedHit{Service: sc.listing, Score: sc.score}
	}
	return hits
}

// Search runs the full relevance flow for one query. Collaborator
// failures never fail the search: a translation error falls back to
// the raw query text, and an empty candidate set ranks to an empty
// result.
func (s *Service) Search(ctx context.Context, query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = s.settings.DefaultPageSize
	}
	if pageSize > s.settings.MaxPageSize {
		pageSize = s.settings.MaxPageSize
	}

	searchText := strings.TrimSpace(query.Query)
	if searchText != "" && s.translator != nil {
		translated, err := s.translator.Translate(ctx, searchText)
		if err != nil {
			log.Printf("Warning: translation failed, searching with original text: %v", err)
		} else if strings.TrimSpace(translated) != "" {
			searchText = strings.TrimSpace(translated)
		}
	}

	var inferredCategory string
	var tokens []string
	var filterPredicate []services.FilterClause
	if searchText != "" {
		if name, ok := category.InferWithThreshold(searchText, s.categories, s.settings.SimilarityThreshold); ok {
			inferredCategory = name
		}

		// Widen the query's own tokens with the inferred category's
		// tokens; merging lives here, not in the predicate builder.
		queryTokens := tokenizer.TokenizeWithLimits(searchText, s.settings.MinTokenLength, s.settings.MaxQueryTokens)
		var categoryTokens []string
		if inferredCategory != "" {
			categoryTokens = tokenizer.TokenizeWithLimits(inferredCategory, s.settings.MinTokenLength, s.settings.MaxQueryTokens)
		}
		tokens = tokenizer.MergeWithLimit(s.settings.MaxQueryTokens, queryTokens, categoryTokens)

		if len(tokens) > 0 {
			filterPredicate = predicate.Build(tokens)
		} else {
			// Nothing survived stop-word filtering; fall back to the
			// raw text so the store still narrows on something.
			filterPredicate = predicate.Build([]string{searchText})
		}
	}

	candidates := s.source.FindCandidates(filterPredicate, query.Filters)
	hits := s.rankHits(candidates, searchText, tokens)

	total := len(hits)
	startIndex := (page - 1) * pageSize
	endIndex := startIndex + pageSize
	var paginatedHits []services.RankedHit
	if startIndex < total {
		if endIndex > total {
			endIndex = total
		}
		paginatedHits = hits[startIndex:endIndex]
	} else {
		paginatedHits = []services.RankedHit{}
	}

	return services.SearchResult{
		Hits:             paginatedHits,
		Total:            total,
		Page:             page,
		PageSize:         pageSize,
		Took:             time.Since(startTime).Milliseconds(),
		QueryID:          uuid.New().String(),
		InferredCategory: inferredCategory,
		Tokens:           tokens,
	}, nil
}
