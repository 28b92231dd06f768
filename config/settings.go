// Package config provides configuration structures for the relevance
// engine: token bounds, category inference thresholds, scoring weights
// and API paging defaults.
package config

// ScoringWeights holds the per-match weights used by the relevance
// scorer. The defaults reproduce the production ranking; they are
// configurable so experiments can retune the balance without touching
// the scorer.
type ScoringWeights struct {
	PhraseMatch      float64 `json:"phrase_match"`      // whole normalized query found in title or category (added once)
	TitleToken       float64 `json:"title_token"`       // per token found in title
	CategoryToken    float64 `json:"category_token"`    // per token found in category
	DescriptionToken float64 `json:"description_token"` // per token found in description
	RatingFactor     float64 `json:"rating_factor"`     // multiplier applied to the clamped rating
	RatingCap        float64 `json:"rating_cap"`        // ratings above this contribute as if equal to it
}

// EngineSettings contains all configuration options for the relevance
// engine. Token limits exist to keep generated store predicates small;
// the similarity threshold guards against wrong auto-categorization.
type EngineSettings struct {
	MaxQueryTokens      int            `json:"max_query_tokens"`     // token set cap (e.g. 8)
	MinTokenLength      int            `json:"min_token_length"`     // tokens shorter than this are dropped (e.g. 2)
	SimilarityThreshold float64        `json:"similarity_threshold"` // minimum Jaccard score to accept an inferred category
	Weights             ScoringWeights `json:"weights"`
	DefaultPageSize     int            `json:"default_page_size"`
	MaxPageSize         int            `json:"max_page_size"`
}

// ApplyDefaults applies default values to unset engine settings.
func (settings *EngineSettings) ApplyDefaults() {
	if settings.MaxQueryTokens == 0 {
		settings.MaxQueryTokens = 8
	}
	if settings.MinTokenLength == 0 {
		settings.MinTokenLength = 2
	}
	if settings.SimilarityThreshold == 0 {
		settings.SimilarityThreshold = 0.25
	}
	if settings.Weights == (ScoringWeights{}) {
		settings.Weights = ScoringWeights{
			PhraseMatch:      6,
			TitleToken:       4,
			CategoryToken:    3,
			DescriptionToken: 2,
			RatingFactor:     0.3,
			RatingCap:        5,
		}
	}
	if settings.DefaultPageSize == 0 {
		settings.DefaultPageSize = 20
	}
	if settings.MaxPageSize == 0 {
		settings.MaxPageSize = 100
	}
}

// Validate checks the settings for values that would break engine
// invariants and returns human-readable problems.
func (settings *EngineSettings) Validate() []string {
	var problems []string

	if settings.MaxQueryTokens < 1 {
		problems = append(problems, "max_query_tokens must be at least 1")
	}
	if settings.MinTokenLength < 1 {
		problems = append(problems, "min_token_length must be at least 1")
	}
	if settings.SimilarityThreshold < 0 || settings.SimilarityThreshold > 1 {
		problems = append(problems, "similarity_threshold must be within [0, 1]")
	}
	if settings.Weights.PhraseMatch < 0 || settings.Weights.TitleToken < 0 ||
		settings.Weights.CategoryToken < 0 || settings.Weights.DescriptionToken < 0 ||
		settings.Weights.RatingFactor < 0 || settings.Weights.RatingCap < 0 {
		problems = append(problems, "scoring weights must not be negative")
	}
	if settings.DefaultPageSize < 1 {
		problems = append(problems, "default_page_size must be at least 1")
	}
	if settings.MaxPageSize < settings.DefaultPageSize {
		problems = append(problems, "max_page_size must not be smaller than default_page_size")
	}

	return problems
}
