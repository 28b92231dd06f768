package search

import "github.com/urbanhive/marketplace-search/model"

// scoredCandidate pairs a candidate listing with its relevance score
// during ranking.
type scoredCandidate struct {
	listing model.Service
	score   float64
}
