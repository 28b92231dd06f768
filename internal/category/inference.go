// Package category infers the service category a query most likely
// targets. A fixed synonym table is consulted first; when no phrase
// matches, token-set similarity against the category catalog decides.
package category

import (
	"strings"

	"github.com/urbanhive/marketplace-search/internal/textutil"
	"github.com/urbanhive/marketplace-search/internal/tokenizer"
	"github.com/urbanhive/marketplace-search/model"
)

// SimilarityThreshold is the minimum Jaccard score required before an
// inferred category is trusted. Below it, returning nothing beats
// auto-selecting a wrong category.
const SimilarityThreshold = 0.25

// SynonymEntry maps a colloquial phrase to its canonical category name.
type SynonymEntry struct {
	Phrase   string
	Category string
}

// synonyms bridges common phrasing to category intent. The table is
// iterated in declaration order and the first phrase found inside the
// normalized query wins, so precedence is positional: multi-word
// phrases sit above single words that could shadow them. Read-only
// after init.
var synonyms = []SynonymEntry{
	{"system security", "Security Services"},
	{"cyber security", "Security Services"},
	{"cybersecurity", "Security Services"},
	{"cctv", "Security Services"},
	{"camera", "Security Services"},
	{"surveillance", "Security Services"},
	{"guard", "Security Services"},
	{"bodyguard", "Security Services"},
	{"it support", "Technical Services"},
	{"computer repair", "Technical Services"},
	{"laptop repair", "Technical Services"},
	{"mobile repair", "Technical Services"},
	{"plumber", "Home Services"},
	{"electrician", "Home Services"},
	{"ac repair", "Repair & Maintenance"},
	{"appliance repair", "Repair & Maintenance"},
	{"tuition", "Education & Tutoring"},
	{"tutor", "Education & Tutoring"},
	{"moving", "Delivery & Logistics"},
	{"courier", "Delivery & Logistics"},
	{"fitness", "Health & Personal Care"},
	{"salon", "Health & Personal Care"},
	{"consulting", "Business & Consulting"},
	{"legal", "Business & Consulting"},
	{"accounting", "Business & Consulting"},
	{"photography", "Event & Media"},
	{"dj", "Event & Media"},
	{"ai", "AI & Automation"},
	{"automation", "AI & Automation"},
}

// Synonyms returns a copy of the synonym table in declaration order.
func Synonyms() []SynonymEntry {
	out := make([]SynonymEntry, len(synonyms))
	copy(out, synonyms)
	return out
}

// Infer maps a query to at most one category name. The synonym stage
// takes precedence; the similarity stage runs only when no phrase
// matched. It returns false when the query is empty, tokenless, or no
// category clears SimilarityThreshold. Inference is computed fresh per
// call and never cached.
func Infer(query string, categories []model.Category) (string, bool) {
	return InferWithThreshold(query, categories, SimilarityThreshold)
}

// InferWithThreshold is Infer with a caller-supplied similarity
// threshold. The synonym stage is unaffected by the threshold; only
// the Jaccard fallback consults it.
func InferWithThreshold(query string, categories []model.Category, threshold float64) (string, bool) {
	norm := textutil.Normalize(query)
	if norm == "" {
		return "", false
	}

	if name, ok := lookupSynonym(norm); ok {
		return name, true
	}

	queryTokens := tokenizer.Tokenize(norm)
	if len(queryTokens) == 0 {
		return "", false
	}

	bestName := ""
	bestScore := -1.0
	for _, cat := range categories {
		descriptor := tokenizer.Tokenize(cat.Name + " " + cat.Description)
		score := jaccard(queryTokens, descriptor)
		if score > bestScore {
			bestName = cat.Name
			bestScore = score
		}
	}

	if bestScore >= threshold {
		return bestName, true
	}
	return "", false
}

// lookupSynonym scans the table in declared order and returns the
// category of the first phrase contained in the normalized query.
func lookupSynonym(normalizedQuery string) (string, bool) {
	for _, entry := range synonyms {
		if containsPhrase(normalizedQuery, entry.Phrase) {
			return entry.Category, true
		}
	}
	return "", false
}

// containsPhrase is a plain substring test over normalized text; a
// query "surveillance cameras" matches the phrase "camera".
func containsPhrase(normalizedQuery, phrase string) bool {
	return strings.Contains(normalizedQuery, phrase)
}

// jaccard computes |intersection| / |union| of two token sets, 0 when
// either is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
