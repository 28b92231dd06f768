// Package tokenizer derives bounded, deduplicated token sets from raw
// query text. Tokens are the unit of matching for category inference,
// predicate building and relevance scoring.
package tokenizer

import (
	"strings"

	"github.com/urbanhive/marketplace-search/internal/textutil"
)

// MaxTokens caps the token set so generated store predicates stay
// small (each token expands into four contains clauses).
const MaxTokens = 8

// MinTokenLength drops single-character fragments left over after
// normalization.
const MinTokenLength = 2

// stopWords are filler terms with no discriminative search signal:
// articles, prepositions and marketplace boilerplate ("best cheap
// plumber near me" should match on "plumber" alone). Read-only after
// init; safe to share across concurrent searches.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "to", "of", "in", "on", "for",
		"with", "near", "me", "my", "best", "cheap", "cost", "price",
		"service", "services",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether a normalized token is in the stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// Tokenize normalizes the text and returns its token set: unique
// tokens of length >= MinTokenLength that are not stop-words, in order
// of first appearance, capped at MaxTokens. An empty or unusable input
// yields an empty slice, never nil panics or errors.
func Tokenize(text string) []string {
	return TokenizeWithLimits(text, MinTokenLength, MaxTokens)
}

// TokenizeWithLimits is Tokenize with caller-supplied bounds. The
// search service threads its configured token limits through here;
// everything else uses the package defaults via Tokenize.
func TokenizeWithLimits(text string, minTokenLength, maxTokens int) []string {
	norm := textutil.Normalize(text)
	if norm == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	tokens := make([]string, 0, maxTokens)
	for _, part := range strings.Split(norm, " ") {
		if len(part) < minTokenLength || IsStopWord(part) {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		tokens = append(tokens, part)
		if len(tokens) == maxTokens {
			break
		}
	}
	return tokens
}

// Merge combines token sets in argument order, deduplicating and
// re-applying the MaxTokens cap. The search service uses it to widen a
// query's tokens with the inferred category's tokens.
func Merge(tokenSets ...[]string) []string {
	return MergeWithLimit(MaxTokens, tokenSets...)
}

// MergeWithLimit is Merge with a caller-supplied cap.
func MergeWithLimit(maxTokens int, tokenSets ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0, maxTokens)
	for _, set := range tokenSets {
		for _, token := range set {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			merged = append(merged, token)
			if len(merged) == maxTokens {
				return merged
			}
		}
	}
	return merged
}
