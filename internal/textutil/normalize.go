// Package textutil provides query text canonicalization shared by the
// tokenizer, the category inference engine and the relevance scorer.
package textutil

import (
	"regexp"
	"strings"
)

// separatorRegex matches runs of characters commonly used as word
// separators in queries ("ac_repair", "plumbing/electrical").
var separatorRegex = regexp.MustCompile(`[_/\\|]+`)

// nonAlphanumericRegex matches runs of everything that is not a
// lowercase letter, digit or space. Input is lowercased first.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]+`)

// whitespaceRegex matches runs of whitespace.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize canonicalizes raw query or field text: lowercase, fold
// separator runs to a space, strip everything that is not [a-z0-9 ],
// collapse whitespace and trim. It is idempotent and never fails;
// queries are untrusted user text and normalization must be total.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	lower = separatorRegex.ReplaceAllString(lower, " ")
	lower = nonAlphanumericRegex.ReplaceAllString(lower, " ")
	lower = whitespaceRegex.ReplaceAllString(lower, " ")
	return strings.TrimSpace(lower)
}
