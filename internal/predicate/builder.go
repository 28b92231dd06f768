// Package predicate converts token sets into the broadened filter
// expression handed to the backing store: per token, one "contains"
// clause for each searchable field, OR-combined across everything.
package predicate

import (
	"strings"

	"github.com/urbanhive/marketplace-search/services"
)

// OperatorContains is the only operator built predicates use.
const OperatorContains = "contains"

// SearchableFields are the listing fields a token may match, in clause
// emission order.
var SearchableFields = []string{"title", "description", "category", "location"}

// Build converts a token set into OR-combined contains clauses. Commas
// would corrupt downstream OR-string encodings, so each token has them
// folded to spaces and is trimmed; tokens that become empty are
// skipped. Returns nil when no usable token remains. Build only
// constructs the expression, it never executes anything.
func Build(tokens []string) []services.FilterClause {
	clauses := make([]services.FilterClause, 0, len(tokens)*len(SearchableFields))
	for _, token := range tokens {
		safe := strings.TrimSpace(strings.ReplaceAll(token, ",", " "))
		if safe == "" {
			continue
		}
		for _, field := range SearchableFields {
			clauses = append(clauses, services.FilterClause{
				Field:    field,
				Operator: OperatorContains,
				Value:    safe,
			})
		}
	}
	if len(clauses) == 0 {
		return nil
	}
	return clauses
}
