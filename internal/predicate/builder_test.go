package predicate

import (
	"strings"
	"testing"

	"github.com/urbanhive/marketplace-search/services"
)

func TestBuild(t *testing.T) {
	t.Run("nil for empty token set", func(t *testing.T) {
		if got := Build(nil); got != nil {
			t.Errorf("Build(nil) = %v, want nil", got)
		}
		if got := Build([]string{}); got != nil {
			t.Errorf("Build([]) = %v, want nil", got)
		}
	})

	t.Run("four clauses per token", func(t *testing.T) {
		got := Build([]string{"plumber", "lahore"})
		if len(got) != 8 {
			t.Fatalf("Build produced %d clauses, want 8", len(got))
		}
		wantFirst := services.FilterClause{Field: "title", Operator: OperatorContains, Value: "plumber"}
		if got[0] != wantFirst {
			t.Errorf("first clause = %+v, want %+v", got[0], wantFirst)
		}
		wantFields := []string{"title", "description", "category", "location"}
		for i, field := range wantFields {
			if got[i].Field != field || got[i].Value != "plumber" {
				t.Errorf("clause %d = %+v, want field %q value %q", i, got[i], field, "plumber")
			}
			if got[i+4].Field != field || got[i+4].Value != "lahore" {
				t.Errorf("clause %d = %+v, want field %q value %q", i+4, got[i+4], field, "lahore")
			}
		}
	})

	t.Run("commas never leak into values", func(t *testing.T) {
		got := Build([]string{"a,b", "plumbing,"})
		if got == nil {
			t.Fatal("Build returned nil for usable tokens")
		}
		for _, clause := range got {
			if strings.Contains(clause.Value, ",") {
				t.Errorf("clause value %q contains a comma", clause.Value)
			}
		}
		if got[0].Value != "a b" {
			t.Errorf("cleaned value = %q, want %q", got[0].Value, "a b")
		}
		if got[4].Value != "plumbing" {
			t.Errorf("cleaned value = %q, want %q", got[4].Value, "plumbing")
		}
	})

	t.Run("tokens that clean to empty are skipped", func(t *testing.T) {
		if got := Build([]string{",", ",,", " "}); got != nil {
			t.Errorf("Build = %v, want nil when every token cleans to empty", got)
		}
		got := Build([]string{",", "tutor"})
		if len(got) != 4 {
			t.Errorf("Build produced %d clauses, want 4 for the single usable token", len(got))
		}
	})
}
