package pagination_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tooldex/internal/common/pagination"
)

// fakeFilterSource records the search term it was asked about and returns
// canned predicates.
type fakeFilterSource struct {
	searchTerm string
	searchPred *pagination.Predicate
	entity     []pagination.Predicate
}

func (f *fakeFilterSource) SearchFilter(term string) *pagination.Predicate {
	f.searchTerm = term
	return f.searchPred
}

func (f *fakeFilterSource) EntityFilters() []pagination.Predicate {
	return f.entity
}

func TestBuildFilters(t *testing.T) {
	t.Parallel()

	search := pagination.Predicate{Expr: "sv @@ query(?)", Args: []any{"db"}}
	featured := pagination.Predicate{Expr: "featured = ?", Args: []any{false}}

	t.Run("search plus entity filters", func(t *testing.T) {
		t.Parallel()

		src := &fakeFilterSource{searchPred: &search, entity: []pagination.Predicate{featured}}
		got := pagination.BuildFilters("  db  ", src)

		want := []pagination.Predicate{search, featured}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BuildFilters mismatch (-want +got):\n%s", diff)
		}
		if src.searchTerm != "db" {
			t.Errorf("search term not trimmed: %q", src.searchTerm)
		}
	})

	t.Run("blank search skips the search filter entirely", func(t *testing.T) {
		t.Parallel()

		src := &fakeFilterSource{searchPred: &search, entity: []pagination.Predicate{featured}}
		got := pagination.BuildFilters("   ", src)

		if src.searchTerm != "" {
			t.Errorf("SearchFilter called for blank term %q", src.searchTerm)
		}
		want := []pagination.Predicate{featured}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BuildFilters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil search predicate is dropped", func(t *testing.T) {
		t.Parallel()

		src := &fakeFilterSource{searchPred: nil}
		if got := pagination.BuildFilters("db", src); len(got) != 0 {
			t.Errorf("expected no predicates, got %v", got)
		}
	})
}
