package pagination_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tooldex/internal/common/pagination"
)

func testStrategy() pagination.Strategy {
	return pagination.Strategy{
		Fields: map[string]pagination.SortField{
			"name": {
				Expression:       "t.name",
				CursorField:      "name",
				DefaultDirection: pagination.Asc,
			},
			"newest": {
				Expression:       "t.created_at",
				CursorField:      "createdAt",
				DefaultDirection: pagination.Desc,
				Boosts:           []string{"sponsored", "affiliated"},
			},
			"relevance": {
				Expression:       "rank_of(?)",
				ExprArgs:         []any{"postgres"},
				CursorField:      "rank",
				DefaultDirection: pagination.Desc,
				Boosts:           []string{"sponsored"},
			},
		},
		DefaultKey: "newest",
		IDColumn:   "t.id",
	}
}

func TestStrategy_OrderBy(t *testing.T) {
	t.Parallel()

	strat := testStrategy()

	tests := []struct {
		name   string
		sortBy string
		dir    pagination.Direction
		want   []pagination.OrderClause
	}{
		{
			name:   "plain sort ends in id tiebreaker",
			sortBy: "name",
			dir:    pagination.Asc,
			want: []pagination.OrderClause{
				{Expr: "t.name", Dir: pagination.Asc},
				{Expr: "t.id", Dir: pagination.Asc},
			},
		},
		{
			name:   "boosts lead and are always descending",
			sortBy: "newest",
			dir:    pagination.Desc,
			want: []pagination.OrderClause{
				{Expr: "sponsored", Dir: pagination.Desc},
				{Expr: "affiliated", Dir: pagination.Desc},
				{Expr: "t.created_at", Dir: pagination.Desc},
				{Expr: "t.id", Dir: pagination.Desc},
			},
		},
		{
			name:   "unknown key falls back to the default order",
			sortBy: "bogus",
			dir:    pagination.Desc,
			want: []pagination.OrderClause{
				{Expr: "sponsored", Dir: pagination.Desc},
				{Expr: "affiliated", Dir: pagination.Desc},
				{Expr: "t.created_at", Dir: pagination.Desc},
				{Expr: "t.id", Dir: pagination.Desc},
			},
		},
		{
			name:   "computed expression keeps its arguments",
			sortBy: "relevance",
			dir:    pagination.Desc,
			want: []pagination.OrderClause{
				{Expr: "sponsored", Dir: pagination.Desc},
				{Expr: "rank_of(?)", Args: []any{"postgres"}, Dir: pagination.Desc},
				{Expr: "t.id", Dir: pagination.Desc},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := strat.OrderBy(tt.sortBy, tt.dir)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("OrderBy mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrategy_Direction(t *testing.T) {
	t.Parallel()

	strat := testStrategy()

	if got := strat.Direction("name", ""); got != pagination.Asc {
		t.Errorf("name default direction = %v, want asc", got)
	}
	if got := strat.Direction("newest", ""); got != pagination.Desc {
		t.Errorf("newest default direction = %v, want desc", got)
	}
	if got := strat.Direction("name", pagination.Desc); got != pagination.Desc {
		t.Errorf("explicit direction not honored: %v", got)
	}
}

func TestStrategy_Continuation(t *testing.T) {
	t.Parallel()

	strat := testStrategy()
	createdAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("composite keyset predicate ascending", func(t *testing.T) {
		t.Parallel()

		tok := pagination.Token{
			ID:     "B",
			Fields: map[string]pagination.FieldValue{"name": pagination.StringValue("Bolt")},
		}
		got := strat.Continuation(tok, "name", pagination.Asc)

		want := &pagination.Predicate{
			Expr: "(t.name > ? OR (t.name = ? AND t.id > ?))",
			Args: []any{"Bolt", "Bolt", "B"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Continuation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mirrored for descending", func(t *testing.T) {
		t.Parallel()

		tok := pagination.Token{
			ID:     "B",
			Fields: map[string]pagination.FieldValue{"createdAt": pagination.TimeValue(createdAt)},
		}
		got := strat.Continuation(tok, "newest", pagination.Desc)

		want := &pagination.Predicate{
			Expr: "(t.created_at < ? OR (t.created_at = ? AND t.id < ?))",
			Args: []any{createdAt, createdAt, "B"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Continuation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("degrades to id-only when the cursor field is missing", func(t *testing.T) {
		t.Parallel()

		tok := pagination.Token{ID: "B", Fields: map[string]pagination.FieldValue{}}
		got := strat.Continuation(tok, "newest", pagination.Desc)

		want := &pagination.Predicate{Expr: "t.id < ?", Args: []any{"B"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Continuation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("computed expression arguments interleave positionally", func(t *testing.T) {
		t.Parallel()

		tok := pagination.Token{
			ID:     "B",
			Fields: map[string]pagination.FieldValue{"rank": pagination.NumberValue(0.42)},
		}
		got := strat.Continuation(tok, "relevance", pagination.Desc)

		want := &pagination.Predicate{
			Expr: "(rank_of(?) < ? OR (rank_of(?) = ? AND t.id < ?))",
			Args: []any{"postgres", 0.42, "postgres", 0.42, "B"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Continuation mismatch (-want +got):\n%s", diff)
		}
	})
}
