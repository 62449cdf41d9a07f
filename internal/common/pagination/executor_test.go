package pagination_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tooldex/internal/common/pagination"
)

type pageRow struct {
	ID        string
	CreatedAt time.Time
}

func scanPageRow(rows *sql.Rows) (pageRow, pagination.CursorSeed, error) {
	var r pageRow
	if err := rows.Scan(&r.ID, &r.CreatedAt); err != nil {
		return pageRow{}, pagination.CursorSeed{}, err
	}
	seed := pagination.CursorSeed{
		ID:     r.ID,
		Fields: map[string]pagination.FieldValue{"createdAt": pagination.TimeValue(r.CreatedAt)},
	}
	return r, seed, nil
}

func newestStrategy() pagination.Strategy {
	return pagination.Strategy{
		Fields: map[string]pagination.SortField{
			"newest": {
				Expression:       "t.created_at",
				CursorField:      "createdAt",
				DefaultDirection: pagination.Desc,
			},
		},
		DefaultKey: "newest",
		IDColumn:   "t.id",
	}
}

func rowColumns() []string { return []string{"id", "created_at"} }

func TestExecute_HasMore(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	codec := pagination.NewCodec(testSecret, time.Hour)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	const query = `SELECT t.id, t.created_at FROM tools t WHERE TRUE ORDER BY t.created_at DESC, t.id DESC LIMIT $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(rowColumns()).
			AddRow("C", now.Add(2*time.Second)).
			AddRow("B", now.Add(time.Second)).
			AddRow("A", now))

	strat := newestStrategy()
	page, err := pagination.Execute(context.Background(), db, codec, pagination.QuerySpec{
		Select: "t.id, t.created_at",
		From:   "tools t",
		Order:  strat.OrderBy("newest", pagination.Desc),
		Limit:  2,
		SortBy: "newest",
	}, scanPageRow)
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}

	if len(page.Items) != 2 || page.Items[0].ID != "C" || page.Items[1].ID != "B" {
		t.Fatalf("items = %+v, want [C B]", page.Items)
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true")
	}
	if page.NextCursor == nil {
		t.Fatal("NextCursor = nil, want token for row B")
	}

	tok, ok := codec.Decode(*page.NextCursor, "newest")
	if !ok {
		t.Fatal("minted cursor failed to decode")
	}
	if tok.ID != "B" {
		t.Errorf("cursor id = %q, want B", tok.ID)
	}
	if v, exists := tok.Fields["createdAt"]; !exists || !v.Time.Equal(now.Add(time.Second)) {
		t.Errorf("cursor createdAt = %+v, want %v", v, now.Add(time.Second))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestExecute_LastPage(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	codec := pagination.NewCodec(testSecret, time.Hour)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	// Exactly limit rows: hasMore must be false and no cursor minted.
	mock.ExpectQuery("FROM tools t").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(rowColumns()).
			AddRow("B", now.Add(time.Second)).
			AddRow("A", now))

	strat := newestStrategy()
	page, err := pagination.Execute(context.Background(), db, codec, pagination.QuerySpec{
		Select: "t.id, t.created_at",
		From:   "tools t",
		Order:  strat.OrderBy("newest", pagination.Desc),
		Limit:  2,
		SortBy: "newest",
	}, scanPageRow)
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("items = %+v", page.Items)
	}
	if page.HasMore {
		t.Error("HasMore = true, want false")
	}
	if page.NextCursor != nil {
		t.Errorf("NextCursor = %q, want nil", *page.NextCursor)
	}
}

func TestExecute_DatabaseErrorPropagates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	dbErr := errors.New("connection reset")
	mock.ExpectQuery("FROM tools t").WillReturnError(dbErr)

	codec := pagination.NewCodec(testSecret, time.Hour)
	strat := newestStrategy()
	_, err := pagination.Execute(context.Background(), db, codec, pagination.QuerySpec{
		Select: "t.id, t.created_at",
		From:   "tools t",
		Order:  strat.OrderBy("newest", pagination.Desc),
		Limit:  2,
		SortBy: "newest",
	}, scanPageRow)
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want wrapped %v", err, dbErr)
	}
}

// TestList_TwoPageWalk follows a cursor across a 3-row dataset sorted by
// newest desc with limit 2: page one returns the two newest rows and a
// cursor for the boundary row, page two returns the remaining row and no
// cursor.
func TestList_TwoPageWalk(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	codec := pagination.NewCodec(testSecret, time.Hour)
	strat := newestStrategy()
	cfg := pagination.DefaultConfig()

	t0 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Second)
	t2 := t0.Add(2 * time.Second)

	const pageOne = `SELECT t.id, t.created_at FROM tools t WHERE TRUE ORDER BY t.created_at DESC, t.id DESC LIMIT $1`
	mock.ExpectQuery(regexp.QuoteMeta(pageOne)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(rowColumns()).
			AddRow("C", t2).
			AddRow("B", t1).
			AddRow("A", t0))

	const pageTwo = `SELECT t.id, t.created_at FROM tools t WHERE ((t.created_at < $1 OR (t.created_at = $2 AND t.id < $3))) ORDER BY t.created_at DESC, t.id DESC LIMIT $4`
	mock.ExpectQuery(regexp.QuoteMeta(pageTwo)).
		WithArgs(t1, t1, "B", 3).
		WillReturnRows(sqlmock.NewRows(rowColumns()).
			AddRow("A", t0))

	spec := pagination.ListSpec{
		Select:   "t.id, t.created_at",
		From:     "tools t",
		Strategy: strat,
		Params:   pagination.Params{Limit: 2, SortBy: "newest"},
		Config:   cfg,
	}

	first, err := pagination.List(context.Background(), db, codec, spec, scanPageRow)
	if err != nil {
		t.Fatalf("page one err=%v", err)
	}
	if len(first.Items) != 2 || first.Items[0].ID != "C" || first.Items[1].ID != "B" {
		t.Fatalf("page one items = %+v, want [C B]", first.Items)
	}
	if !first.HasMore || first.NextCursor == nil {
		t.Fatal("page one should report more pages and a cursor")
	}

	spec.Params.Cursor = *first.NextCursor
	second, err := pagination.List(context.Background(), db, codec, spec, scanPageRow)
	if err != nil {
		t.Fatalf("page two err=%v", err)
	}
	if len(second.Items) != 1 || second.Items[0].ID != "A" {
		t.Fatalf("page two items = %+v, want [A]", second.Items)
	}
	if second.HasMore || second.NextCursor != nil {
		t.Error("page two should be the last page")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// TestList_InvalidCursorServesPageOne: a corrupted cursor must degrade to
// page one, not surface an error.
func TestList_InvalidCursorServesPageOne(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	codec := pagination.NewCodec(testSecret, time.Hour)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	const pageOne = `SELECT t.id, t.created_at FROM tools t WHERE TRUE ORDER BY t.created_at DESC, t.id DESC LIMIT $1`
	mock.ExpectQuery(regexp.QuoteMeta(pageOne)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(rowColumns()).AddRow("A", now))

	page, err := pagination.List(context.Background(), db, codec, pagination.ListSpec{
		Select:   "t.id, t.created_at",
		From:     "tools t",
		Strategy: newestStrategy(),
		Params:   pagination.Params{Limit: 2, Cursor: "corrupted.cursor"},
		Config:   pagination.DefaultConfig(),
	}, scanPageRow)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "A" {
		t.Fatalf("items = %+v, want [A]", page.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
