package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	repo "invoice-assistant/internal/report/repository"
	"invoice-assistant/pkg/log"
)

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func assertSQLMock(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestSelectedProjects(t *testing.T) {
	db, mock := newSQLMock(t)
	r := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE name = ANY($1::text[])")).
		WithArgs(`{"Casa A","Casa \"B\""}`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "client"}).AddRow("Casa A", "Acme"))

	got, err := r.SelectedProjects(context.Background(), []string{"Casa A", `Casa "B"`})
	if err != nil {
		t.Fatalf("SelectedProjects() error = %v", err)
	}
	if len(got.Columns) != 2 || got.Columns[0] != "name" {
		t.Errorf("unexpected columns %v", got.Columns)
	}
	if len(got.Rows) != 1 || got.Rows[0][1] != "Acme" {
		t.Errorf("unexpected rows %v", got.Rows)
	}
	assertSQLMock(t, mock)
}

func TestSelectedInvoicesError(t *testing.T) {
	db, mock := newSQLMock(t)
	r := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i")).
		WithArgs(`{"1"}`).
		WillReturnError(errors.New("boom"))

	_, err := r.SelectedInvoices(context.Background(), []string{"1"})
	if !errors.Is(err, repo.ErrFailedToSelect) {
		t.Fatalf("SelectedInvoices() error = %v, want ErrFailedToSelect", err)
	}
	assertSQLMock(t, mock)
}

func TestSelectedElementsParsesNumeric(t *testing.T) {
	db, mock := newSQLMock(t)
	r := New(db, log.NewNop())

	cols := []*sqlmock.Column{
		sqlmock.NewColumn("id").OfType("INT4", int64(0)),
		sqlmock.NewColumn("subchapter_code").OfType("TEXT", ""),
		sqlmock.NewColumn("price_per_unit").OfType("NUMERIC", ""),
	}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY i.file_name")).
		WithArgs(`{"7"}`).
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(cols...).AddRow(int64(7), "01.02", "12.50"))

	got, err := r.SelectedElements(context.Background(), []string{"7"})
	if err != nil {
		t.Fatalf("SelectedElements() error = %v", err)
	}
	row := got.Rows[0]
	if row[1] != "01.02" {
		t.Errorf("text column = %#v, want untouched string", row[1])
	}
	if row[2] != 12.5 {
		t.Errorf("numeric column = %#v, want 12.5", row[2])
	}
	assertSQLMock(t, mock)
}

func TestSubelementsOfGroupsByElement(t *testing.T) {
	db, mock := newSQLMock(t)
	r := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM subelements s")).
		WithArgs(`{"1","2"}`).
		WillReturnRows(sqlmock.NewRows([]string{"element_id", "title", "unit"}).
			AddRow("1", "a", "m").
			AddRow("1", "b", "m").
			AddRow("2", "c", "u"))

	got, err := r.SubelementsOf(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("SubelementsOf() error = %v", err)
	}
	if len(got["1"]) != 2 || len(got["2"]) != 1 {
		t.Fatalf("unexpected grouping %v", got)
	}
	if got["1"][1][0] != "b" {
		t.Errorf("child row = %v, want element id stripped", got["1"][1])
	}
	assertSQLMock(t, mock)
}

func TestTextArray(t *testing.T) {
	tests := map[string]struct {
		in   []string
		want string
	}{
		"empty":   {in: nil, want: "{}"},
		"plain":   {in: []string{"1", "2"}, want: `{"1","2"}`},
		"escaped": {in: []string{`a\b`}, want: `{"a\\b"}`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := textArray(tc.in); got != tc.want {
				t.Errorf("textArray() = %q, want %q", got, tc.want)
			}
		})
	}
}
