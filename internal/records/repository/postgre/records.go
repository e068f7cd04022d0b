package postgre

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"invoice-assistant/internal/records"
	repo "invoice-assistant/internal/records/repository"
)

// ListProjects returns all projects, or the one named by opt.Name.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]records.Record, error) {
	query, args := r.buildProjectsQuery(opt)
	return r.list(ctx, "ListProjects", query, args...)
}

// ListInvoices returns the invoices matching every non-empty filter.
func (r *implRepository) ListInvoices(ctx context.Context, opt repo.ListInvoicesOptions) ([]records.Record, error) {
	query, args := r.buildInvoicesQuery(opt)
	return r.list(ctx, "ListInvoices", query, args...)
}

// ListElements returns elements joined with their invoice and a
// has_subelements flag.
func (r *implRepository) ListElements(ctx context.Context, opt repo.ListElementsOptions) ([]records.Record, error) {
	query, args := r.buildElementsQuery(opt)
	return r.list(ctx, "ListElements", query, args...)
}

// ListSubelements returns every subelement of one element.
func (r *implRepository) ListSubelements(ctx context.Context, elementID int64) ([]records.Record, error) {
	return r.list(ctx, "ListSubelements", subelementsQuery, elementID)
}

func (r *implRepository) list(ctx context.Context, method, query string, args ...any) ([]records.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out, err := scanRecords(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// scanRecords maps every row to a Record. The result is never nil so the
// listing encodes as [] rather than null.
func scanRecords(rows *sql.Rows) ([]records.Record, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := []records.Record{}
	for rows.Next() {
		values := make([]any, len(types))
		ptrs := make([]any, len(types))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(records.Record, len(types))
		for i, ct := range types {
			rec[ct.Name()] = jsonValue(values[i], ct.DatabaseTypeName())
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// jsonValue keeps NUMERIC columns numeric in the JSON output.
func jsonValue(v any, dbType string) any {
	var s string
	switch t := v.(type) {
	case []byte:
		s = string(t)
	case string:
		s = t
	default:
		return v
	}
	switch strings.ToUpper(dbType) {
	case "NUMERIC", "DECIMAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
