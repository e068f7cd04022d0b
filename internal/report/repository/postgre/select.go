package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"invoice-assistant/internal/report"
	repo "invoice-assistant/internal/report/repository"
)

func (r *implRepository) SelectedProjects(ctx context.Context, names []string) (report.Table, error) {
	return r.selectTable(ctx, "SelectedProjects", selectProjectsQuery, names)
}

func (r *implRepository) SelectedInvoices(ctx context.Context, ids []string) (report.Table, error) {
	return r.selectTable(ctx, "SelectedInvoices", selectInvoicesQuery, ids)
}

func (r *implRepository) SelectedElements(ctx context.Context, ids []string) (report.Table, error) {
	return r.selectTable(ctx, "SelectedElements", selectElementsQuery, ids)
}

func (r *implRepository) SubelementsOf(ctx context.Context, elementIDs []string) (map[string][][]any, error) {
	t, err := r.selectTable(ctx, "SubelementsOf", selectSubelementsQuery, elementIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][][]any)
	for _, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		key := keyOf(row[0])
		grouped[key] = append(grouped[key], row[1:])
	}
	return grouped, nil
}

func (r *implRepository) selectTable(ctx context.Context, method, query string, keys []string) (report.Table, error) {
	rows, err := r.db.QueryContext(ctx, query, textArray(keys))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return report.Table{}, repo.ErrFailedToSelect
	}
	defer rows.Close()

	t, err := scanTable(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
		return report.Table{}, repo.ErrFailedToSelect
	}
	return t, nil
}

func scanTable(rows *sql.Rows) (report.Table, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return report.Table{}, err
	}
	cols := make([]string, len(types))
	numeric := make([]bool, len(types))
	for i, ct := range types {
		cols[i] = ct.Name()
		switch strings.ToUpper(ct.DatabaseTypeName()) {
		case "NUMERIC", "DECIMAL":
			numeric[i] = true
		}
	}

	t := report.Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return report.Table{}, err
		}
		for i, v := range values {
			values[i] = normalize(v, numeric[i])
		}
		t.Rows = append(t.Rows, values)
	}
	return t, rows.Err()
}

// normalize turns driver bytes into strings and NUMERIC text into float64
// so amounts pick up the number format in the sheet.
func normalize(v any, numeric bool) any {
	var s string
	switch t := v.(type) {
	case []byte:
		s = string(t)
	case string:
		s = t
	default:
		return v
	}
	if numeric {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// keyOf renders an element id the way the SQL ::text cast does.
func keyOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
