package postgre

import (
	"context"

	"invoice-assistant/internal/assistant"
	repo "invoice-assistant/internal/assistant/repository"
)

const (
	listTablesQuery = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	listColumnsQuery = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`

	listForeignKeysQuery = `
		SELECT
			tc.table_name,
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'`
)

// ListTables returns the base tables of the public schema.
func (r *implRepository) ListTables(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, "ListTables", listTablesQuery)
}

// ListColumns returns the columns of table in ordinal order.
func (r *implRepository) ListColumns(ctx context.Context, table string) ([]string, error) {
	return r.listStrings(ctx, "ListColumns", listColumnsQuery, table)
}

// ListForeignKeys returns every foreign-key edge of the database.
func (r *implRepository) ListForeignKeys(ctx context.Context) ([]assistant.ForeignKey, error) {
	rows, err := r.db.QueryContext(ctx, listForeignKeysQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListForeignKeys"), err)
		return nil, repo.ErrFailedToIntrospect
	}
	defer rows.Close()

	var fks []assistant.ForeignKey
	for rows.Next() {
		var fk assistant.ForeignKey
		if err := rows.Scan(&fk.Table, &fk.Column, &fk.ForeignTable, &fk.ForeignColumn); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListForeignKeys"), err)
			return nil, repo.ErrFailedToIntrospect
		}
		fks = append(fks, fk)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListForeignKeys"), err)
		return nil, repo.ErrFailedToIntrospect
	}
	return fks, nil
}

func (r *implRepository) listStrings(ctx context.Context, method, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToIntrospect
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToIntrospect
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToIntrospect
	}
	return out, nil
}
