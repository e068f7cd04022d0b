package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"invoice-assistant/internal/assistant"
	repo "invoice-assistant/internal/assistant/repository"
)

// ExecuteReadOnly runs a model-generated statement in a READ ONLY
// transaction. The transaction is rolled back on every path.
func (r *implRepository) ExecuteReadOnly(ctx context.Context, query string) (assistant.ResultSet, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ExecuteReadOnly"), err)
		return assistant.ResultSet{}, fmt.Errorf("%w: %v", repo.ErrFailedToExecute, err)
	}
	defer func() { _ = tx.Rollback() }()

	if r.statementTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", r.statementTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s statement_timeout: %v", r.dsn("ExecuteReadOnly"), err)
			return assistant.ResultSet{}, fmt.Errorf("%w: %v", repo.ErrFailedToExecute, err)
		}
	}

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExecuteReadOnly"), err)
		return assistant.ResultSet{}, fmt.Errorf("%w: %v", repo.ErrFailedToExecute, err)
	}
	defer rows.Close()

	rs, err := scanResultSet(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ExecuteReadOnly"), err)
		return assistant.ResultSet{}, fmt.Errorf("%w: %v", repo.ErrFailedToExecute, err)
	}
	return rs, nil
}

func scanResultSet(rows *sql.Rows) (assistant.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return assistant.ResultSet{}, err
	}

	rs := assistant.ResultSet{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return assistant.ResultSet{}, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}
	return rs, rows.Err()
}
