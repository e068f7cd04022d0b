package repository

import (
	"context"

	"invoice-assistant/internal/assistant"
)

// Repository is the composed interface for the assistant data store.
type Repository interface {
	SchemaRepository
	QueryRepository
}

// SchemaRepository reads the live catalog of the public schema.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	ListColumns(ctx context.Context, table string) ([]string, error)
	ListForeignKeys(ctx context.Context) ([]assistant.ForeignKey, error)
}

// QueryRepository runs model-generated SQL.
type QueryRepository interface {
	// ExecuteReadOnly runs sql inside a read-only transaction that is always
	// rolled back.
	ExecuteReadOnly(ctx context.Context, sql string) (assistant.ResultSet, error)
}
