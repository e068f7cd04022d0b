package postgre

import (
	"database/sql"
	"fmt"
	"time"

	"invoice-assistant/internal/assistant/repository"
	"invoice-assistant/pkg/log"
)

type implRepository struct {
	db               *sql.DB
	l                log.Logger
	statementTimeout time.Duration
}

// Option tunes the repository.
type Option func(*implRepository)

// WithStatementTimeout bounds every model-generated statement on the server side.
func WithStatementTimeout(d time.Duration) Option {
	return func(r *implRepository) { r.statementTimeout = d }
}

// New creates a new PostgreSQL-backed Repository for the assistant domain.
func New(db *sql.DB, l log.Logger, opts ...Option) repository.Repository {
	if db == nil {
		panic("assistant/repository/postgre: db is required")
	}
	r := &implRepository{db: db, l: l}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assistant/repository/postgre.%s", method)
}
