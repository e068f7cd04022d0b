package postgre

import (
	"database/sql"
	"fmt"

	"invoice-assistant/internal/report/repository"
	"invoice-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for report exports.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("report/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("report/repository/postgre.%s", method)
}
