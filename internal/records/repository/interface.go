package repository

import (
	"context"

	"invoice-assistant/internal/records"
)

// Repository is the composed interface for the records data store.
type Repository interface {
	ProjectRepository
	InvoiceRepository
	ElementRepository
}

type ProjectRepository interface {
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]records.Record, error)
}

type InvoiceRepository interface {
	ListInvoices(ctx context.Context, opt ListInvoicesOptions) ([]records.Record, error)
}

type ElementRepository interface {
	ListElements(ctx context.Context, opt ListElementsOptions) ([]records.Record, error)
	ListSubelements(ctx context.Context, elementID int64) ([]records.Record, error)
}
