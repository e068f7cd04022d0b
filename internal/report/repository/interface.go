package repository

import (
	"context"

	"invoice-assistant/internal/report"
)

// Repository reads the records a selected-items export is built from.
type Repository interface {
	// SelectedProjects returns every projects column for the given names.
	SelectedProjects(ctx context.Context, names []string) (report.Table, error)
	// SelectedInvoices returns invoice rows joined with their project.
	SelectedInvoices(ctx context.Context, ids []string) (report.Table, error)
	// SelectedElements returns element rows with the id in the first column,
	// ordered by invoice file name.
	SelectedElements(ctx context.Context, ids []string) (report.Table, error)
	// SubelementsOf groups subelement rows by their element id.
	SubelementsOf(ctx context.Context, elementIDs []string) (map[string][][]any, error)
}
