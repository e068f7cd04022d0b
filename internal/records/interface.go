package records

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListProjects(ctx context.Context, input ListProjectsInput) ([]Record, error)
	ListInvoices(ctx context.Context, input ListInvoicesInput) ([]Record, error)
	ListElements(ctx context.Context, input ListElementsInput) ([]Record, error)
	ListSubelements(ctx context.Context, elementID string) ([]Record, error)
}
