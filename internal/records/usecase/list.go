package usecase

import (
	"context"

	"invoice-assistant/internal/records"
	repo "invoice-assistant/internal/records/repository"
)

// ListProjects returns every project, or the single named one.
func (uc *implUseCase) ListProjects(ctx context.Context, input records.ListProjectsInput) ([]records.Record, error) {
	out, err := uc.repo.ListProjects(ctx, repo.ListProjectsOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProjects ListProjects: %v", err)
		return nil, err
	}
	return out, nil
}

// ListInvoices returns invoices filtered by project, folder type, date range
// and file name keyword.
func (uc *implUseCase) ListInvoices(ctx context.Context, input records.ListInvoicesInput) ([]records.Record, error) {
	start, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	out, err := uc.repo.ListInvoices(ctx, repo.ListInvoicesOptions{
		Project:         input.Project,
		FolderTypes:     input.FolderTypes,
		StartDate:       start,
		EndDate:         end,
		FileNameKeyword: input.FileNameKeyword,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListInvoices ListInvoices: %v", err)
		return nil, err
	}
	return out, nil
}

// ListElements returns elements with their invoice columns.
func (uc *implUseCase) ListElements(ctx context.Context, input records.ListElementsInput) ([]records.Record, error) {
	opt := repo.ListElementsOptions{
		Project:            input.Project,
		FolderTypes:        input.FolderTypes,
		NameKeyword:        input.NameKeyword,
		InvoiceNameKeyword: input.InvoiceNameKeyword,
	}

	var err error
	if opt.InvoiceID, err = parseInt(input.InvoiceID); err != nil {
		return nil, err
	}
	if opt.MinPrice, err = parseFloat(input.MinPrice); err != nil {
		return nil, err
	}
	if opt.MaxPrice, err = parseFloat(input.MaxPrice); err != nil {
		return nil, err
	}
	if opt.Quantity, err = parseFloat(input.Quantity); err != nil {
		return nil, err
	}

	out, err := uc.repo.ListElements(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListElements ListElements: %v", err)
		return nil, err
	}
	return out, nil
}

// ListSubelements returns the subelements of one element.
func (uc *implUseCase) ListSubelements(ctx context.Context, elementID string) ([]records.Record, error) {
	id, err := parseInt(elementID)
	if err != nil || id == nil {
		return nil, records.ErrInvalidElement
	}

	out, err := uc.repo.ListSubelements(ctx, *id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSubelements ListSubelements: %v", err)
		return nil, err
	}
	return out, nil
}
