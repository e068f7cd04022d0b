package repository

import "time"

// ListProjectsOptions filters the projects listing. Empty Name lists all.
type ListProjectsOptions struct {
	Name string
}

// ListInvoicesOptions holds the invoice filters. Zero values are ignored.
type ListInvoicesOptions struct {
	Project         string
	FolderTypes     []string
	StartDate       *time.Time
	EndDate         *time.Time
	FileNameKeyword string
}

// ListElementsOptions holds the element filters. Nil pointers are ignored.
type ListElementsOptions struct {
	Project            string
	FolderTypes        []string
	NameKeyword        string
	InvoiceNameKeyword string
	InvoiceID          *int64
	MinPrice           *float64
	MaxPrice           *float64
	Quantity           *float64
}
