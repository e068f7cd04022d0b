package http

import (
	"invoice-assistant/internal/records"
)

// --- Request DTOs ---

// folderTypeFilters are the two checkbox filters of the invoice and
// element grids, sent as folderTypeFilters[adicionals]=true.
type folderTypeFilters struct {
	Adicionals string `form:"folderTypeFilters[adicionals]"`
	Pressupost string `form:"folderTypeFilters[pressupost]"`
}

func (f folderTypeFilters) values() []string {
	var out []string
	if f.Adicionals == "true" {
		out = append(out, records.FolderTypeAdicionals)
	}
	if f.Pressupost == "true" {
		out = append(out, records.FolderTypePressupost)
	}
	return out
}

type listInvoicesReq struct {
	folderTypeFilters
	Project         string `form:"-"`
	StartDate       string `form:"startDate"`
	EndDate         string `form:"endDate"`
	FileNameKeyword string `form:"FileNameKeyword"`
}

func (r listInvoicesReq) toInput() records.ListInvoicesInput {
	return records.ListInvoicesInput{
		Project:         r.Project,
		FolderTypes:     r.values(),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		FileNameKeyword: r.FileNameKeyword,
	}
}

type listElementsReq struct {
	folderTypeFilters
	Project            string `form:"-"`
	NameKeyword        string `form:"nameKeyword"`
	InvoiceNameKeyword string `form:"invoiceNameKeyword"`
	InvoiceID          string `form:"invoiceid"`
	MinPrice           string `form:"minPrice"`
	MaxPrice           string `form:"maxPrice"`
	Quantity           string `form:"quantity"`
}

func (r listElementsReq) toInput() records.ListElementsInput {
	return records.ListElementsInput{
		Project:            r.Project,
		FolderTypes:        r.values(),
		NameKeyword:        r.NameKeyword,
		InvoiceNameKeyword: r.InvoiceNameKeyword,
		InvoiceID:          r.InvoiceID,
		MinPrice:           r.MinPrice,
		MaxPrice:           r.MaxPrice,
		Quantity:           r.Quantity,
	}
}
