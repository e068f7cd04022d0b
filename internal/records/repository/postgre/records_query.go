package postgre

import (
	"fmt"
	"strings"

	repo "invoice-assistant/internal/records/repository"
)

const (
	baseProjectsQuery = `
		SELECT name, client, autonomous_community, size_of_construction,
		       construction_type, number_of_floors, ground_quality_study, end_state
		FROM projects`

	baseInvoicesQuery = `
		SELECT id, file_name, folder_type, project_name
		FROM invoices`

	baseElementsQuery = `
		SELECT
			elements.*,
			EXISTS (
				SELECT 1
				FROM subelements
				WHERE subelements.element_id = elements.id
			) AS has_subelements,
			invoices.file_name AS invoice_name,
			invoices.folder_type AS folder_type,
			invoices.project_name AS project_name
		FROM elements
		LEFT JOIN invoices ON elements.invoice_id = invoices.id`

	subelementsQuery = `SELECT * FROM subelements WHERE element_id = $1`
)

// where accumulates AND conditions with positional parameters.
type where struct {
	conditions []string
	args       []any
}

func (w *where) add(cond string, args ...any) {
	placeholders := make([]any, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", len(w.args)+i+1)
	}
	w.conditions = append(w.conditions, fmt.Sprintf(cond, placeholders...))
	w.args = append(w.args, args...)
}

func (w *where) in(column string, values []string) {
	if len(values) == 0 {
		return
	}
	ph := make([]string, len(values))
	for i, v := range values {
		w.args = append(w.args, v)
		ph[i] = fmt.Sprintf("$%d", len(w.args))
	}
	w.conditions = append(w.conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(ph, ", ")))
}

func (w *where) String() string {
	if len(w.conditions) == 0 {
		return "1=1"
	}
	return strings.Join(w.conditions, " AND ")
}

func (r *implRepository) buildProjectsQuery(opt repo.ListProjectsOptions) (string, []any) {
	var w where
	if opt.Name != "" {
		w.add("name = %s", opt.Name)
	}
	return fmt.Sprintf("%s WHERE %s", baseProjectsQuery, w.String()), w.args
}

func (r *implRepository) buildInvoicesQuery(opt repo.ListInvoicesOptions) (string, []any) {
	var w where
	if opt.Project != "" {
		w.add("project_name = %s", opt.Project)
	}
	w.in("folder_type", opt.FolderTypes)
	if opt.StartDate != nil {
		w.add("date >= %s", *opt.StartDate)
	}
	if opt.EndDate != nil {
		w.add("date <= %s", *opt.EndDate)
	}
	if opt.FileNameKeyword != "" {
		w.add("file_name ILIKE %s", "%"+opt.FileNameKeyword+"%")
	}
	return fmt.Sprintf("%s WHERE %s", baseInvoicesQuery, w.String()), w.args
}

func (r *implRepository) buildElementsQuery(opt repo.ListElementsOptions) (string, []any) {
	var w where
	if opt.Project != "" {
		w.add("invoices.project_name = %s", opt.Project)
	}
	w.in("invoices.folder_type", opt.FolderTypes)
	if opt.NameKeyword != "" {
		w.add("elements.name ILIKE %s", "%"+opt.NameKeyword+"%")
	}
	if opt.InvoiceNameKeyword != "" {
		w.add("invoices.file_name ILIKE %s", "%"+opt.InvoiceNameKeyword+"%")
	}
	if opt.InvoiceID != nil {
		w.add("elements.invoice_id = %s", *opt.InvoiceID)
	}
	if opt.MinPrice != nil {
		w.add("elements.price_per_unit >= %s", *opt.MinPrice)
	}
	if opt.MaxPrice != nil {
		w.add("elements.price_per_unit <= %s", *opt.MaxPrice)
	}
	if opt.Quantity != nil {
		w.add("elements.quantity = %s", *opt.Quantity)
	}
	return fmt.Sprintf("%s WHERE %s", baseElementsQuery, w.String()), w.args
}
