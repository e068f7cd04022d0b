package postgre

import "strings"

const (
	selectProjectsQuery = `SELECT * FROM projects WHERE name = ANY($1::text[])`

	selectInvoicesQuery = `
		SELECT
			i.folder_type,
			i.file_name,
			i.project_name,
			p.name AS project_name
		FROM invoices i
		LEFT JOIN projects p ON i.project_name = p.name
		WHERE i.id::text = ANY($1::text[])`

	selectElementsQuery = `
		SELECT
			e.id,
			e.chapter_title,
			e.subchapter_code,
			e.name,
			e.unit,
			e.quantity,
			e.price_per_unit,
			e.total_price,
			e.description,
			i.file_name AS invoice_name,
			i.folder_type,
			i.project_name
		FROM elements e
		LEFT JOIN invoices i ON e.invoice_id = i.id
		WHERE e.id::text = ANY($1::text[])
		ORDER BY i.file_name`

	selectSubelementsQuery = `
		SELECT
			s.element_id::text,
			s.title,
			s.unit,
			s.n,
			s.l,
			s.h,
			s.w,
			s.unit_price,
			s.total_price
		FROM subelements s
		WHERE s.element_id::text = ANY($1::text[])
		ORDER BY s.element_id, s.id`
)

// textArray encodes values as a PostgreSQL text[] literal.
func textArray(values []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for _, r := range v {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
