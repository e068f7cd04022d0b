package report

import (
	"io"
	"time"
)

// Format is the artifact file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return ContentTypePDF
	}
	return ContentTypeXLSX
}

// Kinds of report, used as the filename prefix.
const (
	KindChat     = "chat"
	KindProjects = "projects"
	KindInvoices = "invoices"
	KindElements = "elements"
)

// Artifact is a materialized report in the artifact store.
type Artifact struct {
	Filename    string
	URL         string
	ContentType string
	Size        int64
}

// Table is a flat row set with its column names.
type Table struct {
	Columns []string
	Rows    [][]any
}

// --- UseCase Inputs ---

type MaterializeInput struct {
	Kind   string
	Format Format
	Table  Table
}

type DownloadSelectedInput struct {
	EntityType string
	IDs        []string
}

// --- UseCase Outputs ---

type OpenOutput struct {
	Filename     string
	ContentType  string
	Size         int64
	LastModified time.Time
	Body         io.ReadCloser
}
