package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 10.0
	pdfRowH     = 6.0
	pdfFontSize = 8.0
)

// WritePDF renders a titled table on landscape A4 pages into w.
// Cell text is clipped to its column.
func WritePDF(w io.Writer, title string, cols []string, rows [][]any) error {
	if len(cols) == 0 {
		return fmt.Errorf("pdf %q has no columns", title)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	colW := (pageW - 2*pdfMargin) / float64(len(cols))

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(211, 211, 211)
		for _, c := range cols {
			pdf.CellFormat(colW, pdfRowH, clip(pdf, tr(c), colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfFontSize)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range rows {
		for c := range cols {
			var v any
			if c < len(row) {
				v = row[c]
			}
			align := "L"
			if isNumber(v) {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowH, clip(pdf, tr(pdfText(v)), colW), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func pdfText(v any) string {
	switch t := cellValue(v).(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.2f", t)
	case float32:
		return fmt.Sprintf("%.2f", t)
	default:
		return fmt.Sprint(t)
	}
}

func clip(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"..") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}
