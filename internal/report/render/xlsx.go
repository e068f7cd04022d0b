// Package render turns row sets into spreadsheet and PDF bytes.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet    = "Sheet1"
	numberFmtID     = 4 // built-in "#,##0.00"
	DefaultColWidth = 19
)

// HeaderStyle picks the header look of a sheet.
type HeaderStyle int

const (
	// HeaderPlain is bold on light grey.
	HeaderPlain HeaderStyle = iota
	// HeaderBanner is bold white on blue with borders.
	HeaderBanner
)

// Sheet is a flat table rendered onto one worksheet.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]any
	Header  HeaderStyle
	// NumberFormat applies #,##0.00 with a border to numeric cells.
	NumberFormat bool
	// ColWidth, when set, is applied to every column.
	ColWidth     float64
	FreezeHeader bool
	AutoFilter   bool
}

// MasterRow is one master record and its child rows.
type MasterRow struct {
	Values   []any
	Children [][]any
}

// Nested is a master plus indented child rows layout on one worksheet.
// Child rows leave the master columns empty and fill ChildColumns to
// their right.
type Nested struct {
	Name          string
	MasterColumns []string
	ChildColumns  []string
	Masters       []MasterRow
	// Highlight names master columns drawn on an orange fill.
	Highlight []string
	// ChildText is the number of leading child columns written as text;
	// the rest are numeric and skipped when zero or NULL.
	ChildText int
}

type styles struct {
	header, number, highlight, highlightNumber int
}

func newStyles(f *excelize.File, header HeaderStyle) (styles, error) {
	var s styles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	hs := &excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D3D3D3"}, Pattern: 1},
	}
	if header == HeaderBanner {
		hs = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
	}
	if s.header, err = f.NewStyle(hs); err != nil {
		return s, err
	}
	if s.number, err = f.NewStyle(&excelize.Style{
		NumFmt:    numberFmtID,
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	if s.highlight, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFE5CC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	}); err != nil {
		return s, err
	}
	if s.highlightNumber, err = f.NewStyle(&excelize.Style{
		NumFmt:    numberFmtID,
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFE5CC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	return s, nil
}

// WriteXLSX renders s as a single-sheet workbook into w.
func WriteXLSX(w io.Writer, s Sheet) error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("sheet %q has no columns", s.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, s.Name); err != nil {
		return err
	}
	st, err := newStyles(f, s.Header)
	if err != nil {
		return err
	}

	if s.ColWidth > 0 {
		if err := setColWidth(f, s.Name, len(s.Columns), s.ColWidth); err != nil {
			return err
		}
	}
	if err := writeHeader(f, s.Name, s.Columns, st.header); err != nil {
		return err
	}

	for r, row := range s.Rows {
		for c, v := range row {
			style := 0
			if s.NumberFormat && isNumber(v) {
				style = st.number
			}
			if err := setCell(f, s.Name, c, r+1, v, style); err != nil {
				return err
			}
		}
	}

	if err := finish(f, s.Name, len(s.Columns), len(s.Rows), s.FreezeHeader, s.AutoFilter); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteNestedXLSX renders the master/child layout into w.
func WriteNestedXLSX(w io.Writer, n Nested) error {
	if len(n.MasterColumns) == 0 {
		return fmt.Errorf("sheet %q has no columns", n.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, n.Name); err != nil {
		return err
	}
	st, err := newStyles(f, HeaderBanner)
	if err != nil {
		return err
	}

	all := append(append([]string{}, n.MasterColumns...), n.ChildColumns...)
	if err := setColWidth(f, n.Name, len(all), DefaultColWidth); err != nil {
		return err
	}
	if err := writeHeader(f, n.Name, all, st.header); err != nil {
		return err
	}

	highlighted := make(map[string]bool, len(n.Highlight))
	for _, h := range n.Highlight {
		highlighted[h] = true
	}

	offset := len(n.MasterColumns)
	row := 1
	for _, m := range n.Masters {
		for c, v := range m.Values {
			style := 0
			switch {
			case highlighted[n.MasterColumns[c]] && isNumber(v):
				style = st.highlightNumber
			case highlighted[n.MasterColumns[c]]:
				style = st.highlight
			case isNumber(v):
				style = st.number
			}
			if err := setCell(f, n.Name, c, row, v, style); err != nil {
				return err
			}
		}

		for _, child := range m.Children {
			row++
			for c, v := range child {
				if c < n.ChildText {
					if err := setCell(f, n.Name, offset+c, row, v, 0); err != nil {
						return err
					}
					continue
				}
				if isZero(v) {
					continue
				}
				if err := setCell(f, n.Name, offset+c, row, v, st.number); err != nil {
					return err
				}
			}
		}
		row++
	}

	if err := finish(f, n.Name, len(all), row-1, true, true); err != nil {
		return err
	}
	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string, cols []string, style int) error {
	for c, h := range cols {
		if err := setCell(f, sheet, c, 0, h, style); err != nil {
			return err
		}
	}
	return nil
}

func setColWidth(f *excelize.File, sheet string, n int, width float64) error {
	last, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, width)
}

// setCell writes v at zero-based (col, row).
func setCell(f *excelize.File, sheet string, col, row int, v any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
		return err
	}
	if style != 0 {
		return f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func finish(f *excelize.File, sheet string, cols, rows int, freeze, filter bool) error {
	if freeze {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}
	if filter {
		last, err := excelize.CoordinatesToCellName(cols, rows+1)
		if err != nil {
			return err
		}
		if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	}
	return v
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

func isZero(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case int:
		return t == 0
	case int32:
		return t == 0
	case int64:
		return t == 0
	case float32:
		return t == 0
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}
