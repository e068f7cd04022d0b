package usecase

const (
	sheetChat     = "Report"
	sheetData     = "Data"
	sheetElements = "Elements"
)

// Columns appended to the element layout for each subelement row.
var subelementColumns = []string{
	"Sub Title", "Sub Unit", "N", "L", "H", "W", "Sub Unit Price", "Sub Total Price",
}

// Element columns drawn on the highlight fill.
var elementHighlights = []string{"name", "price_per_unit", "invoice_name"}

// The first two subelement columns (title, unit) are text.
const subelementTextColumns = 2
