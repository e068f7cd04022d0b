package records

// --- Domain Model ---

// Record is one row of a records listing, keyed by column name. Listings
// mirror table columns, so rows stay dynamic instead of one struct per table.
type Record map[string]any

// Folder types an invoice can be filed under.
const (
	FolderTypeAdicionals = "Adicionals"
	FolderTypePressupost = "Pressupost contracte"
)

// --- UseCase Inputs ---

type ListProjectsInput struct {
	Name string
}

type ListInvoicesInput struct {
	Project         string
	FolderTypes     []string
	StartDate       string
	EndDate         string
	FileNameKeyword string
}

type ListElementsInput struct {
	Project            string
	FolderTypes        []string
	NameKeyword        string
	InvoiceNameKeyword string
	InvoiceID          string
	MinPrice           string
	MaxPrice           string
	Quantity           string
}
