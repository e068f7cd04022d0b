package report

import "errors"

var (
	ErrNoItemsSelected   = errors.New("no items selected")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrNoDataFound       = errors.New("no data found for selected items")
	ErrFileNotFound      = errors.New("file not found")
	ErrEmptyTable        = errors.New("table has no columns")
)
