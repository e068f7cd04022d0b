package records

import "errors"

var (
	ErrInvalidDate    = errors.New("invalid date filter")
	ErrInvalidNumber  = errors.New("invalid numeric filter")
	ErrInvalidElement = errors.New("invalid element id")
)
