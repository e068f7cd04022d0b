package repository

import "errors"

var (
	ErrFailedToIntrospect = errors.New("failed to introspect schema")
	ErrFailedToExecute    = errors.New("failed to execute query")
)
