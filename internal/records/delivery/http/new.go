package http

import (
	"invoice-assistant/internal/records"
	"invoice-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc records.UseCase
}

// New creates a new HTTP handler for the records listings.
func New(l log.Logger, uc records.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
