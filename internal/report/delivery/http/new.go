package http

import (
	"invoice-assistant/internal/report"
	"invoice-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates a new HTTP handler for report downloads.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
