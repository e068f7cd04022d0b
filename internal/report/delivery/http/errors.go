package http

import (
	"errors"
	"net/http"

	"invoice-assistant/internal/report"
	pkgErrors "invoice-assistant/pkg/errors"
)

var errBadBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// mapError translates report errors into the messages the client shows.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrNoItemsSelected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No items selected")
	case errors.Is(err, report.ErrInvalidEntityType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid entity type")
	case errors.Is(err, report.ErrNoDataFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No data found for selected items")
	case errors.Is(err, report.ErrFileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "File not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
