package http

import (
	"errors"
	"net/http"

	"invoice-assistant/internal/records"
	pkgErrors "invoice-assistant/pkg/errors"
)

var errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")

// mapError translates records errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, records.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date filter, expected YYYY-MM-DD")
	case errors.Is(err, records.ErrInvalidNumber):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid numeric filter")
	case errors.Is(err, records.ErrInvalidElement):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid element id")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
