package http

import (
	"errors"
	"net/http"

	"invoice-assistant/internal/auth"
	pkgErrors "invoice-assistant/pkg/errors"
)

var errInvalidLimit = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be an integer")

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrRateLimited):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
	case errors.Is(err, auth.ErrAccountLocked):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Account temporarily locked. Please try again later.")
	case errors.Is(err, auth.ErrMissingCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Username and password are required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrMissingFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, auth.ErrInvalidCurrentPassword):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid current password")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
