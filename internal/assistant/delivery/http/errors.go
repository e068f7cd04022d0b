package http

import (
	"errors"
	"fmt"
	"net/http"

	"invoice-assistant/internal/assistant"
)

var errInvalidBody = errors.New("invalid request body")

const replyProcessingError = "An error occurred during processing. Please try again."

// mapError picks the status and reply text for a failed chat turn. Chat
// failures keep the {reply, format} shape so the client can render them.
func (h *handler) mapError(err error) (int, string) {
	var unknown *assistant.UnknownActionError
	var reportErr *assistant.ReportError

	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, assistant.ErrEmptyMessage):
		return http.StatusBadRequest, "Error: No message provided."
	case errors.Is(err, assistant.ErrMissingSQL):
		return http.StatusBadRequest, "Error: No SQL query provided."
	case errors.Is(err, assistant.ErrUnsafeQuery):
		return http.StatusBadRequest, "Error: Unsafe SQL query detected."
	case errors.Is(err, assistant.ErrMissingMessage):
		return http.StatusBadRequest, "Error: No message provided by assistant."
	case errors.As(err, &unknown):
		return http.StatusBadRequest, fmt.Sprintf("Error: Unrecognized action '%s'.", unknown.Action)
	case errors.As(err, &reportErr):
		return http.StatusInternalServerError, fmt.Sprintf("Error generating report: %v", reportErr.Err)
	case errors.Is(err, assistant.ErrEmptyNarration):
		return http.StatusInternalServerError, "Error: No content in final response."
	default:
		return http.StatusInternalServerError, replyProcessingError
	}
}
