package http

import (
	"errors"
	"net/http"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/memory"
	"pelangi-assistant/pkg/response"
)

// mapError translates use case errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyConversationID),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, memory.ErrInvalidDate),
		errors.Is(err, memory.ErrUnknownSection),
		errors.Is(err, memory.ErrEmptyEntry):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, memory.ErrConcurrentWriteConflict):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return nil
	}
}
