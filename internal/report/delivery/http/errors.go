package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/memory"
	"pelangi-assistant/internal/report"
	"pelangi-assistant/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, memory.ErrInvalidDate):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, report.ErrDeliveryFailed):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return nil
	}
}

func (h *handler) error(c *gin.Context, err error, data map[string]interface{}) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, data)
		return
	}
	response.InternalError(c, err)
}
