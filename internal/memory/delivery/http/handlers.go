package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

// ListDays godoc
// @Summary     List memory days
// @Tags        Memory
// @Produce     json
// @Success     200 {object} listDaysResp
// @Router      /api/v1/memory/days [GET]
func (h *handler) ListDays(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.uc.ListDays(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListDays: %v", err)
		h.error(c, err)
		return
	}
	if days == nil {
		days = []string{}
	}
	response.OK(c, listDaysResp{Days: days})
}

// GetDay godoc
// @Summary     Read a memory day
// @Tags        Memory
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} documentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memory/days/{date} [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")

	content, err := h.uc.ReadDay(ctx, date)
	if err != nil {
		h.error(c, err)
		return
	}
	response.OK(c, documentResp{Date: date, Content: content})
}

// PutDay godoc
// @Summary     Overwrite a memory day
// @Description Replaces the whole day document. The previous version is backed up first.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Param       body body overwriteReq true "New content"
// @Success     200 {object} overwriteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/memory/days/{date} [PUT]
func (h *handler) PutDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOverwriteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.OverwriteDay(ctx, req.Date, req.Content)
	if err != nil {
		h.l.Errorf(ctx, "uc.OverwriteDay: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newOverwriteResp(output))
}

// GetDurable godoc
// @Summary     Read durable memory
// @Tags        Memory
// @Produce     json
// @Success     200 {object} documentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/memory/durable [GET]
func (h *handler) GetDurable(c *gin.Context) {
	content, err := h.uc.ReadDurable(c.Request.Context())
	if err != nil {
		h.error(c, err)
		return
	}
	response.OK(c, documentResp{Content: content})
}

// PutDurable godoc
// @Summary     Overwrite durable memory
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       body body overwriteReq true "New content"
// @Success     200 {object} overwriteResp
// @Router      /api/v1/memory/durable [PUT]
func (h *handler) PutDurable(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOverwriteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.OverwriteDurable(ctx, req.Content)
	if err != nil {
		h.l.Errorf(ctx, "uc.OverwriteDurable: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newOverwriteResp(output))
}
