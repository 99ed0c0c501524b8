package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

// Run godoc
// @Summary     Run the daily report now
// @Description Generates the report for a date (yesterday by default), saves it and sends it to every channel.
// @Tags        Reports
// @Accept      json
// @Produce     json
// @Param       body body runReq false "Report date"
// @Success     200 {object} runResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Every channel failed"
// @Router      /api/v1/reports/run [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.runner.Run(ctx, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "runner.Run: %v", err)
		h.error(c, err, map[string]interface{}{"failed": result.Failed, "saved_to": result.SavedTo})
		return
	}
	response.OK(c, newRunResp(result))
}
