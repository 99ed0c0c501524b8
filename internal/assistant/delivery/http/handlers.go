package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

// HandleMessage godoc
// @Summary     Handle a guest message
// @Description Classifies the message, runs the routed action and returns the reply with its reasoning.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body handleMessageReq true "Guest message"
// @Success     200  {object} handleMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/messages [POST]
func (h *handler) HandleMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHandleMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.error(c, err)
		return
	}

	response.OK(c, h.newHandleMessageResp(output))
}

// Classify godoc
// @Summary     Explain a classification
// @Description Classifies a message without replying and returns every stage's scores.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Message"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Explain(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Explain: %v", err)
		h.error(c, err)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// AppendNote godoc
// @Summary     Append a memory note
// @Description Adds an entry to a day section. The date defaults to today.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       body body appendNoteReq true "Note"
// @Success     200  {object} response.Resp "OK"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict"
// @Router      /api/v1/memory/notes [POST]
func (h *handler) AppendNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppendNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.AppendNote(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.AppendNote: %v", err)
		h.error(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) error(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
