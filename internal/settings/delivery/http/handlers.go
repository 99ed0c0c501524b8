package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

// Reload godoc
// @Summary     Reload settings from disk
// @Description Re-reads the settings directory. On error the previous settings stay active.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     422 {object} response.Resp "Invalid configuration"
// @Router      /api/v1/settings/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.Reload(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Reload: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// PutRoute godoc
// @Summary     Create or replace a route
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       intent path string      true "Intent category"
// @Param       body   body putRouteReq true "Route"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Invalid configuration"
// @Router      /api/v1/settings/routing/{intent} [PUT]
func (h *handler) PutRoute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPutRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap, err := h.uc.PutRoutingEntry(ctx, req.toEntry())
	if err != nil {
		h.l.Warnf(ctx, "uc.PutRoutingEntry: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// PutWorkflow godoc
// @Summary     Create or replace a workflow
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Workflow id"
// @Param       body body putWorkflowReq true "Workflow"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Invalid configuration"
// @Router      /api/v1/settings/workflows/{id} [PUT]
func (h *handler) PutWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPutWorkflowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap, err := h.uc.PutWorkflow(ctx, req.toDefinition())
	if err != nil {
		h.l.Warnf(ctx, "uc.PutWorkflow: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// DeleteWorkflow godoc
// @Summary     Delete a workflow
// @Description Rejected while a route still points at the workflow.
// @Tags        Settings
// @Produce     json
// @Param       id path string true "Workflow id"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Still referenced"
// @Router      /api/v1/settings/workflows/{id} [DELETE]
func (h *handler) DeleteWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.DeleteWorkflow(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.DeleteWorkflow: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// ListKnowledge godoc
// @Summary     List knowledge files and topics
// @Tags        Knowledge
// @Produce     json
// @Success     200 {object} knowledgeResp
// @Router      /api/v1/knowledge [GET]
func (h *handler) ListKnowledge(c *gin.Context) {
	response.OK(c, newKnowledgeResp(h.uc.Current()))
}

// PutKnowledge godoc
// @Summary     Replace a knowledge file
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       name path string          true "File name"
// @Param       body body putKnowledgeReq true "Content"
// @Success     200 {object} knowledgeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/knowledge/{name} [PUT]
func (h *handler) PutKnowledge(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPutKnowledgeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap, err := h.uc.WriteKnowledgeFile(ctx, req.Name, req.Content)
	if err != nil {
		h.l.Warnf(ctx, "uc.WriteKnowledgeFile: %v", err)
		h.error(c, err)
		return
	}
	response.OK(c, newKnowledgeResp(snap))
}
