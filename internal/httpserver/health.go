package httpserver

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

const (
	ServiceName    = "pelangi-assistant"
	ServiceVersion = "1.0.0"

	readinessTimeout = 3 * time.Second
)

type statusResp struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

func newStatusResp(status string) statusResp {
	return statusResp{Status: status, Service: ServiceName, Version: ServiceVersion}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} statusResp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newStatusResp("healthy"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} statusResp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newStatusResp("alive"))
}

// readyCheck runs every readiness check and reports each result. Any failure
// answers 503 so the instance is taken out of rotation.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} statusResp
// @Failure 503 {object} response.Resp "Not ready"
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	resp := newStatusResp("ready")
	resp.Checks = make(map[string]string, len(srv.checks))
	var failed []string
	for _, chk := range srv.checks {
		if err := chk.Check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", chk.Name, err)
			resp.Checks[chk.Name] = err.Error()
			failed = append(failed, chk.Name)
			continue
		}
		resp.Checks[chk.Name] = "ok"
	}

	if len(failed) > 0 {
		resp.Status = "not ready"
		response.ServiceUnavailable(c, "not ready: "+strings.Join(failed, ", "), resp)
		return
	}
	response.OK(c, resp)
}
