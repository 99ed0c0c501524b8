package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgLog "pelangi-assistant/pkg/log"
)

// send writes resp with the trace id of the request, if any.
func send(c *gin.Context, status int, resp Resp) {
	if c.Request != nil {
		resp.TraceID = pkgLog.TraceID(c.Request.Context())
	}
	c.JSON(status, resp)
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	send(c, http.StatusOK, Resp{ErrorCode: CodeOK, Message: MessageSuccess, Data: data})
}

// Error sends an error response. An *HTTPError picks the status code,
// anything else is a 400.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	send(c, statusOf(err), Resp{ErrorCode: CodeError, Message: err.Error(), Data: data})
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	send(c, http.StatusInternalServerError, Resp{ErrorCode: http.StatusInternalServerError, Message: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	abort(c, http.StatusUnauthorized, "Unauthorized")
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	abort(c, http.StatusTooManyRequests, "Too many requests")
}

// ServiceUnavailable sends 503 with the reason and optional details.
func ServiceUnavailable(c *gin.Context, reason string, data any) {
	send(c, http.StatusServiceUnavailable, Resp{ErrorCode: http.StatusServiceUnavailable, Message: reason, Data: data})
}

func abort(c *gin.Context, status int, msg string) {
	send(c, status, Resp{ErrorCode: status, Message: msg})
	c.Abort()
}
