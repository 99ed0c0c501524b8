package response

// Resp is the JSON envelope of every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
}
