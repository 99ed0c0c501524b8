package response

// Error codes carried in Resp.ErrorCode. Status-specific responses use the
// HTTP status as their code.
const (
	CodeOK    = 0
	CodeError = 1

	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)
