package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	FieldTraceID = "trace_id"
)
