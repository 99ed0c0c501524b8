package report

const (
	LogPrefixGenerate = "internal.report.Generate"
	LogPrefixRun      = "internal.report.Run"
	LogPrefixSchedule = "internal.report.Scheduler"
)

const (
	// DefaultSchedule runs the report at 09:00 every day.
	DefaultSchedule = "0 9 * * *"
	DefaultTimezone = "Asia/Kuala_Lumpur"

	reportTitle   = "PELANGI DAILY OPERATIONS REPORT"
	ruleLine      = "======================================="
	emptySection  = "  (none)"
	fileNameStamp = "20060102_150405"
	filePerm      = 0o644
	dirPerm       = 0o755
)

const alertTemplate = `ASSISTANT ALERT
Daily report for %s could not be generated.
Error: %v
Time: %s`
