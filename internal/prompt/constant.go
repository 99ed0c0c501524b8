package prompt

const (
	DateFormatISO  = "2006-01-02"
	TimeFormat24h  = "15:04"
	DefaultZone    = "Asia/Kuala_Lumpur"
	sectionDivider = "\n\n"
)

const timeContextTemplate = `[Current time, %s]
- Now: %s %s (%s)
- Tomorrow: %s
Use these dates when the guest says "today", "tonight" or "tomorrow".`

const historyHeader = "[Recent conversation]"
