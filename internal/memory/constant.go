package memory

const (
	// DateLayout is the key format of day documents.
	DateLayout = "2006-01-02"
	// TimeLayout is the entry timestamp format.
	TimeLayout = "15:04"
	// DurableKey names the durable document in backups and locks.
	DurableKey = "durable"
	// AnyVersion makes a write skip the version check.
	AnyVersion = "*"
)
