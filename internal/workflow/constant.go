package workflow

import "time"

const (
	LogPrefixAdvance = "internal.workflow.Advance"
	LogPrefixCancel  = "internal.workflow.Cancel"
)

const (
	// DefaultMaxSessions bounds how many conversations may hold a session.
	DefaultMaxSessions = 10000
	// noExpiry is passed to the LRU when sessions should never time out.
	noExpiry time.Duration = 0
)
