package report

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid report schedule")
	ErrDeliveryFailed  = errors.New("report delivery failed on every channel")
)
