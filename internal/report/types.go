package report

import (
	"context"
	"time"

	"pelangi-assistant/internal/conversation"
)

// MemoryReader reads day documents.
type MemoryReader interface {
	ReadDay(ctx context.Context, date string) (string, error)
}

// StatsSource aggregates conversation activity.
type StatsSource interface {
	Stats(ctx context.Context, from, to time.Time) (conversation.Stats, error)
}

// Sender delivers a rendered report to one channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Report is a generated daily digest.
type Report struct {
	Date        string             `json:"date"`
	Text        string             `json:"text"`
	Stats       conversation.Stats `json:"stats"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Result reports where a run delivered its report.
type Result struct {
	Report    Report            `json:"report"`
	SavedTo   string            `json:"saved_to,omitempty"`
	Delivered []string          `json:"delivered"`
	Failed    map[string]string `json:"failed,omitempty"`
}
