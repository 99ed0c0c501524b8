package conversation

import (
	"context"
	"time"

	"pelangi-assistant/internal/model"
)

// Repository is the append-only conversation log.
type Repository interface {
	// Append stores msgs atomically. Empty IDs and zero timestamps are filled in.
	Append(ctx context.Context, msgs ...Message) error
	// History returns up to limit of the latest turns, oldest first.
	History(ctx context.Context, conversationID string, limit int) ([]model.Turn, error)
	// Stats aggregates messages with from <= timestamp < to.
	Stats(ctx context.Context, from, to time.Time) (Stats, error)
	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
