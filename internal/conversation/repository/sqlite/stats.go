package sqlite

import (
	"context"
	"fmt"
	"time"

	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/model"
)

func (r *implRepository) Stats(ctx context.Context, from, to time.Time) (conversation.Stats, error) {
	st := conversation.Stats{
		BySource:   make(map[string]int),
		ByCategory: make(map[string]int),
	}
	lo, hi := from.UnixNano(), to.UnixNano()

	err := r.db.QueryRowContext(ctx, `
	SELECT
		COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0),
		COUNT(DISTINCT CASE WHEN role = ? THEN conversation_id END),
		COALESCE(SUM(degraded), 0)
	FROM messages
	WHERE created_at >= ? AND created_at < ?`,
		string(model.RoleUser), string(model.RoleAssistant), string(model.RoleUser), lo, hi,
	).Scan(&st.GuestMessages, &st.Replies, &st.Guests, &st.Degraded)
	if err != nil {
		return conversation.Stats{}, fmt.Errorf("%s: totals: %w", LogPrefixStats, err)
	}

	if err := r.countBy(ctx, "source", lo, hi, st.BySource); err != nil {
		return conversation.Stats{}, err
	}
	if err := r.countBy(ctx, "category", lo, hi, st.ByCategory); err != nil {
		return conversation.Stats{}, err
	}
	return st, nil
}

// countBy tallies assistant replies grouped by column, which must be a
// trusted column name.
func (r *implRepository) countBy(ctx context.Context, column string, lo, hi int64, into map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+column+`, COUNT(*) FROM messages
	WHERE role = ? AND created_at >= ? AND created_at < ? AND `+column+` != ''
	GROUP BY `+column,
		string(model.RoleAssistant), lo, hi)
	if err != nil {
		return fmt.Errorf("%s: by %s: %w", LogPrefixStats, column, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("%s: scan %s: %w", LogPrefixStats, column, err)
		}
		into[key] = n
	}
	return rows.Err()
}
