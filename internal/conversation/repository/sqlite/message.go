package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/model"
)

func (r *implRepository) Append(ctx context.Context, msgs ...conversation.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	for _, m := range msgs {
		if m.ConversationID == "" {
			return fmt.Errorf("%s: %w", LogPrefixAppend, conversation.ErrEmptyConversationID)
		}
		if m.Role != model.RoleUser && m.Role != model.RoleAssistant {
			return fmt.Errorf("%s: %q: %w", LogPrefixAppend, m.Role, conversation.ErrInvalidRole)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", LogPrefixAppend, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO messages (id, conversation_id, push_name, role, content, created_at,
		category, source, confidence, action, language, degraded)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", LogPrefixAppend, err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		if m.ID == "" {
			m.ID = r.newID()
		}
		if m.Timestamp.IsZero() {
			m.Timestamp = r.now()
		}
		degraded := 0
		if m.Flags.Degraded {
			degraded = 1
		}
		if _, err := stmt.ExecContext(ctx,
			m.ID, m.ConversationID, m.PushName, string(m.Role), m.Content, m.Timestamp.UnixNano(),
			m.Flags.Category, string(m.Flags.Source), m.Flags.Confidence, string(m.Flags.Action),
			string(m.Flags.Language), degraded,
		); err != nil {
			return fmt.Errorf("%s: insert: %w", LogPrefixAppend, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", LogPrefixAppend, err)
	}
	return nil
}

func (r *implRepository) History(ctx context.Context, conversationID string, limit int) ([]model.Turn, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%s: %w", LogPrefixHistory, conversation.ErrEmptyConversationID)
	}
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT role, content, created_at FROM messages
	WHERE conversation_id = ?
	ORDER BY seq DESC
	LIMIT ?`, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", LogPrefixHistory, err)
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var (
			role    string
			content string
			created int64
		)
		if err := rows.Scan(&role, &content, &created); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", LogPrefixHistory, err)
		}
		turns = append(turns, model.Turn{Role: model.Role(role), Content: content, Timestamp: time.Unix(0, created)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", LogPrefixHistory, err)
	}
	slices.Reverse(turns)
	return turns, nil
}
