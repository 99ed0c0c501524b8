package conversation

import (
	"time"

	"pelangi-assistant/internal/model"
)

// Flags records how an assistant reply was produced.
type Flags struct {
	Category   string         `json:"category,omitempty"`
	Source     model.Source   `json:"source,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	Action     model.Action   `json:"action,omitempty"`
	Language   model.Language `json:"language,omitempty"`
	Degraded   bool           `json:"degraded,omitempty"`
}

// Message is one stored turn of a conversation.
type Message struct {
	ID             string
	ConversationID string
	PushName       string
	Role           model.Role
	Content        string
	Timestamp      time.Time
	Flags          Flags
}

// Turn converts m into classifier and prompt history.
func (m Message) Turn() model.Turn {
	return model.Turn{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp}
}

// Stats summarizes the conversations of a period.
type Stats struct {
	GuestMessages int            `json:"guest_messages"`
	Replies       int            `json:"replies"`
	Guests        int            `json:"guests"`
	Degraded      int            `json:"degraded"`
	BySource      map[string]int `json:"by_source"`
	ByCategory    map[string]int `json:"by_category"`
}
