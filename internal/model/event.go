package model

import "time"

// AssistantEvent describes one handled guest message on the event stream.
type AssistantEvent struct {
	TraceID          string    `json:"trace_id"`
	ConversationID   string    `json:"conversation_id"`
	GuestName        string    `json:"guest_name,omitempty"`
	Message          string    `json:"message"`
	Category         string    `json:"category"`
	Source           Source    `json:"source"`
	Confidence       float64   `json:"confidence"`
	DetectedLanguage Language  `json:"detected_language,omitempty"`
	RoutedAction     Action    `json:"routed_action"`
	Degraded         bool      `json:"degraded,omitempty"`
	At               time.Time `json:"at"`
}

// Unmatched reports whether no deterministic stage recognised the message.
func (e AssistantEvent) Unmatched() bool {
	return e.Source == SourceLLM && e.Category == CategoryGeneral
}
