package workflow

import (
	"time"

	"pelangi-assistant/internal/model"
)

// Session is the progress of one conversation through a workflow.
type Session struct {
	ConversationID string
	WorkflowID     string
	Intent         string
	CurrentStep    int
	Language       model.Language
	Trigger        string
	Responses      map[string]string
	StartedAt      time.Time
}

func (s Session) clone() Session {
	out := s
	out.Responses = make(map[string]string, len(s.Responses))
	for k, v := range s.Responses {
		out.Responses[k] = v
	}
	return out
}

// SummaryItem pairs a step prompt with the guest's verbatim answer.
type SummaryItem struct {
	StepID   string `json:"step_id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// Summary is emitted once when a workflow completes.
type Summary struct {
	WorkflowID   string        `json:"workflow_id"`
	WorkflowName string        `json:"workflow_name"`
	Trigger      string        `json:"trigger,omitempty"`
	Items        []SummaryItem `json:"items"`
	Text         string        `json:"text"`
}

// AdvanceInput is one guest message fed into a workflow. Intent is the
// category that routed the conversation here and is kept on a new session.
type AdvanceInput struct {
	ConversationID string
	Definition     model.WorkflowDefinition
	Message        string
	Language       model.Language
	Intent         string
}

// Outcome is the result of feeding one guest message into a workflow.
type Outcome struct {
	Reply     string
	StepIndex int
	Started   bool
	Completed bool
	Summary   *Summary
}

// Config tunes session storage. A zero SessionTTL keeps sessions until they
// complete, are cancelled or are evicted by MaxSessions.
type Config struct {
	MaxSessions int
	SessionTTL  time.Duration
}
