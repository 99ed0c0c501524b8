package http

import (
	"time"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
)

// --- Request DTOs ---

type turnReq struct {
	Role      string    `json:"role"    binding:"required,oneof=user assistant"`
	Content   string    `json:"content" binding:"required"`
	Timestamp time.Time `json:"timestamp"`
}

func toTurns(in []turnReq) []model.Turn {
	if in == nil {
		return nil
	}
	out := make([]model.Turn, 0, len(in))
	for _, t := range in {
		out = append(out, model.Turn{Role: model.Role(t.Role), Content: t.Content, Timestamp: t.Timestamp})
	}
	return out
}

type handleMessageReq struct {
	ConversationID string    `json:"conversation_id" binding:"required,max=128"`
	GuestName      string    `json:"guest_name"      binding:"max=128"`
	Message        string    `json:"message"         binding:"required,max=4000"`
	History        []turnReq `json:"history"         binding:"omitempty,dive"`
}

func (r handleMessageReq) validate() error { return nil }

func (r handleMessageReq) toInput() assistant.HandleMessageInput {
	return assistant.HandleMessageInput{
		ConversationID:   r.ConversationID,
		GuestDisplayName: r.GuestName,
		MessageText:      r.Message,
		History:          toTurns(r.History),
	}
}

// ---

type classifyReq struct {
	Message string    `json:"message" binding:"required,max=4000"`
	History []turnReq `json:"history" binding:"omitempty,dive"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() assistant.ExplainInput {
	return assistant.ExplainInput{MessageText: r.Message, History: toTurns(r.History)}
}

// ---

type appendNoteReq struct {
	Date    string `json:"date"`
	Section string `json:"section" binding:"required"`
	Text    string `json:"text"    binding:"required,max=2000"`
}

func (r appendNoteReq) validate() error { return nil }

func (r appendNoteReq) toInput() assistant.AppendNoteInput {
	return assistant.AppendNoteInput{Date: r.Date, Section: r.Section, Text: r.Text}
}

// --- Response DTOs ---

type handleMessageResp struct {
	Reply              string   `json:"reply"`
	Category           string   `json:"category"`
	Source             string   `json:"source,omitempty"`
	Confidence         float64  `json:"confidence"`
	MatchedKeyword     string   `json:"matched_keyword,omitempty"`
	MatchedExample     string   `json:"matched_example,omitempty"`
	DetectedLanguage   string   `json:"detected_language,omitempty"`
	KnowledgeFilesUsed []string `json:"knowledge_files_used"`
	RoutedAction       string   `json:"routed_action"`
	WorkflowID         string   `json:"workflow_id,omitempty"`
	WorkflowStep       int      `json:"workflow_step,omitempty"`
	WorkflowCompleted  bool     `json:"workflow_completed,omitempty"`
	Degraded           bool     `json:"degraded"`
	ModelID            string   `json:"model_id,omitempty"`
	TraceID            string   `json:"trace_id"`
}

func (h *handler) newHandleMessageResp(o assistant.HandleMessageOutput) handleMessageResp {
	files := o.KnowledgeFilesUsed
	if files == nil {
		files = []string{}
	}
	return handleMessageResp{
		Reply:              o.ReplyText,
		Category:           o.Category,
		Source:             string(o.Source),
		Confidence:         o.Confidence,
		MatchedKeyword:     o.MatchedKeyword,
		MatchedExample:     o.MatchedExample,
		DetectedLanguage:   string(o.DetectedLanguage),
		KnowledgeFilesUsed: files,
		RoutedAction:       string(o.RoutedAction),
		WorkflowID:         o.WorkflowID,
		WorkflowStep:       o.WorkflowStep,
		WorkflowCompleted:  o.WorkflowCompleted,
		Degraded:           o.Degraded,
		ModelID:            o.ModelID,
		TraceID:            o.TraceID,
	}
}

// ---

type classifyResp struct {
	Result     model.ClassificationResult `json:"result"`
	Scores     matcher.Scores             `json:"scores"`
	Action     string                     `json:"action"`
	WorkflowID string                     `json:"workflow_id,omitempty"`
}

func (h *handler) newClassifyResp(o assistant.ExplainOutput) classifyResp {
	return classifyResp{
		Result:     o.Explanation.Result,
		Scores:     o.Explanation.Scores,
		Action:     string(o.Route.Action),
		WorkflowID: o.Route.WorkflowID,
	}
}
