package model

// Action is what the assistant does with a classified message.
type Action string

const (
	ActionStaticReply Action = "static_reply"
	ActionLLMReply    Action = "llm_reply"
	ActionWorkflow    Action = "workflow"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionStaticReply, ActionLLMReply, ActionWorkflow:
		return true
	}
	return false
}

// RoutingEntry maps an intent category to an action.
type RoutingEntry struct {
	Intent     string `yaml:"intent" json:"intent"`
	Action     Action `yaml:"action" json:"action"`
	WorkflowID string `yaml:"workflow_id,omitempty" json:"workflow_id,omitempty"`
}
