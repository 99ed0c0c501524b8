package model

// WorkflowStep is one prompt in a workflow.
type WorkflowStep struct {
	ID      string    `yaml:"id" json:"id"`
	Message Localized `yaml:"message" json:"message"`
	// Validation is a hint shown to operators, it is not enforced on guest replies.
	Validation string `yaml:"validation,omitempty" json:"validation,omitempty"`
}

// Text returns the step message in lang.
func (s WorkflowStep) Text(lang Language) string {
	return s.Message.Pick(lang)
}

// WorkflowDefinition is an ordered sequence of steps collecting structured data.
type WorkflowDefinition struct {
	ID    string         `yaml:"id" json:"id"`
	Name  string         `yaml:"name" json:"name"`
	Steps []WorkflowStep `yaml:"steps" json:"steps"`
	// MemorySection receives the summary when the workflow completes.
	MemorySection string `yaml:"memory_section,omitempty" json:"memory_section,omitempty"`
}
