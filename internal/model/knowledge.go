package model

// KnowledgeCategory groups knowledge files for operators.
type KnowledgeCategory string

const (
	KnowledgeCore      KnowledgeCategory = "core"
	KnowledgeSystem    KnowledgeCategory = "system"
	KnowledgeKnowledge KnowledgeCategory = "knowledge"
)

// LoadPriority controls when a knowledge file reaches the LLM context.
type LoadPriority string

const (
	PriorityAlways   LoadPriority = "always"
	PriorityOnDemand LoadPriority = "on_demand"
	PriorityInternal LoadPriority = "internal"
)

// Valid reports whether p is a known priority.
func (p LoadPriority) Valid() bool {
	switch p {
	case PriorityAlways, PriorityOnDemand, PriorityInternal:
		return true
	}
	return false
}

// KnowledgeFile is one named knowledge document.
type KnowledgeFile struct {
	Name     string            `json:"name"`
	Content  string            `json:"content"`
	Category KnowledgeCategory `json:"category"`
	Priority LoadPriority      `json:"priority"`
}

// Topic binds trigger keywords to an on_demand knowledge file.
type Topic struct {
	Name     string   `yaml:"name" json:"name"`
	File     string   `yaml:"file" json:"file"`
	Triggers []string `yaml:"triggers" json:"triggers"`
}
