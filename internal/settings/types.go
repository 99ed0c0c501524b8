package settings

import (
	"time"

	"pelangi-assistant/internal/knowledge"
	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
)

// ClassifierSettings tunes the classification cascade.
type ClassifierSettings struct {
	FuzzyThreshold    float64 `yaml:"fuzzy_threshold" json:"fuzzy_threshold"`
	SemanticThreshold float64 `yaml:"semantic_threshold" json:"semantic_threshold"`
	LLMConfidence     float64 `yaml:"llm_confidence" json:"llm_confidence"`
	HistoryTurns      int     `yaml:"history_turns" json:"history_turns"`
}

// IntentsDocument is the shape of intents.yaml.
type IntentsDocument struct {
	Classifier ClassifierSettings       `yaml:"classifier"`
	Intents    []model.IntentDefinition `yaml:"intents"`
}

// RoutingDocument is the shape of routing.yaml.
type RoutingDocument struct {
	Routes        []model.RoutingEntry       `yaml:"routes"`
	StaticReplies map[string]model.Localized `yaml:"static_replies,omitempty"`
	Apologies     model.Localized            `yaml:"apologies,omitempty"`
}

// WorkflowsDocument is the shape of workflows.yaml.
type WorkflowsDocument struct {
	Workflows []model.WorkflowDefinition `yaml:"workflows"`
}

// KnowledgeEntry declares one file under knowledge/.
type KnowledgeEntry struct {
	Name     string                  `yaml:"name"`
	Category model.KnowledgeCategory `yaml:"category"`
	Priority model.LoadPriority      `yaml:"priority"`
}

// KnowledgeDocument is the shape of knowledge.yaml.
type KnowledgeDocument struct {
	Persona      string           `yaml:"persona"`
	DefaultTopic string           `yaml:"default_topic"`
	Files        []KnowledgeEntry `yaml:"files"`
	Topics       []model.Topic    `yaml:"topics"`
}

// Source is the raw operator-authored configuration as read from disk.
type Source struct {
	Intents   IntentsDocument
	Routing   RoutingDocument
	Workflows WorkflowsDocument
	Knowledge KnowledgeDocument
	// Contents maps knowledge file names to their markdown.
	Contents map[string]string
}

// Snapshot is an immutable, validated view of the settings. A reload or an
// operator write produces a new Snapshot; existing ones are never mutated.
type Snapshot struct {
	Source        Source
	Intents       []model.IntentDefinition
	Index         *matcher.Index
	Routes        map[string]model.RoutingEntry
	Workflows     map[string]model.WorkflowDefinition
	Knowledge     *knowledge.Catalog
	Persona       string
	StaticReplies map[string]model.Localized
	Apologies     model.Localized
	Classifier    ClassifierSettings
	LoadedAt      time.Time
}

// Route returns the routing entry for category, if configured.
func (s *Snapshot) Route(category string) (model.RoutingEntry, bool) {
	e, ok := s.Routes[category]
	return e, ok
}

// Workflow returns a workflow definition by id.
func (s *Snapshot) Workflow(id string) (model.WorkflowDefinition, bool) {
	w, ok := s.Workflows[id]
	return w, ok
}

// Intent returns an intent definition by category.
func (s *Snapshot) Intent(category string) (model.IntentDefinition, bool) {
	for _, d := range s.Intents {
		if d.Category == category {
			return d, true
		}
	}
	return model.IntentDefinition{}, false
}

// Thresholds returns the matcher thresholds.
func (s *Snapshot) Thresholds() matcher.Thresholds {
	return matcher.Thresholds{Fuzzy: s.Classifier.FuzzyThreshold, Semantic: s.Classifier.SemanticThreshold}
}
