package settings

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"pelangi-assistant/internal/knowledge"
	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/memory"
	"pelangi-assistant/internal/model"
)

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Build validates src and compiles it into a Snapshot. Every problem found is
// reported in a single *ConfigurationError.
func Build(src Source) (*Snapshot, error) {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	cls := withClassifierDefaults(src.Intents.Classifier)
	if cls.FuzzyThreshold <= 0 || cls.FuzzyThreshold > 1 {
		report("classifier: fuzzy_threshold %v must be in (0,1]", cls.FuzzyThreshold)
	}
	if cls.SemanticThreshold <= 0 || cls.SemanticThreshold > 1 {
		report("classifier: semantic_threshold %v must be in (0,1]", cls.SemanticThreshold)
	}
	if cls.LLMConfidence < 0 || cls.LLMConfidence > 1 {
		report("classifier: llm_confidence %v must be in [0,1]", cls.LLMConfidence)
	}
	if cls.HistoryTurns < 0 {
		report("classifier: history_turns must not be negative")
	}

	categories := make(map[string]bool, len(src.Intents.Intents))
	for i, def := range src.Intents.Intents {
		if !slugRe.MatchString(def.Category) {
			report("intent %d: invalid category %q", i, def.Category)
			continue
		}
		if categories[def.Category] {
			report("intent %q: duplicate category", def.Category)
		}
		categories[def.Category] = true
		for _, p := range def.Patterns {
			if _, err := regexp.Compile("(?i)" + p); err != nil {
				report("intent %q: bad pattern %q: %v", def.Category, p, err)
			}
		}
		if def.MemorySection != "" {
			if _, err := memory.CanonicalSection(def.MemorySection); err != nil {
				report("intent %q: unknown memory_section %q", def.Category, def.MemorySection)
			}
		}
	}

	workflows := make(map[string]model.WorkflowDefinition, len(src.Workflows.Workflows))
	for i, w := range src.Workflows.Workflows {
		if !slugRe.MatchString(w.ID) {
			report("workflow %d: invalid id %q", i, w.ID)
			continue
		}
		if _, dup := workflows[w.ID]; dup {
			report("workflow %q: duplicate id", w.ID)
		}
		problems = append(problems, validateWorkflow(w)...)
		workflows[w.ID] = w
	}

	routes := make(map[string]model.RoutingEntry, len(src.Routing.Routes))
	for i, r := range src.Routing.Routes {
		if r.Intent == "" {
			report("route %d: intent is required", i)
			continue
		}
		if _, dup := routes[r.Intent]; dup {
			report("route %q: duplicate intent", r.Intent)
		}
		problems = append(problems, validateRoute(r, workflows)...)
		routes[r.Intent] = r
	}

	files := make([]model.KnowledgeFile, 0, len(src.Knowledge.Files))
	for _, f := range src.Knowledge.Files {
		if err := validateFileName(f.Name); err != nil {
			report("knowledge file %q: %v", f.Name, err)
			continue
		}
		content, ok := src.Contents[f.Name]
		if !ok {
			report("knowledge file %q: %v", f.Name, ErrKnowledgeFileNotFound)
		}
		cat := f.Category
		if cat == "" {
			cat = model.KnowledgeKnowledge
		}
		files = append(files, model.KnowledgeFile{Name: f.Name, Content: content, Category: cat, Priority: f.Priority})
	}
	defaultTopic := src.Knowledge.DefaultTopic
	if defaultTopic == "" && len(src.Knowledge.Topics) > 0 {
		defaultTopic = DefaultTopic
	}
	catalog, catalogProblems := knowledge.NewCatalog(files, src.Knowledge.Topics, defaultTopic)
	problems = append(problems, catalogProblems...)

	if len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}

	index, err := matcher.NewIndex(src.Intents.Intents)
	if err != nil {
		return nil, configurationError(err.Error())
	}

	return &Snapshot{
		Source:        src,
		Intents:       src.Intents.Intents,
		Index:         index,
		Routes:        routes,
		Workflows:     workflows,
		Knowledge:     catalog,
		Persona:       strings.TrimSpace(src.Knowledge.Persona),
		StaticReplies: src.Routing.StaticReplies,
		Apologies:     src.Routing.Apologies,
		Classifier:    cls,
		LoadedAt:      time.Now(),
	}, nil
}

func withClassifierDefaults(c ClassifierSettings) ClassifierSettings {
	if c.FuzzyThreshold == 0 {
		c.FuzzyThreshold = matcher.DefaultFuzzyThreshold
	}
	if c.SemanticThreshold == 0 {
		c.SemanticThreshold = matcher.DefaultSemanticThreshold
	}
	if c.LLMConfidence == 0 {
		c.LLMConfidence = DefaultLLMConfidence
	}
	if c.HistoryTurns == 0 {
		c.HistoryTurns = DefaultHistoryTurns
	}
	return c
}

func validateWorkflow(w model.WorkflowDefinition) []string {
	var problems []string
	if len(w.Steps) == 0 {
		problems = append(problems, fmt.Sprintf("workflow %q: at least one step is required", w.ID))
	}
	steps := make(map[string]bool, len(w.Steps))
	for i, s := range w.Steps {
		if s.ID == "" {
			problems = append(problems, fmt.Sprintf("workflow %q: step %d has no id", w.ID, i))
		} else if steps[s.ID] {
			problems = append(problems, fmt.Sprintf("workflow %q: duplicate step %q", w.ID, s.ID))
		}
		steps[s.ID] = true
		if s.Message.Pick(model.LanguageEnglish) == "" {
			problems = append(problems, fmt.Sprintf("workflow %q: step %q has no message", w.ID, s.ID))
		}
	}
	if w.MemorySection != "" {
		if _, err := memory.CanonicalSection(w.MemorySection); err != nil {
			problems = append(problems, fmt.Sprintf("workflow %q: unknown memory_section %q", w.ID, w.MemorySection))
		}
	}
	return problems
}

func validateRoute(r model.RoutingEntry, workflows map[string]model.WorkflowDefinition) []string {
	if !r.Action.Valid() {
		return []string{fmt.Sprintf("route %q: unknown action %q", r.Intent, r.Action)}
	}
	if r.Action != model.ActionWorkflow {
		if r.WorkflowID != "" {
			return []string{fmt.Sprintf("route %q: workflow_id is only allowed with action workflow", r.Intent)}
		}
		return nil
	}
	if r.WorkflowID == "" {
		return []string{fmt.Sprintf("route %q: workflow_id is required", r.Intent)}
	}
	if _, ok := workflows[r.WorkflowID]; !ok {
		return []string{fmt.Sprintf("route %q: %v: %q", r.Intent, ErrWorkflowNotFound, r.WorkflowID)}
	}
	return nil
}

func validateFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid file name")
	}
	return nil
}
