package knowledge

import (
	"fmt"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/pkg/textnorm"
)

// Catalog is an immutable view of the knowledge files and topic triggers.
type Catalog struct {
	files        []model.KnowledgeFile
	byName       map[string]int
	topics       []model.Topic
	defaultTopic string
}

// NewCatalog builds a catalog. Files keep their declared order, which is the
// order always-files are injected into prompts.
func NewCatalog(files []model.KnowledgeFile, topics []model.Topic, defaultTopic string) (*Catalog, []string) {
	c := &Catalog{
		files:        append([]model.KnowledgeFile(nil), files...),
		byName:       make(map[string]int, len(files)),
		topics:       append([]model.Topic(nil), topics...),
		defaultTopic: defaultTopic,
	}

	var problems []string
	for i, f := range c.files {
		if f.Name == "" {
			problems = append(problems, fmt.Sprintf("knowledge file %d: name is required", i))
			continue
		}
		if _, dup := c.byName[f.Name]; dup {
			problems = append(problems, fmt.Sprintf("knowledge file %q: duplicate name", f.Name))
			continue
		}
		if !f.Priority.Valid() {
			problems = append(problems, fmt.Sprintf("knowledge file %q: invalid priority %q", f.Name, f.Priority))
		}
		c.byName[f.Name] = i
	}

	seen := make(map[string]bool, len(c.topics))
	for _, t := range c.topics {
		if seen[t.Name] {
			problems = append(problems, fmt.Sprintf("topic %q: duplicate name", t.Name))
		}
		seen[t.Name] = true
		f, ok := c.Get(t.File)
		if !ok {
			problems = append(problems, fmt.Sprintf("topic %q: unknown file %q", t.Name, t.File))
			continue
		}
		if f.Priority != model.PriorityOnDemand {
			problems = append(problems, fmt.Sprintf("topic %q: file %q must be on_demand, is %s", t.Name, t.File, f.Priority))
		}
	}
	if defaultTopic != "" && !seen[defaultTopic] {
		problems = append(problems, fmt.Sprintf("default topic %q is not defined", defaultTopic))
	}

	return c, problems
}

// Get returns a file by name.
func (c *Catalog) Get(name string) (model.KnowledgeFile, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.KnowledgeFile{}, false
	}
	return c.files[i], true
}

// Files returns every file in declared order.
func (c *Catalog) Files() []model.KnowledgeFile {
	return append([]model.KnowledgeFile(nil), c.files...)
}

// Topics returns the topic definitions.
func (c *Catalog) Topics() []model.Topic {
	return append([]model.Topic(nil), c.topics...)
}

// DefaultTopic names the topic used when nothing triggers.
func (c *Catalog) DefaultTopic() string {
	return c.defaultTopic
}

// Always returns the always-priority files in declared order.
func (c *Catalog) Always() []model.KnowledgeFile {
	var out []model.KnowledgeFile
	for _, f := range c.files {
		if f.Priority == model.PriorityAlways {
			out = append(out, f)
		}
	}
	return out
}

// GuessTopics returns the on_demand files whose topic triggers match message,
// in topic order and without duplicates. When nothing triggers, the default
// topic's file is returned.
func (c *Catalog) GuessTopics(message string) []model.KnowledgeFile {
	var out []model.KnowledgeFile
	used := make(map[string]bool)

	add := func(t model.Topic) {
		f, ok := c.Get(t.File)
		if !ok || f.Priority != model.PriorityOnDemand || used[f.Name] {
			return
		}
		used[f.Name] = true
		out = append(out, f)
	}

	for _, t := range c.topics {
		for _, trigger := range t.Triggers {
			if textnorm.ContainsPhrase(message, trigger) {
				add(t)
				break
			}
		}
	}

	if len(out) == 0 && c.defaultTopic != "" {
		for _, t := range c.topics {
			if t.Name == c.defaultTopic {
				add(t)
				break
			}
		}
	}
	return out
}

// WithFile returns a copy of the catalog with one file's content replaced.
func (c *Catalog) WithFile(name, content string) (*Catalog, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	files := c.Files()
	files[i].Content = content
	next, _ := NewCatalog(files, c.topics, c.defaultTopic)
	return next, true
}
