package prompt

import (
	"fmt"
	"strings"
	"time"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
)

// SnapshotSource provides the current settings.
type SnapshotSource interface {
	Current() *settings.Snapshot
}

// Prompt is an assembled system prompt and the knowledge files it contains.
type Prompt struct {
	Text      string
	FilesUsed []string
}

// Assembler builds LLM system prompts from only the knowledge a message needs.
type Assembler struct {
	settings SnapshotSource
	loc      *time.Location
	now      func() time.Time
}

// New creates an Assembler. A nil loc uses Asia/Kuala_Lumpur, or UTC when the
// zone database is unavailable.
func New(settings SnapshotSource, loc *time.Location) *Assembler {
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation(DefaultZone); err != nil {
			loc = time.UTC
		}
	}
	return &Assembler{settings: settings, loc: loc, now: time.Now}
}

// TopicGuess returns the on_demand files triggered by message, or the default
// topic when nothing triggers.
func (a *Assembler) TopicGuess(message string) []model.KnowledgeFile {
	return a.TopicGuessWith(a.settings.Current(), message)
}

// TopicGuessWith guesses topics from snap's catalog.
func (a *Assembler) TopicGuessWith(snap *settings.Snapshot, message string) []model.KnowledgeFile {
	return snap.Knowledge.GuessTopics(message)
}

// Build assembles the prompt for message using the configured persona.
func (a *Assembler) Build(message string, history []model.Turn) Prompt {
	snap := a.settings.Current()
	return a.BuildSystemPromptWith(snap, snap.Persona, a.TopicGuessWith(snap, message), history)
}

// BuildSystemPrompt renders, in order: the persona, every always file in
// manifest order, the given topic files, the current time and the recent
// turns. Internal files are never rendered.
func (a *Assembler) BuildSystemPrompt(basePersona string, topics []model.KnowledgeFile, history []model.Turn) Prompt {
	return a.BuildSystemPromptWith(a.settings.Current(), basePersona, topics, history)
}

// BuildSystemPromptWith takes the always files from snap.
func (a *Assembler) BuildSystemPromptWith(snap *settings.Snapshot, basePersona string, topics []model.KnowledgeFile, history []model.Turn) Prompt {
	var sections []string
	var used []string
	seen := make(map[string]bool)

	if p := strings.TrimSpace(basePersona); p != "" {
		sections = append(sections, p)
	}

	add := func(f model.KnowledgeFile) {
		if f.Priority == model.PriorityInternal || seen[f.Name] {
			return
		}
		seen[f.Name] = true
		used = append(used, f.Name)
		sections = append(sections, fmt.Sprintf("## %s\n%s", f.Name, strings.TrimSpace(f.Content)))
	}
	for _, f := range snap.Knowledge.Always() {
		add(f)
	}
	for _, f := range topics {
		add(f)
	}

	sections = append(sections, a.timeContext())

	if len(history) > 0 {
		var b strings.Builder
		b.WriteString(historyHeader)
		for _, t := range history {
			fmt.Fprintf(&b, "\n%s: %s", speaker(t.Role), t.Content)
		}
		sections = append(sections, b.String())
	}

	return Prompt{Text: strings.Join(sections, sectionDivider), FilesUsed: used}
}

func (a *Assembler) timeContext() string {
	now := a.now().In(a.loc)
	return fmt.Sprintf(timeContextTemplate,
		a.loc.String(),
		now.Format(DateFormatISO),
		now.Format(TimeFormat24h),
		now.Weekday(),
		now.AddDate(0, 0, 1).Format(DateFormatISO),
	)
}

func speaker(r model.Role) string {
	if r == model.RoleAssistant {
		return "assistant"
	}
	return "guest"
}
