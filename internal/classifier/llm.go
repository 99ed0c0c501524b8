package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pelangi-assistant/internal/model"
	pkgLog "pelangi-assistant/pkg/log"
)

type llmStage struct {
	llm     LLM
	timeout time.Duration
	l       pkgLog.Logger
}

func (llmStage) Source() model.Source { return model.SourceLLM }

// Run always has an opinion. Any failure degrades to the general category.
func (s llmStage) Run(ctx context.Context, in Input) (model.ClassificationResult, bool) {
	if s.llm == nil {
		return degraded(), true
	}

	categories := offeredCategories(in.Snapshot.Index.Intents())
	prompt := buildPrompt(categories, in.Message, lastTurns(in.History, in.Snapshot.Classifier.HistoryTurns))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.llm.Classify(ctx, prompt)
	if err != nil {
		s.l.Warnf(ctx, "%s: %v: %v", LogPrefixLLMStage, ErrLLMUnavailable, err)
		return degraded(), true
	}

	category, err := parseAnswer(answer)
	if err != nil {
		s.l.Warnf(ctx, "%s: %v: %q", LogPrefixLLMStage, err, answer)
		return degraded(), true
	}

	result := model.ClassificationResult{
		Category:   model.CategoryGeneral,
		Confidence: in.Snapshot.Classifier.LLMConfidence,
		Source:     model.SourceLLM,
	}
	if known, ok := lookup(categories, category); ok {
		result.Category = known
	} else {
		s.l.Warnf(ctx, "%s: %v: unknown category %q", LogPrefixLLMStage, ErrMalformedOutput, category)
	}
	return result, true
}

func degraded() model.ClassificationResult {
	return model.ClassificationResult{
		Category: model.CategoryGeneral,
		Source:   model.SourceLLM,
		Degraded: true,
	}
}

// offeredCategories is the enabled intents plus general, without duplicates.
func offeredCategories(intents []string) []string {
	out := make([]string, 0, len(intents)+1)
	hasGeneral := false
	for _, c := range intents {
		if c == model.CategoryGeneral {
			hasGeneral = true
		}
		out = append(out, c)
	}
	if !hasGeneral {
		out = append(out, model.CategoryGeneral)
	}
	return out
}

func buildPrompt(categories []string, message string, history []model.Turn) string {
	var list strings.Builder
	for _, c := range categories {
		list.WriteString("- ")
		list.WriteString(c)
		list.WriteString("\n")
	}

	historyContext := ""
	if len(history) > 0 {
		var b strings.Builder
		b.WriteString(promptHistoryPrefix)
		for i, t := range history {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, t.Role, t.Content)
		}
		historyContext = b.String()
	}

	return fmt.Sprintf(promptClassify, strings.TrimRight(list.String(), "\n"), historyContext, message)
}

func lastTurns(history []model.Turn, n int) []model.Turn {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// parseAnswer accepts {"category": "x"} with or without code fences, or a
// bare category word.
func parseAnswer(answer string) (string, error) {
	text := stripFences(answer)
	if text == "" {
		return "", fmt.Errorf("%w: empty answer", ErrMalformedOutput)
	}

	if strings.HasPrefix(text, "{") {
		var out struct {
			Category string `json:"category"`
			Intent   string `json:"intent"`
		}
		if err := json.Unmarshal([]byte(text), &out); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
		category := out.Category
		if category == "" {
			category = out.Intent
		}
		category = cleanWord(category)
		if category == "" {
			return "", fmt.Errorf("%w: no category field", ErrMalformedOutput)
		}
		return category, nil
	}

	line := strings.SplitN(text, "\n", 2)[0]
	if word := cleanWord(line); word != "" {
		return word, nil
	}
	return "", errors.Join(ErrMalformedOutput, errors.New("no category in answer"))
}

// stripFences removes markdown code blocks (```json ... ```)
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func cleanWord(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "category:")
	return strings.Trim(s, " \t\"'`.,;:!")
}

func lookup(categories []string, candidate string) (string, bool) {
	for _, c := range categories {
		if strings.EqualFold(c, candidate) {
			return c, true
		}
	}
	return "", false
}
