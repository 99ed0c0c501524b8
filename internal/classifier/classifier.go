package classifier

import (
	"context"

	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
)

// Classify maps a guest message to one intent category. It never fails: when
// every stage abstains or the LLM is unavailable the result is the general
// category with Degraded set.
func (c *Classifier) Classify(ctx context.Context, message string, history []model.Turn) model.ClassificationResult {
	return c.ClassifyWith(ctx, c.settings.Current(), message, history)
}

// ClassifyWith is Classify against a snapshot the caller already holds.
func (c *Classifier) ClassifyWith(ctx context.Context, snap *settings.Snapshot, message string, history []model.Turn) model.ClassificationResult {
	in := Input{
		Message:  message,
		Language: matcher.DetectLanguage(message),
		History:  history,
		Snapshot: snap,
	}

	result := degraded()
	for _, stage := range c.stages {
		r, ok := stage.Run(ctx, in)
		if ok {
			result = r
			break
		}
	}
	result.DetectedLanguage = in.Language

	c.l.Debugf(ctx, "%s: %q -> %s (source=%s confidence=%.2f degraded=%v)",
		LogPrefixClassify, message, result.Category, result.Source, result.Confidence, result.Degraded)
	return result
}

// Explain classifies message and also returns every stage's scores.
func (c *Classifier) Explain(ctx context.Context, message string, history []model.Turn) Explanation {
	return c.ExplainWith(ctx, c.settings.Current(), message, history)
}

// ExplainWith scores and classifies against one snapshot.
func (c *Classifier) ExplainWith(ctx context.Context, snap *settings.Snapshot, message string, history []model.Turn) Explanation {
	result := c.ClassifyWith(ctx, snap, message, history)

	var scores matcher.Scores
	if c.engine != nil {
		scores = c.engine.Score(ctx, snap.Index, message, result.DetectedLanguage)
	}
	return Explanation{Result: result, Scores: scores}
}
