package classifier

import (
	"context"
	"time"

	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
	pkgLog "pelangi-assistant/pkg/log"
)

type regexStage struct{}

func (regexStage) Source() model.Source { return model.SourceRegex }

func (regexStage) Run(_ context.Context, in Input) (model.ClassificationResult, bool) {
	hit, ok := in.Snapshot.Index.MatchRegex(in.Message)
	if !ok {
		return model.ClassificationResult{}, false
	}
	return model.ClassificationResult{
		Category:   hit.Intent,
		Confidence: 1.0,
		Source:     model.SourceRegex,
	}, true
}

type fuzzyStage struct{}

func (fuzzyStage) Source() model.Source { return model.SourceFuzzy }

func (fuzzyStage) Run(_ context.Context, in Input) (model.ClassificationResult, bool) {
	hit, ok := in.Snapshot.Index.MatchFuzzy(in.Message, in.Language, in.Snapshot.Classifier.FuzzyThreshold)
	if !ok {
		return model.ClassificationResult{}, false
	}
	return model.ClassificationResult{
		Category:       hit.Intent,
		Confidence:     hit.Score,
		Source:         model.SourceFuzzy,
		MatchedKeyword: hit.Keyword,
	}, true
}

type semanticStage struct {
	engine  *matcher.Engine
	timeout time.Duration
	l       pkgLog.Logger
}

func (semanticStage) Source() model.Source { return model.SourceSemantic }

func (s semanticStage) Run(ctx context.Context, in Input) (model.ClassificationResult, bool) {
	if s.engine == nil || !s.engine.SemanticEnabled() {
		return model.ClassificationResult{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hit, ok, err := s.engine.MatchSemantic(ctx, in.Snapshot.Index, in.Message, in.Snapshot.Classifier.SemanticThreshold)
	if err != nil {
		s.l.Warnf(ctx, "%s: semantic stage skipped: %v", LogPrefixClassify, err)
		return model.ClassificationResult{}, false
	}
	if !ok {
		return model.ClassificationResult{}, false
	}
	return model.ClassificationResult{
		Category:       hit.Intent,
		Confidence:     hit.Similarity,
		Source:         model.SourceSemantic,
		MatchedExample: hit.Example,
	}, true
}
