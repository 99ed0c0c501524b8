package matcher

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"pelangi-assistant/internal/model"
	pkgLog "pelangi-assistant/pkg/log"
)

// Embedder turns texts into vectors, one per input, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Engine runs the match stages. It holds no intent state of its own; the
// embedding cache only memoizes vectors by text.
type Engine struct {
	embedder Embedder
	cache    *expirable.LRU[string, []float32]
	l        pkgLog.Logger
}

// EngineConfig sizes the embedding cache.
type EngineConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// NewEngine creates an Engine. A nil embedder disables the semantic stage.
func NewEngine(embedder Embedder, l pkgLog.Logger, cfg EngineConfig) *Engine {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultEmbeddingCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultEmbeddingCacheTTL
	}
	return &Engine{
		embedder: embedder,
		cache:    expirable.NewLRU[string, []float32](size, nil, ttl),
		l:        l,
	}
}

// SemanticEnabled reports whether an embedder is configured.
func (e *Engine) SemanticEnabled() bool {
	return e.embedder != nil
}

// MatchSemantic returns the example most similar to text when it reaches threshold.
func (e *Engine) MatchSemantic(ctx context.Context, idx *Index, text string, threshold float64) (SemanticHit, bool, error) {
	hits, err := e.semanticCandidates(ctx, idx, text)
	if err != nil {
		return SemanticHit{}, false, err
	}
	if len(hits) == 0 || hits[0].Similarity < threshold {
		return SemanticHit{}, false, nil
	}
	return hits[0], true, nil
}

func (e *Engine) semanticCandidates(ctx context.Context, idx *Index, text string) ([]SemanticHit, error) {
	if e.embedder == nil || len(idx.examples) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(idx.examples)+1)
	texts = append(texts, text)
	for _, ex := range idx.examples {
		texts = append(texts, ex.text)
	}
	vectors, err := e.vectors(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixMatchSemantic, err)
	}

	query := vectors[text]
	hits := make([]SemanticHit, 0, len(idx.examples))
	for _, ex := range idx.examples {
		sim, err := CosineSimilarity(query, vectors[ex.text])
		if err != nil {
			e.l.Warnf(ctx, "%s: example %q skipped: %v", LogPrefixMatchSemantic, ex.text, err)
			continue
		}
		hits = append(hits, SemanticHit{Intent: ex.intent, Example: ex.text, Similarity: sim, order: ex.order})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].order < hits[j].order
	})
	return hits, nil
}

// vectors resolves embeddings for texts, embedding only what the cache lacks
// in a single batch.
func (e *Engine) vectors(ctx context.Context, texts []string) (map[string][]float32, error) {
	out := make(map[string][]float32, len(texts))
	var missing []string
	queued := make(map[string]bool)

	for _, t := range texts {
		if v, ok := e.cache.Get(t); ok {
			out[t] = v
			continue
		}
		if !queued[t] {
			queued[t] = true
			missing = append(missing, t)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	embedded, err := e.embedder.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(embedded) < len(missing) {
		return nil, fmt.Errorf("%w: %d < %d", ErrEmbeddingCountShort, len(embedded), len(missing))
	}
	for i, t := range missing {
		e.cache.Add(t, embedded[i])
		out[t] = embedded[i]
	}
	return out, nil
}

// Score runs every stage without short-circuiting, for diagnostics.
func (e *Engine) Score(ctx context.Context, idx *Index, text string, lang model.Language) Scores {
	s := Scores{
		Language:  lang,
		RegexHits: idx.regexHits(text),
		FuzzyHits: limit(idx.fuzzyCandidates(text, lang), DiagnosticLimit),
	}

	hits, err := e.semanticCandidates(ctx, idx, text)
	if err != nil {
		s.SemanticError = err.Error()
	}
	s.SemanticHits = limit(hits, DiagnosticLimit)
	return s
}

func limit[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
