package matcher

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/pkg/textnorm"
)

// MatchFuzzy returns the best keyword hit at or above threshold. Keywords of
// lang are scanned, or every language when lang is unknown. Ties go to the
// higher score, then the longer keyword, then the earlier intent.
func (idx *Index) MatchFuzzy(text string, lang model.Language, threshold float64) (FuzzyHit, bool) {
	hits := idx.fuzzyCandidates(text, lang)
	if len(hits) == 0 || hits[0].Score < threshold {
		return FuzzyHit{}, false
	}
	return hits[0], true
}

// fuzzyCandidates scores every in-scope keyword and returns them best first.
func (idx *Index) fuzzyCandidates(text string, lang model.Language) []FuzzyHit {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil
	}
	tokens := strings.Fields(normalized)
	compact := []rune(strings.ReplaceAll(normalized, " ", ""))

	var hits []FuzzyHit
	for _, kw := range idx.keywords {
		if lang != model.LanguageUnknown && kw.language != lang {
			continue
		}
		var score float64
		if kw.han {
			score = bestRuneWindow(compact, []rune(strings.ReplaceAll(kw.normalized, " ", "")))
		} else {
			score = bestTokenWindow(tokens, kw.normalized, kw.tokens)
		}
		hits = append(hits, FuzzyHit{
			Intent:   kw.intent,
			Keyword:  kw.keyword,
			Language: kw.language,
			Score:    score,
			order:    kw.order,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		la, lb := len([]rune(a.Keyword)), len([]rune(b.Keyword))
		if la != lb {
			return la > lb
		}
		return a.order < b.order
	})
	return hits
}

// bestTokenWindow compares keyword against every run of n consecutive message
// tokens and returns the best similarity.
func bestTokenWindow(tokens []string, keyword string, n int) float64 {
	if n <= 0 || len(tokens) == 0 {
		return 0
	}
	if n >= len(tokens) {
		return similarity(strings.Join(tokens, " "), keyword)
	}
	best := 0.0
	for i := 0; i+n <= len(tokens); i++ {
		if s := similarity(strings.Join(tokens[i:i+n], " "), keyword); s > best {
			best = s
			if best == 1 {
				break
			}
		}
	}
	return best
}

// bestRuneWindow is bestTokenWindow for scripts written without spaces.
func bestRuneWindow(text, keyword []rune) float64 {
	n := len(keyword)
	if n == 0 || len(text) == 0 {
		return 0
	}
	if n >= len(text) {
		return similarity(string(text), string(keyword))
	}
	best := 0.0
	for i := 0; i+n <= len(text); i++ {
		if s := similarity(string(text[i:i+n]), string(keyword)); s > best {
			best = s
			if best == 1 {
				break
			}
		}
	}
	return best
}

// similarity is 1 - normalized Levenshtein distance, in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
