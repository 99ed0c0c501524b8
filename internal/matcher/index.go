package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/pkg/textnorm"
)

type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

type keywordEntry struct {
	intent     string
	order      int
	language   model.Language
	keyword    string
	normalized string
	tokens     int
	han        bool
}

type exampleEntry struct {
	intent string
	order  int
	text   string
}

// Index is the compiled, read-only form of the enabled intent definitions.
type Index struct {
	intents  []string
	patterns map[string][]compiledPattern
	keywords []keywordEntry
	examples []exampleEntry
}

// NewIndex compiles enabled intents. Patterns are matched case-insensitively.
func NewIndex(intents []model.IntentDefinition) (*Index, error) {
	idx := &Index{patterns: make(map[string][]compiledPattern)}

	for order, def := range intents {
		if !def.Enabled {
			continue
		}
		idx.intents = append(idx.intents, def.Category)

		for _, p := range def.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("%w: intent %q pattern %q: %v", ErrInvalidPattern, def.Category, p, err)
			}
			idx.patterns[def.Category] = append(idx.patterns[def.Category], compiledPattern{source: p, re: re})
		}

		for _, lang := range sortedLanguages(def.Keywords) {
			for _, w := range def.Keywords[lang] {
				n := textnorm.Normalize(w)
				if n == "" {
					continue
				}
				idx.keywords = append(idx.keywords, keywordEntry{
					intent:     def.Category,
					order:      order,
					language:   lang,
					keyword:    w,
					normalized: n,
					tokens:     len(strings.Fields(n)),
					han:        textnorm.HasHan(n),
				})
			}
		}

		for _, ex := range def.Examples {
			if strings.TrimSpace(ex) == "" {
				continue
			}
			idx.examples = append(idx.examples, exampleEntry{intent: def.Category, order: order, text: ex})
		}
	}

	return idx, nil
}

// Intents returns enabled categories in declared order.
func (idx *Index) Intents() []string {
	return append([]string(nil), idx.intents...)
}

// Has reports whether category is an enabled intent.
func (idx *Index) Has(category string) bool {
	for _, c := range idx.intents {
		if c == category {
			return true
		}
	}
	return false
}

// MatchRegex returns the first enabled intent, in declared order, with a
// pattern matching text.
func (idx *Index) MatchRegex(text string) (RegexHit, bool) {
	for _, intent := range idx.intents {
		for _, p := range idx.patterns[intent] {
			if p.re.MatchString(text) {
				return RegexHit{Intent: intent, Pattern: p.source}, true
			}
		}
	}
	return RegexHit{}, false
}

func (idx *Index) regexHits(text string) []RegexHit {
	var hits []RegexHit
	for _, intent := range idx.intents {
		for _, p := range idx.patterns[intent] {
			if p.re.MatchString(text) {
				hits = append(hits, RegexHit{Intent: intent, Pattern: p.source})
				break
			}
		}
	}
	return hits
}

// sortedLanguages returns the supported languages first, then any others sorted.
func sortedLanguages(m map[model.Language][]string) []model.Language {
	var out []model.Language
	seen := make(map[model.Language]bool, len(m))
	for _, l := range model.SupportedLanguages {
		if _, ok := m[l]; ok {
			out = append(out, l)
			seen[l] = true
		}
	}
	var rest []model.Language
	for l := range m {
		if !seen[l] {
			rest = append(rest, l)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}
