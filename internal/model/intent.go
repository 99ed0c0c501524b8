package model

// Language is a short language code such as "en", "ms" or "zh".
// The empty Language means detection was inconclusive.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageMalay   Language = "ms"
	LanguageChinese Language = "zh"
	LanguageUnknown Language = ""
)

// SupportedLanguages lists languages the matcher can detect, in preference order.
var SupportedLanguages = []Language{LanguageEnglish, LanguageMalay, LanguageChinese}

// CategoryGeneral is the catch-all category used when nothing else applies.
const CategoryGeneral = "general"

// Source tags which classification stage produced a result.
type Source string

const (
	SourceRegex    Source = "regex"
	SourceFuzzy    Source = "fuzzy"
	SourceSemantic Source = "semantic"
	SourceLLM      Source = "llm"
)

// IntentDefinition describes one intent category and the evidence used to detect it.
type IntentDefinition struct {
	Category      string                `yaml:"category" json:"category"`
	Patterns      []string              `yaml:"patterns" json:"patterns"`
	Keywords      map[Language][]string `yaml:"keywords" json:"keywords"`
	Examples      []string              `yaml:"examples" json:"examples"`
	Enabled       bool                  `yaml:"enabled" json:"enabled"`
	MemorySection string                `yaml:"memory_section,omitempty" json:"memory_section,omitempty"`
}

// ClassificationResult is the outcome of classifying one message.
type ClassificationResult struct {
	Category         string   `json:"category"`
	Confidence       float64  `json:"confidence"`
	Source           Source   `json:"source"`
	DetectedLanguage Language `json:"detected_language,omitempty"`
	MatchedKeyword   string   `json:"matched_keyword,omitempty"`
	MatchedExample   string   `json:"matched_example,omitempty"`
	// Degraded is set when the LLM stage failed and the generic category was used.
	Degraded bool `json:"degraded,omitempty"`
}
