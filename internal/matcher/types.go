package matcher

import "pelangi-assistant/internal/model"

// Thresholds are the minimum scores for the fuzzy and semantic stages.
type Thresholds struct {
	Fuzzy    float64 `json:"fuzzy"`
	Semantic float64 `json:"semantic"`
}

// RegexHit is an intent whose pattern matched.
type RegexHit struct {
	Intent  string `json:"intent"`
	Pattern string `json:"pattern"`
}

// FuzzyHit is the best keyword similarity for one keyword.
type FuzzyHit struct {
	Intent   string         `json:"intent"`
	Keyword  string         `json:"keyword"`
	Language model.Language `json:"language"`
	Score    float64        `json:"score"`

	order int
}

// SemanticHit is the similarity between the message and one example.
type SemanticHit struct {
	Intent     string  `json:"intent"`
	Example    string  `json:"example"`
	Similarity float64 `json:"similarity"`

	order int
}

// Scores is the full diagnostic view of one message against every stage.
type Scores struct {
	Language      model.Language `json:"language"`
	RegexHits     []RegexHit     `json:"regex_hits"`
	FuzzyHits     []FuzzyHit     `json:"fuzzy_hits"`
	SemanticHits  []SemanticHit  `json:"semantic_hits"`
	SemanticError string         `json:"semantic_error,omitempty"`
}
