package classifier

import "time"

const (
	LogPrefixClassify = "internal.classifier.Classify"
	LogPrefixLLMStage = "internal.classifier.llmStage"
)

const (
	DefaultSemanticTimeout = 3 * time.Second
	DefaultLLMTimeout      = 8 * time.Second
)

const promptClassify = `You label guest messages for a capsule hostel front desk.
Pick exactly one category for the current message from this list:
%s

Answer with JSON only, in the form {"category": "<one category from the list>"}.
Use "general" when nothing else fits.
%s
Current message: %q`

const promptHistoryPrefix = "\nRecent conversation:\n"
