package settings

import "time"

const (
	LogPrefixLoad               = "internal.settings.Load"
	LogPrefixReload             = "internal.settings.Reload"
	LogPrefixPutRoutingEntry    = "internal.settings.PutRoutingEntry"
	LogPrefixPutWorkflow        = "internal.settings.PutWorkflow"
	LogPrefixDeleteWorkflow     = "internal.settings.DeleteWorkflow"
	LogPrefixWriteKnowledgeFile = "internal.settings.WriteKnowledgeFile"
	LogPrefixWatch              = "internal.settings.Watch"
)

const (
	IntentsFile   = "intents.yaml"
	RoutingFile   = "routing.yaml"
	WorkflowsFile = "workflows.yaml"
	KnowledgeFile = "knowledge.yaml"
	KnowledgeDir  = "knowledge"
)

const (
	DefaultLLMConfidence = 0.5
	DefaultHistoryTurns  = 6
	DefaultTopic         = "faq"
	DefaultDebounce      = 500 * time.Millisecond
)
