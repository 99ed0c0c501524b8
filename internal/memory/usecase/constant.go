package usecase

const (
	LogPrefixAppendToDay      = "internal.memory.usecase.AppendToDay"
	LogPrefixOverwriteDay     = "internal.memory.usecase.OverwriteDay"
	LogPrefixOverwriteDurable = "internal.memory.usecase.OverwriteDurable"
	LogPrefixRead             = "internal.memory.usecase.Read"
)

const DefaultMaxWriteRetries = 3
