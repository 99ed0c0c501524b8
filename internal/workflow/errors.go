package workflow

import "errors"

var (
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrNoSteps             = errors.New("workflow has no steps")
)
