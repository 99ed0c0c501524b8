package assistant

import "errors"

var (
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrEmptyMessage        = errors.New("message text is required")
)
