package classifier

import "errors"

var (
	// ErrMalformedOutput is logged when the LLM answers with something that is
	// not one of the offered categories.
	ErrMalformedOutput = errors.New("malformed classifier output")
	ErrLLMUnavailable  = errors.New("classifier LLM unavailable")
)
