package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration         = errors.New("invalid configuration")
	ErrWorkflowNotFound      = errors.New("workflow not found")
	ErrKnowledgeFileNotFound = errors.New("knowledge file not found")
)

// ConfigurationError lists every problem found in a candidate configuration.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Problems[0])
	}
	return fmt.Sprintf("%s: %d problems: %s", ErrConfiguration, len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configurationError(problems ...string) error {
	return &ConfigurationError{Problems: problems}
}
