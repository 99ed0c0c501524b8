package usecase

import (
	"context"
	"fmt"
	"strings"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/memory"
)

// AppendNote writes a manual entry to a day section, today by default.
func (uc *implUseCase) AppendNote(ctx context.Context, input assistant.AppendNoteInput) error {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = uc.Memory.Today()
	}
	if err := uc.Memory.AppendToDay(ctx, memory.AppendInput{Date: date, Section: input.Section, Text: input.Text}); err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixAppendNote, err)
		return fmt.Errorf("%s: %w", LogPrefixAppendNote, err)
	}
	return nil
}
