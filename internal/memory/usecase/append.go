package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pelangi-assistant/internal/memory"
)

// AppendToDay inserts a timestamped entry as the first line of a section.
// Writes for the same date are serialized in this process by a keyed mutex and
// across processes by the repository's edit lock. A version conflict from a
// writer that skips the edit lock is retried, and only after the retries run
// out does the last write win.
func (uc *implUseCase) AppendToDay(ctx context.Context, in memory.AppendInput) error {
	if err := memory.ValidateDate(in.Date); err != nil {
		return err
	}
	section, err := memory.CanonicalSection(in.Section)
	if err != nil {
		return err
	}
	text := strings.Join(strings.Fields(in.Text), " ")
	if text == "" {
		return memory.ErrEmptyEntry
	}

	uc.locks.Lock(in.Date)
	defer uc.locks.Unlock(in.Date)

	unlock, err := uc.repo.Lock(ctx, in.Date)
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixAppendToDay, err)
	}
	defer unlock()

	entry := memory.Entry{Time: uc.now().In(uc.loc).Format(memory.TimeLayout), Text: text}

	for attempt := 0; attempt < uc.maxRetries; attempt++ {
		err := uc.appendOnce(ctx, in.Date, section, entry, "")
		if err == nil {
			return nil
		}
		if !errors.Is(err, memory.ErrVersionMismatch) {
			return fmt.Errorf("%s: %w", LogPrefixAppendToDay, err)
		}
		uc.l.Debugf(ctx, "%s: version conflict on %s, attempt %d/%d", LogPrefixAppendToDay, in.Date, attempt+1, uc.maxRetries)
	}

	uc.l.Warnf(ctx, "%s: %v: %s after %d attempts, forcing write", LogPrefixAppendToDay, memory.ErrConcurrentWriteConflict, in.Date, uc.maxRetries)
	if err := uc.appendOnce(ctx, in.Date, section, entry, memory.AnyVersion); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixAppendToDay, err)
	}
	return nil
}

// appendOnce does one read-modify-write. A non-empty force version overrides
// the version read.
func (uc *implUseCase) appendOnce(ctx context.Context, date, section string, entry memory.Entry, force string) error {
	var day *memory.Day
	doc, err := uc.repo.ReadDay(ctx, date)
	switch {
	case errors.Is(err, memory.ErrDayNotFound):
		day = memory.NewDay(date)
	case err != nil:
		return err
	default:
		day = memory.ParseDay(date, doc.Content)
	}

	day.Prepend(section, entry)

	version := doc.Version
	if force != "" {
		version = force
	}
	return uc.repo.WriteDay(ctx, date, day.Render(), version)
}
