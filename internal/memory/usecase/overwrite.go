package usecase

import (
	"context"
	"errors"
	"fmt"

	"pelangi-assistant/internal/memory"
)

// OverwriteDay replaces a whole day document after backing up what was there.
func (uc *implUseCase) OverwriteDay(ctx context.Context, date, content string) (memory.OverwriteOutput, error) {
	if err := memory.ValidateDate(date); err != nil {
		return memory.OverwriteOutput{}, err
	}

	uc.locks.Lock(date)
	defer uc.locks.Unlock(date)

	unlock, err := uc.repo.Lock(ctx, date)
	if err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: %w", LogPrefixOverwriteDay, err)
	}
	defer unlock()

	prior, err := uc.repo.ReadDay(ctx, date)
	if err != nil && !errors.Is(err, memory.ErrDayNotFound) {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: read: %w", LogPrefixOverwriteDay, err)
	}

	backup, err := uc.repo.SaveBackup(ctx, date, prior.Content, uc.now())
	if err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: backup: %w", LogPrefixOverwriteDay, err)
	}

	if err := uc.repo.WriteDay(ctx, date, content, memory.AnyVersion); err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: write: %w", LogPrefixOverwriteDay, err)
	}

	uc.l.Infof(ctx, "%s: %s overwritten, backup at %s", LogPrefixOverwriteDay, date, backup.Path)
	return memory.OverwriteOutput{Backup: backup}, nil
}

// OverwriteDurable replaces the durable memory after backing it up.
func (uc *implUseCase) OverwriteDurable(ctx context.Context, content string) (memory.OverwriteOutput, error) {
	uc.locks.Lock(memory.DurableKey)
	defer uc.locks.Unlock(memory.DurableKey)

	unlock, err := uc.repo.Lock(ctx, memory.DurableKey)
	if err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: %w", LogPrefixOverwriteDurable, err)
	}
	defer unlock()

	prior, err := uc.repo.ReadDurable(ctx)
	if err != nil && !errors.Is(err, memory.ErrDurableNotFound) {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: read: %w", LogPrefixOverwriteDurable, err)
	}

	backup, err := uc.repo.SaveBackup(ctx, memory.DurableKey, prior.Content, uc.now())
	if err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: backup: %w", LogPrefixOverwriteDurable, err)
	}

	if err := uc.repo.WriteDurable(ctx, content, memory.AnyVersion); err != nil {
		return memory.OverwriteOutput{}, fmt.Errorf("%s: write: %w", LogPrefixOverwriteDurable, err)
	}

	uc.l.Infof(ctx, "%s: durable memory overwritten, backup at %s", LogPrefixOverwriteDurable, backup.Path)
	return memory.OverwriteOutput{Backup: backup}, nil
}
