package usecase

import (
	"context"

	"pelangi-assistant/internal/memory"
)

func (uc *implUseCase) ReadDay(ctx context.Context, date string) (string, error) {
	if err := memory.ValidateDate(date); err != nil {
		return "", err
	}
	doc, err := uc.repo.ReadDay(ctx, date)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

func (uc *implUseCase) ReadDurable(ctx context.Context) (string, error) {
	doc, err := uc.repo.ReadDurable(ctx)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

func (uc *implUseCase) ListDays(ctx context.Context) ([]string, error) {
	return uc.repo.ListDays(ctx)
}

func (uc *implUseCase) LatestBackup(ctx context.Context, key string) (memory.Backup, error) {
	return uc.repo.LatestBackup(ctx, key)
}

// Today returns the current date key in the store's timezone.
func (uc *implUseCase) Today() string {
	return uc.now().In(uc.loc).Format(memory.DateLayout)
}
