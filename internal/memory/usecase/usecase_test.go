package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"pelangi-assistant/internal/memory"
	fileRepo "pelangi-assistant/internal/memory/repository/file"
	pkgLog "pelangi-assistant/pkg/log"
)

func newFileUseCase(t *testing.T) *implUseCase {
	t.Helper()
	repo, err := fileRepo.New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("file repo: %v", err)
	}
	loc := time.FixedZone("MYT", 8*60*60)
	uc := New(repo, pkgLog.NewNop(), Config{Location: loc})
	uc.now = func() time.Time { return time.Date(2025, 1, 1, 1, 30, 0, 0, time.UTC) }
	return uc
}

func TestAppendToDay_CreatesDayFromTemplate(t *testing.T) {
	ctx := context.Background()
	uc := newFileUseCase(t)

	err := uc.AppendToDay(ctx, memory.AppendInput{Date: "2025-01-01", Section: "issues reported", Text: "Aircon  leaking\nin C12"})
	if err != nil {
		t.Fatalf("AppendToDay: %v", err)
	}

	content, err := uc.ReadDay(ctx, "2025-01-01")
	if err != nil {
		t.Fatalf("ReadDay: %v", err)
	}
	// 01:30 UTC is 09:30 in Kuala Lumpur.
	if !strings.Contains(content, "## Issues Reported\n- 09:30 -- Aircon leaking in C12\n") {
		t.Errorf("entry not found in:\n%s", content)
	}
	for _, s := range memory.Sections {
		if !strings.Contains(content, "## "+s) {
			t.Errorf("template section %q missing", s)
		}
	}
}

func TestAppendToDay_Validation(t *testing.T) {
	ctx := context.Background()
	uc := newFileUseCase(t)

	tests := []struct {
		name string
		in   memory.AppendInput
		want error
	}{
		{"bad date", memory.AppendInput{Date: "01/01/2025", Section: memory.SectionAINotes, Text: "x"}, memory.ErrInvalidDate},
		{"bad section", memory.AppendInput{Date: "2025-01-01", Section: "Rumours", Text: "x"}, memory.ErrUnknownSection},
		{"empty text", memory.AppendInput{Date: "2025-01-01", Section: memory.SectionAINotes, Text: "  \n "}, memory.ErrEmptyEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := uc.AppendToDay(ctx, tt.in); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAppendToDay_ConcurrentAppendsKeepEveryEntry(t *testing.T) {
	ctx := context.Background()
	uc := newFileUseCase(t)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- uc.AppendToDay(ctx, memory.AppendInput{
				Date:    "2025-01-01",
				Section: memory.SectionIssuesReported,
				Text:    fmt.Sprintf("issue from guest %d", i),
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	content, err := uc.ReadDay(ctx, "2025-01-01")
	if err != nil {
		t.Fatalf("ReadDay: %v", err)
	}
	day := memory.ParseDay("2025-01-01", content)
	entries := day.Entries(memory.SectionIssuesReported)
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
	for i := 0; i < n; i++ {
		if !strings.Contains(content, fmt.Sprintf("issue from guest %d\n", i)) {
			t.Errorf("entry %d lost", i)
		}
	}
}

func TestAppendToDay_TwoStoresOnOneDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stores := make([]*implUseCase, 2)
	for i := range stores {
		repo, err := fileRepo.New(dir, pkgLog.NewNop())
		if err != nil {
			t.Fatalf("file repo: %v", err)
		}
		stores[i] = New(repo, pkgLog.NewNop(), Config{Location: time.UTC})
	}

	const n = 100
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- stores[i%2].AppendToDay(ctx, memory.AppendInput{
				Date:    "2025-02-01",
				Section: memory.SectionPatternsObserved,
				Text:    fmt.Sprintf("unmatched message %d", i),
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	content, err := stores[0].ReadDay(ctx, "2025-02-01")
	if err != nil {
		t.Fatalf("ReadDay: %v", err)
	}
	entries := memory.ParseDay("2025-02-01", content).Entries(memory.SectionPatternsObserved)
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
}

func TestOverwrite_AlwaysBacksUp(t *testing.T) {
	ctx := context.Background()
	uc := newFileUseCase(t)

	t.Run("day with no prior content", func(t *testing.T) {
		out, err := uc.OverwriteDay(ctx, "2025-01-02", "# 2025-01-02\n\nrewritten")
		if err != nil {
			t.Fatalf("OverwriteDay: %v", err)
		}
		if out.Backup.Content != "" {
			t.Errorf("expected empty backup, got %q", out.Backup.Content)
		}
		b, err := uc.LatestBackup(ctx, "2025-01-02")
		if err != nil {
			t.Fatalf("LatestBackup: %v", err)
		}
		if b.Content != "" {
			t.Errorf("expected empty backup content, got %q", b.Content)
		}
	})

	t.Run("day with prior content", func(t *testing.T) {
		if err := uc.AppendToDay(ctx, memory.AppendInput{Date: "2025-01-03", Section: memory.SectionStaffNotes, Text: "keep me"}); err != nil {
			t.Fatalf("AppendToDay: %v", err)
		}
		before, _ := uc.ReadDay(ctx, "2025-01-03")

		uc.now = func() time.Time { return time.Date(2025, 1, 3, 2, 0, 0, 0, time.UTC) }
		if _, err := uc.OverwriteDay(ctx, "2025-01-03", "replaced"); err != nil {
			t.Fatalf("OverwriteDay: %v", err)
		}

		b, err := uc.LatestBackup(ctx, "2025-01-03")
		if err != nil || b.Content != before {
			t.Errorf("backup mismatch: %q vs %q (%v)", b.Content, before, err)
		}
		after, _ := uc.ReadDay(ctx, "2025-01-03")
		if after != "replaced" {
			t.Errorf("expected replaced, got %q", after)
		}
	})

	t.Run("durable with no prior content", func(t *testing.T) {
		if _, err := uc.OverwriteDurable(ctx, "Quiet hours 11pm-7am"); err != nil {
			t.Fatalf("OverwriteDurable: %v", err)
		}
		b, err := uc.LatestBackup(ctx, memory.DurableKey)
		if err != nil || b.Content != "" {
			t.Errorf("expected empty durable backup, got %q (%v)", b.Content, err)
		}
		got, _ := uc.ReadDurable(ctx)
		if got != "Quiet hours 11pm-7am" {
			t.Errorf("unexpected durable %q", got)
		}
	})
}

func TestReadDay_MissingIsNotFound(t *testing.T) {
	uc := newFileUseCase(t)
	if _, err := uc.ReadDay(context.Background(), "2030-01-01"); !errors.Is(err, memory.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound, got %v", err)
	}
	days, err := uc.ListDays(context.Background())
	if err != nil || len(days) != 0 {
		t.Errorf("expected no days, got %v (%v)", days, err)
	}
}

// conflictRepo rejects a fixed number of versioned writes, standing in for
// another process writing the same day.
type conflictRepo struct {
	memory.Repository
	conflicts int
	forced    int
}

func (r *conflictRepo) WriteDay(ctx context.Context, date, content, expectedVersion string) error {
	if expectedVersion == memory.AnyVersion {
		r.forced++
		return r.Repository.WriteDay(ctx, date, content, expectedVersion)
	}
	if r.conflicts > 0 {
		r.conflicts--
		return memory.ErrVersionMismatch
	}
	return r.Repository.WriteDay(ctx, date, content, expectedVersion)
}

func TestAppendToDay_RetriesThenForces(t *testing.T) {
	ctx := context.Background()
	base, err := fileRepo.New(t.TempDir(), pkgLog.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("retry succeeds", func(t *testing.T) {
		repo := &conflictRepo{Repository: base, conflicts: 2}
		uc := New(repo, pkgLog.NewNop(), Config{MaxWriteRetries: 3})
		if err := uc.AppendToDay(ctx, memory.AppendInput{Date: "2025-01-05", Section: memory.SectionAINotes, Text: "a"}); err != nil {
			t.Fatalf("AppendToDay: %v", err)
		}
		if repo.forced != 0 {
			t.Errorf("expected no forced write, got %d", repo.forced)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		repo := &conflictRepo{Repository: base, conflicts: 10}
		uc := New(repo, pkgLog.NewNop(), Config{MaxWriteRetries: 2})
		if err := uc.AppendToDay(ctx, memory.AppendInput{Date: "2025-01-05", Section: memory.SectionAINotes, Text: "b"}); err != nil {
			t.Fatalf("AppendToDay: %v", err)
		}
		if repo.forced != 1 {
			t.Errorf("expected one forced write, got %d", repo.forced)
		}
		content, _ := uc.ReadDay(ctx, "2025-01-05")
		if !strings.Contains(content, "-- a\n") || !strings.Contains(content, "-- b\n") {
			t.Errorf("entries lost:\n%s", content)
		}
	})
}
