package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/model"
	pkgLog "pelangi-assistant/pkg/log"
)

func newRepo(t *testing.T) conversation.Repository {
	t.Helper()
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "db", "conversations.db"), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAppendAndHistory(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx,
			conversation.Message{ConversationID: "60123", PushName: "Ali", Role: model.RoleUser, Content: fmt.Sprintf("q%d", i), Timestamp: base.Add(time.Duration(i) * time.Minute)},
			conversation.Message{ConversationID: "60123", Role: model.RoleAssistant, Content: fmt.Sprintf("a%d", i), Timestamp: base.Add(time.Duration(i)*time.Minute + time.Second)},
		)
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := repo.Append(ctx, conversation.Message{ConversationID: "other", Role: model.RoleUser, Content: "hi"}); err != nil {
		t.Fatal(err)
	}

	turns, err := repo.History(ctx, "60123", 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := []string{"a3", "q4", "a4"}
	if len(turns) != len(want) {
		t.Fatalf("len = %d, want %d", len(turns), len(want))
	}
	for i, w := range want {
		if turns[i].Content != w {
			t.Errorf("turn %d = %q, want %q", i, turns[i].Content, w)
		}
	}
	if !turns[2].Timestamp.Equal(base.Add(4*time.Minute + time.Second)) {
		t.Errorf("timestamp = %v", turns[2].Timestamp)
	}

	none, err := repo.History(ctx, "60123", 0)
	if err != nil || none != nil {
		t.Errorf("limit 0 = %v, %v", none, err)
	}
}

func TestAppend_Validation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	if err := repo.Append(ctx, conversation.Message{Role: model.RoleUser, Content: "x"}); !errors.Is(err, conversation.ErrEmptyConversationID) {
		t.Errorf("err = %v", err)
	}
	if err := repo.Append(ctx, conversation.Message{ConversationID: "c", Role: "system", Content: "x"}); !errors.Is(err, conversation.ErrInvalidRole) {
		t.Errorf("err = %v", err)
	}
	if _, err := repo.History(ctx, "", 5); !errors.Is(err, conversation.ErrEmptyConversationID) {
		t.Errorf("err = %v", err)
	}
}

func TestAppend_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Append(ctx, conversation.Message{ConversationID: "c", Role: model.RoleUser, Content: fmt.Sprint(i)}); err != nil {
				t.Errorf("Append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	turns, err := repo.History(ctx, "c", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 20 {
		t.Errorf("turns = %d, want 20", len(turns))
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	msgs := []conversation.Message{
		{ConversationID: "a", Role: model.RoleUser, Content: "wifi?", Timestamp: day.Add(time.Hour)},
		{ConversationID: "a", Role: model.RoleAssistant, Content: "...", Timestamp: day.Add(time.Hour), Flags: conversation.Flags{Category: "facilities", Source: model.SourceFuzzy}},
		{ConversationID: "b", Role: model.RoleUser, Content: "tq", Timestamp: day.Add(2 * time.Hour)},
		{ConversationID: "b", Role: model.RoleAssistant, Content: "sorry", Timestamp: day.Add(2 * time.Hour), Flags: conversation.Flags{Category: "general", Source: model.SourceLLM, Degraded: true}},
		{ConversationID: "a", Role: model.RoleUser, Content: "thanks", Timestamp: day.Add(3 * time.Hour)},
		{ConversationID: "a", Role: model.RoleAssistant, Content: "...", Timestamp: day.Add(3 * time.Hour), Flags: conversation.Flags{Category: "general", Source: model.SourceLLM}},
		{ConversationID: "c", Role: model.RoleUser, Content: "next day", Timestamp: day.Add(25 * time.Hour)},
	}
	if err := repo.Append(ctx, msgs...); err != nil {
		t.Fatal(err)
	}

	st, err := repo.Stats(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.GuestMessages != 3 || st.Replies != 3 || st.Guests != 2 || st.Degraded != 1 {
		t.Errorf("totals = %+v", st)
	}
	if st.BySource["llm"] != 2 || st.BySource["fuzzy"] != 1 {
		t.Errorf("by source = %v", st.BySource)
	}
	if st.ByCategory["general"] != 2 || st.ByCategory["facilities"] != 1 {
		t.Errorf("by category = %v", st.ByCategory)
	}

	empty, err := repo.Stats(ctx, day.AddDate(1, 0, 0), day.AddDate(1, 0, 1))
	if err != nil || empty.GuestMessages != 0 || empty.Guests != 0 {
		t.Errorf("empty = %+v, %v", empty, err)
	}
}
