package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/memory"
	pkgLog "pelangi-assistant/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeMemory struct {
	days map[string]string
	err  error
}

func (f *fakeMemory) ReadDay(_ context.Context, date string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	c, ok := f.days[date]
	if !ok {
		return "", memory.ErrDayNotFound
	}
	return c, nil
}

type fakeStats struct {
	stats    conversation.Stats
	from, to time.Time
}

func (f *fakeStats) Stats(_ context.Context, from, to time.Time) (conversation.Stats, error) {
	f.from, f.to = from, to
	return f.stats, nil
}

type fakeSender struct {
	name string
	err  error
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) Name() string { return f.name }

func (f *fakeSender) Send(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeBot struct {
	chats []int64
}

func (b *fakeBot) SendMessage(chatID int64, _ string) error {
	b.chats = append(b.chats, chatID)
	return nil
}

var myt = time.FixedZone("MYT", 8*3600)

func newGenerator(mem *fakeMemory, st *fakeStats) *Generator {
	g := NewGenerator(mem, st, myt, pkgLog.NewNop())
	g.now = func() time.Time { return time.Date(2025, 1, 2, 9, 0, 0, 0, myt) }
	return g
}

func TestGenerate(t *testing.T) {
	day := memory.NewDay("2025-01-01")
	day.Prepend(memory.SectionIssuesReported, memory.Entry{Time: "14:05", Text: "Room 12: no hot water"})
	mem := &fakeMemory{days: map[string]string{"2025-01-01": day.Render()}}
	st := &fakeStats{stats: conversation.Stats{
		GuestMessages: 12, Guests: 4, Replies: 12, Degraded: 1,
		BySource:   map[string]int{"fuzzy": 7, "llm": 5},
		ByCategory: map[string]int{"facilities": 7, "general": 5},
	}}
	g := newGenerator(mem, st)

	rep, err := g.Generate(context.Background(), "2025-01-01")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"Guest messages: 12",
		"Distinct guests: 4",
		"By stage: fuzzy=7, llm=5",
		"ISSUES REPORTED\n  14:05 Room 12: no hot water",
		"STAFF NOTES\n  (none)",
	} {
		if !strings.Contains(rep.Text, want) {
			t.Errorf("report missing %q:\n%s", want, rep.Text)
		}
	}
	if !st.from.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, myt)) || !st.to.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, myt)) {
		t.Errorf("stats window = %v..%v", st.from, st.to)
	}
}

func TestGenerate_MissingDayAndErrors(t *testing.T) {
	g := newGenerator(&fakeMemory{}, &fakeStats{})
	rep, err := g.Generate(context.Background(), "2025-01-01")
	if err != nil {
		t.Fatalf("missing day should still report: %v", err)
	}
	if !strings.Contains(rep.Text, "AI NOTES\n  (none)") {
		t.Errorf("text = %s", rep.Text)
	}

	if _, err := g.Generate(context.Background(), "yesterday"); !errors.Is(err, memory.ErrInvalidDate) {
		t.Errorf("err = %v", err)
	}

	broken := newGenerator(&fakeMemory{err: errors.New("disk gone")}, &fakeStats{})
	if _, err := broken.Generate(context.Background(), "2025-01-01"); err == nil {
		t.Error("expected read error")
	}
}

func TestServiceRun(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	good := &fakeSender{name: "telegram"}
	bad := &fakeSender{name: "webhook", err: errors.New("502")}
	svc := NewService(newGenerator(&fakeMemory{}, &fakeStats{}), NewFileArchive(dir), []Sender{good, bad}, nil, pkgLog.NewNop())

	res, err := svc.Run(ctx, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Report.Date != "2025-01-01" {
		t.Errorf("default date = %q, want yesterday", res.Report.Date)
	}
	if len(res.Delivered) != 1 || res.Delivered[0] != "telegram" || res.Failed["webhook"] == "" {
		t.Errorf("result = %+v", res)
	}
	saved, err := os.ReadFile(res.SavedTo)
	if err != nil || string(saved) != res.Report.Text {
		t.Errorf("archive = %q, %v", res.SavedTo, err)
	}

	allBad := NewService(newGenerator(&fakeMemory{}, &fakeStats{}), NewFileArchive(dir), []Sender{bad}, nil, pkgLog.NewNop())
	if _, err := allBad.Run(ctx, "2025-01-01"); !errors.Is(err, ErrDeliveryFailed) {
		t.Errorf("err = %v", err)
	}

	fileOnly := NewService(newGenerator(&fakeMemory{}, &fakeStats{}), NewFileArchive(dir), nil, nil, pkgLog.NewNop())
	if _, err := fileOnly.Run(ctx, "2025-01-01"); err != nil {
		t.Errorf("archive-only run failed: %v", err)
	}
}

func TestServiceRun_AlertsOnFailure(t *testing.T) {
	alert := &fakeSender{name: "telegram"}
	svc := NewService(newGenerator(&fakeMemory{err: errors.New("disk gone")}, &fakeStats{}), nil, nil, []Sender{alert}, pkgLog.NewNop())

	if _, err := svc.Run(context.Background(), "2025-01-01"); err == nil {
		t.Fatal("expected generation error")
	}
	if len(alert.sent) != 1 || !strings.Contains(alert.sent[0], "disk gone") {
		t.Errorf("alerts = %v", alert.sent)
	}
}

func TestTelegramSender(t *testing.T) {
	bot := &fakeBot{}
	if err := NewTelegramSender(bot, []int64{1, 2}).Send(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}
	if len(bot.chats) != 2 {
		t.Errorf("chats = %v", bot.chats)
	}
	if err := NewTelegramSender(bot, nil).Send(context.Background(), "hi"); err == nil {
		t.Error("expected error without chat ids")
	}
}

func TestWebhookSender(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		if got["message"] == "fail" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := NewWebhookSender(ts.URL, ts.Client())
	if err := s.Send(context.Background(), "report body"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got["message"] != "report body" {
		t.Errorf("payload = %v", got)
	}
	if err := s.Send(context.Background(), "fail"); err == nil {
		t.Error("expected status error")
	}
}

type countingRunner struct {
	mu    sync.Mutex
	calls int
}

func (r *countingRunner) Run(context.Context, string) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return Result{}, errors.New("ignored")
}

func TestScheduler(t *testing.T) {
	if _, err := NewScheduler("not a spec", myt, &countingRunner{}, pkgLog.NewNop()); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("err = %v", err)
	}

	runner := &countingRunner{}
	s, err := NewScheduler(DefaultSchedule, myt, runner, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	next := s.Next().In(myt)
	if next.Hour() != 9 || next.Minute() != 0 {
		t.Errorf("next = %v", next)
	}

	s.fire()
	if runner.calls != 1 {
		t.Errorf("calls = %d", runner.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
