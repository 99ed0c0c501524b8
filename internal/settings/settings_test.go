package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"pelangi-assistant/internal/model"
	pkgLog "pelangi-assistant/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const intentsYAML = `
classifier:
  fuzzy_threshold: 0.75
intents:
  - category: checkin
    enabled: true
    patterns: ['\bcheck[\s-]?in\b']
    keywords:
      en: [arrive]
  - category: complaint
    enabled: true
    memory_section: Issues Reported
    keywords:
      en: [broken, dirty]
`

const routingYAML = `
routes:
  - intent: checkin
    action: static_reply
  - intent: complaint
    action: workflow
    workflow_id: complaint_intake
static_replies:
  checkin:
    en: Check-in is from 3pm.
apologies:
  en: Sorry, please try again.
`

const workflowsYAML = `
workflows:
  - id: complaint_intake
    name: Complaint intake
    steps:
      - id: describe
        message:
          en: What happened?
      - id: location
        message:
          en: Which capsule?
  - id: unused
    name: Unused
    steps:
      - id: only
        message:
          en: Hello?
`

const knowledgeYAML = `
persona: You are the hostel assistant.
default_topic: faq
files:
  - name: routing.md
    category: system
    priority: always
  - name: persona.md
    category: core
    priority: always
  - name: faq.md
    priority: on_demand
  - name: internal.md
    priority: internal
topics:
  - name: faq
    file: faq.md
    triggers: [question]
`

func writeFixture(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		IntentsFile:             intentsYAML,
		RoutingFile:             routingYAML,
		WorkflowsFile:           workflowsYAML,
		KnowledgeFile:           knowledgeYAML,
		"knowledge/routing.md":  "routing rules",
		"knowledge/persona.md":  "be kind",
		"knowledge/faq.md":      "faq body",
		"knowledge/internal.md": "secret",
	}
	for k, v := range overrides {
		files[k] = v
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := New(context.Background(), dir, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_LoadsSnapshot(t *testing.T) {
	s := newStore(t, writeFixture(t, nil))
	snap := s.Current()

	if len(snap.Intents) != 2 || !snap.Index.Has("complaint") {
		t.Fatalf("unexpected intents %+v", snap.Intents)
	}
	if snap.Classifier.FuzzyThreshold != 0.75 {
		t.Errorf("fuzzy threshold = %v", snap.Classifier.FuzzyThreshold)
	}
	if snap.Classifier.SemanticThreshold != 0.80 || snap.Classifier.LLMConfidence != DefaultLLMConfidence {
		t.Errorf("defaults not applied: %+v", snap.Classifier)
	}
	if r, ok := snap.Route("complaint"); !ok || r.WorkflowID != "complaint_intake" {
		t.Errorf("unexpected route %+v", r)
	}
	if got := snap.StaticReplies["checkin"].Pick(model.LanguageMalay); got != "Check-in is from 3pm." {
		t.Errorf("static reply = %q", got)
	}
	if f, ok := snap.Knowledge.Get("faq.md"); !ok || f.Content != "faq body" {
		t.Errorf("faq not loaded: %+v", f)
	}
	if snap.Persona != "You are the hostel assistant." {
		t.Errorf("persona = %q", snap.Persona)
	}
}

func TestBuild_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		problem   string
	}{
		{
			name: "route to missing workflow",
			overrides: map[string]string{RoutingFile: `
routes:
  - intent: checkin
    action: workflow
    workflow_id: nope
`},
			problem: "workflow not found",
		},
		{
			name: "bad regex",
			overrides: map[string]string{IntentsFile: `
intents:
  - category: checkin
    enabled: true
    patterns: ['(']
`},
			problem: "bad pattern",
		},
		{
			name: "duplicate category",
			overrides: map[string]string{IntentsFile: `
intents:
  - category: checkin
    enabled: true
  - category: checkin
    enabled: true
`},
			problem: "duplicate category",
		},
		{
			name:      "missing knowledge file",
			overrides: map[string]string{"knowledge/faq.md": ""},
			problem:   "knowledge file not found",
		},
		{
			name:      "topic on always file",
			overrides: map[string]string{KnowledgeFile: strings.Replace(knowledgeYAML, "file: faq.md", "file: persona.md", 1)},
			problem:   "must be on_demand",
		},
		{
			name:      "missing intents file",
			overrides: map[string]string{IntentsFile: ""},
			problem:   "intents.yaml is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An empty override leaves the file out of the fixture.
			dir := writeFixture(t, tt.overrides)
			_, err := LoadSnapshot(context.Background(), dir)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.problem) {
				t.Errorf("error %q does not mention %q", err, tt.problem)
			}
		})
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	dir := writeFixture(t, nil)
	s := newStore(t, dir)
	before := s.Current()

	if err := os.WriteFile(filepath.Join(dir, IntentsFile), []byte("intents: [[["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	if s.Current() != before {
		t.Error("snapshot should not change on failed reload")
	}
}

func TestDeleteWorkflow(t *testing.T) {
	ctx := context.Background()
	dir := writeFixture(t, nil)
	s := newStore(t, dir)

	t.Run("referenced workflow is rejected", func(t *testing.T) {
		_, err := s.DeleteWorkflow(ctx, "complaint_intake")
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected configuration error, got %v", err)
		}
		if _, ok := s.Current().Workflow("complaint_intake"); !ok {
			t.Error("workflow should still exist")
		}
	})

	t.Run("unknown workflow", func(t *testing.T) {
		if _, err := s.DeleteWorkflow(ctx, "ghost"); !errors.Is(err, ErrWorkflowNotFound) {
			t.Errorf("expected ErrWorkflowNotFound, got %v", err)
		}
	})

	t.Run("unreferenced workflow is removed and persisted", func(t *testing.T) {
		if _, err := s.DeleteWorkflow(ctx, "unused"); err != nil {
			t.Fatalf("DeleteWorkflow: %v", err)
		}
		reloaded, err := LoadSnapshot(ctx, dir)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if _, ok := reloaded.Workflow("unused"); ok {
			t.Error("workflow still on disk")
		}
	})
}

func TestPutRoutingEntry(t *testing.T) {
	ctx := context.Background()
	dir := writeFixture(t, nil)
	s := newStore(t, dir)
	original, _ := os.ReadFile(filepath.Join(dir, RoutingFile))

	_, err := s.PutRoutingEntry(ctx, model.RoutingEntry{Intent: "checkin", Action: model.ActionWorkflow, WorkflowID: "missing"})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if after, _ := os.ReadFile(filepath.Join(dir, RoutingFile)); string(after) != string(original) {
		t.Error("rejected write must not touch disk")
	}

	snap, err := s.PutRoutingEntry(ctx, model.RoutingEntry{Intent: "wifi", Action: model.ActionLLMReply})
	if err != nil {
		t.Fatalf("PutRoutingEntry: %v", err)
	}
	if _, ok := snap.Route("wifi"); !ok || s.Current() != snap {
		t.Error("new route not active")
	}
	reloaded, err := LoadSnapshot(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.Route("wifi"); !ok {
		t.Error("new route not persisted")
	}
	if _, ok := reloaded.Route("checkin"); !ok {
		t.Error("existing routes lost")
	}
}

func TestPutWorkflow_Invalid(t *testing.T) {
	s := newStore(t, writeFixture(t, nil))
	_, err := s.PutWorkflow(context.Background(), model.WorkflowDefinition{ID: "empty", Name: "Empty"})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestWriteKnowledgeFile(t *testing.T) {
	ctx := context.Background()
	dir := writeFixture(t, nil)
	s := newStore(t, dir)

	if _, err := s.WriteKnowledgeFile(ctx, "faq.md", "new faq"); err != nil {
		t.Fatalf("WriteKnowledgeFile: %v", err)
	}
	if f, _ := s.Current().Knowledge.Get("faq.md"); f.Content != "new faq" {
		t.Errorf("snapshot content = %q", f.Content)
	}
	data, _ := os.ReadFile(filepath.Join(dir, KnowledgeDir, "faq.md"))
	if string(data) != "new faq" {
		t.Errorf("disk content = %q", data)
	}

	for _, name := range []string{"undeclared.md", "../intents.yaml"} {
		if _, err := s.WriteKnowledgeFile(ctx, name, "x"); !errors.Is(err, ErrKnowledgeFileNotFound) {
			t.Errorf("%s: expected ErrKnowledgeFileNotFound, got %v", name, err)
		}
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := writeFixture(t, nil)
	s := newStore(t, dir)
	before := s.Current()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, 20*time.Millisecond) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, KnowledgeDir, "faq.md"), []byte("edited"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.Current() == before && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if f, _ := s.Current().Knowledge.Get("faq.md"); f.Content != "edited" {
		t.Errorf("watch did not reload, content = %q", f.Content)
	}
}

func TestOnChange(t *testing.T) {
	s := newStore(t, writeFixture(t, nil))
	var got *Snapshot
	s.OnChange(func(snap *Snapshot) { got = snap })
	snap, err := s.Reload(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != snap {
		t.Error("OnChange not invoked with the new snapshot")
	}
}
