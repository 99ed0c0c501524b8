package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/middleware"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
	pkgLog "pelangi-assistant/pkg/log"
	"pelangi-assistant/pkg/response"
)

func testStore(t *testing.T) (*settings.Store, string) {
	t.Helper()
	snap, err := settings.Build(settings.Source{
		Intents: settings.IntentsDocument{Intents: []model.IntentDefinition{
			{Category: "complaint", Enabled: true, Patterns: []string{`\bcomplain`}},
			{Category: "checkin", Enabled: true, Patterns: []string{`\bcheck[\s-]?in\b`}},
		}},
		Routing: settings.RoutingDocument{Routes: []model.RoutingEntry{
			{Intent: "complaint", Action: model.ActionWorkflow, WorkflowID: "report_issue"},
		}},
		Workflows: settings.WorkflowsDocument{Workflows: []model.WorkflowDefinition{{
			ID:    "report_issue",
			Steps: []model.WorkflowStep{{ID: "room", Message: model.Localized{"en": "Which room?"}}},
		}}},
		Knowledge: settings.KnowledgeDocument{
			Files:  []settings.KnowledgeEntry{{Name: "faq.md", Priority: model.PriorityOnDemand}},
			Topics: []model.Topic{{Name: "faq", File: "faq.md"}},
		},
		Contents: map[string]string{"faq.md": "Breakfast 8-10am."},
	})
	if err != nil {
		t.Fatalf("settings.Build: %v", err)
	}
	dir := t.TempDir()
	return settings.NewFromSnapshot(dir, snap, pkgLog.NewNop()), dir
}

func newTestRouter(uc settings.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := pkgLog.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPutRoute(t *testing.T) {
	store, dir := testStore(t)
	r := newTestRouter(store)

	w := do(r, http.MethodPut, "/api/v1/settings/routing/checkin", `{"action":"static_reply"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if e, ok := store.Current().Route("checkin"); !ok || e.Action != model.ActionStaticReply {
		t.Errorf("route not applied: %+v", e)
	}
	if _, err := os.Stat(filepath.Join(dir, settings.RoutingFile)); err != nil {
		t.Errorf("routing.yaml not persisted: %v", err)
	}
}

func TestPutRoute_DanglingWorkflowRejected(t *testing.T) {
	store, _ := testStore(t)
	before := store.Current()
	r := newTestRouter(store)

	w := do(r, http.MethodPut, "/api/v1/settings/routing/checkin", `{"action":"workflow","workflow_id":"nope"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data, ok := resp.Data.(map[string]interface{}); !ok || data["problems"] == nil {
		t.Errorf("problems missing from %+v", resp.Data)
	}
	if store.Current() != before {
		t.Error("rejected writes must keep the active snapshot")
	}
}

func TestPutRoute_BadAction(t *testing.T) {
	store, _ := testStore(t)
	w := do(newTestRouter(store), http.MethodPut, "/api/v1/settings/routing/checkin", `{"action":"teleport"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestWorkflowRoutes(t *testing.T) {
	store, _ := testStore(t)
	r := newTestRouter(store)

	w := do(r, http.MethodPut, "/api/v1/settings/workflows/late_checkout",
		`{"name":"Late checkout","steps":[{"id":"time","message":{"en":"What time?","ms":"Pukul berapa?"}}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", w.Code, w.Body.String())
	}
	def, ok := store.Current().Workflow("late_checkout")
	if !ok || def.Steps[0].Text(model.LanguageMalay) != "Pukul berapa?" {
		t.Errorf("workflow not applied: %+v", def)
	}

	if w := do(r, http.MethodDelete, "/api/v1/settings/workflows/report_issue", ""); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("delete referenced status = %d, want 422", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/settings/workflows/ghost", ""); w.Code != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/settings/workflows/late_checkout", ""); w.Code != http.StatusOK {
		t.Errorf("delete status = %d, body %s", w.Code, w.Body.String())
	}
	if _, ok := store.Current().Workflow("late_checkout"); ok {
		t.Error("workflow should be gone")
	}
}

func TestKnowledgeRoutes(t *testing.T) {
	store, dir := testStore(t)
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/v1/knowledge", "")
	var list struct {
		Data knowledgeResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list.Data.Files) != 1 || list.Data.Files[0].Name != "faq.md" || list.Data.DefaultTopic != "faq" {
		t.Errorf("unexpected listing %+v", list.Data)
	}

	if w := do(r, http.MethodPut, "/api/v1/knowledge/faq.md", `{"content":"Breakfast 7-10am."}`); w.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", w.Code, w.Body.String())
	}
	if f, _ := store.Current().Knowledge.Get("faq.md"); f.Content != "Breakfast 7-10am." {
		t.Errorf("content = %q", f.Content)
	}
	if b, err := os.ReadFile(filepath.Join(dir, settings.KnowledgeDir, "faq.md")); err != nil || string(b) != "Breakfast 7-10am." {
		t.Errorf("file not persisted: %v", err)
	}

	if w := do(r, http.MethodPut, "/api/v1/knowledge/secret.md", `{"content":"x"}`); w.Code != http.StatusNotFound {
		t.Errorf("undeclared file status = %d, want 404", w.Code)
	}
}

func TestReload_KeepsSnapshotOnError(t *testing.T) {
	store, _ := testStore(t)
	before := store.Current()

	w := do(newTestRouter(store), http.MethodPost, "/api/v1/settings/reload", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	if store.Current() != before {
		t.Error("failed reload must keep the active snapshot")
	}
}
