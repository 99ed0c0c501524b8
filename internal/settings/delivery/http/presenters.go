package http

import (
	"sort"
	"time"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
)

// --- Request DTOs ---

type putRouteReq struct {
	Intent     string `json:"-"`
	Action     string `json:"action"      binding:"required,oneof=static_reply llm_reply workflow"`
	WorkflowID string `json:"workflow_id"`
}

func (r putRouteReq) validate() error { return nil }

func (r putRouteReq) toEntry() model.RoutingEntry {
	return model.RoutingEntry{Intent: r.Intent, Action: model.Action(r.Action), WorkflowID: r.WorkflowID}
}

// ---

type stepReq struct {
	ID         string            `json:"id"         binding:"required"`
	Message    map[string]string `json:"message"    binding:"required"`
	Validation string            `json:"validation"`
}

type putWorkflowReq struct {
	ID            string    `json:"-"`
	Name          string    `json:"name"`
	Steps         []stepReq `json:"steps"          binding:"required,min=1,dive"`
	MemorySection string    `json:"memory_section"`
}

func (r putWorkflowReq) validate() error { return nil }

func (r putWorkflowReq) toDefinition() model.WorkflowDefinition {
	def := model.WorkflowDefinition{ID: r.ID, Name: r.Name, MemorySection: r.MemorySection}
	for _, s := range r.Steps {
		msg := make(model.Localized, len(s.Message))
		for lang, text := range s.Message {
			msg[model.Language(lang)] = text
		}
		def.Steps = append(def.Steps, model.WorkflowStep{ID: s.ID, Message: msg, Validation: s.Validation})
	}
	return def
}

// ---

type putKnowledgeReq struct {
	Name    string `json:"-"`
	Content string `json:"content" binding:"required"`
}

func (r putKnowledgeReq) validate() error { return nil }

// --- Response DTOs ---

type snapshotResp struct {
	LoadedAt  time.Time `json:"loaded_at"`
	Intents   int       `json:"intents"`
	Routes    []string  `json:"routes"`
	Workflows []string  `json:"workflows"`
	Files     int       `json:"knowledge_files"`
}

func newSnapshotResp(s *settings.Snapshot) snapshotResp {
	resp := snapshotResp{
		LoadedAt:  s.LoadedAt,
		Intents:   len(s.Intents),
		Routes:    make([]string, 0, len(s.Routes)),
		Workflows: make([]string, 0, len(s.Workflows)),
		Files:     len(s.Knowledge.Files()),
	}
	for intent := range s.Routes {
		resp.Routes = append(resp.Routes, intent)
	}
	for id := range s.Workflows {
		resp.Workflows = append(resp.Workflows, id)
	}
	sort.Strings(resp.Routes)
	sort.Strings(resp.Workflows)
	return resp
}

// ---

type knowledgeFileResp struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Size     int    `json:"size"`
}

type knowledgeResp struct {
	Files        []knowledgeFileResp `json:"files"`
	Topics       []model.Topic       `json:"topics"`
	DefaultTopic string              `json:"default_topic,omitempty"`
}

func newKnowledgeResp(s *settings.Snapshot) knowledgeResp {
	files := s.Knowledge.Files()
	resp := knowledgeResp{
		Files:        make([]knowledgeFileResp, 0, len(files)),
		Topics:       s.Knowledge.Topics(),
		DefaultTopic: s.Knowledge.DefaultTopic(),
	}
	for _, f := range files {
		resp.Files = append(resp.Files, knowledgeFileResp{
			Name:     f.Name,
			Category: string(f.Category),
			Priority: string(f.Priority),
			Size:     len(f.Content),
		})
	}
	return resp
}
