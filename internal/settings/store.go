package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"pelangi-assistant/internal/model"
)

// Reload re-reads the settings directory. On any error the previous snapshot
// stays active.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := LoadSnapshot(ctx, s.dir)
	if err != nil {
		s.l.Warnf(ctx, "%s: keeping previous settings: %v", LogPrefixReload, err)
		return nil, err
	}
	s.swap(snap)
	s.l.Infof(ctx, "%s: %d intents, %d routes, %d workflows, %d knowledge files",
		LogPrefixReload, len(snap.Intents), len(snap.Routes), len(snap.Workflows), len(snap.Knowledge.Files()))
	return snap, nil
}

// PutRoutingEntry creates or replaces the route for entry.Intent.
func (s *Store) PutRoutingEntry(ctx context.Context, entry model.RoutingEntry) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.Current().Source
	routes := slices.Clone(src.Routing.Routes)
	if i := slices.IndexFunc(routes, func(r model.RoutingEntry) bool { return r.Intent == entry.Intent }); i >= 0 {
		routes[i] = entry
	} else {
		routes = append(routes, entry)
	}
	src.Routing.Routes = routes

	return s.commit(ctx, LogPrefixPutRoutingEntry, src, func() error {
		return writeYAML(filepath.Join(s.dir, RoutingFile), src.Routing)
	})
}

// PutWorkflow creates or replaces a workflow definition.
func (s *Store) PutWorkflow(ctx context.Context, def model.WorkflowDefinition) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.Current().Source
	defs := slices.Clone(src.Workflows.Workflows)
	if i := slices.IndexFunc(defs, func(w model.WorkflowDefinition) bool { return w.ID == def.ID }); i >= 0 {
		defs[i] = def
	} else {
		defs = append(defs, def)
	}
	src.Workflows.Workflows = defs

	return s.commit(ctx, LogPrefixPutWorkflow, src, func() error {
		return writeYAML(filepath.Join(s.dir, WorkflowsFile), src.Workflows)
	})
}

// DeleteWorkflow removes a workflow. It is rejected while any route still
// points at it.
func (s *Store) DeleteWorkflow(ctx context.Context, id string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.Current().Source
	i := slices.IndexFunc(src.Workflows.Workflows, func(w model.WorkflowDefinition) bool { return w.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w: %q", LogPrefixDeleteWorkflow, ErrWorkflowNotFound, id)
	}
	var users []string
	for _, r := range src.Routing.Routes {
		if r.Action == model.ActionWorkflow && r.WorkflowID == id {
			users = append(users, r.Intent)
		}
	}
	if len(users) > 0 {
		return nil, configurationError(fmt.Sprintf("workflow %q is referenced by routes %v", id, users))
	}
	src.Workflows.Workflows = slices.Delete(slices.Clone(src.Workflows.Workflows), i, i+1)

	return s.commit(ctx, LogPrefixDeleteWorkflow, src, func() error {
		return writeYAML(filepath.Join(s.dir, WorkflowsFile), src.Workflows)
	})
}

// WriteKnowledgeFile replaces the content of a file declared in knowledge.yaml.
func (s *Store) WriteKnowledgeFile(ctx context.Context, name, content string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.Current().Source
	declared := slices.ContainsFunc(src.Knowledge.Files, func(f KnowledgeEntry) bool { return f.Name == name })
	if !declared || validateFileName(name) != nil {
		return nil, fmt.Errorf("%s: %w: %q", LogPrefixWriteKnowledgeFile, ErrKnowledgeFileNotFound, name)
	}
	contents := make(map[string]string, len(src.Contents))
	for k, v := range src.Contents {
		contents[k] = v
	}
	contents[name] = content
	src.Contents = contents

	return s.commit(ctx, LogPrefixWriteKnowledgeFile, src, func() error {
		dir := filepath.Join(s.dir, KnowledgeDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		return writeAtomic(filepath.Join(dir, name), []byte(content))
	})
}

// commit validates src, persists it and swaps it in, in that order.
// Must be called with mu held.
func (s *Store) commit(ctx context.Context, prefix string, src Source, persist func() error) (*Snapshot, error) {
	snap, err := Build(src)
	if err != nil {
		return nil, err
	}
	if err := persist(); err != nil {
		s.l.Errorf(ctx, "%s: persist: %v", prefix, err)
		return nil, fmt.Errorf("%s: persist: %w", prefix, err)
	}
	s.swap(snap)
	return snap, nil
}
