package routing

import (
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
)

// SnapshotSource provides the current settings.
type SnapshotSource interface {
	Current() *settings.Snapshot
}

// Router maps a category to an action using the current routing table.
type Router struct {
	settings SnapshotSource
}

// New creates a Router.
func New(settings SnapshotSource) *Router {
	return &Router{settings: settings}
}

// Route is total: a category without an entry gets an LLM reply.
func (r *Router) Route(category string) model.RoutingEntry {
	return r.RouteWith(r.settings.Current(), category)
}

// RouteWith resolves category in snap.
func (r *Router) RouteWith(snap *settings.Snapshot, category string) model.RoutingEntry {
	if e, ok := snap.Route(category); ok {
		return e
	}
	return model.RoutingEntry{Intent: category, Action: model.ActionLLMReply}
}

// StaticReply returns the canned reply for category in lang, falling back to
// English and then any configured language.
func (r *Router) StaticReply(category string, lang model.Language) (string, bool) {
	return r.StaticReplyWith(r.settings.Current(), category, lang)
}

// StaticReplyWith looks the reply up in snap.
func (r *Router) StaticReplyWith(snap *settings.Snapshot, category string, lang model.Language) (string, bool) {
	replies, ok := snap.StaticReplies[category]
	if !ok {
		return "", false
	}
	text := replies.Pick(lang)
	return text, text != ""
}
