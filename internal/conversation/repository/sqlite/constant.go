package sqlite

const (
	LogPrefixNew     = "internal.conversation.repository.sqlite.New"
	LogPrefixAppend  = "internal.conversation.repository.sqlite.Append"
	LogPrefixHistory = "internal.conversation.repository.sqlite.History"
	LogPrefixStats   = "internal.conversation.repository.sqlite.Stats"
)

const dsnPragmas = "_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	id              TEXT NOT NULL UNIQUE,
	conversation_id TEXT NOT NULL,
	push_name       TEXT NOT NULL DEFAULT '',
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	created_at      INTEGER NOT NULL,
	category        TEXT NOT NULL DEFAULT '',
	source          TEXT NOT NULL DEFAULT '',
	confidence      REAL NOT NULL DEFAULT 0,
	action          TEXT NOT NULL DEFAULT '',
	language        TEXT NOT NULL DEFAULT '',
	degraded        INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, seq);
CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at);
`
