package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"pelangi-assistant/internal/conversation"
	pkgLog "pelangi-assistant/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     pkgLog.Logger
	now   func() time.Time
	newID func() string
}

// New opens (creating if needed) the SQLite conversation log at path.
func New(ctx context.Context, path string, l pkgLog.Logger) (conversation.Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: create database directory: %w", LogPrefixNew, err)
		}
	}

	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + dsnPragmas
	} else {
		dsn += "?" + dsnPragmas
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open database: %w", LogPrefixNew, err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping database: %w", LogPrefixNew, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: create schema: %w", LogPrefixNew, err)
	}

	l.Infof(ctx, "%s: conversation log ready at %s", LogPrefixNew, path)
	return &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
