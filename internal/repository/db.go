package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

type Config struct {
	Path        string
	DialTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	record_count INTEGER NOT NULL,
	failed_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	document_id   TEXT PRIMARY KEY,
	run_id        TEXT NOT NULL REFERENCES runs(id),
	document_name TEXT NOT NULL,
	bank          TEXT NOT NULL,
	subtype       TEXT NOT NULL,
	avg_quality   REAL NOT NULL,
	warnings      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS record_fields (
	document_id TEXT NOT NULL REFERENCES records(document_id),
	field       TEXT NOT NULL,
	value       TEXT NOT NULL,
	PRIMARY KEY (document_id, field)
);
CREATE TABLE IF NOT EXISTS failed_documents (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	document_id TEXT NOT NULL,
	name        TEXT NOT NULL,
	reason      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trace_entries (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	document_id TEXT NOT NULL,
	field       TEXT NOT NULL,
	stage       TEXT NOT NULL,
	input       TEXT NOT NULL,
	output      TEXT NOT NULL,
	matched     INTEGER NOT NULL,
	seq         INTEGER NOT NULL,
	at          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trace_doc_field ON trace_entries(document_id, field, seq);
`

// Open opens (creating if needed) the sqlite audit database and applies the
// schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	logger.Info("opening audit database", "path", cfg.Path)
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		logger.Error("failed to open audit database", "error", err)
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	// the modernc driver serializes writes itself; a single connection avoids
	// SQLITE_BUSY on concurrent transactions
	db.SetMaxOpenConns(1)

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply audit schema: %w", err)
	}
	logger.Info("audit database ready")
	return db, nil
}

// Close closes the database gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close audit database", "error", err)
		return
	}
	logger.Info("audit database closed")
}
