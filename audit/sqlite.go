// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteLog records events as rows in an embedded SQLite database. The
// table is insert-only; nothing in this package updates or deletes rows.
type SQLiteLog struct {
	db *sql.DB
}

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_event (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at TEXT NOT NULL,
    kind TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT ''
);
`

// OpenSQLiteLog opens (creating if needed) the audit database at path.
func OpenSQLiteLog(path string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if _, err := db.Exec(auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audit schema: %w", err)
	}
	return &SQLiteLog{db: db}, nil
}

// Record inserts one event row. Insert failures are logged and swallowed;
// the audited action has already committed.
func (l *SQLiteLog) Record(kind, detail string) {
	_, err := l.db.Exec(`
		INSERT INTO audit_event (recorded_at, kind, detail)
		VALUES ($1, $2, $3)
	`, time.Now().Format(time.RFC3339), kind, detail)
	if err != nil {
		slog.Error("audit log insert failed", "error", err)
	}
}

// Close releases the underlying database handle.
func (l *SQLiteLog) Close() error {
	return l.db.Close()
}
