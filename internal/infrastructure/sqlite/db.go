// Package sqlite implements the durable clipboard store. Clipboard
// snapshots survive an editor restart by being persisted to a small
// embedded database under a fixed slot key.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Schema is the clipboard table. One row per slot; the engine uses a single
// fixed slot, but the key column keeps the table general.
const Schema = `
CREATE TABLE IF NOT EXISTS clipboard (
	slot_key TEXT PRIMARY KEY,
	items TEXT NOT NULL,
	copied_at INTEGER NOT NULL
);
`

// Open opens (creating if needed) the clipboard database at path and
// applies the schema. The caller owns the returned handle.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening clipboard store: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying clipboard schema: %w", err)
	}
	return db, nil
}

// OpenMemory opens an in-memory clipboard database. Used by tests and by
// the engine when no durable path is configured.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory clipboard store: %w", err)
	}
	// Every pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying clipboard schema: %w", err)
	}
	return db, nil
}
