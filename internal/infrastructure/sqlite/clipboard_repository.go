package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/clipboard"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
)

// ClipboardStore implements clipboard.Store using SQLite.
type ClipboardStore struct {
	db *sql.DB
}

// NewClipboardStore creates a ClipboardStore over an open database.
func NewClipboardStore(db *sql.DB) *ClipboardStore {
	return &ClipboardStore{db: db}
}

// Ensure ClipboardStore implements clipboard.Store.
var _ clipboard.Store = (*ClipboardStore)(nil)

// Save upserts the snapshot under the given slot key.
func (s *ClipboardStore) Save(ctx context.Context, key string, snap clipboard.Snapshot) error {
	model, err := toClipboardModel(key, snap)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO clipboard (slot_key, items, copied_at) VALUES (?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE SET items = excluded.items, copied_at = excluded.copied_at`,
		model.SlotKey, model.Items, model.CopiedAt,
	)
	if err != nil {
		return fmt.Errorf("saving clipboard slot: %w", err)
	}
	log.Debug(log.CatStore, "clipboard slot saved", "key", key)
	return nil
}

// Load reads the snapshot under the slot key. An absent slot returns
// (Snapshot{}, false, nil).
func (s *ClipboardStore) Load(ctx context.Context, key string) (clipboard.Snapshot, bool, error) {
	var model clipboardModel
	err := s.db.QueryRowContext(ctx,
		`SELECT slot_key, items, copied_at FROM clipboard WHERE slot_key = ?`, key,
	).Scan(&model.SlotKey, &model.Items, &model.CopiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return clipboard.Snapshot{}, false, nil
	}
	if err != nil {
		return clipboard.Snapshot{}, false, fmt.Errorf("loading clipboard slot: %w", err)
	}

	snap, err := model.toSnapshot()
	if err != nil {
		return clipboard.Snapshot{}, false, err
	}
	return snap, true, nil
}

// Clear removes the slot. Clearing an absent slot is not an error.
func (s *ClipboardStore) Clear(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM clipboard WHERE slot_key = ?`, key)
	if err != nil {
		return fmt.Errorf("clearing clipboard slot: %w", err)
	}
	log.Debug(log.CatStore, "clipboard slot cleared", "key", key)
	return nil
}
