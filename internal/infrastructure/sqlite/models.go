package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/clipboard"
)

// clipboardModel represents the database row for the clipboard table.
// Items are JSON encoded; the copy timestamp is a Unix timestamp.
type clipboardModel struct {
	SlotKey  string
	Items    string // JSON encoded []clipboard.Item
	CopiedAt int64  // Unix timestamp
}

// toClipboardModel converts a snapshot to a database row.
func toClipboardModel(key string, snap clipboard.Snapshot) (*clipboardModel, error) {
	items, err := json.Marshal(snap.Items)
	if err != nil {
		return nil, fmt.Errorf("encoding clipboard items: %w", err)
	}
	return &clipboardModel{
		SlotKey:  key,
		Items:    string(items),
		CopiedAt: snap.CopiedAt.Unix(),
	}, nil
}

// toSnapshot converts a database row back to a snapshot.
func (m *clipboardModel) toSnapshot() (clipboard.Snapshot, error) {
	var items []clipboard.Item
	if err := json.Unmarshal([]byte(m.Items), &items); err != nil {
		return clipboard.Snapshot{}, fmt.Errorf("decoding clipboard items: %w", err)
	}
	return clipboard.Snapshot{
		Items:    items,
		CopiedAt: time.Unix(m.CopiedAt, 0),
	}, nil
}
