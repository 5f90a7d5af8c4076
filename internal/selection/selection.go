// Package selection tracks which clips are active in the editor. It keeps
// an ordered set of clip ids plus a derived primary id that is always the
// first element of the set (or empty when nothing is selected), and it is
// kept consistent with the model as clips are removed or split.
package selection

import (
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// Manager holds the ordered selection set.
type Manager struct {
	ids []string
}

// NewManager creates an empty selection.
func NewManager() *Manager {
	return &Manager{}
}

// Set replaces the selection with the given ids, deduplicated while
// preserving first-occurrence order.
func (m *Manager) Set(ids []string) {
	seen := make(map[string]struct{}, len(ids))
	m.ids = m.ids[:0]
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
	log.Debug(log.CatSelection, "selection set", "count", len(m.ids))
}

// Toggle adds the id to the selection if absent, removes it if present.
func (m *Manager) Toggle(id string) {
	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			return
		}
	}
	m.ids = append(m.ids, id)
}

// Clear empties the selection.
func (m *Manager) Clear() {
	m.ids = m.ids[:0]
}

// Remove drops the given ids from the selection, preserving order of the
// rest. Called by the state layer when clips are deleted.
func (m *Manager) Remove(ids ...string) {
	if len(ids) == 0 || len(m.ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := m.ids[:0]
	for _, id := range m.ids {
		if _, ok := drop[id]; ok {
			continue
		}
		kept = append(kept, id)
	}
	m.ids = kept
}

// SelectRange selects the closed interval between two clips in timeline
// order. The clips argument is the model flattened across all tracks and
// sorted by TimelineStart, so the range intentionally spans tracks. If
// either endpoint id is not present the selection is left unchanged.
func (m *Manager) SelectRange(clips []timeline.Clip, startID, endID string) bool {
	startIdx, endIdx := -1, -1
	for i, c := range clips {
		if c.ID == startID {
			startIdx = i
		}
		if c.ID == endID {
			endIdx = i
		}
	}
	if startIdx == -1 || endIdx == -1 {
		log.Debug(log.CatSelection, "range endpoints not found",
			"start", startID, "end", endID)
		return false
	}
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}

	ids := make([]string, 0, endIdx-startIdx+1)
	for _, c := range clips[startIdx : endIdx+1] {
		ids = append(ids, c.ID)
	}
	m.Set(ids)
	return true
}

// IDs returns a copy of the ordered selection set.
func (m *Manager) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// PrimaryID returns the first selected id, or "" when the selection is
// empty. This equivalence holds after every selection mutation.
func (m *Manager) PrimaryID() string {
	if len(m.ids) == 0 {
		return ""
	}
	return m.ids[0]
}

// Contains reports whether the id is selected.
func (m *Manager) Contains(id string) bool {
	for _, existing := range m.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected clips.
func (m *Manager) Len() int {
	return len(m.ids)
}
