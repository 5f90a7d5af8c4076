package clipboard

import (
	"context"
	"time"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/cachemanager"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
)

// SlotKey is the fixed key the engine's single clipboard slot lives under.
const SlotKey = "timeline-clipboard"

// Store is the durable backing for clipboard snapshots. Implementations
// must treat an absent slot as (Snapshot{}, false, nil), not an error.
type Store interface {
	Save(ctx context.Context, key string, snap Snapshot) error
	Load(ctx context.Context, key string) (Snapshot, bool, error)
	Clear(ctx context.Context, key string) error
}

// Service is the clipboard. The in-memory snapshot is authoritative;
// the durable store is a fire-and-forget mirror whose failures are logged
// and never propagated. A read-through cache fronts the store so a reload
// only hits it once.
type Service struct {
	store Store
	cache *cachemanager.ReadThroughCache[string, Snapshot]
	ttl   time.Duration
}

// NewService creates a clipboard over the given store. A nil store keeps
// the clipboard purely in memory. cacheTTL bounds how long a cold-start
// read of the durable store stays cached; the in-memory copy written by
// Copy never expires.
func NewService(store Store, cacheTTL time.Duration) *Service {
	mem := cachemanager.NewInMemoryCacheManager[string, Snapshot](
		"clipboard", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	s := &Service{store: store, ttl: cacheTTL}
	s.cache = cachemanager.NewReadThroughCache[string, Snapshot](mem,
		func(ctx context.Context, key string) (Snapshot, error) {
			if s.store == nil {
				return Snapshot{}, nil
			}
			snap, ok, err := s.store.Load(ctx, key)
			if err != nil {
				return Snapshot{}, err
			}
			if !ok {
				return Snapshot{}, nil
			}
			log.Debug(log.CatClipboard, "restored clipboard from store",
				"items", len(snap.Items), "copied_at", snap.CopiedAt)
			return snap, nil
		}, false)
	return s
}

// Copy deep-clones the ordered items into the clipboard with a capture
// timestamp and mirrors the snapshot to the durable store.
func (s *Service) Copy(ctx context.Context, items []Item) {
	snap := Snapshot{CopiedAt: time.Now()}
	snap.Items = make([]Item, len(items))
	for i, item := range items {
		snap.Items[i] = item.Clone()
	}

	s.cache.Put(ctx, SlotKey, snap, cachemanager.NoExpiration)
	log.Debug(log.CatClipboard, "copied items", "count", len(snap.Items))

	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, SlotKey, snap); err != nil {
		// Persistence is best-effort; the in-memory copy already succeeded.
		log.ErrorErr(log.CatClipboard, "failed to persist clipboard", err)
	}
}

// Paste returns the clipboard's items laid out starting at insertTime:
// the first item starts there and each subsequent item's start is the
// running total of previously placed durations, preserving relative
// spacing. Returns nil when the clipboard is empty.
func (s *Service) Paste(ctx context.Context, insertTime float64) []Item {
	snap, ok := s.snapshot(ctx)
	if !ok {
		return nil
	}

	out := make([]Item, len(snap.Items))
	pos := insertTime
	for i, item := range snap.Items {
		out[i] = item.RebasedTo(pos)
		pos += item.Duration()
	}
	log.Debug(log.CatClipboard, "pasted items", "count", len(out), "at", insertTime)
	return out
}

// Duplicate is copy followed by paste at afterTime.
func (s *Service) Duplicate(ctx context.Context, items []Item, afterTime float64) []Item {
	s.Copy(ctx, items)
	return s.Paste(ctx, afterTime)
}

// HasData reports whether the clipboard holds anything, consulting the
// durable store on a cold start.
func (s *Service) HasData(ctx context.Context) bool {
	_, ok := s.snapshot(ctx)
	return ok
}

// Clear evicts the clipboard, including the durable store's slot.
func (s *Service) Clear(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, SlotKey); err != nil {
		log.ErrorErr(log.CatClipboard, "failed to invalidate clipboard cache", err)
	}
	// Cache an empty snapshot so the next read doesn't resurrect the slot
	// from the store before the delete lands.
	s.cache.Put(ctx, SlotKey, Snapshot{}, cachemanager.NoExpiration)

	if s.store == nil {
		return
	}
	if err := s.store.Clear(ctx, SlotKey); err != nil {
		log.ErrorErr(log.CatClipboard, "failed to clear clipboard store", err)
	}
}

func (s *Service) snapshot(ctx context.Context) (Snapshot, bool) {
	snap, err := s.cache.Get(ctx, SlotKey, s.ttl)
	if err != nil {
		// Store read failures mean "no durable data available".
		log.ErrorErr(log.CatClipboard, "failed to read clipboard store", err)
		return Snapshot{}, false
	}
	if snap.Empty() {
		return Snapshot{}, false
	}
	return snap, true
}
