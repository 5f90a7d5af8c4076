package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// memStore is an in-memory Store for tests, with switchable failure modes.
type memStore struct {
	slots    map[string]Snapshot
	saveErr  error
	loadErr  error
	clearErr error
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string]Snapshot)}
}

func (m *memStore) Save(ctx context.Context, key string, snap Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.slots[key] = snap.Clone()
	return nil
}

func (m *memStore) Load(ctx context.Context, key string) (Snapshot, bool, error) {
	if m.loadErr != nil {
		return Snapshot{}, false, m.loadErr
	}
	snap, ok := m.slots[key]
	if !ok {
		return Snapshot{}, false, nil
	}
	return snap.Clone(), true, nil
}

func (m *memStore) Clear(ctx context.Context, key string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	delete(m.slots, key)
	return nil
}

func clipItem(id string, start, dur float64) Item {
	return NewClipItem(timeline.Clip{
		ID: id, SourceIn: 0, SourceOut: dur, TimelineStart: start,
	})
}

func TestService_CopyPaste_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), 0)

	svc.Copy(ctx, []Item{clipItem("a", 0, 3), clipItem("b", 3, 2)})
	require.True(t, svc.HasData(ctx))

	pasted := svc.Paste(ctx, 10)
	require.Len(t, pasted, 2)
	require.InDelta(t, 10.0, pasted[0].Start(), 1e-9)
	require.InDelta(t, 13.0, pasted[1].Start(), 1e-9)

	// Pasted clips carry fresh ids.
	require.NotEqual(t, "a", pasted[0].Clips[0].ID)
	require.NotEqual(t, "b", pasted[1].Clips[0].ID)
}

func TestService_Paste_Empty(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), 0)

	require.False(t, svc.HasData(ctx))
	require.Nil(t, svc.Paste(ctx, 5))
}

func TestService_Paste_PreservesSceneSpacing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), 0)

	scene := NewSceneItem("opening", []timeline.Clip{
		{ID: "s1", SourceOut: 2, TimelineStart: 4},
		{ID: "s2", SourceOut: 3, TimelineStart: 7}, // 1s gap after s1
	})
	svc.Copy(ctx, []Item{scene, clipItem("tail", 20, 5)})

	pasted := svc.Paste(ctx, 0)
	require.Len(t, pasted, 2)

	// Scene rebased to 0 with internal offset preserved.
	require.InDelta(t, 0.0, pasted[0].Clips[0].TimelineStart, 1e-9)
	require.InDelta(t, 3.0, pasted[0].Clips[1].TimelineStart, 1e-9)
	// Scene span is 6s (0..2, 3..6), so the next item starts at 6.
	require.InDelta(t, 6.0, pasted[1].Start(), 1e-9)
}

func TestService_CopyIsDeep(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), 0)

	source := timeline.Clip{ID: "a", SourceOut: 3,
		Effects: []timeline.Effect{{ID: "e1", Kind: "fade"}}}
	svc.Copy(ctx, []Item{NewClipItem(source)})

	// Mutating the source after the copy must not affect the clipboard.
	source.Effects[0].Kind = "mutated"

	pasted := svc.Paste(ctx, 0)
	require.Equal(t, "fade", pasted[0].Clips[0].Effects[0].Kind)
}

func TestService_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), 0)

	out := svc.Duplicate(ctx, []Item{clipItem("a", 2, 4)}, 6)
	require.Len(t, out, 1)
	require.InDelta(t, 6.0, out[0].Start(), 1e-9)
	// Duplicate also populated the clipboard.
	require.True(t, svc.HasData(ctx))
}

func TestService_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	first := NewService(store, 0)
	first.Copy(ctx, []Item{clipItem("a", 0, 3)})

	// A fresh service over the same store simulates an editor restart.
	second := NewService(store, 0)
	require.True(t, second.HasData(ctx))

	pasted := second.Paste(ctx, 7)
	require.Len(t, pasted, 1)
	require.InDelta(t, 7.0, pasted[0].Start(), 1e-9)
}

func TestService_StoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	store.clearErr = errors.New("disk full")

	svc := NewService(store, 0)
	svc.Copy(ctx, []Item{clipItem("a", 0, 3)})

	// Copy still succeeded in memory despite the persistence failure.
	require.True(t, svc.HasData(ctx))
	require.Len(t, svc.Paste(ctx, 0), 1)

	svc.Clear(ctx)
	require.False(t, svc.HasData(ctx))
}

func TestService_LoadFailureMeansNoData(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.slots[SlotKey] = Snapshot{Items: []Item{clipItem("a", 0, 1)}}
	store.loadErr = errors.New("corrupt file")

	svc := NewService(store, 0)
	require.False(t, svc.HasData(ctx))
	require.Nil(t, svc.Paste(ctx, 0))
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, 0)

	svc.Copy(ctx, []Item{clipItem("a", 0, 3)})
	svc.Clear(ctx)

	require.False(t, svc.HasData(ctx))
	require.Empty(t, store.slots)

	// A fresh service sees nothing either.
	require.False(t, NewService(store, 0).HasData(ctx))
}

func TestService_NilStore(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, 0)

	svc.Copy(ctx, []Item{clipItem("a", 0, 2)})
	require.True(t, svc.HasData(ctx))
	require.Len(t, svc.Paste(ctx, 1), 1)
	svc.Clear(ctx)
	require.False(t, svc.HasData(ctx))
}

func TestItem_Duration(t *testing.T) {
	clip := clipItem("a", 5, 3)
	require.InDelta(t, 3.0, clip.Duration(), 1e-9)

	scene := NewSceneItem("s", []timeline.Clip{
		{ID: "x", SourceOut: 2, TimelineStart: 10},
		{ID: "y", SourceOut: 2, TimelineStart: 15},
	})
	require.InDelta(t, 7.0, scene.Duration(), 1e-9) // 10..17
	require.InDelta(t, 10.0, scene.Start(), 1e-9)
}
