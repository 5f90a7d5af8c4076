package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

func TestManager_SetAndPrimary(t *testing.T) {
	m := NewManager()
	require.Equal(t, "", m.PrimaryID())
	require.Equal(t, 0, m.Len())

	m.Set([]string{"a", "b", "a", "", "c"})
	require.Equal(t, []string{"a", "b", "c"}, m.IDs())
	require.Equal(t, "a", m.PrimaryID())
	require.True(t, m.Contains("b"))
	require.False(t, m.Contains("z"))
}

func TestManager_Toggle(t *testing.T) {
	m := NewManager()

	m.Toggle("a")
	require.Equal(t, []string{"a"}, m.IDs())

	m.Toggle("b")
	require.Equal(t, []string{"b"}, m.IDs()[1:])

	m.Toggle("a")
	require.Equal(t, []string{"b"}, m.IDs())
	require.Equal(t, "b", m.PrimaryID())
}

func TestManager_Clear(t *testing.T) {
	m := NewManager()
	m.Set([]string{"a", "b"})
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Equal(t, "", m.PrimaryID())
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	m.Set([]string{"a", "b", "c"})

	m.Remove("b")
	require.Equal(t, []string{"a", "c"}, m.IDs())

	m.Remove("a", "c", "missing")
	require.Equal(t, 0, m.Len())
}

func rangeClips() []timeline.Clip {
	// Flattened cross-track order: a(0), b(2), c(4), d(6)
	return []timeline.Clip{
		{ID: "a", TimelineStart: 0},
		{ID: "b", TimelineStart: 2},
		{ID: "c", TimelineStart: 4},
		{ID: "d", TimelineStart: 6},
	}
}

func TestManager_SelectRange(t *testing.T) {
	m := NewManager()

	require.True(t, m.SelectRange(rangeClips(), "b", "d"))
	require.Equal(t, []string{"b", "c", "d"}, m.IDs())
}

func TestManager_SelectRange_ReversedEndpoints(t *testing.T) {
	m := NewManager()

	require.True(t, m.SelectRange(rangeClips(), "d", "b"))
	require.Equal(t, []string{"b", "c", "d"}, m.IDs())
}

func TestManager_SelectRange_MissingEndpoint(t *testing.T) {
	m := NewManager()
	m.Set([]string{"a"})

	require.False(t, m.SelectRange(rangeClips(), "a", "missing"))
	// Selection unchanged on failure
	require.Equal(t, []string{"a"}, m.IDs())
}

func TestManager_SelectRange_SingleClip(t *testing.T) {
	m := NewManager()
	require.True(t, m.SelectRange(rangeClips(), "c", "c"))
	require.Equal(t, []string{"c"}, m.IDs())
}

// The derived primary id must equal the first element of the ordered set
// (or "" when empty) after any sequence of selection mutations.
func TestManager_PrimaryEquivalence_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		ids := []string{"a", "b", "c", "d", "e"}

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				n := rapid.IntRange(0, 5).Draw(t, "n")
				m.Set(ids[:n])
			case 1:
				m.Toggle(rapid.SampledFrom(ids).Draw(t, "toggle"))
			case 2:
				m.Remove(rapid.SampledFrom(ids).Draw(t, "remove"))
			case 3:
				m.Clear()
			}

			got := m.IDs()
			if len(got) == 0 {
				require.Equal(t, "", m.PrimaryID())
			} else {
				require.Equal(t, got[0], m.PrimaryID())
			}
		}
	})
}
