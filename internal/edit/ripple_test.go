package edit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

func threeClips() []timeline.Clip {
	return []timeline.Clip{
		{ID: "c1", SourceIn: 0, SourceOut: 5, TimelineStart: 0},
		{ID: "c2", SourceIn: 0, SourceOut: 5, TimelineStart: 5},
		{ID: "c3", SourceIn: 0, SourceOut: 5, TimelineStart: 10},
	}
}

func TestRippleDelete_Middle(t *testing.T) {
	out, applied := RippleDelete(threeClips(), "c2")
	require.True(t, applied)
	require.Len(t, out, 2)

	require.Equal(t, "c1", out[0].ID)
	require.InDelta(t, 0.0, out[0].TimelineStart, 1e-9)
	require.Equal(t, "c3", out[1].ID)
	require.InDelta(t, 5.0, out[1].TimelineStart, 1e-9)
}

func TestRippleDelete_OnlyLaterClipsShift(t *testing.T) {
	clips := []timeline.Clip{
		{ID: "early", SourceIn: 0, SourceOut: 2, TimelineStart: 0},
		{ID: "victim", SourceIn: 0, SourceOut: 3, TimelineStart: 4},
		{ID: "late", SourceIn: 0, SourceOut: 2, TimelineStart: 9},
	}

	out, applied := RippleDelete(clips, "victim")
	require.True(t, applied)
	require.InDelta(t, 0.0, out[0].TimelineStart, 1e-9)  // untouched
	require.InDelta(t, 6.0, out[1].TimelineStart, 1e-9)  // 9 - 3
}

func TestRippleDelete_Missing(t *testing.T) {
	clips := threeClips()
	out, applied := RippleDelete(clips, "nope")
	require.False(t, applied)
	require.Equal(t, clips, out)
}

func TestRippleDelete_Conservation_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		clips := make([]timeline.Clip, n)
		pos := 0.0
		for i := range clips {
			dur := rapid.Float64Range(0.5, 20).Draw(t, "dur")
			clips[i] = timeline.Clip{
				ID:            timeline.FreshID(),
				SourceOut:     dur,
				TimelineStart: pos,
			}
			pos += dur
		}
		victim := rapid.IntRange(0, n-1).Draw(t, "victim")
		victimClip := clips[victim]

		totalBefore := 0.0
		for _, c := range clips {
			totalBefore += c.Duration()
		}

		out, applied := RippleDelete(clips, victimClip.ID)
		require.True(t, applied)

		totalAfter := 0.0
		for _, c := range out {
			totalAfter += c.Duration()
		}
		require.InDelta(t, totalBefore-victimClip.Duration(), totalAfter, 1e-9)
		require.True(t, timeline.ClipsSorted(out))

		// Every clip that started after the victim shifted by exactly its duration.
		for _, before := range clips {
			if before.ID == victimClip.ID {
				continue
			}
			for _, after := range out {
				if after.ID != before.ID {
					continue
				}
				if before.TimelineStart > victimClip.TimelineStart {
					require.InDelta(t, before.TimelineStart-victimClip.Duration(), after.TimelineStart, 1e-9)
				} else {
					require.InDelta(t, before.TimelineStart, after.TimelineStart, 1e-9)
				}
			}
		}
	})
}

func tracksWith(clips ...[]timeline.Clip) []timeline.Track {
	tracks := make([]timeline.Track, len(clips))
	for i, cs := range clips {
		tracks[i] = timeline.Track{ID: timeline.FreshID(), Clips: timeline.SortClips(cs)}
	}
	return tracks
}

func TestRippleDeleteMany_AdjacentSameTrack(t *testing.T) {
	// Deleting two adjacent clips processes right-to-left: removing c3
	// first leaves c2's position intact, so c2's own removal shifts the
	// tail by exactly dur(c2)+dur(c3) in total.
	clips := []timeline.Clip{
		{ID: "c1", SourceIn: 0, SourceOut: 4, TimelineStart: 0},
		{ID: "c2", SourceIn: 0, SourceOut: 4, TimelineStart: 4},
		{ID: "c3", SourceIn: 0, SourceOut: 4, TimelineStart: 8},
		{ID: "c4", SourceIn: 0, SourceOut: 4, TimelineStart: 12},
	}
	tracks := tracksWith(clips)

	out, removed := RippleDeleteMany(tracks, []string{"c2", "c3"})
	require.Equal(t, 2, removed)

	remaining := out[0].Clips
	require.Len(t, remaining, 2)
	require.Equal(t, "c1", remaining[0].ID)
	require.InDelta(t, 0.0, remaining[0].TimelineStart, 1e-9)
	require.Equal(t, "c4", remaining[1].ID)
	require.InDelta(t, 4.0, remaining[1].TimelineStart, 1e-9)
}

func TestRippleDeleteMany_OrderIndependentOfRequest(t *testing.T) {
	// The caller's id order must not matter; processing is by descending
	// TimelineStart.
	build := func() []timeline.Track {
		return tracksWith([]timeline.Clip{
			{ID: "c1", SourceIn: 0, SourceOut: 3, TimelineStart: 0},
			{ID: "c2", SourceIn: 0, SourceOut: 3, TimelineStart: 3},
			{ID: "c3", SourceIn: 0, SourceOut: 3, TimelineStart: 6},
		})
	}

	a, _ := RippleDeleteMany(build(), []string{"c1", "c3"})
	b, _ := RippleDeleteMany(build(), []string{"c3", "c1"})

	require.Equal(t, len(a[0].Clips), len(b[0].Clips))
	for i := range a[0].Clips {
		require.Equal(t, a[0].Clips[i].ID, b[0].Clips[i].ID)
		require.InDelta(t, a[0].Clips[i].TimelineStart, b[0].Clips[i].TimelineStart, 1e-9)
	}
	require.Equal(t, "c2", a[0].Clips[0].ID)
	require.InDelta(t, 0.0, a[0].Clips[0].TimelineStart, 1e-9)
}

func TestRippleDeleteMany_CrossTrackIsolated(t *testing.T) {
	tracks := tracksWith(
		[]timeline.Clip{
			{ID: "v1", SourceIn: 0, SourceOut: 5, TimelineStart: 0},
			{ID: "v2", SourceIn: 0, SourceOut: 5, TimelineStart: 5},
		},
		[]timeline.Clip{
			{ID: "a1", SourceIn: 0, SourceOut: 5, TimelineStart: 0},
			{ID: "a2", SourceIn: 0, SourceOut: 5, TimelineStart: 5},
		},
	)

	out, removed := RippleDeleteMany(tracks, []string{"v1"})
	require.Equal(t, 1, removed)

	// Video track rippled
	require.Len(t, out[0].Clips, 1)
	require.InDelta(t, 0.0, out[0].Clips[0].TimelineStart, 1e-9)
	// Audio track untouched
	require.Len(t, out[1].Clips, 2)
	require.InDelta(t, 5.0, out[1].Clips[1].TimelineStart, 1e-9)
}

func TestRippleDeleteMany_UnknownIDsSkipped(t *testing.T) {
	tracks := tracksWith(threeClips())
	out, removed := RippleDeleteMany(tracks, []string{"nope", "c2"})
	require.Equal(t, 1, removed)
	require.Len(t, out[0].Clips, 2)
}

func TestRippleDeleteMany_Empty(t *testing.T) {
	tracks := tracksWith(threeClips())
	out, removed := RippleDeleteMany(tracks, []string{"x", "y"})
	require.Equal(t, 0, removed)
	require.Equal(t, tracks, out)
}
