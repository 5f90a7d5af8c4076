package edit

import (
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// AddEffect appends an effect to the clip's effect chain.
func AddEffect(clips []timeline.Clip, clipID string, effect timeline.Effect) ([]timeline.Clip, bool) {
	return withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		c.Effects = append(c.Effects, effect.Clone())
		return c
	})
}

// RemoveEffect removes the effect with the given id from the clip's chain.
// Unknown effect ids leave the slice unchanged with applied false.
func RemoveEffect(clips []timeline.Clip, clipID, effectID string) ([]timeline.Clip, bool) {
	found := false
	out, ok := withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		kept := c.Effects[:0]
		for _, e := range c.Effects {
			if e.ID == effectID {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		c.Effects = kept
		return c
	})
	if !ok || !found {
		return clips, false
	}
	return out, true
}

// MoveEffect swaps the effect at index with its neighbor in the given
// direction (-1 = earlier, +1 = later). Moving past either edge of the
// chain is a boundary no-op.
func MoveEffect(clips []timeline.Clip, clipID string, index, direction int) ([]timeline.Clip, bool) {
	if direction != -1 && direction != 1 {
		return clips, false
	}
	swapped := false
	out, ok := withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		target := index + direction
		if index < 0 || index >= len(c.Effects) || target < 0 || target >= len(c.Effects) {
			return c
		}
		c.Effects[index], c.Effects[target] = c.Effects[target], c.Effects[index]
		swapped = true
		return c
	})
	if !ok || !swapped {
		return clips, false
	}
	return out, true
}
