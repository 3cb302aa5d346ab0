package panel

import (
	"fmt"
	"sort"
)

// Keyframe pins a value at a normalized time in [0, 1].
type Keyframe struct {
	At    float64
	Value Value
}

// Keyframes is an ordered track of values sampled by normalized progress.
// All keyframes share one value shape.
type Keyframes struct {
	frames []Keyframe
}

// NewKeyframes builds a track from the given keyframes in any order.
func NewKeyframes(frames ...Keyframe) (*Keyframes, error) {
	k := &Keyframes{}
	for _, f := range frames {
		if err := k.Add(f.At, f.Value); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Add inserts a keyframe, keeping the track sorted by time. Keyframes added at
// an existing time sort after it.
func (k *Keyframes) Add(at float64, v Value) error {
	if at < 0 || at > 1 {
		return fmt.Errorf("keyframe at %v: time must be within [0, 1]", at)
	}
	if len(v) == 0 {
		return fmt.Errorf("keyframe at %v: empty value", at)
	}
	if len(k.frames) > 0 && len(k.frames[0].Value) != len(v) {
		return fmt.Errorf("keyframe at %v: %w", at, ErrValueMismatch)
	}
	i := sort.Search(len(k.frames), func(i int) bool { return k.frames[i].At > at })
	k.frames = append(k.frames, Keyframe{})
	copy(k.frames[i+1:], k.frames[i:])
	k.frames[i] = Keyframe{At: at, Value: v.clone()}
	return nil
}

// Len returns the number of keyframes.
func (k *Keyframes) Len() int { return len(k.frames) }

// Width returns the component count shared by every keyframe, or 0 for an
// empty track.
func (k *Keyframes) Width() int {
	if len(k.frames) == 0 {
		return 0
	}
	return len(k.frames[0].Value)
}

// Last returns the value of the final keyframe.
func (k *Keyframes) Last() Value {
	if len(k.frames) == 0 {
		return nil
	}
	return k.frames[len(k.frames)-1].Value.clone()
}

// At samples the track. Progress before the first keyframe holds the first
// value and progress after the last holds the last value; in between, the
// two surrounding keyframes are blended linearly.
func (k *Keyframes) At(progress float64) Value {
	n := len(k.frames)
	if n == 0 {
		return nil
	}
	if progress <= k.frames[0].At {
		return k.frames[0].Value.clone()
	}
	if progress >= k.frames[n-1].At {
		return k.frames[n-1].Value.clone()
	}
	i := sort.Search(n, func(i int) bool { return k.frames[i].At > progress })
	a, b := k.frames[i-1], k.frames[i]
	span := b.At - a.At
	if span <= 0 {
		return b.Value.clone()
	}
	return lerpValue(a.Value, b.Value, (progress-a.At)/span)
}
