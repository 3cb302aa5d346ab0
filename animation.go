package panel

import (
	"fmt"
	"math"
	"time"
)

// timeNow is the clock used to timestamp and advance animations.
var timeNow = time.Now

// animation is the in-flight record for one property of one node.
type animation struct {
	from, to Value
	track    *Keyframes // when set, replaces from/to interpolation
	start    time.Time
	duration time.Duration
	easing   Easing
}

// progress returns elapsed/duration clamped to [0, 1].
func (a *animation) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.duration)
	return math.Max(0, math.Min(1, p))
}

func (a *animation) sample(eased float64) Value {
	if a.track != nil {
		return a.track.At(eased)
	}
	return lerpValue(a.from, a.to, eased)
}

func (a *animation) final() Value {
	if a.track != nil {
		return a.track.Last()
	}
	return a.to.clone()
}

// Animate tweens the named property from its current value to `to` over
// duration, shaped by easing (Linear when nil). Any animation already running
// on the same property is discarded.
//
// Animating a property the node does not have is a no-op. A target whose
// component count differs from the current value returns ErrValueMismatch.
func (n *Node) Animate(prop string, to Value, duration time.Duration, easing Easing) error {
	from, ok := n.Property(prop)
	if !ok {
		return nil
	}
	if len(from) != len(to) || len(to) == 0 {
		return fmt.Errorf("animate %q on %q: have %d components, target has %d: %w",
			prop, n.ID, len(from), len(to), ErrValueMismatch)
	}
	if easing == nil {
		easing = Linear
	}
	n.startAnimation(prop, &animation{
		from:     from.clone(),
		to:       to.clone(),
		start:    timeNow(),
		duration: duration,
		easing:   easing,
	})
	return nil
}

// AnimateKeyframes drives the named property through a keyframe track. The
// eased progress selects the position on the track.
func (n *Node) AnimateKeyframes(prop string, track *Keyframes, duration time.Duration, easing Easing) error {
	from, ok := n.Property(prop)
	if !ok {
		return nil
	}
	if track == nil || track.Len() == 0 {
		return fmt.Errorf("animate %q on %q: empty keyframe track", prop, n.ID)
	}
	if track.Width() != len(from) {
		return fmt.Errorf("animate %q on %q: have %d components, track has %d: %w",
			prop, n.ID, len(from), track.Width(), ErrValueMismatch)
	}
	if easing == nil {
		easing = Linear
	}
	n.startAnimation(prop, &animation{
		from:     from.clone(),
		track:    track,
		start:    timeNow(),
		duration: duration,
		easing:   easing,
	})
	return nil
}

func (n *Node) startAnimation(prop string, a *animation) {
	if n.animations == nil {
		n.animations = make(map[string]*animation)
	}
	n.animations[prop] = a
}

// Animating reports whether prop has an in-flight animation.
func (n *Node) Animating(prop string) bool {
	_, ok := n.animations[prop]
	return ok
}

// AnimationCount returns the number of in-flight animations on this node.
func (n *Node) AnimationCount() int {
	return len(n.animations)
}

// StopAnimation discards the animation on prop, leaving the property at its
// current intermediate value.
func (n *Node) StopAnimation(prop string) {
	delete(n.animations, prop)
}

// updateAnimations writes the current sample of every animation. Finished
// animations snap to their exact target and are removed.
func (n *Node) updateAnimations(now time.Time) {
	for prop, a := range n.animations {
		p := a.progress(now)
		if p >= 1 {
			n.SetProperty(prop, a.final())
			delete(n.animations, prop)
			continue
		}
		n.SetProperty(prop, a.sample(a.easing(p)))
	}
}

// --- Properties ---

// Property returns the current value of a named property. Every node has
// "x", "y", "width" and "height"; content implementing Animatable adds its
// own names.
func (n *Node) Property(name string) (Value, bool) {
	switch name {
	case "x":
		return Scalar(float64(n.Rect.X)), true
	case "y":
		return Scalar(float64(n.Rect.Y)), true
	case "width":
		return Scalar(float64(n.Rect.Width)), true
	case "height":
		return Scalar(float64(n.Rect.Height)), true
	}
	if a, ok := n.Content.(Animatable); ok {
		return a.Property(name)
	}
	return nil, false
}

// SetProperty assigns a named property. Geometry properties are rounded to
// whole pixels. Unknown names are ignored.
func (n *Node) SetProperty(name string, v Value) {
	switch name {
	case "x":
		n.Rect.X = roundPx(v)
		return
	case "y":
		n.Rect.Y = roundPx(v)
		return
	case "width":
		n.Rect.Width = roundPx(v)
		return
	case "height":
		n.Rect.Height = roundPx(v)
		return
	}
	if a, ok := n.Content.(Animatable); ok {
		a.SetProperty(name, v)
	}
}

func roundPx(v Value) int {
	return int(math.Round(v.Float()))
}
