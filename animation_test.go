package panel

import (
	"errors"
	"math"
	"testing"
	"time"
)

// fakeClock replaces timeNow for the duration of a test.
type fakeClock struct{ now time.Time }

func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	c := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := timeNow
	timeNow = func() time.Time { return c.now }
	t.Cleanup(func() { timeNow = prev })
	return c
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func approxEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestAnimateLinearX(t *testing.T) {
	clock := useFakeClock(t)
	n := NewNode("n", R(0, 0, 10, 10))
	if err := n.Animate("x", Scalar(100), time.Second, Linear); err != nil {
		t.Fatal(err)
	}

	n.Update(0)
	if n.Rect.X != 0 {
		t.Errorf("t=0: X = %d, want 0", n.Rect.X)
	}

	clock.advance(500 * time.Millisecond)
	n.Update(0.5)
	if n.Rect.X != 50 {
		t.Errorf("t=0.5: X = %d, want 50", n.Rect.X)
	}

	clock.advance(600 * time.Millisecond)
	n.Update(0.6)
	if n.Rect.X != 100 {
		t.Errorf("done: X = %d, want 100", n.Rect.X)
	}
	if n.Animating("x") || n.AnimationCount() != 0 {
		t.Error("finished animation should be removed")
	}
}

func TestAnimateEndsExactlyOnTarget(t *testing.T) {
	clock := useFakeClock(t)
	n := NewBox("b", R(0, 0, 10, 10), BoxConfig{Background: ColorBlack})
	target := RGB(10, 200, 33)
	if err := n.Animate("background", ColorValue(target), 300*time.Millisecond, OutBounce); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	n.Update(1)

	if got := n.Content.(*Box).Background; got != target {
		t.Errorf("Background = %v, want %v", got, target)
	}
}

func TestAnimateColorMidpoint(t *testing.T) {
	clock := useFakeClock(t)
	n := NewLabel("l", Rect{}, LabelConfig{Color: Color{0, 0, 0, 1}})
	if err := n.Animate("color", ColorValue(Color{1, 1, 1, 1}), time.Second, nil); err != nil {
		t.Fatal(err)
	}
	clock.advance(250 * time.Millisecond)
	n.Update(0.25)

	got := n.Content.(*Label).Color
	if !approxEqual(got.R, 0.25, 1e-9) || !approxEqual(got.A, 1, 1e-9) {
		t.Errorf("Color = %+v, want R=0.25 A=1", got)
	}
}

func TestAnimateMismatch(t *testing.T) {
	useFakeClock(t)
	n := NewBox("b", Rect{}, BoxConfig{})
	err := n.Animate("background", Scalar(1), time.Second, nil)
	if !errors.Is(err, ErrValueMismatch) {
		t.Errorf("err = %v, want ErrValueMismatch", err)
	}
	if n.AnimationCount() != 0 {
		t.Error("mismatched animation must not be recorded")
	}
	if err := n.Animate("x", Value{}, time.Second, nil); !errors.Is(err, ErrValueMismatch) {
		t.Errorf("empty target err = %v, want ErrValueMismatch", err)
	}
}

func TestAnimateUnknownPropertyIsNoop(t *testing.T) {
	useFakeClock(t)
	n := NewNode("n", Rect{})
	if err := n.Animate("opacity", Scalar(1), time.Second, nil); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if n.AnimationCount() != 0 {
		t.Error("unknown property should not start an animation")
	}
}

func TestAnimateReplacesRunning(t *testing.T) {
	clock := useFakeClock(t)
	n := NewNode("n", R(0, 0, 10, 10))
	n.Animate("x", Scalar(100), time.Second, nil)
	clock.advance(500 * time.Millisecond)
	n.Update(0)

	// Restart from the current position (50) toward 0.
	n.Animate("x", Scalar(0), time.Second, nil)
	if n.AnimationCount() != 1 {
		t.Fatalf("AnimationCount = %d, want 1", n.AnimationCount())
	}
	clock.advance(500 * time.Millisecond)
	n.Update(0)
	if n.Rect.X != 25 {
		t.Errorf("X = %d, want 25", n.Rect.X)
	}
}

func TestAnimateZeroDuration(t *testing.T) {
	useFakeClock(t)
	n := NewNode("n", Rect{})
	n.Animate("width", Scalar(40), 0, nil)
	n.Update(0)
	if n.Rect.Width != 40 || n.Animating("width") {
		t.Errorf("Width = %d animating=%v, want 40 and done", n.Rect.Width, n.Animating("width"))
	}
}

func TestStopAnimationKeepsIntermediate(t *testing.T) {
	clock := useFakeClock(t)
	n := NewNode("n", Rect{})
	n.Animate("y", Scalar(10), time.Second, nil)
	clock.advance(300 * time.Millisecond)
	n.Update(0)
	n.StopAnimation("y")
	clock.advance(time.Second)
	n.Update(0)
	if n.Rect.Y != 3 {
		t.Errorf("Y = %d, want 3", n.Rect.Y)
	}
}

func TestHiddenNodeDoesNotAnimate(t *testing.T) {
	clock := useFakeClock(t)
	n := NewNode("n", Rect{})
	n.Animate("x", Scalar(100), time.Second, nil)
	n.Visible = false
	clock.advance(2 * time.Second)
	n.Update(0)
	if n.Rect.X != 0 || !n.Animating("x") {
		t.Errorf("hidden node advanced: X = %d", n.Rect.X)
	}

	n.Visible = true
	n.Update(0)
	if n.Rect.X != 100 {
		t.Errorf("after showing: X = %d, want 100", n.Rect.X)
	}
}

// --- Keyframes ---

func TestKeyframesSampling(t *testing.T) {
	k, err := NewKeyframes(
		Keyframe{At: 1, Value: Scalar(0)},
		Keyframe{At: 0.2, Value: Scalar(10)},
		Keyframe{At: 0.6, Value: Scalar(30)},
	)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p, want float64
	}{
		{0, 10},
		{0.2, 10},
		{0.4, 20},
		{0.6, 30},
		{0.8, 15},
		{1, 0},
	}
	for _, tt := range tests {
		if got := k.At(tt.p).Float(); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("At(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestKeyframesValidation(t *testing.T) {
	k := &Keyframes{}
	if err := k.Add(1.5, Scalar(1)); err == nil {
		t.Error("time outside [0,1] should fail")
	}
	if err := k.Add(0.5, Value{}); err == nil {
		t.Error("empty value should fail")
	}
	if err := k.Add(0, Tuple(1, 2)); err != nil {
		t.Fatal(err)
	}
	if err := k.Add(1, Scalar(1)); !errors.Is(err, ErrValueMismatch) {
		t.Errorf("err = %v, want ErrValueMismatch", err)
	}
}

func TestAnimateKeyframes(t *testing.T) {
	clock := useFakeClock(t)
	k, _ := NewKeyframes(
		Keyframe{At: 0, Value: Scalar(0)},
		Keyframe{At: 0.5, Value: Scalar(100)},
		Keyframe{At: 1, Value: Scalar(20)},
	)
	n := NewNode("n", Rect{})
	if err := n.AnimateKeyframes("x", k, time.Second, nil); err != nil {
		t.Fatal(err)
	}
	clock.advance(500 * time.Millisecond)
	n.Update(0)
	if n.Rect.X != 100 {
		t.Errorf("mid: X = %d, want 100", n.Rect.X)
	}
	clock.advance(time.Second)
	n.Update(0)
	if n.Rect.X != 20 || n.Animating("x") {
		t.Errorf("end: X = %d, want 20 and done", n.Rect.X)
	}

	bad, _ := NewKeyframes(Keyframe{At: 0, Value: Tuple(1, 2)})
	if err := n.AnimateKeyframes("x", bad, time.Second, nil); !errors.Is(err, ErrValueMismatch) {
		t.Errorf("err = %v, want ErrValueMismatch", err)
	}
}
