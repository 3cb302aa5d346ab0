package panel

import "testing"

func TestRectGeometry(t *testing.T) {
	r := R(10, 20, 30, 40)
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center = (%d,%d)", x, y)
	}
	if got := r.Inflate(5, -5); got != R(5, 25, 40, 30) {
		t.Errorf("Inflate = %v", got)
	}
	if r.String() != "(10,20 30x40)" {
		t.Errorf("String = %q", r.String())
	}
}

func TestRectIntersects(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		other Rect
		want  bool
	}{
		{R(5, 5, 10, 10), true},
		{R(10, 0, 5, 5), true}, // shared edge
		{R(11, 0, 5, 5), false},
		{R(0, 20, 5, 5), false},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.other); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestColorConversions(t *testing.T) {
	c := RGB(255, 128, 0)
	if n := c.NRGBA(); n.R != 255 || n.G != 128 || n.B != 0 || n.A != 255 {
		t.Errorf("NRGBA = %+v", n)
	}
	if got := (Color{2, -1, 0.5, 1}).NRGBA(); got.R != 255 || got.G != 0 || got.B != 128 {
		t.Errorf("out of range components not clamped: %+v", got)
	}
	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	if !approxEqual(mid.R, 0.5, 1e-9) || mid.A != 1 {
		t.Errorf("Lerp = %+v", mid)
	}
}

func TestValueHelpers(t *testing.T) {
	if Tuple(1, 0, 0).Color() != (Color{1, 0, 0, 1}) {
		t.Error("three components should be an opaque color")
	}
	if (Value{}).Float() != 0 || (Value{1, 2}).Color() != (Color{}) {
		t.Error("unexpected conversion of odd-shaped values")
	}
	if !ColorValue(ColorWhite).Equal(Tuple(1, 1, 1, 1)) || Scalar(1).Equal(Tuple(1, 1)) {
		t.Error("Equal mismatch")
	}
	if got := lerpValue(Tuple(0, 10), Tuple(10, 20), 0.25); !got.Equal(Tuple(2.5, 12.5)) {
		t.Errorf("lerpValue = %v", got)
	}
}
