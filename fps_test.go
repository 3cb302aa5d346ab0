package panel

import (
	"testing"
	"time"
)

func TestFPSMeter(t *testing.T) {
	var f fpsMeter
	t0 := time.Unix(100, 0)
	f.tick(t0)
	if f.rate() != 0 {
		t.Errorf("rate before a full window = %v, want 0", f.rate())
	}
	for i := 1; i <= 10; i++ {
		f.tick(t0.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	if got := f.rate(); !approxEqual(got, 20, 1e-9) {
		t.Errorf("rate = %v, want 20", got)
	}
}

func TestFPSWidget(t *testing.T) {
	m := NewManager(100, 40)
	n := NewFPSWidget(m)
	if n.ID != "fps_widget" || n.ZIndex <= 0 {
		t.Errorf("widget = %q z=%d", n.ID, n.ZIndex)
	}
	n.Update(0.6)
	img := renderNode(n, 100, 40)
	if img.RGBAAt(2, 2).A == 0 {
		t.Error("widget should draw a background box")
	}
}
