package panel

import (
	"fmt"
	"sync"
	"time"

	"git.sr.ht/~sbinet/gg"
)

// fpsWindow is how often the measured rate is recomputed.
const fpsWindow = 500 * time.Millisecond

// fpsMeter counts ticks and publishes a rate every fpsWindow.
type fpsMeter struct {
	mu      sync.Mutex
	start   time.Time
	ticks   int
	current float64
}

func (f *fpsMeter) tick(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.ticks++
	if elapsed := now.Sub(f.start); elapsed >= fpsWindow {
		f.current = float64(f.ticks) / elapsed.Seconds()
		f.ticks = 0
		f.start = now
	}
}

func (f *fpsMeter) rate() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// NewFPSWidget creates a node in the top-left corner that shows the
// manager's measured frame rate. The text refreshes every ~0.5 seconds and
// the node draws above its siblings.
func NewFPSWidget(m *Manager) *Node {
	n := NewNode("fps_widget", R(0, 0, 90, 20))
	n.ZIndex = 1 << 20

	label := "FPS: --"
	var lastUpdate float64
	n.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < fpsWindow.Seconds() {
			return
		}
		lastUpdate = 0
		label = fmt.Sprintf("FPS: %.1f", m.ActualFPS())
	}
	n.Content = DrawFunc(func(dc *gg.Context, n *Node, fonts FontTable) {
		r := n.Rect
		dc.SetRGBA(0, 0, 0, 0.5)
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
		dc.Fill()
		dc.SetFontFace(fonts.Face(FontSmall))
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(label, float64(r.X)+4, float64(r.Y)+float64(r.Height)/2, 0, 0.35)
	})
	return n
}
