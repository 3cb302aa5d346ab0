// Package window shows panel frames in a desktop window via Ebitengine and
// feeds keyboard and mouse input back to the manager, standing in for a
// touch panel and rotary encoder during development.
//
// Controls:
//   - mouse click / hold: touch at the cursor (hold one second for long press)
//   - right arrow or D: rotate clockwise; left arrow or A: counterclockwise
//   - space or enter: encoder push (hold for long press)
//   - L: long press without a position
//   - any key: key press and release events
package window

import (
	"image"
	"image/draw"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panel"
)

// Window is both a panel.Display and an input source. Create it with New,
// start the manager's loop on another goroutine, then call Run from main.
type Window struct {
	m     *panel.Manager
	title string
	scale int

	mu     sync.Mutex
	frame  *image.RGBA
	closed bool

	img    *ebiten.Image
	mouse  panel.PressTracker
	button panel.PressTracker
	mouseX int
	mouseY int
	keys   []ebiten.Key
}

// New creates a window sized to the manager's display, magnified by scale.
func New(m *panel.Manager, title string, scale int) *Window {
	return &Window{m: m, title: title, scale: max(scale, 1)}
}

// Run opens the window and blocks until it is closed. Must be called from
// the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.m.Width*w.scale, w.m.Height*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}

// --- panel.Display ---

func (w *Window) Show(frame *image.RGBA) error {
	w.mu.Lock()
	w.frame = frame
	w.mu.Unlock()
	return nil
}

func (w *Window) Clear(c panel.Color) error {
	img := image.NewRGBA(image.Rect(0, 0, w.m.Width, w.m.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	return w.Show(img)
}

// Close makes the window exit on its next update.
func (w *Window) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return nil
}

// --- ebiten.Game ---

func (w *Window) Update() error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return ebiten.Termination
	}

	now := time.Now()
	w.pollMouse(now)
	w.pollEncoder(now)
	w.pollKeys()
	return nil
}

func (w *Window) pollMouse(now time.Time) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.mouseX, w.mouseY = ebiten.CursorPosition()
		w.mouse.Down(now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if w.mouse.Up(now) {
			w.m.HandleInput(panel.Click(w.mouseX, w.mouseY))
		}
	}
	if w.mouse.Poll(now) {
		w.m.HandleInput(panel.LongPress(w.mouseX, w.mouseY))
	}
}

func (w *Window) pollEncoder(now time.Time) {
	if keyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		w.m.HandleInput(panel.Rotate(true))
	}
	if keyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		w.m.HandleInput(panel.Rotate(false))
	}
	if keyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) {
		w.button.Down(now)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		if w.button.Up(now) {
			w.m.HandleInput(panel.Press(panel.EventClick))
		}
	}
	if w.button.Poll(now) {
		w.m.HandleInput(panel.Press(panel.EventLongPress))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		w.m.HandleInput(panel.Press(panel.EventLongPress))
	}
}

func (w *Window) pollKeys() {
	mods := modifiers()
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.m.HandleInput(panel.KeyEvent{Type: panel.EventKeyPress, Key: keyName(k), Modifiers: mods})
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.m.HandleInput(panel.KeyEvent{Type: panel.EventKeyRelease, Key: keyName(k), Modifiers: mods})
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()
	if frame == nil {
		return
	}
	b := frame.Bounds()
	if w.img == nil || w.img.Bounds().Dx() != b.Dx() || w.img.Bounds().Dy() != b.Dy() {
		w.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	w.img.WritePixels(frame.Pix)
	screen.DrawImage(w.img, nil)
}

func (w *Window) Layout(int, int) (int, int) {
	return w.m.Width, w.m.Height
}

// --- Helpers ---

func keyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// keyName maps ebiten key names to the lower-case names used by
// panel.KeyEvent ("ArrowLeft" becomes "left").
func keyName(k ebiten.Key) string {
	return strings.TrimPrefix(strings.ToLower(k.String()), "arrow")
}

func modifiers() panel.KeyModifiers {
	var mods panel.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= panel.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= panel.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= panel.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= panel.ModMeta
	}
	return mods
}
