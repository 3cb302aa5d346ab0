package panel

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"git.sr.ht/~sbinet/gg"
)

// Manager errors.
var (
	ErrUnknownScreen     = errors.New("panel: unknown screen")
	ErrNotInActiveScreen = errors.New("panel: node is not in the active screen")
)

// Manager owns the registered screens, the active screen, focus, the input
// queue and the frame scheduler.
//
// The node trees, focus and current screen belong to one goroutine: the
// animation loop while it runs, otherwise whoever calls Step. Other
// goroutines talk to the manager through HandleInput, Post and Screenshot,
// which queue work for the next tick.
type Manager struct {
	Width, Height int

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	regMu       sync.RWMutex // guards screens and currentName
	screens     map[string]*Screen
	currentName string

	current  *Screen
	previous *Screen
	focused  *Node

	queue           inputQueue
	screenshotQueue []string
	runner          *TestRunner

	display    Display
	fonts      FontTable
	background Color
	debug      bool

	frameMu   sync.RWMutex
	lastFrame *image.RGBA
	frames    atomic.Uint64
	dropped   atomic.Uint64
	meter     fpsMeter

	loop loopState
}

// NewManager creates a manager for a width × height display.
func NewManager(width, height int) *Manager {
	return &Manager{
		Width:         width,
		Height:        height,
		ScreenshotDir: "screenshots",
		screens:       make(map[string]*Screen),
		fonts:         DefaultFonts(),
		background:    ColorBlack,
	}
}

// --- Configuration ---

// SetDisplay sets the sink that receives every rendered frame. Nil disables
// rendering in the loop.
func (m *Manager) SetDisplay(d Display) { m.display = d }

// SetDisplayCallback installs fn as the display sink.
func (m *Manager) SetDisplayCallback(fn func(*image.RGBA) error) {
	if fn == nil {
		m.display = nil
		return
	}
	m.display = callbackDisplay{fn: fn, width: m.Width, height: m.Height}
}

// Display returns the current sink, or nil.
func (m *Manager) Display() Display { return m.display }

// SetFonts replaces the font table used by widgets.
func (m *Manager) SetFonts(fonts FontTable) {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	m.fonts = fonts
}

// Fonts returns the font table used by widgets.
func (m *Manager) Fonts() FontTable { return m.fonts }

// SetBackground sets the color each frame is cleared to.
func (m *Manager) SetBackground(c Color) { m.background = c }

// SetDebugMode enables debug checks on tree operations and per-frame timing
// logs at debug level.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
	setDebug(enabled)
}

// --- Screens ---

// RegisterScreen adds s under s.Name, replacing any screen with that name.
func (m *Manager) RegisterScreen(s *Screen) {
	if s == nil {
		panic("panel: cannot register nil screen")
	}
	m.regMu.Lock()
	m.screens[s.Name] = s
	m.regMu.Unlock()
}

// Screen returns the registered screen with the given name, or nil.
func (m *Manager) Screen(name string) *Screen {
	m.regMu.RLock()
	defer m.regMu.RUnlock()
	return m.screens[name]
}

// ScreenNames returns the registered screen names in sorted order.
func (m *Manager) ScreenNames() []string {
	m.regMu.RLock()
	names := make([]string, 0, len(m.screens))
	for name := range m.screens {
		names = append(names, name)
	}
	m.regMu.RUnlock()
	sort.Strings(names)
	return names
}

// CurrentScreen returns the active screen, or nil. Scheduler goroutine only.
func (m *Manager) CurrentScreen() *Screen { return m.current }

// CurrentScreenName returns the name of the active screen. Safe from any
// goroutine.
func (m *Manager) CurrentScreenName() string {
	m.regMu.RLock()
	defer m.regMu.RUnlock()
	return m.currentName
}

// SwitchScreen makes the named screen active: the current screen exits, the
// target enters and focus is cleared with a blur to its old holder. An unknown name leaves everything
// unchanged and returns ErrUnknownScreen.
func (m *Manager) SwitchScreen(name string) error {
	target := m.Screen(name)
	if target == nil {
		Logger().Warn("panel: switch to unknown screen", "screen", name)
		return fmt.Errorf("switch to %q: %w", name, ErrUnknownScreen)
	}
	m.activate(target)
	return nil
}

// Back returns to the screen that was active before the last switch.
func (m *Manager) Back() error {
	if m.previous == nil {
		return fmt.Errorf("back: no previous screen: %w", ErrUnknownScreen)
	}
	m.activate(m.previous)
	return nil
}

func (m *Manager) activate(target *Screen) {
	from := ""
	m.pruneFocus()
	m.setFocus(nil)
	if m.current != nil {
		from = m.current.Name
		m.current.Exit(target.Name)
		m.previous = m.current
	}
	m.current = target
	m.regMu.Lock()
	m.currentName = target.Name
	m.regMu.Unlock()
	target.Enter(from)
}

// --- Focus ---

// Focused returns the node holding focus, or nil.
func (m *Manager) Focused() *Node {
	m.pruneFocus()
	return m.focused
}

// Focus moves focus to n, emitting blur and focus events. Nil clears focus.
// Nodes outside the active screen's tree are rejected.
func (m *Manager) Focus(n *Node) error {
	m.pruneFocus()
	if n != nil && (m.current == nil || !m.current.root.Contains(n)) {
		return fmt.Errorf("focus %q: %w", n.ID, ErrNotInActiveScreen)
	}
	m.setFocus(n)
	return nil
}

// --- Input ---

// HandleInput queues ev for dispatch at the start of the next tick. Safe from
// any goroutine.
func (m *Manager) HandleInput(ev Event) {
	if ev == nil {
		return
	}
	m.queue.push(queued{ev: ev})
}

// Post queues fn to run on the scheduler goroutine at the start of the next
// tick, in order with queued input. Safe from any goroutine.
func (m *Manager) Post(fn func(*Manager)) {
	if fn == nil {
		return
	}
	m.queue.push(queued{fn: fn})
}

// Pending returns the number of queued inputs and posted functions.
func (m *Manager) Pending() int { return m.queue.len() }

func (m *Manager) drain() {
	for _, item := range m.queue.take() {
		if item.fn != nil {
			item.fn(m)
			continue
		}
		m.dispatch(item.ev)
	}
}

// --- Frames ---

// Step runs one full tick with the given delta in seconds: scripted input,
// queued input, screen update and, when a display or screenshot is pending,
// a rendered frame. Use it to drive the manager without the animation loop.
func (m *Manager) Step(dt float64) {
	var stats frameStats
	start := time.Now()

	if m.runner != nil {
		m.runner.step(m)
	}
	m.drain()
	m.pruneFocus()
	if m.current != nil {
		m.current.Update(dt)
	}
	m.pruneFocus()
	stats.update = time.Since(start)

	if m.display != nil || len(m.screenshotQueue) > 0 {
		t := time.Now()
		img := m.Render()
		stats.render = time.Since(t)
		m.flushScreenshots(img)
		m.present(img, &stats)
	}
	m.frames.Add(1)
	m.meter.tick(timeNow())
	m.debugLog(stats)
}

// Render draws the current screen into a fresh frame cleared to the
// background color.
func (m *Manager) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(m.background.NRGBA())
	dc.Clear()
	if m.current != nil {
		m.current.Render(dc, m.fonts)
	}
	return img
}

func (m *Manager) present(img *image.RGBA, stats *frameStats) {
	m.frameMu.Lock()
	m.lastFrame = img
	m.frameMu.Unlock()
	if m.display == nil {
		return
	}
	t := time.Now()
	if err := m.display.Show(img); err != nil {
		n := m.dropped.Add(1)
		Logger().Warn("panel: display rejected frame", "err", err, "dropped", n)
	}
	stats.present = time.Since(t)
}

// LastFrame returns the most recently rendered frame, or nil before the
// first one. Safe from any goroutine; callers must not modify the image.
func (m *Manager) LastFrame() *image.RGBA {
	m.frameMu.RLock()
	defer m.frameMu.RUnlock()
	return m.lastFrame
}

// FrameCount returns the number of ticks run so far.
func (m *Manager) FrameCount() uint64 { return m.frames.Load() }

// DroppedFrames returns how many frames the display failed to show.
func (m *Manager) DroppedFrames() uint64 { return m.dropped.Load() }

// ActualFPS returns the measured tick rate.
func (m *Manager) ActualFPS() float64 { return m.meter.rate() }

// SetTestRunner attaches a scripted input runner. It advances once per tick
// before queued input is drained.
func (m *Manager) SetTestRunner(r *TestRunner) { m.runner = r }

// Close stops the loop if it is running and closes the display.
func (m *Manager) Close() error {
	var errs []error
	if m.Running() {
		errs = append(errs, m.StopAnimationLoop())
	}
	if m.display != nil {
		errs = append(errs, m.display.Close())
	}
	return errors.Join(errs...)
}
