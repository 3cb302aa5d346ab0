package panel

import (
	"git.sr.ht/~sbinet/gg"
)

// Screen is one full-display node tree plus its lifecycle. Register screens
// with a Manager and switch between them by name.
type Screen struct {
	Name          string
	Width, Height int

	// Build runs once, on the first update, to populate Root.
	Build func(s *Screen)

	root        *Node
	handlers    *handlerRegistry
	initialized bool
	active      bool
	frame       uint64
}

// NewScreen creates a screen whose root container spans the display.
func NewScreen(name string, width, height int) *Screen {
	return &Screen{
		Name:     name,
		Width:    width,
		Height:   height,
		root:     NewContainer(name+"-root", R(0, 0, width, height)),
		handlers: &handlerRegistry{},
	}
}

// Root returns the screen's root container.
func (s *Screen) Root() *Node { return s.root }

// Add appends nodes to the root container.
func (s *Screen) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.root.AddChild(n)
	}
}

// Initialized reports whether Build has run.
func (s *Screen) Initialized() bool { return s.initialized }

// Active reports whether the screen is the manager's current screen.
func (s *Screen) Active() bool { return s.active }

// Update runs Build on first use, advances the tree by dt seconds and emits
// an animation-frame event to the screen's handlers.
func (s *Screen) Update(dt float64) {
	if !s.initialized {
		s.initialized = true
		if s.Build != nil {
			s.Build(s)
		}
	}
	s.root.Update(dt)
	s.frame++
	s.Emit(FrameEvent{DT: dt, Frame: s.frame})
}

// Rebuild discards the root's children and runs Build again on the next
// update. Use it after changing data Build depends on, such as a theme.
// Screen-level handlers are kept.
func (s *Screen) Rebuild() {
	for _, c := range append([]*Node(nil), s.root.children...) {
		c.Dispose()
	}
	s.initialized = false
}

// Render paints the screen's tree into dc.
func (s *Screen) Render(dc *gg.Context, fonts FontTable) {
	s.root.Render(dc, fonts)
}

// Enter marks the screen active and emits screen-enter. from names the
// previous screen, if any.
func (s *Screen) Enter(from string) {
	s.active = true
	Logger().Info("panel: screen entered", "screen", s.Name, "from", from)
	s.Emit(ScreenEvent{Type: EventScreenEnter, Screen: s.Name, Related: from})
}

// Exit marks the screen inactive and emits screen-exit. to names the next
// screen.
func (s *Screen) Exit(to string) {
	s.active = false
	Logger().Info("panel: screen exited", "screen", s.Name, "to", to)
	s.Emit(ScreenEvent{Type: EventScreenExit, Screen: s.Name, Related: to})
}

// FindByID searches the screen's tree.
func (s *Screen) FindByID(id string) *Node { return s.root.FindByID(id) }

// FindByTag searches the screen's tree.
func (s *Screen) FindByTag(tag string) []*Node { return s.root.FindByTag(tag) }

// --- Screen handlers ---

// On registers a screen-level handler. Screen handlers see every dispatched
// input event, whether or not a node was hit.
func (s *Screen) On(kind EventKind, fn Handler) HandlerHandle {
	if s.handlers == nil {
		s.handlers = &handlerRegistry{}
	}
	return s.handlers.add(kind, fn)
}

// Emit delivers ev to the screen's handlers.
func (s *Screen) Emit(ev Event) { s.handlers.emit(ev) }

// OnClick registers a screen-level click handler.
func (s *Screen) OnClick(fn func(PointerEvent)) HandlerHandle {
	return s.On(EventClick, func(ev Event) { fn(ev.(PointerEvent)) })
}

// OnLongPress registers a screen-level long-press handler.
func (s *Screen) OnLongPress(fn func(PointerEvent)) HandlerHandle {
	return s.On(EventLongPress, func(ev Event) { fn(ev.(PointerEvent)) })
}

// OnRotate registers fn for both rotation directions.
func (s *Screen) OnRotate(fn func(RotateEvent)) (cw, ccw HandlerHandle) {
	wrap := func(ev Event) { fn(ev.(RotateEvent)) }
	return s.On(EventRotateCW, wrap), s.On(EventRotateCCW, wrap)
}

// OnKeyPress registers a key-press handler.
func (s *Screen) OnKeyPress(fn func(KeyEvent)) HandlerHandle {
	return s.On(EventKeyPress, func(ev Event) { fn(ev.(KeyEvent)) })
}

// OnFrame registers a per-update handler.
func (s *Screen) OnFrame(fn func(FrameEvent)) HandlerHandle {
	return s.On(EventAnimationFrame, func(ev Event) { fn(ev.(FrameEvent)) })
}

// OnEnter registers a screen-enter handler.
func (s *Screen) OnEnter(fn func(ScreenEvent)) HandlerHandle {
	return s.On(EventScreenEnter, func(ev Event) { fn(ev.(ScreenEvent)) })
}

// OnExit registers a screen-exit handler.
func (s *Screen) OnExit(fn func(ScreenEvent)) HandlerHandle {
	return s.On(EventScreenExit, func(ev Event) { fn(ev.(ScreenEvent)) })
}
