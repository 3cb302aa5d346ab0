package panel

import (
	"sync"
	"time"
)

// --- Node handlers ---

// On registers fn for events of the given kind on this node. Handlers run in
// registration order.
//
// Positioned clicks and long presses only target nodes with Content. A bare
// NewNode or NewContainer is never the hit target, so its click handlers run
// only through Emit; give it Content (a transparent Box will do) to make it
// clickable.
func (n *Node) On(kind EventKind, fn Handler) HandlerHandle {
	if n.handlers == nil {
		n.handlers = &handlerRegistry{}
	}
	return n.handlers.add(kind, fn)
}

// Emit delivers ev to this node's handlers for ev.Kind(). A node with no
// handlers ignores it.
func (n *Node) Emit(ev Event) {
	n.handlers.emit(ev)
}

// HandlerCount returns the number of handlers registered for kind.
func (n *Node) HandlerCount(kind EventKind) int {
	return n.handlers.count(kind)
}

// OnClick registers a click handler.
func (n *Node) OnClick(fn func(PointerEvent)) HandlerHandle {
	return n.On(EventClick, func(ev Event) { fn(ev.(PointerEvent)) })
}

// OnLongPress registers a long-press handler.
func (n *Node) OnLongPress(fn func(PointerEvent)) HandlerHandle {
	return n.On(EventLongPress, func(ev Event) { fn(ev.(PointerEvent)) })
}

// OnFocus registers a handler for gaining focus.
func (n *Node) OnFocus(fn func(FocusEvent)) HandlerHandle {
	return n.On(EventFocus, func(ev Event) { fn(ev.(FocusEvent)) })
}

// OnBlur registers a handler for losing focus.
func (n *Node) OnBlur(fn func(FocusEvent)) HandlerHandle {
	return n.On(EventBlur, func(ev Event) { fn(ev.(FocusEvent)) })
}

// OnValueChange registers a handler for widget value changes.
func (n *Node) OnValueChange(fn func(ValueEvent)) HandlerHandle {
	return n.On(EventValueChange, func(ev Event) { fn(ev.(ValueEvent)) })
}

// OnRotate registers fn for both rotation directions.
func (n *Node) OnRotate(fn func(RotateEvent)) (cw, ccw HandlerHandle) {
	wrap := func(ev Event) { fn(ev.(RotateEvent)) }
	return n.On(EventRotateCW, wrap), n.On(EventRotateCCW, wrap)
}

// --- Dispatch ---

// dispatch routes one input event against the active screen. Runs on the
// scheduler goroutine only.
func (m *Manager) dispatch(ev Event) {
	s := m.current
	if s == nil {
		Logger().Debug("panel: input dropped, no active screen", "event", ev.Kind().String())
		return
	}
	m.pruneFocus()

	var target *Node
	switch e := ev.(type) {
	case PointerEvent:
		if e.Positioned {
			target = s.root.HitTest(e.X, e.Y)
			m.setFocus(target)
		} else {
			target = m.focused
		}
		e.Target = target
		ev = e
	case RotateEvent, KeyEvent:
		target = m.focused
	}

	if target != nil {
		target.Emit(ev)
	}
	s.Emit(ev)
}

// setFocus moves focus to n, emitting blur to the previous holder and focus
// to the new one. No events fire when focus does not change.
func (m *Manager) setFocus(n *Node) {
	old := m.focused
	if old == n {
		return
	}
	m.focused = n
	if old != nil {
		old.Emit(FocusEvent{Type: EventBlur, Node: old, Related: n})
	}
	if n != nil {
		n.Emit(FocusEvent{Type: EventFocus, Node: n, Related: old})
	}
}

// pruneFocus drops focus held by a node that is no longer part of the
// active screen's tree. A detached node still gets its blur; a disposed one
// has no handlers left and is cleared silently.
func (m *Manager) pruneFocus() {
	old := m.focused
	if old == nil {
		return
	}
	if m.current != nil && !old.disposed && m.current.root.Contains(old) {
		return
	}
	m.focused = nil
	if !old.disposed {
		old.Emit(FocusEvent{Type: EventBlur, Node: old})
	}
}

// --- Input queue ---

// inputQueue collects events and deferred mutations from any goroutine. The
// scheduler swaps the pending slice out and drains it once per tick.
type inputQueue struct {
	mu      sync.Mutex
	pending []queued
}

// queued is either an input event or a function to run on the scheduler
// goroutine.
type queued struct {
	ev Event
	fn func(*Manager)
}

func (q *inputQueue) push(item queued) {
	q.mu.Lock()
	q.pending = append(q.pending, item)
	q.mu.Unlock()
}

func (q *inputQueue) take() []queued {
	q.mu.Lock()
	items := q.pending
	q.pending = nil
	q.mu.Unlock()
	return items
}

func (q *inputQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// --- Press classification ---

// Press thresholds for physical buttons.
const (
	ClickThreshold     = 500 * time.Millisecond
	LongPressThreshold = time.Second
)

// PressTracker turns raw down/up transitions of a single physical button into
// click and long-press events. A release shorter than ClickThreshold is a
// click; holding for LongPressThreshold fires one long press while the
// button is still down. Releases in between produce nothing.
type PressTracker struct {
	down      bool
	since     time.Time
	longFired bool
}

// Down records the button going down at now.
func (p *PressTracker) Down(now time.Time) {
	p.down = true
	p.since = now
	p.longFired = false
}

// Up records the button release and reports whether it completed a click.
func (p *PressTracker) Up(now time.Time) (click bool) {
	if !p.down {
		return false
	}
	p.down = false
	return !p.longFired && now.Sub(p.since) < ClickThreshold
}

// Poll reports whether a long press should fire at now. It returns true at
// most once per press.
func (p *PressTracker) Poll(now time.Time) (longPress bool) {
	if !p.down || p.longFired {
		return false
	}
	if now.Sub(p.since) >= LongPressThreshold {
		p.longFired = true
		return true
	}
	return false
}

// Held reports whether the button is currently down.
func (p *PressTracker) Held() bool { return p.down }
