package panel

import (
	"fmt"
	"runtime/debug"
)

// EventKind identifies one of the fixed set of UI events.
type EventKind uint8

const (
	EventClick          EventKind = iota // short press, optionally at a position
	EventLongPress                       // press held past the long-press threshold
	EventRotateCW                        // encoder detent clockwise
	EventRotateCCW                       // encoder detent counterclockwise
	EventFocus                           // node gained focus
	EventBlur                            // node lost focus
	EventValueChange                     // a valued widget changed
	EventAnimationFrame                  // one screen update has run
	EventScreenEnter                     // screen became active
	EventScreenExit                      // screen became inactive
	EventKeyPress                        // key went down
	EventKeyRelease                      // key went up

	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	EventClick:          "click",
	EventLongPress:      "long_press",
	EventRotateCW:       "rotate_cw",
	EventRotateCCW:      "rotate_ccw",
	EventFocus:          "focus",
	EventBlur:           "blur",
	EventValueChange:    "value_change",
	EventAnimationFrame: "animation_frame",
	EventScreenEnter:    "screen_enter",
	EventScreenExit:     "screen_exit",
	EventKeyPress:       "key_press",
	EventKeyRelease:     "key_release",
}

func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind maps a snake-case name ("click", "rotate_cw", ...) back to
// its EventKind.
func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventKindNames {
		if name == s {
			return EventKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// Event is implemented by every payload type. Kind reports which of the fixed
// event kinds the payload belongs to.
type Event interface {
	Kind() EventKind
}

// PointerEvent carries a click or long press. Positioned is false for
// position-less presses such as a rotary encoder's push button.
type PointerEvent struct {
	Type       EventKind // EventClick or EventLongPress
	X, Y       int
	Positioned bool
	Target     *Node // hit node resolved by the manager, nil if none
}

func (e PointerEvent) Kind() EventKind { return e.Type }

// Click returns a click at (x, y).
func Click(x, y int) PointerEvent {
	return PointerEvent{Type: EventClick, X: x, Y: y, Positioned: true}
}

// LongPress returns a long press at (x, y).
func LongPress(x, y int) PointerEvent {
	return PointerEvent{Type: EventLongPress, X: x, Y: y, Positioned: true}
}

// Press returns a position-less click or long press.
func Press(kind EventKind) PointerEvent {
	return PointerEvent{Type: kind}
}

// RotateEvent carries encoder rotation.
type RotateEvent struct {
	Clockwise bool
	Steps     int
}

func (e RotateEvent) Kind() EventKind {
	if e.Clockwise {
		return EventRotateCW
	}
	return EventRotateCCW
}

// Rotate returns a single detent in the given direction.
func Rotate(clockwise bool) RotateEvent {
	return RotateEvent{Clockwise: clockwise, Steps: 1}
}

// Delta returns the signed step count: positive clockwise.
func (e RotateEvent) Delta() int {
	steps := e.Steps
	if steps == 0 {
		steps = 1
	}
	if e.Clockwise {
		return steps
	}
	return -steps
}

// FocusEvent is delivered to a node gaining (EventFocus) or losing
// (EventBlur) focus. Related is the node on the other side of the transfer.
type FocusEvent struct {
	Type    EventKind
	Node    *Node
	Related *Node
}

func (e FocusEvent) Kind() EventKind { return e.Type }

// ValueEvent reports a change in a valued widget.
type ValueEvent struct {
	Node     *Node
	Old, New float64
}

func (ValueEvent) Kind() EventKind { return EventValueChange }

// FrameEvent is emitted to the active screen after each update.
type FrameEvent struct {
	DT    float64
	Frame uint64
}

func (FrameEvent) Kind() EventKind { return EventAnimationFrame }

// ScreenEvent is emitted to a screen when it is entered or exited. Related is
// the name of the screen on the other side of the switch, if any.
type ScreenEvent struct {
	Type    EventKind
	Screen  string
	Related string
}

func (e ScreenEvent) Kind() EventKind { return e.Type }

// KeyEvent carries a key press or release. Key is a lower-case key name
// such as "enter", "left" or "a".
type KeyEvent struct {
	Type      EventKind
	Key       string
	Modifiers KeyModifiers
}

func (e KeyEvent) Kind() EventKind { return e.Type }

// KeyDown returns a key press.
func KeyDown(key string) KeyEvent { return KeyEvent{Type: EventKeyPress, Key: key} }

// KeyUp returns a key release.
func KeyUp(key string) KeyEvent { return KeyEvent{Type: EventKeyRelease, Key: key} }

// Handler receives events of the kind it was registered for.
type Handler func(Event)

// --- Handler registry ---

type handlerEntry struct {
	id uint32
	fn Handler
}

type handlerRegistry struct {
	lists  [numEventKinds][]handlerEntry
	nextID uint32
}

// HandlerHandle allows removing a registered handler.
type HandlerHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind EventKind
}

// Remove unregisters the handler so it no longer fires. Safe to call from
// inside a handler: an emit already in progress still sees the old list.
func (h HandlerHandle) Remove() {
	if h.reg == nil || h.kind >= numEventKinds {
		return
	}
	old := h.reg.lists[h.kind]
	for i := range old {
		if old[i].id == h.id {
			// Build a fresh slice so in-flight iterations are unaffected.
			next := make([]handlerEntry, 0, len(old)-1)
			next = append(next, old[:i]...)
			next = append(next, old[i+1:]...)
			h.reg.lists[h.kind] = next
			return
		}
	}
}

func (r *handlerRegistry) add(kind EventKind, fn Handler) HandlerHandle {
	if fn == nil {
		panic("panel: nil event handler")
	}
	if kind >= numEventKinds {
		panic(fmt.Sprintf("panel: unknown event kind %d", kind))
	}
	r.nextID++
	r.lists[kind] = append(r.lists[kind], handlerEntry{id: r.nextID, fn: fn})
	return HandlerHandle{id: r.nextID, reg: r, kind: kind}
}

func (r *handlerRegistry) count(kind EventKind) int {
	if r == nil || kind >= numEventKinds {
		return 0
	}
	return len(r.lists[kind])
}

// emit invokes every handler for ev's kind in registration order. A panicking
// handler is logged and skipped; the rest still run.
func (r *handlerRegistry) emit(ev Event) {
	if r == nil || ev == nil {
		return
	}
	k := ev.Kind()
	if k >= numEventKinds {
		return
	}
	for _, h := range r.lists[k] {
		invokeHandler(h.fn, ev)
	}
}

func invokeHandler(fn Handler, ev Event) {
	defer func() {
		if p := recover(); p != nil {
			Logger().Error("panel: event handler panicked",
				"event", ev.Kind().String(),
				"panic", p,
				"stack", string(debug.Stack()))
		}
	}()
	fn(ev)
}
