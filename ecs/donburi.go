package ecs

import (
	"github.com/phanxgames/panel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEvent is the Donburi payload published for every bridged panel
// event. NodeID is the node the event was delivered to, if any.
type InputEvent struct {
	Kind       panel.EventKind
	Screen     string
	NodeID     string
	X, Y       int
	Positioned bool
	Delta      int // signed rotation steps
	Key        string
	Value      float64 // new value for value-change events
}

// InputEventType is the Donburi event type for bridged panel events.
var InputEventType = events.NewEventType[InputEvent]()

// Bridge republishes panel events into a Donburi world.
type Bridge struct {
	world   donburi.World
	m       *panel.Manager
	handles []panel.HandlerHandle
}

// NewBridge creates a bridge publishing into world. m resolves the focused
// node for rotation and key events; it may be nil.
func NewBridge(world donburi.World, m *panel.Manager) *Bridge {
	return &Bridge{world: world, m: m}
}

// Attach subscribes to the input events a screen receives: clicks, long
// presses, rotation and keys.
func (b *Bridge) Attach(s *panel.Screen) {
	for _, kind := range []panel.EventKind{
		panel.EventClick, panel.EventLongPress,
		panel.EventRotateCW, panel.EventRotateCCW,
		panel.EventKeyPress, panel.EventKeyRelease,
	} {
		b.handles = append(b.handles, s.On(kind, func(ev panel.Event) {
			b.Publish(s.Name, ev)
		}))
	}
}

// Watch subscribes to value changes of a widget node.
func (b *Bridge) Watch(n *panel.Node) {
	b.handles = append(b.handles, n.OnValueChange(func(ev panel.ValueEvent) {
		b.Publish("", ev)
	}))
}

// Detach removes every handler registered by Attach and Watch.
func (b *Bridge) Detach() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}

// Publish converts ev and queues it on InputEventType.
func (b *Bridge) Publish(screen string, ev panel.Event) {
	InputEventType.Publish(b.world, b.convert(screen, ev))
}

func (b *Bridge) convert(screen string, ev panel.Event) InputEvent {
	out := InputEvent{Kind: ev.Kind(), Screen: screen}
	switch e := ev.(type) {
	case panel.PointerEvent:
		out.X, out.Y, out.Positioned = e.X, e.Y, e.Positioned
		out.NodeID = nodeID(e.Target)
	case panel.RotateEvent:
		out.Delta = e.Delta()
		out.NodeID = b.focusedID()
	case panel.KeyEvent:
		out.Key = e.Key
		out.NodeID = b.focusedID()
	case panel.ValueEvent:
		out.Value = e.New
		out.NodeID = nodeID(e.Node)
	}
	return out
}

func (b *Bridge) focusedID() string {
	if b.m == nil {
		return ""
	}
	return nodeID(b.m.Focused())
}

func nodeID(n *panel.Node) string {
	if n == nil {
		return ""
	}
	return n.ID
}
