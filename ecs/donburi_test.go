package ecs

import (
	"testing"

	"github.com/phanxgames/panel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newBridgedScreen(t *testing.T) (*panel.Manager, *panel.Node, donburi.World, *[]InputEvent) {
	t.Helper()
	world := donburi.NewWorld()
	m := panel.NewManager(320, 240)
	s := panel.NewScreen("main", 320, 240)
	btn := panel.NewButton("ok", panel.R(10, 10, 100, 40), panel.ButtonConfig{Text: "OK"})
	s.Add(btn)
	m.RegisterScreen(s)
	if err := m.SwitchScreen("main"); err != nil {
		t.Fatal(err)
	}

	bridge := NewBridge(world, m)
	bridge.Attach(s)

	var received []InputEvent
	InputEventType.Subscribe(world, func(w donburi.World, e InputEvent) {
		received = append(received, e)
	})
	return m, btn, world, &received
}

func TestBridgePublishesClick(t *testing.T) {
	m, _, world, received := newBridgedScreen(t)

	m.HandleInput(panel.Click(20, 20))
	m.Step(0)
	InputEventType.ProcessEvents(world)

	if len(*received) != 1 {
		t.Fatalf("received %d events, want 1", len(*received))
	}
	e := (*received)[0]
	if e.Kind != panel.EventClick || e.NodeID != "ok" || e.Screen != "main" {
		t.Errorf("event = %+v", e)
	}
	if !e.Positioned || e.X != 20 || e.Y != 20 {
		t.Errorf("position = (%d,%d) positioned=%v", e.X, e.Y, e.Positioned)
	}
}

func TestBridgeRotateCarriesFocusedNode(t *testing.T) {
	m, btn, world, received := newBridgedScreen(t)
	if err := m.Focus(btn); err != nil {
		t.Fatal(err)
	}

	m.HandleInput(panel.RotateEvent{Clockwise: false, Steps: 3})
	m.HandleInput(panel.KeyDown("a"))
	m.Step(0)
	InputEventType.ProcessEvents(world)

	if len(*received) != 2 {
		t.Fatalf("received %d events, want 2", len(*received))
	}
	if got := (*received)[0]; got.Kind != panel.EventRotateCCW || got.Delta != -3 || got.NodeID != "ok" {
		t.Errorf("rotate = %+v", got)
	}
	if got := (*received)[1]; got.Kind != panel.EventKeyPress || got.Key != "a" {
		t.Errorf("key = %+v", got)
	}
}

func TestBridgeWatchValue(t *testing.T) {
	world := donburi.NewWorld()
	bridge := NewBridge(world, nil)
	toggle := panel.NewToggle("sound", panel.R(0, 0, 80, 30), panel.ToggleConfig{})
	bridge.Watch(toggle)

	var values []float64
	InputEventType.Subscribe(world, func(w donburi.World, e InputEvent) {
		values = append(values, e.Value)
	})

	toggle.SetValue(1)
	events.ProcessAllEvents(world)

	if len(values) != 1 || values[0] != 1 {
		t.Errorf("values = %v, want [1]", values)
	}
}

func TestBridgeDetach(t *testing.T) {
	m, _, world, received := newBridgedScreen(t)
	s := m.Screen("main")

	bridge := NewBridge(world, m)
	bridge.Attach(s)
	bridge.Detach()

	m.HandleInput(panel.Press(panel.EventLongPress))
	m.Step(0)
	InputEventType.ProcessEvents(world)

	// Only the bridge created by the helper remains subscribed.
	if len(*received) != 1 {
		t.Errorf("received %d events, want 1", len(*received))
	}
}
