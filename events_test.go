package panel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestEventKindNames(t *testing.T) {
	for k := EventKind(0); k < numEventKinds; k++ {
		got, err := ParseEventKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseEventKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseEventKind("hover"); err == nil {
		t.Error("unknown kind should fail to parse")
	}
	if s := EventKind(200).String(); s != "EventKind(200)" {
		t.Errorf("String() = %q", s)
	}
}

func TestRotateDelta(t *testing.T) {
	tests := []struct {
		ev   RotateEvent
		want int
		kind EventKind
	}{
		{Rotate(true), 1, EventRotateCW},
		{Rotate(false), -1, EventRotateCCW},
		{RotateEvent{Clockwise: true, Steps: 3}, 3, EventRotateCW},
		{RotateEvent{}, -1, EventRotateCCW},
	}
	for _, tt := range tests {
		if got := tt.ev.Delta(); got != tt.want {
			t.Errorf("%+v.Delta() = %d, want %d", tt.ev, got, tt.want)
		}
		if tt.ev.Kind() != tt.kind {
			t.Errorf("%+v.Kind() = %v, want %v", tt.ev, tt.ev.Kind(), tt.kind)
		}
	}
}

func TestEmitWithoutHandlers(t *testing.T) {
	n := NewNode("n", Rect{})
	n.Emit(Click(0, 0)) // must not panic
	if n.HandlerCount(EventClick) != 0 {
		t.Error("HandlerCount should be 0")
	}
}

func TestHandlersRunInOrder(t *testing.T) {
	n := NewNode("n", Rect{})
	var order []int
	n.OnClick(func(PointerEvent) { order = append(order, 1) })
	n.OnClick(func(PointerEvent) { order = append(order, 2) })
	n.OnLongPress(func(PointerEvent) { order = append(order, 99) })
	n.Emit(Click(1, 1))
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	n := NewNode("n", Rect{})
	ran := false
	n.OnClick(func(PointerEvent) { panic("boom") })
	n.OnClick(func(PointerEvent) { ran = true })
	n.Emit(Click(0, 0))

	if !ran {
		t.Error("handlers after a panicking one should still run")
	}
	if !strings.Contains(buf.String(), "event handler panicked") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestRemoveDuringEmit(t *testing.T) {
	n := NewNode("n", Rect{})
	var calls []string
	var second HandlerHandle
	n.OnClick(func(PointerEvent) {
		calls = append(calls, "first")
		second.Remove()
	})
	second = n.OnClick(func(PointerEvent) { calls = append(calls, "second") })

	n.Emit(Click(0, 0))
	if len(calls) != 2 {
		t.Errorf("in-flight emit should still reach removed handler, got %v", calls)
	}
	calls = nil
	n.Emit(Click(0, 0))
	if len(calls) != 1 || n.HandlerCount(EventClick) != 1 {
		t.Errorf("removed handler fired again: %v", calls)
	}
	second.Remove() // second removal is a no-op
}

func TestOnRotateRegistersBoth(t *testing.T) {
	n := NewNode("n", Rect{})
	sum := 0
	cw, ccw := n.OnRotate(func(ev RotateEvent) { sum += ev.Delta() })
	n.Emit(Rotate(true))
	n.Emit(Rotate(true))
	n.Emit(Rotate(false))
	if sum != 1 {
		t.Errorf("sum = %d, want 1", sum)
	}
	cw.Remove()
	ccw.Remove()
	n.Emit(Rotate(true))
	if sum != 1 {
		t.Error("removed rotate handlers still fire")
	}
}
