package panel

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// captureLog routes the package logger into a buffer for one test.
func captureLog(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func TestCountNodes(t *testing.T) {
	root, _, _, _ := buildTree()
	if got := countNodes(root); got != 4 {
		t.Errorf("countNodes = %d, want 4", got)
	}
}

func TestSetDebugModeTogglesGlobal(t *testing.T) {
	m := NewManager(10, 10)
	m.SetDebugMode(true)
	if !debugEnabled() {
		t.Error("debug should be enabled")
	}
	m.SetDebugMode(false)
	if debugEnabled() {
		t.Error("debug should be disabled")
	}
}

func TestDebugFrameLog(t *testing.T) {
	buf := captureLog(t, slog.LevelDebug)
	m, _, _, _ := newTestManager(t)

	m.Step(0)
	if strings.Contains(buf.String(), "panel: frame") {
		t.Error("frame stats logged outside debug mode")
	}

	m.SetDebugMode(true)
	defer m.SetDebugMode(false)
	m.Step(0)
	out := buf.String()
	if !strings.Contains(out, "panel: frame") || !strings.Contains(out, "nodes=3") {
		t.Errorf("debug log = %q", out)
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureLog(t, slog.LevelWarn)
	setDebug(true)
	defer setDebug(false)

	n := NewContainer("root", Rect{})
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewContainer(fmt.Sprintf("c%d", i), Rect{})
		n.AddChild(child)
		n = child
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}
}

func TestDebugDisposedParentPanics(t *testing.T) {
	setDebug(true)
	defer setDebug(false)

	parent := NewContainer("parent", Rect{})
	parent.Dispose()
	defer func() {
		if r := recover(); r == nil || !strings.Contains(fmt.Sprint(r), "disposed") {
			t.Errorf("recover = %v, want disposed-node panic", r)
		}
	}()
	parent.AddChild(NewNode("child", Rect{}))
}
