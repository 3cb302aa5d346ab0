package display

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/phanxgames/panel"
)

func TestTerminalShow(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 4)
	if err := term.Show(image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// 8 px wide at 4 columns scales by 2; 8 rows become 2 lines.
	if got := strings.Count(out, halfBlock); got != 8 {
		t.Errorf("half blocks = %d, want 8", got)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	if strings.HasPrefix(out, "\x1b[H") {
		t.Error("first frame should not home the cursor")
	}

	buf.Reset()
	term.Show(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if !strings.HasPrefix(buf.String(), "\x1b[H") {
		t.Error("later frames should redraw in place")
	}
}

func TestTerminalClearAndClose(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 0)
	if term.columns != 80 {
		t.Errorf("columns = %d, want 80", term.columns)
	}
	if err := term.Clear(panel.ColorBlack); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[2J") {
		t.Error("Clear should erase the screen")
	}
	term.Close()
	if err := term.Show(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrClosed) {
		t.Errorf("Show after Close = %v, want ErrClosed", err)
	}
	if err := term.Clear(panel.ColorBlack); !errors.Is(err, ErrClosed) {
		t.Errorf("Clear after Close = %v, want ErrClosed", err)
	}
}
