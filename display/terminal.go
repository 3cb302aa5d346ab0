package display

import (
	"fmt"
	"image"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/panel"
)

// halfBlock draws the upper pixel in the foreground color and the lower one
// in the background color, packing two rows into one line of text.
const halfBlock = "▀"

// Terminal previews frames in a true-color terminal. Each frame is scaled to
// Columns characters wide; every character cell shows two pixel rows.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	columns  int
	frames   int
	closed   bool
}

// NewTerminal returns a sink writing to w. columns <= 0 defaults to 80.
func NewTerminal(w io.Writer, columns int) *Terminal {
	if columns <= 0 {
		columns = 80
	}
	return &Terminal{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		columns:  columns,
	}
}

func (t *Terminal) Show(frame *image.RGBA) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	var b strings.Builder
	if t.frames > 0 {
		b.WriteString("\x1b[H") // home the cursor to redraw in place
	}
	t.frames++
	for _, line := range t.lines(frame) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// lines renders frame as text rows.
func (t *Terminal) lines(frame *image.RGBA) []string {
	bounds := frame.Bounds()
	if bounds.Empty() {
		return nil
	}
	cols := min(t.columns, bounds.Dx())
	scale := float64(bounds.Dx()) / float64(cols)
	rows := int(float64(bounds.Dy()) / scale / 2)
	if rows == 0 {
		rows = 1
	}
	out := make([]string, 0, rows)
	var line strings.Builder
	for row := range rows {
		line.Reset()
		for col := range cols {
			x := bounds.Min.X + int(float64(col)*scale)
			top := bounds.Min.Y + int(float64(row*2)*scale)
			bottom := min(bounds.Min.Y+int(float64(row*2+1)*scale), bounds.Max.Y-1)
			style := t.renderer.NewStyle().
				Foreground(lipgloss.Color(hexAt(frame, x, top))).
				Background(lipgloss.Color(hexAt(frame, x, bottom)))
			line.WriteString(style.Render(halfBlock))
		}
		out = append(out, line.String())
	}
	return out
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Clear resets the terminal and paints nothing; the next frame redraws
// from the top-left corner.
func (t *Terminal) Clear(panel.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.frames = 0
	_, err := io.WriteString(t.w, "\x1b[2J\x1b[H")
	return err
}

func (t *Terminal) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	return nil
}
