// Package display provides frame sinks for panel.Manager: an in-memory
// recorder, a Linux framebuffer device and a terminal preview.
package display

import (
	"errors"
	"image"
	"image/draw"
	"sync"

	"github.com/phanxgames/panel"
)

// ErrClosed is returned by sinks used after Close.
var ErrClosed = errors.New("display: closed")

// Memory records presented frames. It is the sink for tests and headless
// runs. Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	frames []*image.RGBA
	limit  int
	shown  int
	closed bool
}

// NewMemory returns a recorder that keeps only the latest frame.
func NewMemory() *Memory { return NewMemoryLimit(1) }

// NewMemoryLimit returns a recorder that keeps the most recent limit frames.
// A limit below 1 is treated as 1.
func NewMemoryLimit(limit int) *Memory {
	return &Memory{limit: max(limit, 1)}
}

func (m *Memory) Show(frame *image.RGBA) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.shown++
	m.frames = append(m.frames, frame)
	if over := len(m.frames) - m.limit; over > 0 {
		copy(m.frames, m.frames[over:])
		clear(m.frames[len(m.frames)-over:])
		m.frames = m.frames[:len(m.frames)-over]
	}
	return nil
}

// Clear records a solid frame the size of the last one shown (1×1 before
// any frame).
func (m *Memory) Clear(c panel.Color) error {
	bounds := image.Rect(0, 0, 1, 1)
	if last := m.Last(); last != nil {
		bounds = last.Bounds()
	}
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	return m.Show(img)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// Last returns the most recent frame, or nil.
func (m *Memory) Last() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[len(m.frames)-1]
}

// Frames returns the retained frames, oldest first.
func (m *Memory) Frames() []*image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*image.RGBA(nil), m.frames...)
}

// Count returns how many frames have been shown in total.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shown
}

// SavePNG writes the most recent frame to path.
func (m *Memory) SavePNG(path string) error {
	last := m.Last()
	if last == nil {
		return errors.New("display: no frame to save")
	}
	return panel.SavePNG(path, last)
}
