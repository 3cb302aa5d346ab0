package panel

import (
	"image"
	"image/draw"
)

// Display is a sink for rendered frames: an LCD framebuffer, a desktop
// window, a terminal preview or an in-memory recorder.
type Display interface {
	// Show presents a complete frame. Each frame is freshly allocated; a
	// sink may keep it but must not modify it.
	Show(frame *image.RGBA) error
	// Clear fills the output with a solid color.
	Clear(c Color) error
	Close() error
}

// callbackDisplay adapts a bare frame callback to Display.
type callbackDisplay struct {
	fn            func(*image.RGBA) error
	width, height int
}

func (d callbackDisplay) Show(frame *image.RGBA) error { return d.fn(frame) }

// Clear sends a full-size frame of solid color through the callback.
func (d callbackDisplay) Clear(c Color) error {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	return d.fn(img)
}

func (callbackDisplay) Close() error { return nil }
