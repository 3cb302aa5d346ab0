//go:build !linux

package display

import (
	"errors"
	"image"

	"github.com/phanxgames/panel"
)

// Framebuffer is only available on Linux.
type Framebuffer struct{}

// NewFramebuffer always fails outside Linux.
func NewFramebuffer(cfg FramebufferConfig) (*Framebuffer, error) {
	return nil, errors.ErrUnsupported
}

func (*Framebuffer) SetBrightness(float64) {}

func (*Framebuffer) Show(*image.RGBA) error { return errors.ErrUnsupported }

func (*Framebuffer) Clear(panel.Color) error { return errors.ErrUnsupported }

func (*Framebuffer) Close() error { return nil }
