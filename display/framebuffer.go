package display

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FramebufferConfig describes a Linux framebuffer device. Zero Width,
// Height or BitsPerPixel are read from /sys/class/graphics/<fb>.
type FramebufferConfig struct {
	Device       string  // e.g. /dev/fb1
	Width        int
	Height       int
	BitsPerPixel int     // 16 (RGB565) or 32 (BGRA)
	Brightness   float64 // 0..1 scale applied to every channel; 0 means 1
}

func (c *FramebufferConfig) resolve() error {
	if c.Device == "" {
		c.Device = "/dev/fb0"
	}
	if c.Brightness <= 0 || c.Brightness > 1 {
		c.Brightness = 1
	}
	sys := filepath.Join("/sys/class/graphics", filepath.Base(c.Device))
	if c.Width == 0 || c.Height == 0 {
		raw, err := os.ReadFile(filepath.Join(sys, "virtual_size"))
		if err != nil {
			return fmt.Errorf("framebuffer size: %w", err)
		}
		w, h, err := parseVirtualSize(string(raw))
		if err != nil {
			return err
		}
		c.Width, c.Height = w, h
	}
	if c.BitsPerPixel == 0 {
		raw, err := os.ReadFile(filepath.Join(sys, "bits_per_pixel"))
		if err != nil {
			return fmt.Errorf("framebuffer depth: %w", err)
		}
		bpp, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil {
			return fmt.Errorf("framebuffer depth %q: %w", raw, err)
		}
		c.BitsPerPixel = bpp
	}
	if c.BitsPerPixel != 16 && c.BitsPerPixel != 32 {
		return fmt.Errorf("framebuffer depth %d: only 16 and 32 bpp are supported", c.BitsPerPixel)
	}
	return nil
}

// parseVirtualSize parses the sysfs "W,H" form.
func parseVirtualSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("framebuffer size %q: want W,H", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("framebuffer size %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("framebuffer size %q: %w", s, err)
	}
	return w, h, nil
}

// scaleChannel applies brightness to an 8-bit channel.
func scaleChannel(v uint8, brightness float64) uint8 {
	if brightness >= 1 {
		return v
	}
	return uint8(math.Round(float64(v) * brightness))
}

// encodeBGRA32 converts frame into the 32 bpp BGRA layout most panels expect.
// Pixels outside dst's width × height are dropped.
func encodeBGRA32(dst []byte, stride, width, height int, frame *image.RGBA, brightness float64) {
	b := frame.Bounds()
	w, h := min(width, b.Dx()), min(height, b.Dy())
	for y := range h {
		src := frame.Pix[y*frame.Stride:]
		row := dst[y*stride:]
		for x := range w {
			s := src[x*4:]
			d := row[x*4:]
			d[0] = scaleChannel(s[2], brightness)
			d[1] = scaleChannel(s[1], brightness)
			d[2] = scaleChannel(s[0], brightness)
			d[3] = 0xff
		}
	}
}

// encodeRGB565 converts frame into little-endian 16 bpp RGB565.
func encodeRGB565(dst []byte, stride, width, height int, frame *image.RGBA, brightness float64) {
	b := frame.Bounds()
	w, h := min(width, b.Dx()), min(height, b.Dy())
	for y := range h {
		src := frame.Pix[y*frame.Stride:]
		row := dst[y*stride:]
		for x := range w {
			s := src[x*4:]
			r := uint16(scaleChannel(s[0], brightness)) >> 3
			g := uint16(scaleChannel(s[1], brightness)) >> 2
			bl := uint16(scaleChannel(s[2], brightness)) >> 3
			px := r<<11 | g<<5 | bl
			row[x*2] = byte(px)
			row[x*2+1] = byte(px >> 8)
		}
	}
}
