//go:build linux

package display

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/phanxgames/panel"
)

// Framebuffer writes frames straight into a memory-mapped /dev/fb* device,
// as used by SPI LCD hats on a Raspberry Pi.
type Framebuffer struct {
	mu     sync.Mutex
	cfg    FramebufferConfig
	file   *os.File
	mem    []byte
	stride int
}

// NewFramebuffer opens and maps the device described by cfg.
func NewFramebuffer(cfg FramebufferConfig) (*Framebuffer, error) {
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.Device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer: %w", err)
	}
	stride := cfg.Width * cfg.BitsPerPixel / 8
	mem, err := unix.Mmap(int(f.Fd()), 0, stride*cfg.Height, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", cfg.Device, err)
	}
	panel.Logger().Info("panel: framebuffer opened",
		"device", cfg.Device, "width", cfg.Width, "height", cfg.Height, "bpp", cfg.BitsPerPixel)
	return &Framebuffer{cfg: cfg, file: f, mem: mem, stride: stride}, nil
}

// SetBrightness changes the software brightness applied to later frames.
func (fb *Framebuffer) SetBrightness(b float64) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if b <= 0 || b > 1 {
		b = 1
	}
	fb.cfg.Brightness = b
}

func (fb *Framebuffer) Show(frame *image.RGBA) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.mem == nil {
		return ErrClosed
	}
	if fb.cfg.BitsPerPixel == 16 {
		encodeRGB565(fb.mem, fb.stride, fb.cfg.Width, fb.cfg.Height, frame, fb.cfg.Brightness)
	} else {
		encodeBGRA32(fb.mem, fb.stride, fb.cfg.Width, fb.cfg.Height, frame, fb.cfg.Brightness)
	}
	return nil
}

func (fb *Framebuffer) Clear(c panel.Color) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.cfg.Width, fb.cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	return fb.Show(img)
}

func (fb *Framebuffer) Close() error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.mem == nil {
		return nil
	}
	err := unix.Munmap(fb.mem)
	fb.mem = nil
	if cerr := fb.file.Close(); err == nil {
		err = cerr
	}
	return err
}
