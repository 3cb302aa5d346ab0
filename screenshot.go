package panel

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
)

// Screenshot queues a labeled capture of the next rendered frame. The PNG is
// written to ScreenshotDir with a timestamped file name. Safe from any
// goroutine; the frame is rendered even when no display is set.
func (m *Manager) Screenshot(label string) {
	m.Post(func(m *Manager) {
		m.screenshotQueue = append(m.screenshotQueue, label)
	})
}

// flushScreenshots writes frame once for every queued label.
func (m *Manager) flushScreenshots(frame *image.RGBA) {
	if len(m.screenshotQueue) == 0 {
		return
	}
	defer func() { m.screenshotQueue = m.screenshotQueue[:0] }()

	if err := os.MkdirAll(m.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("panel: screenshot directory", "dir", m.ScreenshotDir, "err", err)
		return
	}
	stamp := timeNow().Format("20060102_150405")
	for _, label := range m.screenshotQueue {
		path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := SavePNG(path, frame); err != nil {
			Logger().Warn("panel: screenshot", "err", err)
			continue
		}
		Logger().Info("panel: screenshot saved", "path", path)
	}
}

// SavePNG writes frame to path as a PNG.
func SavePNG(path string, frame *image.RGBA) error {
	if err := gg.NewContextForRGBA(frame).SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
