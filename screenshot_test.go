package panel

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	m := NewManager(10, 10)
	if m.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", m.ScreenshotDir, "screenshots")
	}
}

func TestScreenshotWritesPNG(t *testing.T) {
	clock := useFakeClock(t)
	clock.now = time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	m := NewManager(16, 16)
	m.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	m.Screenshot("a")
	m.Screenshot("b")
	if m.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", m.Pending())
	}
	m.Step(0)

	for _, label := range []string{"a", "b"} {
		path := filepath.Join(m.ScreenshotDir, "20240309_140506_"+label+".png")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
	if m.LastFrame() == nil {
		t.Error("screenshot should render even without a display")
	}

	// The queue is flushed once.
	m.Step(0)
	entries, _ := os.ReadDir(m.ScreenshotDir)
	if len(entries) != 2 {
		t.Errorf("files = %d, want 2", len(entries))
	}
}

func TestSavePNGError(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("writing into a missing directory should fail")
	}
}
