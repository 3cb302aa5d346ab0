package panel

import (
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFontTableFallback(t *testing.T) {
	var empty FontTable
	if empty.Face(FontH1) != basicfont.Face7x13 {
		t.Error("empty table should fall back to the bitmap font")
	}

	body, err := LoadFonts(nil)
	if err != nil {
		t.Fatal(err)
	}
	partial := FontTable{FontBody: body[FontBody]}
	if partial.Face(FontH1) != body[FontBody] {
		t.Error("missing key should fall back to the body face")
	}
}

func TestLoadFontsCoversEveryKey(t *testing.T) {
	fonts, err := LoadFonts(nil)
	if err != nil {
		t.Fatal(err)
	}
	for key := range fontSizes {
		if fonts[key] == nil {
			t.Errorf("no face for %q", key)
		}
	}
	if h1, body := fonts.Face(FontH1).Metrics().Height, fonts.Face(FontBody).Metrics().Height; h1 <= body {
		t.Errorf("h1 height %v should exceed body height %v", h1, body)
	}
}

func TestLoadFontsInvalid(t *testing.T) {
	if _, err := LoadFonts([]byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFontFileMissing(t *testing.T) {
	if _, err := LoadFontFile(filepath.Join(t.TempDir(), "nope.ttf"), 12); err == nil {
		t.Error("expected read error")
	}
}
