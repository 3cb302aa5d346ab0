package panel

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font keys used by the built-in widgets.
const (
	FontH1    = "h1"
	FontH2    = "h2"
	FontH3    = "h3"
	FontBody  = "body"
	FontSmall = "small"
	FontTiny  = "tiny"
)

// fontSizes are the point sizes LoadFonts produces for each key.
var fontSizes = map[string]float64{
	FontH1:    28,
	FontH2:    24,
	FontH3:    20,
	FontBody:  16,
	FontSmall: 13,
	FontTiny:  11,
}

// FontTable maps font keys to faces.
type FontTable map[string]font.Face

// Face returns the face for key, falling back to the body face and then to
// the built-in 7x13 bitmap font. It never returns nil.
func (t FontTable) Face(key string) font.Face {
	if f, ok := t[key]; ok && f != nil {
		return f
	}
	if f, ok := t[FontBody]; ok && f != nil {
		return f
	}
	return basicfont.Face7x13
}

// DefaultFonts returns a table that maps every key to the bitmap font. It
// needs no font files and suits tests and tiny displays.
func DefaultFonts() FontTable {
	t := make(FontTable, len(fontSizes))
	for key := range fontSizes {
		t[key] = basicfont.Face7x13
	}
	return t
}

// LoadFonts parses a TrueType/OpenType font and builds faces for every key at
// its standard size. A nil ttf loads Go Regular.
func LoadFonts(ttf []byte) (FontTable, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	t := make(FontTable, len(fontSizes))
	for key, size := range fontSizes {
		face, err := newFace(f, size)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", key, err)
		}
		t[key] = face
	}
	return t, nil
}

// LoadFontFile reads a font file and returns a face at the given size.
func LoadFontFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return newFace(f, size)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
