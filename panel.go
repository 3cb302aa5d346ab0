package panel

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rect is an axis-aligned rectangle in display pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// R is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the integer center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on any edge, including the right and bottom edges, are inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() &&
		y >= r.Y && y <= r.Bottom()
}

// Inflate returns r grown by dx on the left and right and dy on the top and
// bottom. Negative values shrink it.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{r.X - dx, r.Y - dy, r.Width + dx*2, r.Height + dy*2}
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.Right() && r.Right() >= other.X &&
		r.Y <= other.Bottom() && r.Bottom() >= other.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when the color is handed to the drawing context.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA8 builds a color from 8-bit channels including alpha.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is ParseHex for package-level color tables. Panics on bad input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("panel: " + err.Error())
	}
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// NRGBA converts to a straight-alpha 8-bit color usable with image/draw and gg.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Lerp blends c toward other by t (0 = c, 1 = other).
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
		c.A + (other.A-c.A)*t,
	}
}

// UnmarshalYAML accepts hex strings ("#0d1117") in theme files.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a hex string: %w", value.Line, err)
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// TextAlign controls horizontal text alignment within a widget's rectangle.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// VerticalAlign controls vertical text placement within a widget's rectangle.
type VerticalAlign uint8

const (
	VerticalAlignTop    VerticalAlign = iota // top edge (default)
	VerticalAlignMiddle                      // centered vertically
	VerticalAlignBottom                      // bottom edge
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
