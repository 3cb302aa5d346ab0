package panel

import (
	"fmt"
	"math"

	"git.sr.ht/~sbinet/gg"
)

// Widgets are ordinary nodes whose Content is one of the types below. Each
// constructor takes a typed config; zero-valued fields take the defaults
// listed on the config type.

// textPadding is the inset used when text is aligned to a widget edge.
const textPadding = 5

// --- Box ---

// BoxConfig configures a filled, optionally bordered rectangle.
// Zero values: transparent background, no border, square corners.
type BoxConfig struct {
	Background   Color
	Border       Color
	BorderWidth  float64
	CornerRadius float64
}

// Box is a rectangle with optional rounded corners and border. Animatable
// properties: "background", "border".
type Box struct {
	BoxConfig
}

// NewBox creates a box node.
func NewBox(id string, r Rect, cfg BoxConfig) *Node {
	n := NewNode(id, r)
	n.Content = &Box{BoxConfig: cfg}
	return n
}

func (b *Box) Draw(dc *gg.Context, n *Node, _ FontTable) {
	if b.Background.A > 0 {
		fillRoundedRect(dc, n.Rect, b.CornerRadius, b.Background)
	}
	if b.BorderWidth > 0 && b.Border.A > 0 {
		strokeRoundedRect(dc, n.Rect, b.CornerRadius, b.BorderWidth, b.Border)
	}
}

func (b *Box) Property(name string) (Value, bool) {
	switch name {
	case "background":
		return ColorValue(b.Background), true
	case "border":
		return ColorValue(b.Border), true
	}
	return nil, false
}

func (b *Box) SetProperty(name string, v Value) {
	switch name {
	case "background":
		b.Background = v.Color()
	case "border":
		b.Border = v.Color()
	}
}

// --- Label ---

// LabelConfig configures a text label.
// Zero values: body font, white text, left/top alignment, no truncation.
type LabelConfig struct {
	Text     string
	Font     string
	Color    Color
	Align    TextAlign
	VAlign   VerticalAlign
	Truncate bool // shorten with "..." to fit the node's width
}

// Label draws a single line of text. Animatable property: "color".
type Label struct {
	LabelConfig
}

// NewLabel creates a label node.
func NewLabel(id string, r Rect, cfg LabelConfig) *Node {
	if cfg.Font == "" {
		cfg.Font = FontBody
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	n := NewNode(id, r)
	n.Content = &Label{LabelConfig: cfg}
	return n
}

func (l *Label) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	if l.Text == "" {
		return
	}
	dc.SetFontFace(fonts.Face(l.Font))
	text := l.Text
	if l.Truncate {
		text = truncateText(dc, text, float64(n.Rect.Width-2*textPadding))
	}
	drawText(dc, text, n.Rect, l.Align, l.VAlign, l.Color)
}

func (l *Label) Property(name string) (Value, bool) {
	if name == "color" {
		return ColorValue(l.Color), true
	}
	return nil, false
}

func (l *Label) SetProperty(name string, v Value) {
	if name == "color" {
		l.Color = v.Color()
	}
}

func (l *Label) text() *string { return &l.Text }

// --- Button ---

// ButtonConfig configures a push button.
// Zero values: gray (60,60,60) background, lighter pressed and focus shades,
// white body-font text, corner radius 8.
type ButtonConfig struct {
	Text         string
	Font         string
	Background   Color
	Focused      Color // background while focused
	TextColor    Color
	CornerRadius float64
	Disabled     Color // text color when the node is disabled
}

// Button is a rounded rectangle with centered text that highlights while it
// holds focus. Animatable property: "background".
type Button struct {
	ButtonConfig
	focused bool
}

// NewButton creates a button node. Register click handlers with
// Node.OnClick.
func NewButton(id string, r Rect, cfg ButtonConfig) *Node {
	if cfg.Font == "" {
		cfg.Font = FontBody
	}
	if cfg.Background == (Color{}) {
		cfg.Background = RGB(60, 60, 60)
	}
	if cfg.Focused == (Color{}) {
		cfg.Focused = RGB(80, 80, 80)
	}
	if cfg.TextColor == (Color{}) {
		cfg.TextColor = ColorWhite
	}
	if cfg.Disabled == (Color{}) {
		cfg.Disabled = RGB(128, 128, 128)
	}
	if cfg.CornerRadius == 0 {
		cfg.CornerRadius = 8
	}
	b := &Button{ButtonConfig: cfg}
	n := NewNode(id, r)
	n.Content = b
	n.OnFocus(func(FocusEvent) { b.focused = true })
	n.OnBlur(func(FocusEvent) { b.focused = false })
	return n
}

// IsFocused reports whether the button is drawn in its focused state.
func (b *Button) IsFocused() bool { return b.focused }

func (b *Button) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	bg := b.Background
	if b.focused {
		bg = b.Focused
	}
	fillRoundedRect(dc, n.Rect, b.CornerRadius, bg)
	if b.Text == "" {
		return
	}
	fg := b.TextColor
	if !n.Enabled {
		fg = b.Disabled
	}
	dc.SetFontFace(fonts.Face(b.Font))
	drawText(dc, b.Text, n.Rect, TextAlignCenter, VerticalAlignMiddle, fg)
}

func (b *Button) Property(name string) (Value, bool) {
	if name == "background" {
		return ColorValue(b.Background), true
	}
	return nil, false
}

func (b *Button) SetProperty(name string, v Value) {
	if name == "background" {
		b.Background = v.Color()
	}
}

func (b *Button) text() *string { return &b.Text }

// --- ProgressBar ---

// ProgressBarConfig configures a horizontal progress bar.
// Zero values: range [0, 1], dark (40,40,40) track, blue (0,122,255) fill,
// white text, corner radius 4, percentage hidden, format "%.1f%%".
type ProgressBarConfig struct {
	Value, Min, Max float64
	Background      Color
	Fill            Color
	TextColor       Color
	CornerRadius    float64
	ShowText        bool
	Format          string // printf format applied to the percentage
}

// ProgressBar shows Value's position within [Min, Max]. Animatable
// property: "value".
type ProgressBar struct {
	ProgressBarConfig
}

// NewProgressBar creates a progress bar node.
func NewProgressBar(id string, r Rect, cfg ProgressBarConfig) *Node {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Max = 1
	}
	if cfg.Background == (Color{}) {
		cfg.Background = RGB(40, 40, 40)
	}
	if cfg.Fill == (Color{}) {
		cfg.Fill = RGB(0, 122, 255)
	}
	if cfg.TextColor == (Color{}) {
		cfg.TextColor = ColorWhite
	}
	if cfg.CornerRadius == 0 {
		cfg.CornerRadius = 4
	}
	if cfg.Format == "" {
		cfg.Format = "%.1f%%"
	}
	p := &ProgressBar{ProgressBarConfig: cfg}
	p.Value = p.clamp(cfg.Value)
	n := NewNode(id, r)
	n.Content = p
	return n
}

// Fraction returns the normalized fill in [0, 1].
func (p *ProgressBar) Fraction() float64 {
	return normalize(p.Value, p.Min, p.Max)
}

func (p *ProgressBar) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	r := n.Rect
	fillRoundedRect(dc, r, p.CornerRadius, p.Background)
	frac := p.Fraction()
	if w := int(float64(r.Width) * frac); w > 0 {
		fill := Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}
		radius := p.CornerRadius
		if float64(w) < float64(r.Width)-2*radius {
			radius = 0
		}
		fillRoundedRect(dc, fill, radius, p.Fill)
	}
	if p.ShowText {
		dc.SetFontFace(fonts.Face(FontSmall))
		drawText(dc, fmt.Sprintf(p.Format, frac*100), r, TextAlignCenter, VerticalAlignMiddle, p.TextColor)
	}
}

func (p *ProgressBar) clamp(v float64) float64 { return clampRange(v, p.Min, p.Max) }

func (p *ProgressBar) value() float64 { return p.Value }

func (p *ProgressBar) setValue(v float64) { p.Value = p.clamp(v) }

func (p *ProgressBar) Property(name string) (Value, bool) {
	if name == "value" {
		return Scalar(p.Value), true
	}
	return nil, false
}

func (p *ProgressBar) SetProperty(name string, v Value) {
	if name == "value" {
		p.Value = p.clamp(v.Float())
	}
}

// --- Slider ---

// SliderConfig configures a horizontal slider adjusted by rotation while
// focused.
// Zero values: range [0, 1], step of 1/100 of the range, gray (60,60,60)
// track, blue (0,122,255) fill, white thumb of radius 10, value hidden.
type SliderConfig struct {
	Value, Min, Max float64
	Step            float64
	Track           Color
	Fill            Color
	Thumb           Color
	ThumbRadius     float64
	ShowValue       bool
}

// Slider is a track with a draggable-looking thumb. Each rotation detent
// delivered while the slider holds focus moves the value by Step.
// Animatable property: "value".
type Slider struct {
	SliderConfig
}

// NewSlider creates a slider node.
func NewSlider(id string, r Rect, cfg SliderConfig) *Node {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Max = 1
	}
	if cfg.Step <= 0 {
		cfg.Step = (cfg.Max - cfg.Min) / 100
	}
	if cfg.Track == (Color{}) {
		cfg.Track = RGB(60, 60, 60)
	}
	if cfg.Fill == (Color{}) {
		cfg.Fill = RGB(0, 122, 255)
	}
	if cfg.Thumb == (Color{}) {
		cfg.Thumb = ColorWhite
	}
	if cfg.ThumbRadius == 0 {
		cfg.ThumbRadius = 10
	}
	s := &Slider{SliderConfig: cfg}
	s.Value = s.clamp(cfg.Value)
	n := NewNode(id, r)
	n.Content = s
	n.OnRotate(func(ev RotateEvent) { n.Step(ev.Delta()) })
	return n
}

// Fraction returns the thumb position in [0, 1].
func (s *Slider) Fraction() float64 {
	return normalize(s.Value, s.Min, s.Max)
}

func (s *Slider) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	const trackHeight = 6
	r := n.Rect
	_, cy := r.Center()
	track := Rect{X: r.X, Y: cy - trackHeight/2, Width: r.Width, Height: trackHeight}
	fillRoundedRect(dc, track, trackHeight/2, s.Track)

	frac := s.Fraction()
	if w := int(float64(r.Width) * frac); w > 0 {
		fillRoundedRect(dc, Rect{X: track.X, Y: track.Y, Width: w, Height: trackHeight}, trackHeight/2, s.Fill)
	}

	thumbX := float64(r.X) + float64(r.Width)*frac
	dc.SetColor(s.Thumb.NRGBA())
	dc.DrawCircle(thumbX, float64(cy), s.ThumbRadius)
	dc.Fill()

	if s.ShowValue {
		dc.SetFontFace(fonts.Face(FontSmall))
		dc.SetColor(s.Fill.NRGBA())
		dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", frac*100), float64(r.X), float64(r.Y)-4, 0, 0)
	}
}

func (s *Slider) clamp(v float64) float64 { return clampRange(v, s.Min, s.Max) }

func (s *Slider) value() float64 { return s.Value }

func (s *Slider) setValue(v float64) { s.Value = s.clamp(v) }

func (s *Slider) stepSize() float64 { return s.Step }

func (s *Slider) Property(name string) (Value, bool) {
	if name == "value" {
		return Scalar(s.Value), true
	}
	return nil, false
}

func (s *Slider) SetProperty(name string, v Value) {
	if name == "value" {
		s.Value = s.clamp(v.Float())
	}
}

// --- Toggle ---

// ToggleConfig configures an on/off button.
// Zero values: off, blue (0,122,255) when on, gray (60,60,60) when off,
// white body-font text, corner radius 8.
type ToggleConfig struct {
	Text         string
	On           bool
	OnColor      Color
	OffColor     Color
	TextColor    Color
	CornerRadius float64
}

// Toggle flips between on and off on every click and reports the change as
// a value event (1 for on, 0 for off).
type Toggle struct {
	ToggleConfig
}

// NewToggle creates a toggle node.
func NewToggle(id string, r Rect, cfg ToggleConfig) *Node {
	if cfg.OnColor == (Color{}) {
		cfg.OnColor = RGB(0, 122, 255)
	}
	if cfg.OffColor == (Color{}) {
		cfg.OffColor = RGB(60, 60, 60)
	}
	if cfg.TextColor == (Color{}) {
		cfg.TextColor = ColorWhite
	}
	if cfg.CornerRadius == 0 {
		cfg.CornerRadius = 8
	}
	n := NewNode(id, r)
	t := &Toggle{ToggleConfig: cfg}
	n.Content = t
	n.OnClick(func(PointerEvent) { n.SetValue(1 - t.value()) })
	return n
}

func (t *Toggle) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	bg := t.OffColor
	if t.On {
		bg = t.OnColor
	}
	fillRoundedRect(dc, n.Rect, t.CornerRadius, bg)
	if t.Text != "" {
		dc.SetFontFace(fonts.Face(FontBody))
		drawText(dc, t.Text, n.Rect, TextAlignCenter, VerticalAlignMiddle, t.TextColor)
	}
}

func (t *Toggle) value() float64 {
	if t.On {
		return 1
	}
	return 0
}

func (t *Toggle) setValue(v float64) { t.On = v >= 0.5 }

func (t *Toggle) text() *string { return &t.Text }

// --- Node helpers for valued widgets ---

// valued is implemented by content that carries a numeric value.
type valued interface {
	value() float64
	setValue(v float64)
}

// stepper is implemented by valued content with a natural increment.
type stepper interface {
	valued
	stepSize() float64
}

// texter is implemented by content that displays a text string.
type texter interface {
	text() *string
}

// Value returns the node's widget value. ok is false for content without one.
func (n *Node) Value() (v float64, ok bool) {
	w, ok := n.Content.(valued)
	if !ok {
		return 0, false
	}
	return w.value(), true
}

// SetValue updates a valued widget, clamped to its range, and emits a
// ValueEvent when the stored value changed. It reports whether the node
// carries a value at all.
func (n *Node) SetValue(v float64) bool {
	w, ok := n.Content.(valued)
	if !ok {
		return false
	}
	old := w.value()
	w.setValue(v)
	if now := w.value(); now != old {
		n.Emit(ValueEvent{Node: n, Old: old, New: now})
	}
	return true
}

// Step moves a stepped widget by delta increments. Other nodes ignore it.
func (n *Node) Step(delta int) {
	w, ok := n.Content.(stepper)
	if !ok || delta == 0 {
		return
	}
	n.SetValue(w.value() + float64(delta)*w.stepSize())
}

// Text returns the displayed text of labels, buttons and toggles.
func (n *Node) Text() string {
	if t, ok := n.Content.(texter); ok {
		return *t.text()
	}
	return ""
}

// SetText replaces the displayed text of labels, buttons and toggles.
func (n *Node) SetText(s string) {
	if t, ok := n.Content.(texter); ok {
		*t.text() = s
	}
}

// --- Drawing helpers ---

func fillRoundedRect(dc *gg.Context, r Rect, radius float64, c Color) {
	dc.SetColor(c.NRGBA())
	if radius > 0 {
		dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height), radius)
	} else {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	}
	dc.Fill()
}

func strokeRoundedRect(dc *gg.Context, r Rect, radius, width float64, c Color) {
	dc.SetColor(c.NRGBA())
	dc.SetLineWidth(width)
	inset := width / 2
	x, y := float64(r.X)+inset, float64(r.Y)+inset
	w, h := float64(r.Width)-width, float64(r.Height)-width
	if radius > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, radius)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	dc.Stroke()
}

// drawText places one line of text in r. The font face must already be set.
func drawText(dc *gg.Context, text string, r Rect, align TextAlign, valign VerticalAlign, c Color) {
	var x, ax float64
	switch align {
	case TextAlignCenter:
		x, ax = float64(r.X)+float64(r.Width)/2, 0.5
	case TextAlignRight:
		x, ax = float64(r.Right()-textPadding), 1
	default:
		x, ax = float64(r.X+textPadding), 0
	}
	var y, ay float64
	switch valign {
	case VerticalAlignMiddle:
		y, ay = float64(r.Y)+float64(r.Height)/2, 0.5
	case VerticalAlignBottom:
		y, ay = float64(r.Bottom()-textPadding), 0
	default:
		y, ay = float64(r.Y+textPadding), 1
	}
	dc.SetColor(c.NRGBA())
	dc.DrawStringAnchored(text, x, y, ax, ay)
}

// truncateText shortens text with a trailing "..." until it fits maxWidth.
func truncateText(dc *gg.Context, text string, maxWidth float64) string {
	if w, _ := dc.MeasureString(text); w <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := string(runes) + "..."
		if w, _ := dc.MeasureString(s); w <= maxWidth {
			return s
		}
	}
	return ""
}

func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
}

func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}
