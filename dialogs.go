package panel

import (
	"fmt"
	"time"

	"git.sr.ht/~sbinet/gg"
)

// Overlay z-indexes. The FPS widget stays above both.
const (
	modalZIndex = 1 << 18
	toastZIndex = 1 << 19
)

// --- Dialog ---

// DialogConfig configures a dialog box with a title, a message and a row of
// buttons.
// Zero values: a single "OK" button, translucent (33,38,45,240) background,
// corner radius 12, white title, light gray message, blue (47,129,247)
// buttons.
type DialogConfig struct {
	Title        string
	Message      string
	Buttons      []string
	Background   Color
	CornerRadius float64
	TitleColor   Color
	MessageColor Color
	ButtonColor  Color

	// OnButton runs when a button is clicked, with its index and label.
	OnButton func(index int, label string)
}

// Dialog button geometry.
const (
	dialogButtonWidth   = 80
	dialogButtonHeight  = 40
	dialogButtonSpacing = 10
)

// NewDialog creates a dialog node. Its children are the title and message
// labels and one button per label, with ids "<id>-button-<i>" and the tag
// "dialog-button".
func NewDialog(id string, r Rect, cfg DialogConfig) *Node {
	if len(cfg.Buttons) == 0 {
		cfg.Buttons = []string{"OK"}
	}
	if cfg.Background == (Color{}) {
		cfg.Background = RGBA8(33, 38, 45, 240)
	}
	if cfg.CornerRadius == 0 {
		cfg.CornerRadius = 12
	}
	if cfg.TitleColor == (Color{}) {
		cfg.TitleColor = ColorWhite
	}
	if cfg.MessageColor == (Color{}) {
		cfg.MessageColor = RGB(200, 200, 200)
	}
	if cfg.ButtonColor == (Color{}) {
		cfg.ButtonColor = RGB(47, 129, 247)
	}

	n := NewBox(id, r, BoxConfig{Background: cfg.Background, CornerRadius: cfg.CornerRadius})
	if cfg.Title != "" {
		n.AddChild(NewLabel(id+"-title", R(r.X+20, r.Y+20, r.Width-40, 30), LabelConfig{
			Text:   cfg.Title,
			Font:   FontH2,
			Color:  cfg.TitleColor,
			Align:  TextAlignCenter,
			VAlign: VerticalAlignMiddle,
		}))
	}
	if cfg.Message != "" {
		n.AddChild(NewLabel(id+"-message", R(r.X+20, r.Y+60, r.Width-40, r.Height-140), LabelConfig{
			Text:  cfg.Message,
			Color: cfg.MessageColor,
			Align: TextAlignCenter,
		}))
	}

	count := len(cfg.Buttons)
	total := count*dialogButtonWidth + (count-1)*dialogButtonSpacing
	x := r.X + floorDiv(r.Width-total, 2)
	for i, label := range cfg.Buttons {
		b := NewButton(fmt.Sprintf("%s-button-%d", id, i),
			R(x+i*(dialogButtonWidth+dialogButtonSpacing), r.Bottom()-70, dialogButtonWidth, dialogButtonHeight),
			ButtonConfig{Text: label, Background: cfg.ButtonColor, CornerRadius: 8})
		b.AddTag("dialog-button")
		b.OnClick(func(PointerEvent) {
			if cfg.OnButton != nil {
				cfg.OnButton(i, label)
			}
		})
		n.AddChild(b)
	}
	return n
}

// NewModal creates a dialog centered in screen on top of a full-screen
// overlay. The overlay catches every click outside the dialog, so nodes
// underneath cannot be reached until the modal is removed. A zero overlay
// color defaults to black at 180/255 opacity.
func NewModal(id string, screen Rect, width, height int, overlay Color, cfg DialogConfig) *Node {
	if overlay == (Color{}) {
		overlay = RGBA8(0, 0, 0, 180)
	}
	n := NewBox(id, screen, BoxConfig{Background: overlay})
	n.ZIndex = modalZIndex
	n.AddChild(NewDialog(id+"-dialog", CenterRect(screen, width, height), cfg))
	return n
}

// --- Toast ---

// ToastKind selects a toast's color.
type ToastKind uint8

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

var toastColors = [...]Color{
	ToastInfo:    RGB(52, 152, 219),
	ToastSuccess: RGB(46, 204, 113),
	ToastWarning: RGB(241, 196, 15),
	ToastError:   RGB(231, 76, 60),
}

// ToastConfig configures a transient notification.
// Zero values: info color, shown for 3 s with a 300 ms fade-out, white text,
// corner radius 8.
type ToastConfig struct {
	Message      string
	Kind         ToastKind
	Duration     time.Duration
	Fade         time.Duration
	TextColor    Color
	CornerRadius float64
}

// Toast shows a message for Duration, fading out over its last Fade, then
// hides its node. A click dismisses it early. Animatable property: "alpha".
type Toast struct {
	ToastConfig
	shown time.Time
	alpha float64
}

// NewToast creates a toast node drawn above other siblings. The display time
// starts now.
func NewToast(id string, r Rect, cfg ToastConfig) *Node {
	if cfg.Duration <= 0 {
		cfg.Duration = 3 * time.Second
	}
	if cfg.Fade == 0 {
		cfg.Fade = 300 * time.Millisecond
	}
	cfg.Fade = min(max(cfg.Fade, 0), cfg.Duration)
	if cfg.TextColor == (Color{}) {
		cfg.TextColor = ColorWhite
	}
	if cfg.CornerRadius == 0 {
		cfg.CornerRadius = 8
	}
	t := &Toast{ToastConfig: cfg, shown: timeNow(), alpha: 1}
	n := NewNode(id, r)
	n.Content = t
	n.ZIndex = toastZIndex
	n.OnUpdate = func(float64) {
		elapsed := timeNow().Sub(t.shown)
		switch {
		case elapsed >= t.Duration:
			n.Visible = false
		case elapsed >= t.Duration-t.Fade && !n.Animating("alpha") && t.alpha == 1:
			n.Animate("alpha", Scalar(0), t.Duration-elapsed, OutQuad)
		}
	}
	n.OnClick(func(PointerEvent) { n.Visible = false })
	return n
}

// Expired reports whether the toast's display time is over.
func (t *Toast) Expired() bool {
	return timeNow().Sub(t.shown) >= t.Duration
}

func (t *Toast) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	bg := toastColors[ToastInfo]
	if int(t.Kind) < len(toastColors) {
		bg = toastColors[t.Kind]
	}
	bg.A *= t.alpha
	fillRoundedRect(dc, n.Rect, t.CornerRadius, bg)
	if t.Message != "" {
		fg := t.TextColor
		fg.A *= t.alpha
		dc.SetFontFace(fonts.Face(FontBody))
		drawText(dc, t.Message, n.Rect, TextAlignCenter, VerticalAlignMiddle, fg)
	}
}

func (t *Toast) Property(name string) (Value, bool) {
	if name == "alpha" {
		return Scalar(t.alpha), true
	}
	return nil, false
}

func (t *Toast) SetProperty(name string, v Value) {
	if name == "alpha" {
		t.alpha = clampRange(v.Float(), 0, 1)
	}
}
