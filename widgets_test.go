package panel

import (
	"image"
	"image/color"
	"testing"
	"time"

	"git.sr.ht/~sbinet/gg"
)

func renderNode(n *Node, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(img)
	n.Render(dc, DefaultFonts())
	return img
}

func TestWidgetDefaults(t *testing.T) {
	b := NewButton("b", Rect{}, ButtonConfig{}).Content.(*Button)
	if b.Background != RGB(60, 60, 60) || b.TextColor != ColorWhite || b.CornerRadius != 8 || b.Font != FontBody {
		t.Errorf("button defaults = %+v", b.ButtonConfig)
	}
	p := NewProgressBar("p", Rect{}, ProgressBarConfig{}).Content.(*ProgressBar)
	if p.Min != 0 || p.Max != 1 || p.Format != "%.1f%%" || p.CornerRadius != 4 {
		t.Errorf("progress defaults = %+v", p.ProgressBarConfig)
	}
	s := NewSlider("s", Rect{}, SliderConfig{Min: 0, Max: 50}).Content.(*Slider)
	if s.Step != 0.5 || s.ThumbRadius != 10 {
		t.Errorf("slider defaults = %+v", s.SliderConfig)
	}
	l := NewLabel("l", Rect{}, LabelConfig{Text: "x"}).Content.(*Label)
	if l.Font != FontBody || l.Color != ColorWhite {
		t.Errorf("label defaults = %+v", l.LabelConfig)
	}
}

func TestSetValueEmitsOnChange(t *testing.T) {
	n := NewProgressBar("p", Rect{}, ProgressBarConfig{Max: 100})
	var events []ValueEvent
	n.OnValueChange(func(ev ValueEvent) { events = append(events, ev) })

	n.SetValue(40)
	n.SetValue(40) // unchanged
	n.SetValue(250)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Old != 0 || events[0].New != 40 {
		t.Errorf("first = %+v", events[0])
	}
	if events[1].New != 100 {
		t.Errorf("clamped value = %v, want 100", events[1].New)
	}
	if v, _ := n.Value(); v != 100 {
		t.Errorf("Value = %v", v)
	}
	if f := n.Content.(*ProgressBar).Fraction(); f != 1 {
		t.Errorf("Fraction = %v, want 1", f)
	}
}

func TestSetValueOnPlainNode(t *testing.T) {
	n := NewNode("n", Rect{})
	if n.SetValue(1) {
		t.Error("plain node has no value")
	}
	if _, ok := n.Value(); ok {
		t.Error("Value ok should be false")
	}
}

func TestToggleClickFlips(t *testing.T) {
	n := NewToggle("t", R(0, 0, 50, 20), ToggleConfig{Text: "Sound"})
	var got []float64
	n.OnValueChange(func(ev ValueEvent) { got = append(got, ev.New) })

	n.Emit(Click(5, 5))
	n.Emit(Click(5, 5))
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("values = %v, want [1 0]", got)
	}
}

func TestSliderRotatesWhenFocused(t *testing.T) {
	m := NewManager(200, 100)
	s := NewScreen("s", 200, 100)
	slider := NewSlider("vol", R(10, 10, 100, 20), SliderConfig{Min: 0, Max: 10, Step: 1, Value: 5})
	s.Add(slider)
	m.RegisterScreen(s)
	m.SwitchScreen("s")

	m.InjectRotate(2)
	m.Step(0)
	if v, _ := slider.Value(); v != 5 {
		t.Errorf("unfocused slider moved to %v", v)
	}

	m.Focus(slider)
	m.InjectRotate(2)
	m.InjectRotate(-1)
	m.Step(0)
	if v, _ := slider.Value(); v != 6 {
		t.Errorf("slider = %v, want 6", v)
	}

	m.InjectRotate(20)
	m.Step(0)
	if v, _ := slider.Value(); v != 10 {
		t.Errorf("slider = %v, want clamped 10", v)
	}
}

func TestTextAccessors(t *testing.T) {
	for _, n := range []*Node{
		NewLabel("l", Rect{}, LabelConfig{Text: "a"}),
		NewButton("b", Rect{}, ButtonConfig{Text: "a"}),
		NewToggle("t", Rect{}, ToggleConfig{Text: "a"}),
	} {
		n.SetText("b")
		if n.Text() != "b" {
			t.Errorf("%s: Text = %q, want b", n.ID, n.Text())
		}
	}
	box := NewBox("box", Rect{}, BoxConfig{})
	box.SetText("ignored")
	if box.Text() != "" {
		t.Error("box has no text")
	}
}

func TestButtonFocusColor(t *testing.T) {
	n := NewButton("b", R(0, 0, 20, 20), ButtonConfig{
		Background: RGB(0, 0, 255),
		Focused:    RGB(255, 0, 0),
	})
	if got := renderNode(n, 20, 20).RGBAAt(10, 2); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("unfocused pixel = %v", got)
	}
	n.Emit(FocusEvent{Type: EventFocus, Node: n})
	if got := renderNode(n, 20, 20).RGBAAt(10, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("focused pixel = %v", got)
	}
}

func TestProgressBarFill(t *testing.T) {
	n := NewProgressBar("p", R(0, 0, 100, 10), ProgressBarConfig{
		Value:        0.5,
		Background:   RGB(0, 0, 0),
		Fill:         RGB(0, 255, 0),
		CornerRadius: 0.001,
	})
	img := renderNode(n, 100, 10)
	if got := img.RGBAAt(25, 5); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("filled pixel = %v", got)
	}
	if got := img.RGBAAt(75, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("track pixel = %v", got)
	}
}

func TestRenderSkipsHidden(t *testing.T) {
	root := NewContainer("root", R(0, 0, 10, 10))
	box := NewBox("box", R(0, 0, 10, 10), BoxConfig{Background: ColorWhite})
	root.AddChild(box)
	box.Visible = false
	if got := renderNode(root, 10, 10).RGBAAt(5, 5); got.A != 0 {
		t.Errorf("hidden box drew %v", got)
	}
}

func TestRenderZOrder(t *testing.T) {
	root := NewContainer("root", R(0, 0, 10, 10))
	top := NewBox("top", R(0, 0, 10, 10), BoxConfig{Background: RGB(255, 0, 0)})
	top.ZIndex = 1
	bottom := NewBox("bottom", R(0, 0, 10, 10), BoxConfig{Background: RGB(0, 255, 0)})
	root.AddChild(top)
	root.AddChild(bottom)
	if got := renderNode(root, 10, 10).RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want higher ZIndex on top", got)
	}
}

func TestWidgetPropertiesAnimate(t *testing.T) {
	clock := useFakeClock(t)
	n := NewSlider("s", Rect{}, SliderConfig{Max: 10})
	if err := n.Animate("value", Scalar(10), time.Second, nil); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	n.Update(0)
	if v, _ := n.Value(); v != 10 {
		t.Errorf("value = %v, want 10", v)
	}
}
