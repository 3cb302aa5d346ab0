package panel

import (
	"fmt"
	"math"

	"git.sr.ht/~sbinet/gg"
)

// --- Graph ---

// graphGridSteps is the number of horizontal bands the grid divides a graph
// into.
const graphGridSteps = 5

// GraphConfig configures a line graph.
// Zero values: 50 points kept, blue (0,122,255) line 2 px wide, no area fill,
// translucent gray grid color, no grid, no axes, auto-scaled Y range.
type GraphConfig struct {
	Data      []float64
	MaxPoints int
	Line      Color
	LineWidth float64
	Fill      Color // area under the line; transparent disables it
	Grid      Color
	ShowGrid  bool
	ShowAxis  bool
	Min, Max  float64 // fixed Y range when Min < Max
}

// Graph plots a rolling series of samples, oldest on the left.
type Graph struct {
	GraphConfig
}

// NewGraph creates a graph node.
func NewGraph(id string, r Rect, cfg GraphConfig) *Node {
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = 50
	}
	if cfg.Line == (Color{}) {
		cfg.Line = RGB(0, 122, 255)
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = 2
	}
	if cfg.Grid == (Color{}) {
		cfg.Grid = RGBA8(60, 60, 60, 128)
	}
	g := &Graph{GraphConfig: cfg}
	g.Data = nil
	for _, v := range cfg.Data {
		g.Push(v)
	}
	n := NewNode(id, r)
	n.Content = g
	return n
}

// NewSparkline creates a bare line graph: no fill, grid or axes.
func NewSparkline(id string, r Rect, line Color) *Node {
	return NewGraph(id, r, GraphConfig{Line: line})
}

// Push appends a sample, dropping the oldest beyond MaxPoints.
func (g *Graph) Push(v float64) {
	g.Data = append(g.Data, v)
	if over := len(g.Data) - g.MaxPoints; over > 0 {
		g.Data = append(g.Data[:0], g.Data[over:]...)
	}
}

// Reset drops every sample.
func (g *Graph) Reset() { g.Data = g.Data[:0] }

// Range returns the Y range the graph is drawn with.
func (g *Graph) Range() (lo, hi float64) {
	if g.Min < g.Max {
		return g.Min, g.Max
	}
	if len(g.Data) == 0 {
		return 0, 1
	}
	lo, hi = g.Data[0], g.Data[0]
	for _, v := range g.Data[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// points maps the samples into r. Samples outside a fixed range are pinned
// to its edge.
func (g *Graph) points(r Rect) [][2]float64 {
	if len(g.Data) < 2 {
		return nil
	}
	lo, hi := g.Range()
	last := float64(len(g.Data) - 1)
	pts := make([][2]float64, len(g.Data))
	for i, v := range g.Data {
		f := math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
		pts[i] = [2]float64{
			float64(r.X) + float64(i)/last*float64(r.Width),
			float64(r.Bottom()) - f*float64(r.Height),
		}
	}
	return pts
}

func (g *Graph) Draw(dc *gg.Context, n *Node, _ FontTable) {
	r := n.Rect
	left, right := float64(r.X), float64(r.Right())
	top, bottom := float64(r.Y), float64(r.Bottom())

	if g.ShowGrid {
		dc.SetColor(g.Grid.NRGBA())
		dc.SetLineWidth(1)
		step := r.Height / graphGridSteps
		for i := 1; i < graphGridSteps; i++ {
			y := float64(r.Y + i*step)
			dc.DrawLine(left, y, right, y)
		}
		dc.Stroke()
	}

	if pts := g.points(r); pts != nil {
		if g.Fill.A > 0 {
			dc.MoveTo(pts[0][0], bottom)
			for _, p := range pts {
				dc.LineTo(p[0], p[1])
			}
			dc.LineTo(pts[len(pts)-1][0], bottom)
			dc.ClosePath()
			dc.SetColor(g.Fill.NRGBA())
			dc.Fill()
		}
		dc.NewSubPath()
		dc.MoveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.SetColor(g.Line.NRGBA())
		dc.SetLineWidth(g.LineWidth)
		dc.Stroke()
	}

	if g.ShowAxis {
		dc.SetColor(g.Grid.NRGBA())
		dc.SetLineWidth(1)
		dc.DrawLine(left, bottom, right, bottom)
		dc.DrawLine(left, top, left, bottom)
		dc.Stroke()
	}
}

// --- ProgressCircle ---

// ProgressCircleConfig configures a ring-shaped progress indicator.
// Zero values: range [0, 1], ring 8 px thick, dark (40,40,40) track, blue
// (0,122,255) arc, white text, percentage hidden, format "%.1f%%".
type ProgressCircleConfig struct {
	Value, Min, Max float64
	Thickness       float64
	Background      Color
	Fill            Color
	TextColor       Color
	ShowText        bool
	Format          string // printf format applied to the percentage
}

// ProgressCircle fills a ring clockwise from twelve o'clock. Animatable
// property: "value".
type ProgressCircle struct {
	ProgressCircleConfig
}

// NewProgressCircle creates a circular progress node.
func NewProgressCircle(id string, r Rect, cfg ProgressCircleConfig) *Node {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Max = 1
	}
	if cfg.Thickness <= 0 {
		cfg.Thickness = 8
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
	if cfg.Format == "" {
		cfg.Format = "%.1f%%"
	}
	c := &ProgressCircle{ProgressCircleConfig: cfg}
	c.Value = c.clamp(cfg.Value)
	n := NewNode(id, r)
	n.Content = c
	return n
}

// Fraction returns the filled part of the ring in [0, 1].
func (c *ProgressCircle) Fraction() float64 {
	return normalize(c.Value, c.Min, c.Max)
}

func (c *ProgressCircle) Draw(dc *gg.Context, n *Node, fonts FontTable) {
	r := n.Rect
	cx, cy := float64(r.X)+float64(r.Width)/2, float64(r.Y)+float64(r.Height)/2
	radius := float64(min(r.Width, r.Height))/2 - c.Thickness
	if radius <= 0 {
		return
	}
	dc.SetLineWidth(c.Thickness)
	dc.SetColor(c.Background.NRGBA())
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	frac := c.Fraction()
	if frac > 0 {
		start := -math.Pi / 2
		dc.NewSubPath()
		dc.DrawArc(cx, cy, radius, start, start+2*math.Pi*frac)
		dc.SetColor(c.Fill.NRGBA())
		dc.Stroke()
	}

	if c.ShowText {
		dc.SetFontFace(fonts.Face(FontBody))
		drawText(dc, fmt.Sprintf(c.Format, frac*100), r, TextAlignCenter, VerticalAlignMiddle, c.TextColor)
	}
}

func (c *ProgressCircle) clamp(v float64) float64 { return clampRange(v, c.Min, c.Max) }

func (c *ProgressCircle) value() float64 { return c.Value }

func (c *ProgressCircle) setValue(v float64) { c.Value = c.clamp(v) }

func (c *ProgressCircle) Property(name string) (Value, bool) {
	if name == "value" {
		return Scalar(c.Value), true
	}
	return nil, false
}

func (c *ProgressCircle) SetProperty(name string, v Value) {
	if name == "value" {
		c.Value = c.clamp(v.Float())
	}
}
