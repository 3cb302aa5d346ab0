package panel

// Layouter positions a node's children. Arrange runs whenever the node's
// child list changes and on Relayout; it may move and resize children but
// must not add or remove any.
type Layouter interface {
	Arrange(n *Node)
}

func (n *Node) relayout() {
	if n.Layout != nil && !n.disposed {
		n.Layout.Arrange(n)
	}
}

// Relayout re-runs the node's Layout, e.g. after a child changed size.
func (n *Node) Relayout() { n.relayout() }

// placeChild moves child's subtree to (x, y) and resizes child itself.
func placeChild(child *Node, x, y, w, h int) {
	child.MoveBy(x-child.Rect.X, y-child.Rect.Y)
	child.Rect.Width, child.Rect.Height = w, h
}

// --- List ---

// ListLayout stacks children top to bottom, each stretched to the list's
// width minus padding and keeping its own height. The list scrolls by
// moving its children; it does not clip them.
type ListLayout struct {
	Spacing int // gap between consecutive children
	Padding int // inset on every side

	offset    int
	maxScroll int
}

// NewList creates a container that stacks its children vertically.
func NewList(id string, r Rect, cfg ListLayout) *Node {
	n := NewContainer(id, r)
	l := cfg
	n.Layout = &l
	return n
}

func (l *ListLayout) Arrange(n *Node) {
	r := n.Rect
	y := r.Y + l.Padding - l.offset
	content := 2 * l.Padding
	for i, child := range n.children {
		if i > 0 {
			y += l.Spacing
			content += l.Spacing
		}
		placeChild(child, r.X+l.Padding, y, r.Width-2*l.Padding, child.Rect.Height)
		y += child.Rect.Height
		content += child.Rect.Height
	}
	l.maxScroll = max(0, content-r.Height)
	if l.offset > l.maxScroll {
		l.offset = l.maxScroll
		l.Arrange(n)
	}
}

// Offset returns how far the list is scrolled, in pixels.
func (l *ListLayout) Offset() int { return l.offset }

// MaxScroll returns the largest useful offset: the content height beyond
// the list's own height.
func (l *ListLayout) MaxScroll() int { return l.maxScroll }

// ScrollTo sets the scroll offset of list n, clamped to [0, MaxScroll].
func (l *ListLayout) ScrollTo(n *Node, offset int) {
	l.offset = max(0, min(offset, l.maxScroll))
	l.Arrange(n)
}

// ScrollIntoView scrolls list n the least amount needed to show child.
func (l *ListLayout) ScrollIntoView(n *Node, child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	top := n.Rect.Y + l.Padding
	bottom := n.Rect.Bottom() - l.Padding
	switch {
	case child.Rect.Y < top:
		l.ScrollTo(n, l.offset-(top-child.Rect.Y))
	case child.Rect.Bottom() > bottom:
		l.ScrollTo(n, l.offset+(child.Rect.Bottom()-bottom))
	}
}

// --- Grid ---

// TileLayout places children row by row in equal cells.
// Zero values: 2 columns, rows 50 pixels high, no spacing, no padding.
type TileLayout struct {
	Columns   int
	RowHeight int
	Spacing   int
	Padding   int
}

// NewGrid creates a container that tiles its children in a grid.
func NewGrid(id string, r Rect, cfg TileLayout) *Node {
	if cfg.Columns <= 0 {
		cfg.Columns = 2
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = 50
	}
	n := NewContainer(id, r)
	t := cfg
	n.Layout = &t
	return n
}

func (t *TileLayout) Arrange(n *Node) {
	cols := max(t.Columns, 1)
	r := n.Rect
	colWidth := floorDiv(r.Width-2*t.Padding-t.Spacing*(cols-1), cols)
	for i, child := range n.children {
		row, col := i/cols, i%cols
		placeChild(child,
			r.X+t.Padding+col*(colWidth+t.Spacing),
			r.Y+t.Padding+row*(t.RowHeight+t.Spacing),
			colWidth, t.RowHeight)
	}
}
