package panel

import "testing"

func TestListStacksChildren(t *testing.T) {
	list := NewList("list", R(10, 20, 200, 300), ListLayout{Spacing: 10, Padding: 5})
	var items []*Node
	for _, h := range []int{40, 50, 60} {
		c := NewBox("", R(0, 0, 30, h), BoxConfig{})
		items = append(items, c)
		list.AddChild(c)
	}

	wantY := []int{25, 75, 135}
	for i, c := range items {
		want := R(15, wantY[i], 190, c.Rect.Height)
		if c.Rect != want {
			t.Errorf("item %d = %v, want %v", i, c.Rect, want)
		}
	}
	if l := list.Layout.(*ListLayout); l.MaxScroll() != 0 {
		t.Errorf("MaxScroll = %d, want 0", l.MaxScroll())
	}
}

func TestListRelayoutsOnRemoveAndInsert(t *testing.T) {
	list := NewList("list", R(0, 0, 100, 200), ListLayout{})
	a := NewBox("a", R(0, 0, 0, 20), BoxConfig{})
	b := NewBox("b", R(0, 0, 0, 30), BoxConfig{})
	c := NewBox("c", R(0, 0, 0, 40), BoxConfig{})
	list.AddChild(a)
	list.AddChild(b)
	list.AddChild(c)

	list.RemoveChild(b)
	if c.Rect.Y != 20 {
		t.Errorf("c.Y = %d after remove, want 20", c.Rect.Y)
	}

	list.AddChildAt(b, 0)
	if b.Rect.Y != 0 || a.Rect.Y != 30 || c.Rect.Y != 50 {
		t.Errorf("Y = %d %d %d, want 0 30 50", b.Rect.Y, a.Rect.Y, c.Rect.Y)
	}

	// Moving a child to another parent relayouts the list it left.
	other := NewContainer("other", R(0, 0, 10, 10))
	other.AddChild(b)
	if a.Rect.Y != 0 {
		t.Errorf("a.Y = %d after reparent, want 0", a.Rect.Y)
	}
}

func TestListScroll(t *testing.T) {
	list := NewList("list", R(0, 0, 100, 100), ListLayout{})
	var items []*Node
	for range 3 {
		c := NewBox("", R(0, 0, 0, 50), BoxConfig{})
		items = append(items, c)
		list.AddChild(c)
	}
	l := list.Layout.(*ListLayout)
	if l.MaxScroll() != 50 {
		t.Fatalf("MaxScroll = %d, want 50", l.MaxScroll())
	}

	l.ScrollTo(list, 30)
	if items[0].Rect.Y != -30 || items[2].Rect.Y != 70 {
		t.Errorf("Y = %d .. %d, want -30 .. 70", items[0].Rect.Y, items[2].Rect.Y)
	}

	l.ScrollTo(list, 500)
	if l.Offset() != 50 {
		t.Errorf("Offset = %d, want clamped 50", l.Offset())
	}

	l.ScrollIntoView(list, items[0])
	if l.Offset() != 0 || items[0].Rect.Y != 0 {
		t.Errorf("Offset = %d, first Y = %d; want both 0", l.Offset(), items[0].Rect.Y)
	}
	l.ScrollIntoView(list, items[2])
	if l.Offset() != 50 {
		t.Errorf("Offset = %d, want 50", l.Offset())
	}

	// Shrinking the content pulls the offset back into range.
	list.RemoveChild(items[2])
	if l.Offset() != 0 || items[0].Rect.Y != 0 {
		t.Errorf("after remove: Offset = %d, first Y = %d; want 0 and 0", l.Offset(), items[0].Rect.Y)
	}
}

func TestListMovesGrandchildren(t *testing.T) {
	list := NewList("list", R(0, 100, 100, 100), ListLayout{Padding: 10})
	row := NewContainer("row", R(0, 0, 50, 30))
	icon := NewBox("icon", R(5, 5, 20, 20), BoxConfig{})
	row.AddChild(icon)
	list.AddChild(row)

	if row.Rect != R(10, 110, 80, 30) {
		t.Errorf("row = %v", row.Rect)
	}
	if icon.Rect != R(15, 115, 20, 20) {
		t.Errorf("icon = %v, want it to move with its row", icon.Rect)
	}
}

func TestGridTiles(t *testing.T) {
	grid := NewGrid("grid", R(0, 0, 210, 200), TileLayout{Columns: 2, RowHeight: 50, Spacing: 10, Padding: 5})
	var items []*Node
	for range 4 {
		c := NewBox("", Rect{}, BoxConfig{})
		items = append(items, c)
		grid.AddChild(c)
	}

	want := []Rect{
		R(5, 5, 95, 50),
		R(110, 5, 95, 50),
		R(5, 65, 95, 50),
		R(110, 65, 95, 50),
	}
	for i, c := range items {
		if c.Rect != want[i] {
			t.Errorf("item %d = %v, want %v", i, c.Rect, want[i])
		}
	}
}

func TestGridDefaults(t *testing.T) {
	grid := NewGrid("grid", R(0, 0, 100, 100), TileLayout{})
	tl := grid.Layout.(*TileLayout)
	if tl.Columns != 2 || tl.RowHeight != 50 {
		t.Errorf("defaults = %+v", *tl)
	}
}

func TestRelayoutAfterResize(t *testing.T) {
	list := NewList("list", R(0, 0, 100, 100), ListLayout{})
	a := NewBox("a", R(0, 0, 0, 20), BoxConfig{})
	b := NewBox("b", R(0, 0, 0, 20), BoxConfig{})
	list.AddChild(a)
	list.AddChild(b)

	a.Rect.Height = 40
	list.Relayout()
	if b.Rect.Y != 40 {
		t.Errorf("b.Y = %d, want 40", b.Rect.Y)
	}
}
