package panel

// HitTest returns the topmost node under (x, y) in this subtree, or nil.
//
// Invisible or disabled nodes hide their whole subtree. Within a node whose
// Rect contains the point, children are tried in reverse paint order
// (highest ZIndex first, later siblings before earlier ones on ties). When no
// child claims the point the node itself is returned, provided it has
// Content; plain containers never match themselves.
func (n *Node) HitTest(x, y int) *Node {
	if !n.Visible || !n.Enabled {
		return nil
	}
	if !n.Rect.Contains(x, y) {
		return nil
	}
	order := n.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if hit := order[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if n.Content != nil {
		return n
	}
	return nil
}

// HitTestAll returns every content node under (x, y), topmost first.
func (n *Node) HitTestAll(x, y int) []*Node {
	return n.hitTestAll(x, y, nil)
}

func (n *Node) hitTestAll(x, y int, buf []*Node) []*Node {
	if !n.Visible || !n.Enabled || !n.Rect.Contains(x, y) {
		return buf
	}
	order := n.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		buf = order[i].hitTestAll(x, y, buf)
	}
	if n.Content != nil {
		buf = append(buf, n)
	}
	return buf
}
