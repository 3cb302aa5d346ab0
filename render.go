package panel

import (
	"git.sr.ht/~sbinet/gg"
)

// Drawable is the render extension point for node content. Draw paints the
// node's own visuals (not its children) into dc using n.Rect for placement.
type Drawable interface {
	Draw(dc *gg.Context, n *Node, fonts FontTable)
}

// DrawFunc adapts a plain function to Drawable.
type DrawFunc func(dc *gg.Context, n *Node, fonts FontTable)

func (f DrawFunc) Draw(dc *gg.Context, n *Node, fonts FontTable) { f(dc, n, fonts) }

// Render paints this subtree into dc: the node's content first, then its
// children in ascending ZIndex order. Invisible nodes and their subtrees
// draw nothing.
func (n *Node) Render(dc *gg.Context, fonts FontTable) {
	if !n.Visible {
		return
	}
	if n.Content != nil {
		dc.Push()
		n.Content.Draw(dc, n, fonts)
		dc.Pop()
	}
	for _, child := range n.paintOrder() {
		child.Render(dc, fonts)
	}
}

// paintOrder returns the children sorted ascending by ZIndex, ties in child
// order. The result is cached until the child list or a child's ZIndex
// changes and must not be retained across tree mutations. ZIndex is a plain
// field, so the cache is checked against the values it was sorted with.
func (n *Node) paintOrder() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.childrenSorted || len(n.sortedChildren) != len(n.children) || n.zIndexChanged() {
		n.rebuildSortedChildren()
	}
	return n.sortedChildren
}

// zIndexChanged reports whether any child's ZIndex differs from the value
// recorded by the last sort.
func (n *Node) zIndexChanged() bool {
	if len(n.sortedZ) != len(n.sortedChildren) {
		return true
	}
	for i, child := range n.sortedChildren {
		if child.ZIndex != n.sortedZ[i] {
			return true
		}
	}
	return false
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order.
// Insertion sort: stable and allocation-free, O(n) when already sorted.
func (n *Node) rebuildSortedChildren() {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.sortedZ = n.sortedZ[:0]
	for _, child := range n.sortedChildren {
		n.sortedZ = append(n.sortedZ, child.ZIndex)
	}
	n.childrenSorted = true
}
