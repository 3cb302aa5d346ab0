package panel

import (
	"sort"
	"strconv"
	"sync/atomic"
	"time"
)

// --- ID counter ---

var nodeIDCounter atomic.Uint64

func nextNodeID() string {
	return "node-" + strconv.FormatUint(nodeIDCounter.Add(1), 10)
}

// --- Node ---

// Node is the unit of the scene graph. One flat struct serves every kind of
// element; what a node looks like is decided by its Content.
//
// Rect is in screen pixels, not relative to the parent.
type Node struct {
	// Identity
	ID   string
	tags map[string]struct{}

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry & flags
	Rect    Rect
	Visible bool
	Enabled bool
	ZIndex  int // paint order among siblings; may be assigned directly

	// Content draws the node. Nil makes a plain container, which is
	// transparent to hit testing itself.
	Content Drawable

	// Layout, when set, positions the children every time the child list
	// changes. See ListLayout and TileLayout.
	Layout Layouter

	// OnUpdate runs once per update before the node's animations advance.
	OnUpdate func(dt float64)

	// Metadata
	UserData any

	handlers   *handlerRegistry
	animations map[string]*animation

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
	sortedZ        []int   // ZIndex of each sortedChildren entry when sorted
}

// NewNode creates a visible, enabled node. An empty id is replaced by a
// generated one of the form "node-<n>". Until Content is set the node is
// transparent to hit testing: pointer events pass to whatever lies beneath.
func NewNode(id string, r Rect) *Node {
	if id == "" {
		id = nextNodeID()
	}
	return &Node{
		ID:             id,
		Rect:           r,
		Visible:        true,
		Enabled:        true,
		childrenSorted: true,
	}
}

// NewContainer creates a node with no visual representation. It is never a
// hit target itself; only its children with Content are.
func NewContainer(id string, r Rect) *Node {
	return NewNode(id, r)
}

// --- Tags ---

// AddTag attaches a tag to the node.
func (n *Node) AddTag(tag string) {
	if n.tags == nil {
		n.tags = make(map[string]struct{})
	}
	n.tags[tag] = struct{}{}
}

// RemoveTag detaches a tag. No-op if the node does not carry it.
func (n *Node) RemoveTag(tag string) {
	delete(n.tags, tag)
}

// HasTag reports whether the node carries tag.
func (n *Node) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// Tags returns the node's tags in sorted order.
func (n *Node) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is this node or one of its ancestors.
func (n *Node) AddChild(child *Node) {
	n.checkAdd(child, "AddChild")
	child.detach()
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	n.checkShape(child)
	n.relayout()
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.checkAdd(child, "AddChildAt")
	if index < 0 || index > len(n.children) {
		panic("panel: child index out of range")
	}
	if child.Parent == n && index == len(n.children) {
		index-- // the child's own slot disappears below
	}
	child.detach()
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	n.checkShape(child)
	n.relayout()
}

// detach removes n from its current parent, if any, and lets that parent
// re-run its layout.
func (n *Node) detach() {
	p := n.Parent
	if p == nil {
		return
	}
	p.removeChildByPtr(n)
	n.Parent = nil
	p.childrenSorted = false
	p.relayout()
}

func (n *Node) checkAdd(child *Node, op string) {
	if child == nil {
		panic("panel: cannot add nil child")
	}
	if debugEnabled() {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if isAncestor(child, n) {
		panic("panel: adding child would create a cycle")
	}
}

func (n *Node) checkShape(child *Node) {
	if debugEnabled() {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. No-op if child is not one of
// this node's children.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	n.relayout()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("panel: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childrenSorted = false
	n.relayout()
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
	n.sortedChildren = n.sortedChildren[:0]
	n.sortedZ = n.sortedZ[:0]
	n.relayout()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// MoveBy translates this node and its whole subtree by (dx, dy). Child
// rectangles are absolute, so moving a container must move its children too.
func (n *Node) MoveBy(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	n.Walk(func(c *Node) bool {
		c.Rect.X += dx
		c.Rect.Y += dy
		return true
	})
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Update ---

// Update advances this subtree by dt seconds: the node's OnUpdate hook, then
// its animations, then every visible child in child order. Hidden subtrees
// are skipped entirely, animations included.
func (n *Node) Update(dt float64) {
	n.update(dt, timeNow())
}

func (n *Node) update(dt float64, now time.Time) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.animations) > 0 {
		n.updateAnimations(now)
	}
	// Index loop: an OnUpdate hook may append children mid-walk.
	for i := 0; i < len(n.children); i++ {
		n.children[i].update(dt, now)
	}
}

// --- Queries ---

// FindByID returns the first node in this subtree (self included, pre-order)
// whose ID matches, or nil.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindByTag returns every node in this subtree carrying tag, self included,
// in pre-order.
func (n *Node) FindByTag(tag string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.HasTag(tag) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Walk visits this subtree in pre-order. Returning false from fn skips the
// visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Contains reports whether other is this node or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return other != nil && isAncestor(n, other)
}

// Root returns the topmost ancestor of this node.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.sortedZ = nil
	n.Parent = nil
	n.handlers = nil
	n.animations = nil
	n.OnUpdate = nil
	n.Content = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}
