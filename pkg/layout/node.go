// Package layout provides Node, the retained handle every rendered control
// is built from.
//
// A Node is positioned inside its parent with a pair of anchors, given as
// fractions of the parent rectangle, and a pair of pixel offsets added to
// those anchor points. This is enough to express both stretch-to-fill
// placement and fixed pixel placement without a layout solver. Coordinates
// are in pixels with the origin at the top-left and Y growing downward.
//
// Widgets attach to nodes as components; see Attach and Get.
package layout

import (
	"strings"

	"github.com/go-drift/ggui/pkg/graphics"
)

// Node is a retained widget handle: a named rectangle in a tree.
type Node struct {
	// Name is a debugging label; it need not be unique.
	Name string

	// AnchorMin and AnchorMax are the node's corners as fractions of the
	// parent rectangle.
	AnchorMin graphics.Offset
	AnchorMax graphics.Offset
	// OffsetMin and OffsetMax are pixel displacements added to the anchor
	// points.
	OffsetMin graphics.Offset
	OffsetMax graphics.Offset

	// RaycastTarget marks the node as receiving pointer hit tests.
	RaycastTarget bool
	// Clip hides descendants outside the node's rectangle and excludes them
	// from hit tests.
	Clip bool

	parent     *Node
	children   []*Node
	components []any
	shift      graphics.Offset
	viewport   graphics.Size
	inactive   bool
	destroyed  bool
}

// New returns a detached node that fills its future parent.
func New(name string) *Node {
	return &Node{Name: name, AnchorMax: graphics.Offset{X: 1, Y: 1}}
}

// NewRoot returns a parentless node covering a viewport of the given size.
func NewRoot(name string, viewport graphics.Size) *Node {
	n := New(name)
	n.viewport = viewport
	return n
}

// NewChild creates a node and adds it as the last child of n.
func (n *Node) NewChild(name string) *Node {
	c := New(name)
	n.AddChild(c)
	return c
}

// AddChild appends c to n's children, detaching it from any previous
// parent. Adding to or from a destroyed node is a no-op.
func (n *Node) AddChild(c *Node) {
	if c == nil || n.destroyed || c.destroyed || c == n {
		return
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) removeChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. Callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsDescendantOf reports whether anc is n or one of n's ancestors.
func (n *Node) IsDescendantOf(anc *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == anc {
			return true
		}
	}
	return false
}

// Path returns the slash-separated names from the root to n.
func (n *Node) Path() string {
	var parts []string
	for p := n; p != nil; p = p.parent {
		parts = append(parts, p.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// SetAnchors sets both anchors.
func (n *Node) SetAnchors(min, max graphics.Offset) {
	n.AnchorMin, n.AnchorMax = min, max
}

// SetOffsets sets both pixel offsets.
func (n *Node) SetOffsets(min, max graphics.Offset) {
	n.OffsetMin, n.OffsetMax = min, max
}

// SetNormalized places n at the normalized rectangle r of its parent and
// clears its pixel offsets.
func (n *Node) SetNormalized(r graphics.Rect) {
	n.AnchorMin = r.Min()
	n.AnchorMax = r.Max()
	n.OffsetMin = graphics.Offset{}
	n.OffsetMax = graphics.Offset{}
}

// SetInsets applies pixel insets relative to the current anchors. Positive
// values move each edge toward the node's center.
func (n *Node) SetInsets(in graphics.Insets) {
	n.OffsetMin = graphics.Offset{X: in.Left, Y: in.Top}
	n.OffsetMax = graphics.Offset{X: -in.Right, Y: -in.Bottom}
}

// Stretch makes n fill its parent exactly.
func (n *Node) Stretch() {
	n.SetNormalized(graphics.UnitRect)
}

// SetShift sets an extra translation applied to n and its subtree, used by
// scrolling and pointer-following overlays.
func (n *Node) SetShift(o graphics.Offset) { n.shift = o }

// Shift returns the node's extra translation.
func (n *Node) Shift() graphics.Offset { return n.shift }

// SetViewport sets the size of a root node's area.
func (n *Node) SetViewport(size graphics.Size) { n.Root().viewport = size }

// Viewport returns the size of the root's area.
func (n *Node) Viewport() graphics.Size { return n.Root().viewport }

// Rect returns the node's rectangle in viewport pixels.
func (n *Node) Rect() graphics.Rect {
	var parent graphics.Rect
	if n.parent != nil {
		parent = n.parent.Rect()
	} else {
		parent = graphics.Rect{Width: n.viewport.Width, Height: n.viewport.Height}
	}
	return n.RectIn(parent)
}

// RectIn returns the node's rectangle given its parent's rectangle.
func (n *Node) RectIn(parent graphics.Rect) graphics.Rect {
	min := parent.Point(n.AnchorMin.X, n.AnchorMin.Y).Add(n.OffsetMin).Add(n.shift)
	max := parent.Point(n.AnchorMax.X, n.AnchorMax.Y).Add(n.OffsetMax).Add(n.shift)
	return graphics.RectFromEdges(min.X, min.Y, max.X, max.Y)
}

// Size returns the node's current pixel size.
func (n *Node) Size() graphics.Size { return n.Rect().Size() }

// SetActive enables or disables n itself.
func (n *Node) SetActive(active bool) { n.inactive = !active }

// ActiveSelf reports the node's own active flag.
func (n *Node) ActiveSelf() bool { return !n.inactive }

// ActiveInHierarchy reports whether n and all its ancestors are active and
// none of them is destroyed.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.parent {
		if p.inactive || p.destroyed {
			return false
		}
	}
	return true
}

// Destroyed reports whether Destroy has been called on n or an ancestor.
func (n *Node) Destroyed() bool { return n.destroyed }

// Destroyer is implemented by components that release resources when their
// node is destroyed.
type Destroyer interface {
	OnDestroy()
}

// Destroy detaches n from its parent and marks the whole subtree destroyed.
// Components implementing Destroyer are notified, children first.
// Destroying twice is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.destroy()
}

func (n *Node) destroy() {
	for _, c := range n.children {
		c.destroy()
	}
	n.destroyed = true
	for _, comp := range n.components {
		if d, ok := comp.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

// Attach adds a component to n.
func (n *Node) Attach(c any) {
	n.components = append(n.components, c)
}

// Components returns the attached components in attach order.
func (n *Node) Components() []any { return n.components }

// Get returns the first component of type T attached to n.
func Get[T any](n *Node) (T, bool) {
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// FindInParents returns the first component of type T on n or its nearest
// ancestor that has one, along with the node that carries it.
func FindInParents[T any](n *Node) (T, *Node, bool) {
	for p := n; p != nil; p = p.parent {
		if t, ok := Get[T](p); ok {
			return t, p, true
		}
	}
	var zero T
	return zero, nil, false
}

// Walk visits n and its descendants in pre-order, which is also draw
// order. Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}
