package layout

import "github.com/go-drift/ggui/pkg/graphics"

// PaintContext describes one visible node during a paint walk.
type PaintContext struct {
	Node *Node
	// Rect is the node's rectangle in viewport pixels.
	Rect graphics.Rect
	// Clip is the visible area left by clipping ancestors. Drawing must
	// stay inside it.
	Clip graphics.Rect
}

// Paint calls fn for every active node under root, root included, in draw
// order (back to front). Subtrees hidden by a clipping ancestor are
// skipped entirely.
func Paint(root *Node, fn func(ctx PaintContext)) {
	if root == nil {
		return
	}
	var parent graphics.Rect
	if root.parent != nil {
		parent = root.parent.Rect()
	} else {
		parent = graphics.Rect{Width: root.viewport.Width, Height: root.viewport.Height}
	}
	vp := root.Viewport()
	paintChild(root, parent, graphics.Rect{Width: vp.Width, Height: vp.Height}, fn)
}

func paintChild(n *Node, parent, clip graphics.Rect, fn func(PaintContext)) {
	if n.inactive || n.destroyed {
		return
	}
	r := n.RectIn(parent)
	fn(PaintContext{Node: n, Rect: r, Clip: clip})
	if n.Clip {
		clip = clip.Intersect(r)
		if clip.IsEmpty() {
			return
		}
	}
	for _, c := range n.children {
		paintChild(c, r, clip, fn)
	}
}
