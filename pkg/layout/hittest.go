package layout

import "github.com/go-drift/ggui/pkg/graphics"

// Hit is a raycast target found under a point.
type Hit struct {
	Node *Node
	// Depth is the node's draw order; larger values are drawn in front.
	Depth int
}

// HitTest returns every active raycast target under p, in draw order
// (back to front). Subtrees of clipping nodes that do not contain p are
// skipped.
func (n *Node) HitTest(p graphics.Offset) []Hit {
	var hits []Hit
	order := 0
	var visit func(node *Node, parent graphics.Rect)
	visit = func(node *Node, parent graphics.Rect) {
		if node.inactive || node.destroyed {
			return
		}
		r := node.RectIn(parent)
		depth := order
		order++
		inside := r.Contains(p)
		if node.RaycastTarget && inside {
			hits = append(hits, Hit{Node: node, Depth: depth})
		}
		if node.Clip && !inside {
			return
		}
		for _, c := range node.children {
			visit(c, r)
		}
	}
	var parent graphics.Rect
	if n.parent != nil {
		parent = n.parent.Rect()
	} else {
		parent = graphics.Rect{Width: n.viewport.Width, Height: n.viewport.Height}
	}
	visit(n, parent)
	return hits
}
