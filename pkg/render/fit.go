package render

import (
	"math"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Extent returns the span of the children of n along axis: the distance
// from the smallest child edge to the largest, in pixels, and the smallest
// edge. A node without children has zero extent.
func Extent(n *layout.Node, axis widgets.Axis) (extent, start float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range n.Children() {
		if c.Destroyed() {
			continue
		}
		r := c.Rect()
		min, max := r.Y, r.YMax()
		if axis == widgets.Horizontal {
			min, max = r.X, r.XMax()
		}
		lo, hi = math.Min(lo, min), math.Max(hi, max)
	}
	if lo > hi {
		return 0, 0
	}
	return hi - lo, lo
}

// FitContent sizes the content of s to the extent of its children along
// the scroll axis. Children keep their measured pixel rectangles, pinned
// relative to the content's reference edge so the first child starts at
// the top (or left) of the viewport. The position resets to the start.
func FitContent(s *widgets.ScrollRect) {
	content, viewport := s.Content, s.Viewport
	content.SetShift(graphics.Offset{})
	base := content.Rect()
	extent, start := Extent(content, s.Axis)

	for _, c := range content.Children() {
		if c.Destroyed() {
			continue
		}
		r := c.Rect()
		var origin graphics.Offset
		if s.Axis == widgets.Horizontal {
			origin = graphics.Offset{X: start, Y: base.Y}
		} else {
			origin = graphics.Offset{X: base.X, Y: start}
		}
		c.SetAnchors(graphics.Offset{}, graphics.Offset{})
		c.SetOffsets(r.Min().Sub(origin), r.Max().Sub(origin))
	}

	if s.Axis == widgets.Horizontal {
		content.SetAnchors(graphics.Offset{}, graphics.Offset{Y: 1})
		content.SetOffsets(graphics.Offset{}, graphics.Offset{X: extent})
	} else {
		content.SetAnchors(graphics.Offset{}, graphics.Offset{X: 1})
		content.SetOffsets(graphics.Offset{}, graphics.Offset{Y: extent})
	}
	s.SetExtents(extent, s.Axis.Along(viewport.Size()))
	s.SetPosition(0)
}
