package widgets

import (
	"math"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
)

// Axis is a scroll direction.
type Axis int

const (
	// Vertical scrolls along Y; the reference edge is the top.
	Vertical Axis = iota
	// Horizontal scrolls along X; the reference edge is the left.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Along returns the component of s on axis a.
func (a Axis) Along(s graphics.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// ScrollRect clips Content to Viewport and slides it by Position.
type ScrollRect struct {
	Axis     Axis
	Viewport *layout.Node
	Content  *layout.Node
	// Scrollbar mirrors the position and visible fraction. It may be nil.
	Scrollbar *Scrollbar
	// Sensitivity is the distance in pixels moved per unit of ScrollBy.
	Sensitivity float64

	// ContentExtent and ViewportExtent are the pixel lengths along Axis.
	ContentExtent  float64
	ViewportExtent float64
	// Position is 0 at the reference edge and 1 at the far end.
	Position float64
}

// SetExtents records the content and viewport lengths, resizes the
// scrollbar handle and re-applies the position.
func (s *ScrollRect) SetExtents(content, viewport float64) {
	s.ContentExtent, s.ViewportExtent = content, viewport
	if s.Scrollbar != nil {
		s.Scrollbar.SetSize(HandleSize(viewport, content))
	}
	s.SetPosition(s.Position)
}

// Overflow returns how far the content extends past the viewport.
func (s *ScrollRect) Overflow() float64 {
	return math.Max(0, s.ContentExtent-s.ViewportExtent)
}

// SetPosition moves the content to position p in [0, 1].
func (s *ScrollRect) SetPosition(p float64) {
	p = clamp01(p)
	if s.Overflow() == 0 {
		p = 0
	}
	s.Position = p
	if s.Content != nil {
		d := -s.Overflow() * p
		if s.Axis == Horizontal {
			s.Content.SetShift(graphics.Offset{X: d})
		} else {
			s.Content.SetShift(graphics.Offset{Y: d})
		}
	}
	if s.Scrollbar != nil {
		s.Scrollbar.SetValue(p)
	}
}

// ScrollBy moves the content by delta units of Sensitivity pixels.
// Positive deltas move toward the far end.
func (s *ScrollRect) ScrollBy(delta float64) bool {
	over := s.Overflow()
	if over == 0 {
		return false
	}
	sens := s.Sensitivity
	if sens <= 0 {
		sens = 1
	}
	s.SetPosition(s.Position + delta*sens/over)
	return true
}

// Scrollbar shows the visible fraction of a ScrollRect.
type Scrollbar struct {
	Selectable
	Axis   Axis
	Handle *layout.Node
	// Size is the handle length as a fraction of the track, in (0, 1].
	Size float64
	// Value is the handle position in [0, 1].
	Value float64
	// OnValue is called when dragging moves the handle.
	OnValue func(float64)
}

// HandleSize returns viewport/content clamped to (0, 1]. Empty content
// yields a full-length handle.
func HandleSize(viewport, content float64) float64 {
	if content <= 0 || viewport >= content {
		return 1
	}
	return math.Max(math.SmallestNonzeroFloat64, viewport/content)
}

// SetSize sets the handle length.
func (b *Scrollbar) SetSize(size float64) {
	b.Size = size
	b.updateHandle()
}

// SetValue sets the handle position.
func (b *Scrollbar) SetValue(v float64) {
	b.Value = clamp01(v)
	b.updateHandle()
}

func (b *Scrollbar) updateHandle() {
	if b.Handle == nil {
		return
	}
	start := b.Value * (1 - b.Size)
	if b.Axis == Horizontal {
		b.Handle.SetAnchors(graphics.Offset{X: start}, graphics.Offset{X: start + b.Size, Y: 1})
	} else {
		b.Handle.SetAnchors(graphics.Offset{Y: start}, graphics.Offset{X: 1, Y: start + b.Size})
	}
}

// PointerAt centres the handle on the pointer position p over the track r
// and reports the new value to OnValue. A full-length handle cannot move.
func (b *Scrollbar) PointerAt(p graphics.Offset, r graphics.Rect) bool {
	length := b.Axis.Along(graphics.Size{Width: r.Width, Height: r.Height})
	if !b.Interactable || b.Size >= 1 || length <= 0 {
		return false
	}
	pos, start := p.Y, r.Y
	if b.Axis == Horizontal {
		pos, start = p.X, r.X
	}
	handle := b.Size * length
	b.SetValue((pos - start - handle/2) / (length - handle))
	if b.OnValue != nil {
		b.OnValue(b.Value)
	}
	return true
}
