package widgets

import (
	"math"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
)

// Slider selects a value between Min and Max. The fill node spans from the
// left edge to the value and the handle node sits on it.
type Slider struct {
	Selectable
	Min   float64
	Max   float64
	Value float64
	// WholeNumbers rounds the value to integers.
	WholeNumbers bool

	Fill   *layout.Node
	Handle *layout.Node

	OnChanged func(float64)
}

// Normalized returns the value as a fraction of the range.
func (s *Slider) Normalized() float64 {
	if s.Max == s.Min {
		return 0
	}
	return clamp01((s.Value - s.Min) / (s.Max - s.Min))
}

// SetValue clamps v into range, updates the visuals and notifies
// OnChanged when the value changed.
func (s *Slider) SetValue(v float64) {
	old := s.Value
	s.SetValueWithoutNotify(v)
	if s.Value != old && s.OnChanged != nil {
		s.OnChanged(s.Value)
	}
}

// SetValueWithoutNotify clamps v into range and updates the visuals only.
func (s *Slider) SetValueWithoutNotify(v float64) {
	lo, hi := math.Min(s.Min, s.Max), math.Max(s.Min, s.Max)
	v = math.Max(lo, math.Min(hi, v))
	if s.WholeNumbers {
		v = math.Round(v)
	}
	s.Value = v
	s.updateVisuals()
}

// SetNormalized sets the value from a fraction of the range.
func (s *Slider) SetNormalized(f float64) {
	s.SetValue(s.Min + (s.Max-s.Min)*clamp01(f))
}

func (s *Slider) updateVisuals() {
	n := s.Normalized()
	if s.Fill != nil {
		s.Fill.SetAnchors(graphics.Offset{}, graphics.Offset{X: n, Y: 1})
	}
	if s.Handle != nil {
		s.Handle.SetAnchors(graphics.Offset{X: n}, graphics.Offset{X: n, Y: 1})
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// PointerAt moves the value to the pointer position p over the slider
// track r.
func (s *Slider) PointerAt(p graphics.Offset, r graphics.Rect) bool {
	if !s.Interactable || r.Width <= 0 {
		return false
	}
	s.SetNormalized((p.X - r.X) / r.Width)
	return true
}
