package widgets

import (
	"time"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
)

// Selectable is the interaction state shared by clickable components.
// It tints Target according to the current state.
type Selectable struct {
	// Interactable enables input. Disabled controls draw with the disabled
	// tint and ignore clicks.
	Interactable bool
	Colors       skin.ColorBlock
	// Target is the graphic tinted by state changes. It may be nil.
	Target *Image
	// Base is Target's untinted color.
	Base graphics.Color

	highlighted bool
	pressed     bool

	// from and to are the tints of a running fade.
	from, to graphics.Color
	elapsed  time.Duration
}

// Interactive is implemented by components that embed Selectable.
type Interactive interface {
	SelectableState() *Selectable
}

// Clicker is implemented by components that react to a primary click.
// Click reports whether the click was consumed.
type Clicker interface {
	Click() bool
}

// NewSelectable returns an interactable state tinting target.
func NewSelectable(colors skin.ColorBlock, target *Image) Selectable {
	s := Selectable{Interactable: true, Colors: colors, Target: target}
	if target != nil {
		s.Base = target.Color
	}
	s.refresh()
	return s
}

// SelectableState returns s.
func (s *Selectable) SelectableState() *Selectable { return s }

// State returns the current interaction state.
func (s *Selectable) State() skin.State {
	switch {
	case !s.Interactable:
		return skin.StateDisabled
	case s.pressed:
		return skin.StatePressed
	case s.highlighted:
		return skin.StateHighlighted
	default:
		return skin.StateNormal
	}
}

// Tint returns the tint for the current state.
func (s *Selectable) Tint() graphics.Color { return s.Colors.For(s.State()) }

// SetInteractable enables or disables input.
func (s *Selectable) SetInteractable(v bool) {
	s.Interactable = v
	s.refresh()
}

// SetHighlighted marks the component as hovered. The tint fades to the
// new state over Colors.FadeDuration as Advance is called.
func (s *Selectable) SetHighlighted(v bool) {
	s.highlighted = v
	s.fade()
}

// Highlighted reports whether the component is hovered.
func (s *Selectable) Highlighted() bool { return s.highlighted }

// SetPressed marks the primary button as held on the component. The tint
// fades like SetHighlighted.
func (s *Selectable) SetPressed(v bool) {
	s.pressed = v
	s.fade()
}

// Fading reports whether Target is still between two tints.
func (s *Selectable) Fading() bool {
	return s.Target != nil && s.elapsed < s.fadeDuration()
}

// Advance moves a running fade forward by dt. It reports whether the fade
// is still running afterwards.
func (s *Selectable) Advance(dt time.Duration) bool {
	if !s.Fading() {
		return false
	}
	d := s.fadeDuration()
	s.elapsed += dt
	if s.elapsed >= d {
		s.elapsed = d
		s.Target.Color = s.to
		return false
	}
	s.Target.Color = graphics.Lerp(s.from, s.to, float64(s.elapsed)/float64(d))
	return true
}

func (s *Selectable) fadeDuration() time.Duration {
	return time.Duration(s.Colors.FadeDuration * float64(time.Second))
}

// refresh applies the current tint at once.
func (s *Selectable) refresh() {
	if s.Target == nil {
		return
	}
	s.to = s.Base.Multiply(s.Tint())
	s.from, s.elapsed = s.to, s.fadeDuration()
	s.Target.Color = s.to
}

func (s *Selectable) fade() {
	if s.Target == nil || s.fadeDuration() <= 0 {
		s.refresh()
		return
	}
	s.from, s.to, s.elapsed = s.Target.Color, s.Base.Multiply(s.Tint()), 0
}

// Pointer is implemented by components that take a value from the pointer
// position, given the rectangle of the node carrying them.
type Pointer interface {
	PointerAt(p graphics.Offset, r graphics.Rect) bool
}
