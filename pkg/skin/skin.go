package skin

import (
	"maps"
	"slices"

	"github.com/go-drift/ggui/pkg/graphics"
)

// Style keys of the baseline skin. Control kinds without an entry here
// (panels, text, sprites) resolve to the Default style.
const (
	KeyPanel      = "panel"
	KeyText       = "text"
	KeyBox        = "box"
	KeyButton     = "button"
	KeyToggle     = "toggle"
	KeySlider     = "slider"
	KeyInputField = "inputField"
	KeySprite     = "sprite"
	KeyScroll     = "scroll"
)

// KnownKeys lists every style key a control kind can look up.
var KnownKeys = []string{
	KeyPanel, KeyText, KeyBox, KeyButton, KeyToggle,
	KeySlider, KeyInputField, KeySprite, KeyScroll,
}

// Skin maps style keys to styles with a fallback Default.
type Skin struct {
	// Default is returned for every key without an entry. It is never nil
	// for skins built by NewSkin or DefaultSkin.
	Default *Style

	styles map[string]*Style
}

// NewSkin returns an empty skin that answers every key with def.
// A nil def is replaced by NewStyle().
func NewSkin(def *Style) *Skin {
	if def == nil {
		def = NewStyle()
	}
	return &Skin{Default: def, styles: make(map[string]*Style)}
}

// Style returns the style registered under key, or the Default style
// itself (same pointer) when there is none. It never returns nil.
func (s *Skin) Style(key string) *Style {
	if st, ok := s.styles[key]; ok && st != nil {
		return st
	}
	return s.Default
}

// Lookup returns the style registered under key and whether it exists.
func (s *Skin) Lookup(key string) (*Style, bool) {
	st, ok := s.styles[key]
	return st, ok
}

// Set registers st under key. A nil st removes the entry.
func (s *Skin) Set(key string, st *Style) {
	if st == nil {
		delete(s.styles, key)
		return
	}
	if s.styles == nil {
		s.styles = make(map[string]*Style)
	}
	s.styles[key] = st
}

// Keys returns the registered keys in sorted order.
func (s *Skin) Keys() []string {
	return slices.Sorted(maps.Keys(s.styles))
}

// Clone deep-copies the skin and every style in it.
func (s *Skin) Clone() *Skin {
	c := NewSkin(s.Default.Clone())
	for k, st := range s.styles {
		c.styles[k] = st.Clone()
	}
	return c
}

// DefaultSkin generates the baseline skin. Each keyed style starts as a
// copy of the default style and changes only what its control needs.
func DefaultSkin() *Skin {
	def := NewStyle()
	def.Font = DefaultFont
	def.Image = "ggui/default"
	def.Colors = DefaultColors()

	s := NewSkin(def)

	button := def.Clone()
	button.Image = "ggui/button"
	s.Set(KeyButton, button)

	box := def.Clone()
	box.Alignment = graphics.AnchorTopLeft
	s.Set(KeyBox, box)

	toggle := def.Clone()
	toggle.Image = "ggui/toggle-bg"
	toggle.SubImages = []Sprite{"ggui/toggle-check"}
	toggle.ImageType = ImageSimple
	toggle.PreserveAspect = true
	toggle.Alignment = graphics.AnchorMiddleLeft
	toggle.Overflow = OverflowMasking
	s.Set(KeyToggle, toggle)

	slider := def.Clone()
	slider.Image = "ggui/slider-thumb"
	slider.SubImages = []Sprite{"ggui/slider-bg", "ggui/slider-fill"}
	slider.ImageType = ImageSliced
	s.Set(KeySlider, slider)

	input := def.Clone()
	input.Image = "ggui/input"
	input.ImageType = ImageSliced
	input.AutoSize = true
	s.Set(KeyInputField, input)

	scroll := def.Clone()
	scroll.Image = "ggui/scroll-bg"
	scroll.SubImages = []Sprite{"ggui/scroll-handle"}
	s.Set(KeyScroll, scroll)

	return s
}
