// Package skin holds the visual records that controls are drawn with.
//
// A Style selects fonts, alignment, images and per-state colors for one kind
// of control. A Skin maps control kind names to styles and always answers
// with its Default style for names it does not know.
package skin

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ggui/pkg/graphics"
)

// Sprite names an image asset. The empty Sprite means "not set".
type Sprite string

// MissingSprite is substituted for images a style does not provide.
const MissingSprite Sprite = "ggui/missing"

// IsSet reports whether the sprite names an asset.
func (s Sprite) IsSet() bool { return s != "" }

// Font names a font asset. The empty Font means "not set".
type Font string

// DefaultFont is the font of the baseline skin.
const DefaultFont Font = "ggui/default"

// Overflow controls what happens to text that does not fit its rectangle.
type Overflow int

const (
	// OverflowVisible lets text draw past its bounds.
	OverflowVisible Overflow = iota
	// OverflowMasking clips text at its bounds.
	OverflowMasking
	// OverflowEllipsis truncates text with "...".
	OverflowEllipsis
	// OverflowTruncate cuts text at the last fitting character.
	OverflowTruncate
)

var overflowNames = [...]string{"visible", "masking", "ellipsis", "truncate"}

func (o Overflow) String() string {
	if o < 0 || int(o) >= len(overflowNames) {
		return "unknown"
	}
	return overflowNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(text []byte) error {
	i := slices.Index(overflowNames[:], string(text))
	if i < 0 {
		return fmt.Errorf("unknown overflow mode %q", text)
	}
	*o = Overflow(i)
	return nil
}

// ImageType is the draw mode of a style's image.
type ImageType int

const (
	// ImageSliced stretches the center and keeps the borders.
	ImageSliced ImageType = iota
	// ImageSimple stretches the whole image.
	ImageSimple
	// ImageTiled repeats the image.
	ImageTiled
	// ImageFilled draws a partial fill.
	ImageFilled
)

var imageTypeNames = [...]string{"sliced", "simple", "tiled", "filled"}

func (t ImageType) String() string {
	if t < 0 || int(t) >= len(imageTypeNames) {
		return "unknown"
	}
	return imageTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ImageType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ImageType) UnmarshalText(text []byte) error {
	i := slices.Index(imageTypeNames[:], string(text))
	if i < 0 {
		return fmt.Errorf("unknown image type %q", text)
	}
	*t = ImageType(i)
	return nil
}

// State is an interaction state of a control.
type State int

const (
	StateNormal State = iota
	StateHighlighted
	StatePressed
	StateDisabled
)

// ColorBlock is the set of tints applied to a control in each State.
type ColorBlock struct {
	Normal      graphics.Color `yaml:"normal"`
	Highlighted graphics.Color `yaml:"highlighted"`
	Pressed     graphics.Color `yaml:"pressed"`
	Disabled    graphics.Color `yaml:"disabled"`
	// Multiplier scales every tint's RGB components.
	Multiplier float64 `yaml:"multiplier"`
	// FadeDuration is the cross-fade time between states, in seconds.
	// Zero switches tints at once.
	FadeDuration float64 `yaml:"fadeDuration"`
}

// DefaultColors returns the baseline tint set.
func DefaultColors() *ColorBlock {
	return &ColorBlock{
		Normal:       graphics.RGBF(.7, .7, .7),
		Highlighted:  graphics.ColorWhite,
		Pressed:      graphics.RGBF(.4, .6, .8),
		Disabled:     graphics.RGBF(.3, .3, .3),
		Multiplier:   1,
		FadeDuration: .15,
	}
}

// For returns the tint for state with the multiplier applied.
func (c *ColorBlock) For(state State) graphics.Color {
	var col graphics.Color
	switch state {
	case StateHighlighted:
		col = c.Highlighted
	case StatePressed:
		col = c.Pressed
	case StateDisabled:
		col = c.Disabled
	default:
		col = c.Normal
	}
	if c.Multiplier == 1 {
		return col
	}
	return col.Scale(c.Multiplier)
}

// UnmarshalYAML starts from DefaultColors so partial blocks keep the
// baseline tints for the states they omit.
func (c *ColorBlock) UnmarshalYAML(node *yaml.Node) error {
	type plain ColorBlock
	*c = *DefaultColors()
	return node.Decode((*plain)(c))
}

// Style is the visual record for one kind of control.
type Style struct {
	Font Font `yaml:"font,omitempty"`
	// FontSize of zero or less means "not set".
	FontSize float64 `yaml:"fontSize,omitempty"`

	Alignment graphics.Anchor `yaml:"alignment"`
	// EntryAlignment aligns the editable text of text fields.
	EntryAlignment graphics.Anchor `yaml:"entryAlignment"`
	Overflow       Overflow        `yaml:"overflow"`

	// AutoScale scales the font size with the viewport height.
	AutoScale bool `yaml:"autoScale"`
	// AutoSize shrinks text to fit its rectangle.
	AutoSize bool `yaml:"autoSize"`

	Image Sprite `yaml:"image,omitempty"`
	// SubImages are additional named slots, e.g. a slider's background and
	// fill, in the order the control expects them.
	SubImages []Sprite `yaml:"subImages,omitempty"`

	Material string      `yaml:"material,omitempty"`
	Colors   *ColorBlock `yaml:"colors,omitempty"`

	ImageType      ImageType `yaml:"imageType"`
	PreserveAspect bool      `yaml:"preserveAspect"`
	FillCenter     bool      `yaml:"fillCenter"`
}

// NewStyle returns a style with every field at its default.
func NewStyle() *Style {
	return &Style{
		Alignment:      graphics.AnchorMiddleCenter,
		EntryAlignment: graphics.AnchorMiddleLeft,
		Overflow:       OverflowVisible,
		AutoScale:      true,
		ImageType:      ImageSliced,
		FillCenter:     true,
	}
}

// UnmarshalYAML starts from NewStyle so omitted keys keep their defaults
// and do not count as overrides in Merge.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	type plain Style
	*s = *NewStyle()
	return node.Decode((*plain)(s))
}

// Merge copies every field that src sets onto s and returns s.
//
// Asset references, sizes and the color block are copied only when present
// in src. Enum and flag fields are copied when src holds a value other than
// the NewStyle default, so a partial override never resets them.
func (s *Style) Merge(src *Style) *Style {
	if src == nil {
		return s
	}
	def := NewStyle()

	if src.Font != "" {
		s.Font = src.Font
	}
	if src.FontSize > 0 {
		s.FontSize = src.FontSize
	}
	if src.Alignment != def.Alignment {
		s.Alignment = src.Alignment
	}
	if src.EntryAlignment != def.EntryAlignment {
		s.EntryAlignment = src.EntryAlignment
	}
	if src.Overflow != def.Overflow {
		s.Overflow = src.Overflow
	}
	if src.AutoScale != def.AutoScale {
		s.AutoScale = src.AutoScale
	}
	if src.AutoSize != def.AutoSize {
		s.AutoSize = src.AutoSize
	}
	if src.Image.IsSet() {
		s.Image = src.Image
	}
	if len(src.SubImages) > 0 {
		s.SubImages = slices.Clone(src.SubImages)
	}
	if src.Material != "" {
		s.Material = src.Material
	}
	if src.Colors != nil {
		c := *src.Colors
		s.Colors = &c
	}
	if src.ImageType != def.ImageType {
		s.ImageType = src.ImageType
	}
	if src.PreserveAspect != def.PreserveAspect {
		s.PreserveAspect = src.PreserveAspect
	}
	if src.FillCenter != def.FillCenter {
		s.FillCenter = src.FillCenter
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Style) Clone() *Style {
	c := *s
	c.SubImages = slices.Clone(s.SubImages)
	if s.Colors != nil {
		colors := *s.Colors
		c.Colors = &colors
	}
	return &c
}

// SubImage returns sub-image slot i, or the empty Sprite when the style has
// no such slot.
func (s *Style) SubImage(i int) Sprite {
	if i < 0 || i >= len(s.SubImages) {
		return ""
	}
	return s.SubImages[i]
}

// ColorsOrDefault returns the style's color block, deriving the baseline
// block when none is set.
func (s *Style) ColorsOrDefault() ColorBlock {
	if s.Colors != nil {
		return *s.Colors
	}
	return *DefaultColors()
}
