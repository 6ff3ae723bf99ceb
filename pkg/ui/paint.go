package ui

import "github.com/go-drift/ggui/pkg/graphics"

// AlignFromStyle leaves text alignment to the control's style.
const AlignFromStyle graphics.Anchor = -1

// Paint is the set of values a declaration copies onto its descriptor.
// It is a value type; the With methods return modified copies.
type Paint struct {
	// Color tints images.
	Color graphics.Color
	// TextColor tints text.
	TextColor graphics.Color
	// FontSize of zero or less defers to the style.
	FontSize float64
	// Alignment of AlignFromStyle defers to the style.
	Alignment graphics.Anchor
}

// DefaultPaint is the paint a builder starts with.
var DefaultPaint = Paint{
	Color:     graphics.ColorWhite,
	TextColor: graphics.ColorWhite,
	Alignment: AlignFromStyle,
}

// WithColor returns a copy of p with the given image tint.
func (p Paint) WithColor(c graphics.Color) Paint {
	p.Color = c
	return p
}

// WithTextColor returns a copy of p with the given text tint.
func (p Paint) WithTextColor(c graphics.Color) Paint {
	p.TextColor = c
	return p
}

// WithFontSize returns a copy of p with the given font size.
func (p Paint) WithFontSize(size float64) Paint {
	p.FontSize = size
	return p
}

// WithAlignment returns a copy of p with the given text alignment.
func (p Paint) WithAlignment(a graphics.Anchor) Paint {
	p.Alignment = a
	return p
}
