package ui

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
)

// TooltipProvider declares a tooltip's contents into b and returns its
// placement: X and Y are the offset from the pointer and Width and Height
// the size, all as fractions of the viewport.
type TooltipProvider func(b *Builder) graphics.Rect

// TrackPoint reports a normalized viewport position a control follows,
// and whether that position is in front of the view.
type TrackPoint func() (graphics.Offset, bool)

// Descriptor is the data captured by one declaration call.
type Descriptor struct {
	Kind Kind
	// Position is the normalized rectangle within the parent; nil fills
	// the parent.
	Position *graphics.Rect
	// Offsets are pixel insets applied after Position.
	Offsets *graphics.Insets

	Color     graphics.Color
	TextColor graphics.Color
	FontSize  float64
	Alignment graphics.Anchor

	Active  bool
	Content string
	Control Control
	// Style is resolved at declaration and is never nil.
	Style *skin.Style

	// Children are appended during describe and must not change after.
	Children []*Descriptor

	OnReady       func(*Descriptor)
	OnReadyWidget func(*layout.Node)
	// OnEnable runs each time the control's page is shown again.
	OnEnable func(*layout.Node)
	// OnLiveUpdate runs once per tick while the control is enabled.
	OnLiveUpdate func(*layout.Node)

	Tooltip     TooltipProvider
	IgnoreHover bool
	Track       TrackPoint

	widget *layout.Node
}

// Rect returns Position, or the full parent rectangle when unset.
func (d *Descriptor) Rect() graphics.Rect {
	if d.Position == nil {
		return graphics.UnitRect
	}
	return *d.Position
}

// Widget returns the node rendered for d, or nil before render.
func (d *Descriptor) Widget() *layout.Node { return d.widget }

// BindWidget records the node rendered for d. It is called by the compiler.
func (d *Descriptor) BindWidget(n *layout.Node) { d.widget = n }

// Walk visits d and its descendants in pre-order.
func (d *Descriptor) Walk(fn func(*Descriptor)) {
	fn(d)
	for _, c := range d.Children {
		c.Walk(fn)
	}
}

// WithOffsets sets pixel insets and returns d.
func (d *Descriptor) WithOffsets(in graphics.Insets) *Descriptor {
	d.Offsets = &in
	return d
}

// WithTooltip sets the tooltip provider and returns d.
func (d *Descriptor) WithTooltip(p TooltipProvider) *Descriptor {
	d.Tooltip = p
	return d
}

// WithIgnoreHover excludes d from hover resolution and returns d.
func (d *Descriptor) WithIgnoreHover() *Descriptor {
	d.IgnoreHover = true
	return d
}

// WithTrack makes d follow p and returns d.
func (d *Descriptor) WithTrack(p TrackPoint) *Descriptor {
	d.Track = p
	return d
}

// Ready adds a hook run with the descriptor after it is rendered.
func (d *Descriptor) Ready(fn func(*Descriptor)) *Descriptor {
	prev := d.OnReady
	d.OnReady = func(x *Descriptor) {
		if prev != nil {
			prev(x)
		}
		fn(x)
	}
	return d
}

// ReadyWidget adds a hook run with the node after it is rendered.
func (d *Descriptor) ReadyWidget(fn func(*layout.Node)) *Descriptor {
	d.OnReadyWidget = chain(d.OnReadyWidget, fn)
	return d
}

// Enabled adds a hook run each time the control's page is shown again.
func (d *Descriptor) Enabled(fn func(*layout.Node)) *Descriptor {
	d.OnEnable = chain(d.OnEnable, fn)
	return d
}

// Live adds a hook run on every tick while the control is enabled.
func (d *Descriptor) Live(fn func(*layout.Node)) *Descriptor {
	d.OnLiveUpdate = chain(d.OnLiveUpdate, fn)
	return d
}

func chain(prev, next func(*layout.Node)) func(*layout.Node) {
	if prev == nil {
		return next
	}
	return func(n *layout.Node) {
		prev(n)
		next(n)
	}
}
