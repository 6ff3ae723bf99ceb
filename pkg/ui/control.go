package ui

import (
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Control carries a descriptor's kind-specific values and callbacks.
type Control interface {
	Kind() Kind
}

// ContainerControl is a node with no visuals.
type ContainerControl struct {
	Name string
}

func (ContainerControl) Kind() Kind { return KindContainer }

// PanelControl is a background image.
type PanelControl struct{}

func (PanelControl) Kind() Kind { return KindPanel }

// TextControl is a label.
type TextControl struct{}

func (TextControl) Kind() Kind { return KindText }

// BoxControl is a label over a background image.
type BoxControl struct{}

func (BoxControl) Kind() Kind { return KindBox }

// ButtonControl is a clickable label and image.
type ButtonControl struct {
	OnClick func()
}

func (ButtonControl) Kind() Kind { return KindButton }

// ToggleControl is a labeled on/off switch.
type ToggleControl struct {
	Value     bool
	OnChanged func(bool)
}

func (ToggleControl) Kind() Kind { return KindToggle }

// SliderControl is a labeled value in [Min, Max].
type SliderControl struct {
	Value     float64
	Min       float64
	Max       float64
	OnChanged func(float64)
}

func (SliderControl) Kind() Kind { return KindSlider }

// TextFieldControl is a labeled text entry.
type TextFieldControl struct {
	Value       string
	Placeholder string
	Password    bool
	OnChanged   func(string)
	OnEndEdit   func(string)
}

func (c TextFieldControl) Kind() Kind {
	if c.Password {
		return KindPasswordField
	}
	return KindTextField
}

// SpriteControl is an image showing a specific sprite.
type SpriteControl struct {
	Sprite skin.Sprite
}

func (SpriteControl) Kind() Kind { return KindSprite }

// ScrollControl is a clipped, scrollable region whose children form its
// content.
type ScrollControl struct {
	Axis widgets.Axis
	// ScrollbarWidth is the scrollbar thickness in pixels; zero uses the
	// default.
	ScrollbarWidth float64
}

func (ScrollControl) Kind() Kind { return KindScroll }
