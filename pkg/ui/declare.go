package ui

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Full is the nil position: the control fills its parent.
var Full *graphics.Rect

// At returns a normalized position rectangle.
func At(x, y, w, h float64) *graphics.Rect {
	return &graphics.Rect{X: x, Y: y, Width: w, Height: h}
}

// R returns a pointer to a copy of r for use as a position.
func R(r graphics.Rect) *graphics.Rect { return &r }

// Container declares a plain node with no visuals.
func (b *Builder) Container(pos *graphics.Rect, name string) *Descriptor {
	return b.Declare(pos, name, ContainerControl{Name: name})
}

// Panel declares a background image.
func (b *Builder) Panel(pos *graphics.Rect) *Descriptor {
	return b.Declare(pos, "", PanelControl{})
}

// Text declares a label.
func (b *Builder) Text(pos *graphics.Rect, text string) *Descriptor {
	return b.Declare(pos, text, TextControl{})
}

// Box declares a label over a background image.
func (b *Builder) Box(pos *graphics.Rect, text string) *Descriptor {
	return b.Declare(pos, text, BoxControl{})
}

// Button declares a clickable button.
func (b *Builder) Button(pos *graphics.Rect, text string, onClick func()) *Descriptor {
	return b.Declare(pos, text, ButtonControl{OnClick: onClick})
}

// Toggle declares a labeled on/off switch.
func (b *Builder) Toggle(pos *graphics.Rect, text string, value bool, onChanged func(bool)) *Descriptor {
	return b.Declare(pos, text, ToggleControl{Value: value, OnChanged: onChanged})
}

// Slider declares a slider; an empty label omits the label row.
func (b *Builder) Slider(pos *graphics.Rect, label string, value, min, max float64, onChanged func(float64)) *Descriptor {
	return b.Declare(pos, label, SliderControl{Value: value, Min: min, Max: max, OnChanged: onChanged})
}

// TextField declares a labeled text entry.
func (b *Builder) TextField(pos *graphics.Rect, label, value, placeholder string, onChanged, onEndEdit func(string)) *Descriptor {
	return b.Declare(pos, label, TextFieldControl{
		Value: value, Placeholder: placeholder,
		OnChanged: onChanged, OnEndEdit: onEndEdit,
	})
}

// PasswordField declares a labeled text entry that masks its text.
func (b *Builder) PasswordField(pos *graphics.Rect, label, value, placeholder string, onChanged, onEndEdit func(string)) *Descriptor {
	return b.Declare(pos, label, TextFieldControl{
		Value: value, Placeholder: placeholder, Password: true,
		OnChanged: onChanged, OnEndEdit: onEndEdit,
	})
}

// Sprite declares an image showing sprite.
func (b *Builder) Sprite(pos *graphics.Rect, sprite skin.Sprite) *Descriptor {
	return b.Declare(pos, "", SpriteControl{Sprite: sprite})
}

// Scroll declares a scroll region. Controls nested in it become its
// content, and the content is sized to fit them along axis.
func (b *Builder) Scroll(pos *graphics.Rect, axis widgets.Axis) *Descriptor {
	return b.Declare(pos, "", ScrollControl{Axis: axis})
}

// NestPanel declares a panel and nests body inside it.
func (b *Builder) NestPanel(pos *graphics.Rect, body func()) *Descriptor {
	d := b.Panel(pos)
	b.Nest(body)
	return d
}

// NestBox declares a box and nests body inside it.
func (b *Builder) NestBox(pos *graphics.Rect, text string, body func()) *Descriptor {
	d := b.Box(pos, text)
	b.Nest(body)
	return d
}

// NestScroll declares a scroll region and nests body as its content.
func (b *Builder) NestScroll(pos *graphics.Rect, axis widgets.Axis, body func()) *Descriptor {
	d := b.Scroll(pos, axis)
	b.Nest(body)
	return d
}

// NestContainer declares a container and nests body inside it.
func (b *Builder) NestContainer(pos *graphics.Rect, name string, body func()) *Descriptor {
	d := b.Container(pos, name)
	b.Nest(body)
	return d
}
