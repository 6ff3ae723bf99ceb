package render

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Context is passed to a SetupFunc for one descriptor.
type Context struct {
	Compiler *Compiler
	Desc     *ui.Descriptor
	// Node is the node created for Desc.
	Node *layout.Node
	// Attach is where the descriptor's children are created. It starts as
	// Node; setups with an inner content area redirect it.
	Attach *layout.Node

	scroll *widgets.ScrollRect
}

// Style returns the descriptor's resolved style.
func (ctx *Context) Style() *skin.Style { return ctx.Desc.Style }

// FitContent asks the compiler to size s's content to the rendered
// children once they are complete. Children attach to s.Content.
func (ctx *Context) FitContent(s *widgets.ScrollRect) {
	ctx.scroll = s
	ctx.Attach = s.Content
}

// Colors returns the style's state colors, or the defaults.
func (ctx *Context) Colors() skin.ColorBlock { return ctx.Desc.Style.ColorsOrDefault() }

// TextColor is the descriptor's text color, multiplied by the disabled
// tint when the control is not interactable.
func (ctx *Context) TextColor() graphics.Color {
	c := ctx.Desc.TextColor
	if !ctx.Desc.Active {
		c = c.Multiply(ctx.Colors().Disabled)
	}
	return c
}

// Label builds a label for text from the descriptor's paint and style.
func (ctx *Context) Label(text string) *widgets.Label {
	d, s := ctx.Desc, ctx.Desc.Style
	align := s.Alignment
	if d.Alignment != ui.AlignFromStyle {
		align = d.Alignment
	}
	return &widgets.Label{
		Text:      text,
		Font:      s.Font,
		FontSize:  ctx.Compiler.FontSize(d, ctx.Node.Viewport().Height),
		Color:     ctx.TextColor(),
		Alignment: align,
		Overflow:  s.Overflow,
		AutoSize:  s.AutoSize,
	}
}

// AddText attaches a label to n.
func (ctx *Context) AddText(n *layout.Node, text string) *widgets.Label {
	l := ctx.Label(text)
	n.Attach(l)
	n.RaycastTarget = true
	return l
}

// AddTextChild creates a child of n at the normalized rectangle r holding
// a label.
func (ctx *Context) AddTextChild(n *layout.Node, r graphics.Rect, text string) (*layout.Node, *widgets.Label) {
	c := n.NewChild("Text")
	c.SetNormalized(r)
	return c, ctx.AddText(c, text)
}

// AddImage attaches the style image for slot (-1 is the main image,
// otherwise a sub-image index) to n, tinted with the descriptor color.
func (ctx *Context) AddImage(n *layout.Node, slot int) *widgets.Image {
	return ctx.AddSprite(n, ctx.Compiler.sprite(ctx.Desc.Style, slot))
}

// AddSprite attaches an explicit sprite to n with the style's image
// settings.
func (ctx *Context) AddSprite(n *layout.Node, sprite skin.Sprite) *widgets.Image {
	img := widgets.ImageFrom(ctx.Desc.Style, sprite, ctx.Desc.Color)
	n.Attach(img)
	n.RaycastTarget = true
	return img
}

// AddImageChild creates a child of n at the normalized rectangle r holding
// the style image for slot.
func (ctx *Context) AddImageChild(n *layout.Node, name string, r graphics.Rect, slot int) (*layout.Node, *widgets.Image) {
	c := n.NewChild(name)
	c.SetNormalized(r)
	return c, ctx.AddImage(c, slot)
}

// Selectable returns interaction state tinting target, disabled when the
// descriptor is inactive.
func (ctx *Context) Selectable(target *widgets.Image) widgets.Selectable {
	s := widgets.NewSelectable(ctx.Colors(), target)
	s.SetInteractable(ctx.Desc.Active)
	return s
}
