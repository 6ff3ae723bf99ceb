package render

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Layout rectangles of compound controls, as fractions of the control.
var (
	toggleLabelRect = graphics.Rect{X: .1, Width: .9, Height: 1}
	toggleBoxRect   = graphics.Rect{Width: .1, Height: 1}
	fieldLabelRect  = graphics.Rect{Width: .5, Height: 1}
	fieldEntryRect  = graphics.Rect{X: .5, Width: .5, Height: 1}
	sliderLabelRect = graphics.Rect{Y: -.5, Width: 1, Height: .5}
)

func setupContainer(*Context) {}

func setupPanel(ctx *Context) {
	ctx.AddImage(ctx.Node, -1)
}

func setupText(ctx *Context) {
	ctx.AddText(ctx.Node, ctx.Desc.Content)
}

func setupBox(ctx *Context) {
	ctx.AddImage(ctx.Node, -1)
	ctx.AddTextChild(ctx.Node, graphics.UnitRect, ctx.Desc.Content)
}

func setupButton(ctx *Context) {
	img := ctx.AddImage(ctx.Node, -1)
	ctx.AddTextChild(ctx.Node, graphics.UnitRect, ctx.Desc.Content)
	btn := &widgets.Button{Selectable: ctx.Selectable(img)}
	if c, ok := ctx.Desc.Control.(ui.ButtonControl); ok {
		btn.OnClick = c.OnClick
	}
	ctx.Node.Attach(btn)
}

func setupToggle(ctx *Context) {
	n := ctx.Node
	ctx.AddTextChild(n, toggleLabelRect, ctx.Desc.Content)
	_, bg := ctx.AddImageChild(n, "Background", toggleBoxRect, -1)
	check, _ := ctx.AddImageChild(n, "Checkmark", toggleBoxRect, 0)

	t := &widgets.Toggle{Selectable: ctx.Selectable(bg), Check: check}
	c, _ := ctx.Desc.Control.(ui.ToggleControl)
	t.SetValueWithoutNotify(c.Value)
	t.OnChanged = c.OnChanged
	n.Attach(t)
}

func setupSlider(ctx *Context) {
	n := ctx.Node
	c, _ := ctx.Desc.Control.(ui.SliderControl)
	if ctx.Desc.Content != "" {
		ctx.AddTextChild(n, sliderLabelRect, ctx.Desc.Content)
	}
	bg := ctx.AddImage(n, 0)
	fill, _ := ctx.AddImageChild(n, "Fill", graphics.UnitRect, 1)

	handle := n.NewChild("Handle")
	img := ctx.AddImage(handle, -1)
	img.Type = skin.ImageSimple
	img.PreserveAspect = true
	w := ctx.Compiler.opts.HandleWidth / 2
	handle.SetOffsets(graphics.Offset{X: -w}, graphics.Offset{X: w})

	s := &widgets.Slider{
		Selectable: ctx.Selectable(bg),
		Min:        c.Min,
		Max:        c.Max,
		Fill:       fill,
		Handle:     handle,
	}
	s.SetValueWithoutNotify(c.Value)
	s.OnChanged = c.OnChanged
	n.Attach(s)
}

func setupTextField(ctx *Context) {
	n := ctx.Node
	c, _ := ctx.Desc.Control.(ui.TextFieldControl)
	bg := ctx.AddImage(n, -1)
	ctx.AddTextChild(n, fieldLabelRect, ctx.Desc.Content)

	entryNode, entry := ctx.AddTextChild(n, fieldEntryRect, "")
	entryNode.Name = "Entry"
	entry.Alignment = ctx.Desc.Style.EntryAlignment
	place, _ := ctx.AddTextChild(n, fieldEntryRect, c.Placeholder)
	place.Name = "Placeholder"

	e := &widgets.TextEntry{
		Selectable:  ctx.Selectable(bg),
		Password:    c.Password,
		TextLabel:   entry,
		Placeholder: place,
	}
	e.SetTextWithoutNotify(c.Value)
	e.OnChanged = c.OnChanged
	e.OnEndEdit = c.OnEndEdit
	n.Attach(e)
}

func setupSprite(ctx *Context) {
	c, _ := ctx.Desc.Control.(ui.SpriteControl)
	if !c.Sprite.IsSet() {
		ctx.AddImage(ctx.Node, -1)
		return
	}
	ctx.AddSprite(ctx.Node, c.Sprite)
}

func setupScroll(ctx *Context) {
	n := ctx.Node
	c, _ := ctx.Desc.Control.(ui.ScrollControl)
	ctx.AddImage(n, -1)

	bar := c.ScrollbarWidth
	if bar <= 0 {
		bar = ctx.Compiler.opts.ScrollbarWidth
	}

	viewport := n.NewChild("Viewport")
	viewport.Clip = true
	content := viewport.NewChild("Content")

	track := n.NewChild("Scrollbar")
	handle := track.NewChild("Handle")
	handleImg := ctx.AddImage(handle, 0)

	if c.Axis == widgets.Horizontal {
		viewport.SetOffsets(graphics.Offset{}, graphics.Offset{Y: -bar})
		track.SetAnchors(graphics.Offset{Y: 1}, graphics.Offset{X: 1, Y: 1})
		track.SetOffsets(graphics.Offset{Y: -bar}, graphics.Offset{})
	} else {
		viewport.SetOffsets(graphics.Offset{}, graphics.Offset{X: -bar})
		track.SetAnchors(graphics.Offset{X: 1}, graphics.Offset{X: 1, Y: 1})
		track.SetOffsets(graphics.Offset{X: -bar}, graphics.Offset{})
	}

	sb := &widgets.Scrollbar{Selectable: ctx.Selectable(handleImg), Axis: c.Axis, Handle: handle}
	sb.SetSize(1)
	track.Attach(sb)
	track.RaycastTarget = true

	sr := &widgets.ScrollRect{
		Axis:        c.Axis,
		Viewport:    viewport,
		Content:     content,
		Scrollbar:   sb,
		Sensitivity: ctx.Compiler.opts.ScrollStep,
	}
	sb.OnValue = sr.SetPosition
	n.Attach(sr)
	ctx.FitContent(sr)
}
