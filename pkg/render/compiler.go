// Package render compiles descriptor trees into retained node trees.
//
// Compilation has two phases. Describe runs the builder procedure and
// yields a finished descriptor tree. Render walks that tree depth-first in
// pre-order; for every descriptor it creates a node under the parent's
// attachment point, runs the kind's setup from the Registry, applies the
// position and insets, renders the children, fits scroll content to its
// children, binds the descriptor to the node and fires the ready hooks.
package render

import (
	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
)

// Defaults for Options fields left at zero.
const (
	DefaultBaseScreenHeight = 720
	DefaultScrollbarWidth   = 20
	DefaultHandleWidth      = 100
	DefaultScrollStep       = 32
)

// Options configure a Compiler.
type Options struct {
	// Skin resolves styles during describe. Nil uses skin.DefaultSkin().
	Skin *skin.Skin
	// Viewport is the size of root nodes created when Render has no parent.
	Viewport graphics.Size
	// BaseScreenHeight is the viewport height at which auto-scaled fonts
	// are drawn at their nominal size.
	BaseScreenHeight float64
	// ScrollbarWidth is the default scrollbar thickness in pixels.
	ScrollbarWidth float64
	// HandleWidth is the width of slider handles in pixels.
	HandleWidth float64
	// ScrollStep is the distance in pixels of one scroll unit.
	ScrollStep float64
	// Registry maps kinds to setups. Nil uses DefaultRegistry().
	Registry *Registry
}

// Compiler turns builder procedures into node trees.
type Compiler struct {
	opts     Options
	registry *Registry
	warned   map[assetSlot]bool
}

type assetSlot struct {
	style *skin.Style
	slot  int
}

// New returns a compiler with defaults filled in.
func New(opts Options) *Compiler {
	if opts.Skin == nil {
		opts.Skin = skin.DefaultSkin()
	}
	if opts.BaseScreenHeight <= 0 {
		opts.BaseScreenHeight = DefaultBaseScreenHeight
	}
	if opts.ScrollbarWidth <= 0 {
		opts.ScrollbarWidth = DefaultScrollbarWidth
	}
	if opts.HandleWidth <= 0 {
		opts.HandleWidth = DefaultHandleWidth
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = DefaultScrollStep
	}
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Compiler{opts: opts, registry: reg, warned: make(map[assetSlot]bool)}
}

// Options returns the compiler's effective options.
func (c *Compiler) Options() Options { return c.opts }

// Skin returns the skin used by Describe.
func (c *Compiler) Skin() *skin.Skin { return c.opts.Skin }

// SetSkin changes the skin for subsequent compiles.
func (c *Compiler) SetSkin(s *skin.Skin) {
	if s != nil {
		c.opts.Skin = s
	}
}

// SetViewport changes the size of root nodes created by later compiles.
func (c *Compiler) SetViewport(size graphics.Size) { c.opts.Viewport = size }

// Register sets the setup used for kind.
func (c *Compiler) Register(kind ui.Kind, fn SetupFunc) { c.registry.Register(kind, fn) }

// Describe runs fn and returns the finished descriptor tree.
func (c *Compiler) Describe(name string, fn func(*ui.Builder)) *ui.Descriptor {
	return ui.Describe(ui.Options{Skin: c.opts.Skin, Name: name}, fn)
}

// Compile describes fn and renders the result under parent. A nil parent
// renders into a new root node of the compiler's viewport size.
func (c *Compiler) Compile(name string, fn func(*ui.Builder), parent *layout.Node) *Tree {
	return c.Render(c.Describe(name, fn), parent)
}

// Render instantiates the descriptor tree rooted at root under parent.
func (c *Compiler) Render(root *ui.Descriptor, parent *layout.Node) *Tree {
	if parent == nil {
		parent = layout.NewRoot("Viewport", c.opts.Viewport)
	}
	t := newTree(root)
	t.Root = c.render(t, root, parent)
	return t
}

func (c *Compiler) render(t *Tree, d *ui.Descriptor, parent *layout.Node) *layout.Node {
	n := parent.NewChild(nodeName(d))
	bind := &Binding{Desc: d, Node: n}
	t.Bindings = append(t.Bindings, bind)

	ctx := &Context{Compiler: c, Desc: d, Node: n, Attach: n}
	if setup, ok := c.registry.Lookup(d.Kind); ok {
		setup(ctx)
	}

	// Setups may move the node, so the position goes last.
	Position(n, d.Rect(), d.Offsets)

	for _, child := range d.Children {
		c.render(t, child, ctx.Attach)
	}
	if ctx.scroll != nil {
		FitContent(ctx.scroll)
	}

	n.Attach(bind)
	d.BindWidget(n)
	if d.OnReady != nil {
		errors.Guard("render.OnReady", func() { d.OnReady(d) })
	}
	if d.OnReadyWidget != nil {
		errors.Guard("render.OnReadyWidget", func() { d.OnReadyWidget(n) })
	}
	return n
}

func nodeName(d *ui.Descriptor) string {
	if cc, ok := d.Control.(ui.ContainerControl); ok && cc.Name != "" {
		return cc.Name
	}
	return d.Kind.String()
}

// Position anchors n to the normalized rectangle r of its parent and
// applies pixel insets.
func Position(n *layout.Node, r graphics.Rect, in *graphics.Insets) {
	n.SetNormalized(r)
	if in != nil {
		n.SetInsets(*in)
	}
}

// FontSize returns the size text of d is drawn at: the descriptor's size,
// else the style's, scaled by viewport height when the style auto-scales.
// Zero means the backend default.
func (c *Compiler) FontSize(d *ui.Descriptor, viewportHeight float64) float64 {
	size := d.FontSize
	if size <= 0 {
		size = d.Style.FontSize
	}
	if size <= 0 {
		return 0
	}
	if d.Style.AutoScale && viewportHeight > 0 {
		size *= viewportHeight / c.opts.BaseScreenHeight
	}
	return size
}

// sprite returns the image for slot of style (-1 is the main image),
// substituting skin.MissingSprite and reporting the first miss.
func (c *Compiler) sprite(style *skin.Style, slot int) skin.Sprite {
	s := style.Image
	if slot >= 0 {
		s = style.SubImage(slot)
	}
	if s.IsSet() {
		return s
	}
	key := assetSlot{style, slot}
	if !c.warned[key] {
		c.warned[key] = true
		errors.Warnf("render.Compiler.sprite", errors.KindAsset, errors.ErrMissingAsset, "style has no image for slot %d", slot)
	}
	return skin.MissingSprite
}
