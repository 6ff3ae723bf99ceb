// Package interaction runs the per-tick work over rendered trees: live
// callbacks, tracked positions, hover resolution, tooltips and routing of
// pointer and keyboard input to widgets.
package interaction

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Input is the pointer and keyboard state for one tick.
type Input struct {
	Pointer graphics.Offset
	// Pressed is set on the tick the primary button went down.
	Pressed bool
	// Down is set while the primary button is held.
	Down bool
	// Scroll is the wheel movement in scroll units; positive scrolls
	// toward the end of the content.
	Scroll float64
	// Text is typed into the focused entry.
	Text      string
	Backspace bool
	// Submit ends editing of the focused entry.
	Submit bool
	// Elapsed is the time since the previous tick. It advances tint fades.
	Elapsed time.Duration
}

// Options configure a Controller.
type Options struct {
	// Compiler builds tooltip trees.
	Compiler *render.Compiler
	// Root is the node hit tests start from.
	Root *layout.Node
	// Overlay is where tooltips are attached. It should be drawn after
	// every page; nil adds a child to Root.
	Overlay *layout.Node
	// Trees returns the trees whose live hooks run each tick.
	Trees func() []*render.Tree
}

// Controller dispatches per-tick interaction over a screen.
type Controller struct {
	compiler *render.Compiler
	root     *layout.Node
	overlay  *layout.Node
	trees    func() []*render.Tree

	pointer graphics.Offset
	hovered *render.Binding
	// hit is the raycast node under the pointer; it may be a descendant
	// of hovered.Node carrying its own widget, like a scrollbar track.
	hit         *layout.Node
	highlighted *widgets.Selectable

	tooltip      *render.Tree
	tooltipOwner *render.Binding
	tooltipPlace graphics.Rect

	pressed *widgets.Selectable
	fading  []*widgets.Selectable
	drag    widgets.Pointer
	dragOn  *layout.Node
	focused *widgets.TextEntry
}

// New returns a controller for opts.
func New(opts Options) *Controller {
	if opts.Compiler == nil {
		opts.Compiler = render.New(render.Options{})
	}
	if opts.Overlay == nil {
		opts.Overlay = opts.Root.NewChild("Overlay")
	}
	if opts.Trees == nil {
		opts.Trees = func() []*render.Tree { return nil }
	}
	return &Controller{
		compiler: opts.Compiler,
		root:     opts.Root,
		overlay:  opts.Overlay,
		trees:    opts.Trees,
	}
}

// Hovered returns the binding under the pointer, or nil.
func (c *Controller) Hovered() *render.Binding { return c.hovered }

// Tooltip returns the live tooltip tree, or nil.
func (c *Controller) Tooltip() *render.Tree { return c.tooltip }

// Pointer returns the pointer position of the last tick.
func (c *Controller) Pointer() graphics.Offset { return c.pointer }

// Focused reports whether a text entry has keyboard focus.
func (c *Controller) Focused() bool {
	return c.focused != nil && c.focused.Focused()
}

// Tick runs one frame: live hooks, tracking, hover, tooltip and input.
func (c *Controller) Tick(in Input) {
	c.pointer = in.Pointer
	c.DispatchLive()
	c.Track()
	changed := c.UpdateHover(in.Pointer)
	if changed || in.Pressed {
		c.refreshTooltip()
	}
	c.placeTooltip()

	if in.Pressed {
		c.press()
	}
	if in.Down && c.drag != nil && !c.dragOn.Destroyed() {
		c.drag.PointerAt(c.pointer, c.dragOn.Rect())
	}
	if !in.Down {
		c.release()
	}
	if in.Scroll != 0 {
		c.Scroll(in.Scroll)
	}
	if in.Text != "" {
		c.Type(in.Text)
	}
	if in.Backspace && c.Focused() {
		c.focused.Backspace()
	}
	if in.Submit {
		c.EndEdit()
	}
	c.advanceFades(in.Elapsed)
}

// watch keeps s in the set of tints advanced every tick.
func (c *Controller) watch(s *widgets.Selectable) {
	if s.Fading() && !slices.Contains(c.fading, s) {
		c.fading = append(c.fading, s)
	}
}

func (c *Controller) advanceFades(dt time.Duration) {
	c.fading = slices.DeleteFunc(c.fading, func(s *widgets.Selectable) bool {
		return !s.Advance(dt)
	})
}

// DispatchLive runs live hooks of every page tree, then of the tooltip.
func (c *Controller) DispatchLive() {
	for _, t := range c.trees() {
		t.DispatchLive()
	}
	if c.tooltip != nil {
		c.tooltip.DispatchLive()
	}
}

// Track re-centres every tracking descriptor on its point while the
// point is in front of the view.
func (c *Controller) Track() {
	vp := c.root.Viewport()
	for _, t := range c.trees() {
		for _, b := range t.Bindings {
			if b.Desc.Track == nil || !b.Live() || b.Node.Parent() == nil {
				continue
			}
			p, ok := b.Desc.Track()
			if !ok {
				continue
			}
			parent := b.Node.Parent().Rect()
			if parent.Width <= 0 || parent.Height <= 0 {
				continue
			}
			center := graphics.Offset{
				X: (p.X*vp.Width - parent.X) / parent.Width,
				Y: (p.Y*vp.Height - parent.Y) / parent.Height,
			}
			r := b.Desc.Rect()
			render.Position(b.Node, graphics.FromCenter(center, r.Width, r.Height), b.Desc.Offsets)
		}
	}
}

// Resolve returns the frontmost bound descriptor under p that does not
// ignore hover.
func (c *Controller) Resolve(p graphics.Offset) *render.Binding {
	b, _ := c.resolve(p)
	return b
}

func (c *Controller) resolve(p graphics.Offset) (*render.Binding, *layout.Node) {
	hits := c.root.HitTest(p)
	slices.SortStableFunc(hits, func(a, b layout.Hit) int { return cmp.Compare(b.Depth, a.Depth) })
	for _, h := range hits {
		b, ok := render.BindingOf(h.Node)
		if !ok || b.Desc.IgnoreHover {
			continue
		}
		return b, h.Node
	}
	return nil, nil
}

// UpdateHover resolves the hovered binding at p and moves the highlight
// to the selectable nearest the hit node. It reports whether the hovered
// binding changed.
func (c *Controller) UpdateHover(p graphics.Offset) bool {
	next, hit := c.resolve(p)
	sel := interactive(hit, next)
	if sel != c.highlighted {
		if c.highlighted != nil {
			c.highlighted.SetHighlighted(false)
			c.watch(c.highlighted)
		}
		if sel != nil {
			sel.SetHighlighted(true)
			c.watch(sel)
		}
		c.highlighted = sel
	}
	c.hit = hit
	if next == c.hovered {
		return false
	}
	c.hovered = next
	return true
}

// componentAt returns the first component of type T on the path from hit
// up to the bound node of b, with the node carrying it.
func componentAt[T any](hit *layout.Node, b *render.Binding) (T, *layout.Node, bool) {
	var zero T
	if b == nil || b.Node.Destroyed() {
		return zero, nil, false
	}
	if hit == nil || hit.Destroyed() {
		hit = b.Node
	}
	for n := hit; n != nil; n = n.Parent() {
		if v, ok := layout.Get[T](n); ok {
			return v, n, true
		}
		if n == b.Node {
			break
		}
	}
	return zero, nil, false
}

func interactive(hit *layout.Node, b *render.Binding) *widgets.Selectable {
	if it, _, ok := componentAt[widgets.Interactive](hit, b); ok {
		return it.SelectableState()
	}
	return nil
}

// CloseTooltip destroys the live tooltip.
func (c *Controller) CloseTooltip() {
	if c.tooltip != nil {
		c.tooltip.Destroy()
	}
	c.tooltip, c.tooltipOwner = nil, nil
}

func (c *Controller) refreshTooltip() {
	c.CloseTooltip()
	owner := c.hovered
	if owner == nil || owner.Desc.Tooltip == nil {
		return
	}
	var place graphics.Rect
	desc := c.compiler.Describe("Tooltip", func(b *ui.Builder) {
		place = owner.Desc.Tooltip(b)
	})
	desc.Walk(func(d *ui.Descriptor) { d.IgnoreHover = true })
	c.tooltip = c.compiler.Render(desc, c.overlay)
	c.tooltipOwner = owner
	c.tooltipPlace = place
}

// placeTooltip moves the tooltip to the pointer, kept inside the viewport.
func (c *Controller) placeTooltip() {
	if c.tooltip == nil || c.tooltip.Destroyed() {
		return
	}
	vp := c.root.Viewport()
	w, h := c.tooltipPlace.Width*vp.Width, c.tooltipPlace.Height*vp.Height
	x := clamp(c.pointer.X+c.tooltipPlace.X*vp.Width, 0, vp.Width-w)
	y := clamp(c.pointer.Y+c.tooltipPlace.Y*vp.Height, 0, vp.Height-h)
	n := c.tooltip.Root
	n.SetAnchors(graphics.Offset{}, graphics.Offset{})
	n.SetOffsets(graphics.Offset{X: x, Y: y}, graphics.Offset{X: x + w, Y: y + h})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func (c *Controller) press() {
	target := c.hovered
	var entry *widgets.TextEntry
	if target != nil {
		entry, _ = layout.Get[*widgets.TextEntry](target.Node)
	}
	if c.focused != nil && c.focused != entry {
		c.EndEdit()
	}
	if target == nil || target.Node.Destroyed() {
		return
	}
	if sel := interactive(c.hit, target); sel != nil && sel.Interactable {
		sel.SetPressed(true)
		c.watch(sel)
		c.pressed = sel
	}
	if p, on, ok := componentAt[widgets.Pointer](c.hit, target); ok {
		if p.PointerAt(c.pointer, on.Rect()) {
			c.drag, c.dragOn = p, on
		}
		return
	}
	c.Click()
	if entry != nil && entry.Focused() {
		c.focused = entry
	}
}

func (c *Controller) release() {
	if c.pressed != nil {
		c.pressed.SetPressed(false)
		c.watch(c.pressed)
		c.pressed = nil
	}
	c.drag, c.dragOn = nil, nil
}

// Click sends a primary click to the hovered control. It reports whether
// the click was consumed.
func (c *Controller) Click() bool {
	if c.hovered == nil || !c.hovered.Live() {
		return false
	}
	if cl, ok := layout.Get[widgets.Clicker](c.hovered.Node); ok {
		return cl.Click()
	}
	return false
}

// Scroll moves the scroll region nearest the hovered control by delta
// units.
func (c *Controller) Scroll(delta float64) bool {
	if c.hovered == nil || !c.hovered.Live() {
		return false
	}
	sr, _, ok := layout.FindInParents[*widgets.ScrollRect](c.hovered.Node)
	if !ok {
		return false
	}
	return sr.ScrollBy(delta)
}

// Type appends text to the focused entry.
func (c *Controller) Type(text string) {
	if c.Focused() {
		c.focused.Type(text)
	}
}

// EndEdit ends editing of the focused entry.
func (c *Controller) EndEdit() {
	if c.focused == nil {
		return
	}
	c.focused.EndEdit()
	c.focused = nil
}

// Reset forgets hover, focus and press state and closes the tooltip. It is
// called when the page trees are replaced.
func (c *Controller) Reset() {
	c.release()
	if c.highlighted != nil {
		c.highlighted.SetHighlighted(false)
	}
	c.hovered, c.hit, c.highlighted = nil, nil, nil
	c.fading = nil
	if c.focused != nil {
		c.focused.Blur()
		c.focused = nil
	}
	c.CloseTooltip()
}
