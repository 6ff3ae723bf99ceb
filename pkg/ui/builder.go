package ui

import (
	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
)

// Options configure a describe pass.
type Options struct {
	// Skin resolves per-kind styles. Nil uses skin.DefaultSkin().
	Skin *skin.Skin
	// Paint is the starting paint. Nil uses DefaultPaint.
	Paint *Paint
	// Name labels the root container.
	Name string
}

// Builder is the declaration stack of one describe pass.
type Builder struct {
	skin    *skin.Skin
	paint   Paint
	root    *Descriptor
	stack   []*Descriptor
	pending *Descriptor
	pushes  int
	pops    int
	done    bool
}

// NewBuilder starts a describe pass with an auto-created root container
// covering the whole viewport.
func NewBuilder(opts Options) *Builder {
	b := &Builder{skin: opts.Skin, paint: DefaultPaint}
	if b.skin == nil {
		b.skin = skin.DefaultSkin()
	}
	if opts.Paint != nil {
		b.paint = *opts.Paint
	}
	full := graphics.UnitRect
	b.root = &Descriptor{
		Kind:      KindContainer,
		Position:  &full,
		Active:    true,
		Control:   ContainerControl{Name: opts.Name},
		Content:   opts.Name,
		Style:     b.skin.Default,
		Color:     b.paint.Color,
		TextColor: b.paint.TextColor,
		Alignment: AlignFromStyle,
	}
	b.stack = []*Descriptor{b.root}
	return b
}

// Describe runs fn against a new builder and returns the finished root.
func Describe(opts Options, fn func(b *Builder)) *Descriptor {
	b := NewBuilder(opts)
	if fn != nil {
		fn(b)
	}
	return b.Finish()
}

// Finish flushes the pending control and returns the root. Containers
// left open stay in the tree and are reported. Finish is idempotent.
func (b *Builder) Finish() *Descriptor {
	if b.done {
		return b.root
	}
	b.Next()
	if open := len(b.stack) - 1; open > 0 {
		errors.Warnf("ui.Builder.Finish", errors.KindStack, errors.ErrUnbalanced,
			"%d container(s) left open (%d pushes, %d pops)", open, b.pushes, b.pops)
	}
	b.stack = b.stack[:1]
	b.done = true
	return b.root
}

// Root returns the root container.
func (b *Builder) Root() *Descriptor { return b.root }

// Pending returns the control declared last and not yet flushed, or nil.
func (b *Builder) Pending() *Descriptor { return b.pending }

// Top returns the current container.
func (b *Builder) Top() *Descriptor { return b.stack[len(b.stack)-1] }

// Depth returns the container stack height; 1 means only the root.
func (b *Builder) Depth() int { return len(b.stack) }

// Pushes returns the number of successful Push calls.
func (b *Builder) Pushes() int { return b.pushes }

// Pops returns the number of successful Pop calls.
func (b *Builder) Pops() int { return b.pops }

// Skin returns the skin styles are resolved from.
func (b *Builder) Skin() *skin.Skin { return b.skin }

// SetSkin changes the skin for subsequent declarations.
func (b *Builder) SetSkin(s *skin.Skin) {
	if s != nil {
		b.skin = s
	}
}

// Next moves the pending control into the current container.
func (b *Builder) Next() {
	if b.pending == nil {
		return
	}
	top := b.Top()
	top.Children = append(top.Children, b.pending)
	b.pending = nil
}

// Push moves the pending control into the current container and makes it
// the current container. It reports whether a control was pending.
func (b *Builder) Push() bool {
	if b.pending == nil {
		errors.Warn("ui.Builder.Push", errors.KindStack, errors.ErrNothingPending)
		return false
	}
	d := b.pending
	b.Next()
	b.stack = append(b.stack, d)
	b.pushes++
	return true
}

// Pop flushes the pending control and returns to the previous container.
// With only the root left it is a no-op.
func (b *Builder) Pop() bool {
	if len(b.stack) <= 1 {
		errors.Warn("ui.Builder.Pop", errors.KindStack, errors.ErrStackUnderflow)
		return false
	}
	b.Next()
	b.stack = b.stack[:len(b.stack)-1]
	b.pops++
	return true
}

// Nest pushes the pending control, runs body and pops. When nothing is
// pending, body runs in the current container and nothing is popped.
func (b *Builder) Nest(body func()) {
	pushed := b.Push()
	if body != nil {
		body()
	}
	if pushed {
		b.Pop()
	}
}

// SetActive sets the pending control's active flag.
func (b *Builder) SetActive(active bool) {
	if b.pending == nil {
		errors.Warn("ui.Builder.SetActive", errors.KindStack, errors.ErrNothingPending)
		return
	}
	b.pending.Active = active
}

// SetOffsets sets the pending control's pixel insets.
func (b *Builder) SetOffsets(in graphics.Insets) {
	if b.pending == nil {
		errors.Warn("ui.Builder.SetOffsets", errors.KindStack, errors.ErrNothingPending)
		return
	}
	b.pending.WithOffsets(in)
}

// Paint returns the current paint.
func (b *Builder) Paint() Paint { return b.paint }

// SetPaint replaces the current paint.
func (b *Builder) SetPaint(p Paint) { b.paint = p }

// WithPaint runs body with p as the current paint and restores the
// previous paint afterwards.
func (b *Builder) WithPaint(p Paint, body func()) {
	prev := b.paint
	b.paint = p
	defer func() { b.paint = prev }()
	body()
}

// SetColor sets the image tint for subsequent declarations.
func (b *Builder) SetColor(c graphics.Color) { b.paint = b.paint.WithColor(c) }

// SetTextColor sets the text tint for subsequent declarations.
func (b *Builder) SetTextColor(c graphics.Color) { b.paint = b.paint.WithTextColor(c) }

// SetFontSize sets the font size for subsequent declarations.
func (b *Builder) SetFontSize(size float64) { b.paint = b.paint.WithFontSize(size) }

// SetAlignment sets the text alignment for subsequent declarations.
func (b *Builder) SetAlignment(a graphics.Anchor) { b.paint = b.paint.WithAlignment(a) }

// Declare flushes the pending control and makes a new descriptor for c
// pending. Paint and style are resolved now. After Finish the descriptor
// is reported and returned without joining the tree.
func (b *Builder) Declare(pos *graphics.Rect, content string, c Control) *Descriptor {
	b.Next()
	kind := c.Kind()
	d := &Descriptor{
		Kind:      kind,
		Position:  pos,
		Color:     b.paint.Color,
		TextColor: b.paint.TextColor,
		FontSize:  b.paint.FontSize,
		Alignment: b.paint.Alignment,
		Active:    true,
		Content:   content,
		Control:   c,
		Style:     b.skin.Style(kind.StyleKey()),
	}
	if b.done {
		errors.Warnf("ui.Builder.Declare", errors.KindStack, errors.ErrFinished, "%s %q dropped", kind, content)
		return d
	}
	b.pending = d
	return d
}
