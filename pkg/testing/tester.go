package testing

import (
	"testing"

	"github.com/go-drift/ggui/pkg/backend/raster"
	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/interaction"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/skin"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// Options configure a Tester.
type Options struct {
	// Size of the surface. Zero uses DefaultTestWidth by DefaultTestHeight.
	Size graphics.Size
	// Skin used by the compiler. Nil uses skin.DefaultSkin().
	Skin *skin.Skin
}

// Tester drives an engine without a window. Every Pump and gesture steps
// one frame, so the controller ticks and the raster surface draws exactly
// as the engine loop would.
type Tester struct {
	engine  *engine.Engine
	surface *raster.Surface
}

// NewTester returns a tester with the default surface size and skin.
func NewTester() *Tester {
	return NewTesterWithOptions(Options{})
}

// NewTesterWithOptions returns a tester configured by opts.
func NewTesterWithOptions(opts Options) *Tester {
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		opts.Size = graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	}
	surface := raster.New(raster.Options{Size: opts.Size})
	compiler := render.New(render.Options{Skin: opts.Skin, Viewport: opts.Size})
	return &Tester{
		engine:  engine.New(engine.Options{Surface: surface, Compiler: compiler}),
		surface: surface,
	}
}

// NewTesterWithT returns a tester that is cleaned up with t.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup clears the page stack and closes the surface.
func (t *Tester) Cleanup() {
	t.engine.Pages().Clear()
	t.surface.Close()
}

// Engine returns the driven engine.
func (t *Tester) Engine() *engine.Engine { return t.engine }

// Surface returns the raster surface frames are drawn to.
func (t *Tester) Surface() *raster.Surface { return t.surface }

// Controller returns the engine's interaction controller.
func (t *Tester) Controller() *interaction.Controller { return t.engine.Controller() }

// Screen returns the root node of the engine.
func (t *Tester) Screen() *layout.Node { return t.engine.Screen() }

// Pump renders build as the shown page and steps one frame.
func (t *Tester) Pump(build engine.BuildFunc) *render.Tree {
	tree := t.engine.Pages().Render("", build)
	t.Step()
	return tree
}

// PushPage pushes build as a new page and steps one frame.
func (t *Tester) PushPage(name string, build engine.BuildFunc) *render.Tree {
	tree := t.engine.Pages().Push(name, build)
	t.Step()
	return tree
}

// PopPage returns to the previous page and steps one frame.
func (t *Tester) PopPage() bool {
	ok := t.engine.Pages().Pop()
	t.Step()
	return ok
}

// Step runs one engine frame. A raster surface never fails to present.
func (t *Tester) Step() {
	if err := t.engine.Step(); err != nil {
		panic(err)
	}
}

// Send handles ev and steps one frame.
func (t *Tester) Send(ev engine.Event) {
	t.engine.Handle(ev)
	t.Step()
}

// SetSize resizes the surface and the screen and steps one frame.
func (t *Tester) SetSize(size graphics.Size) {
	t.surface.Resize(size)
	// Drain the resize event the surface queued for engine loops.
	t.surface.PollEvent()
	t.Send(engine.Event{Kind: engine.EventResize, Size: size})
}

// Find evaluates finder against the screen.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(t.engine.Screen()), finder: finder}
}
