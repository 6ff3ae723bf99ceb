// Package engine hosts rendered pages on a Surface and drives them with a
// fixed-rate frame loop.
//
// The loop reads surface input on a separate goroutine and forwards it over
// a channel; every other piece of UI work, from building pages to ticking
// the interaction controller and presenting, happens on the goroutine
// calling Run.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/interaction"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
)

// DefaultTick is the frame interval used when Options.Tick is zero.
const DefaultTick = 16 * time.Millisecond

// Options configure an Engine.
type Options struct {
	Surface  Surface
	Compiler *render.Compiler
	// Tick is the frame interval.
	Tick time.Duration
	// RebuildOnResize re-renders the shown page when the surface size
	// changes, so auto-scaled fonts follow the new height.
	RebuildOnResize bool
}

// Engine owns the screen node tree, its page stack and the interaction
// controller.
type Engine struct {
	surface  Surface
	compiler *render.Compiler
	tick     time.Duration
	rebuild  bool

	screen  *layout.Node
	pages   *Page
	ctl     *interaction.Controller
	input   interaction.Input
	frames  int
	stats   Stats
	started time.Time
	// lastStep is when the previous frame started.
	lastStep time.Time
	debug    *debugState
}

// New returns an engine presenting to opts.Surface.
func New(opts Options) *Engine {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	size := opts.Surface.Size()
	if opts.Compiler == nil {
		opts.Compiler = render.New(render.Options{Viewport: size})
	}
	opts.Compiler.SetViewport(size)

	screen := layout.NewRoot("Screen", size)
	pageLayer := screen.NewChild("Pages")
	overlay := screen.NewChild("Overlay")

	e := &Engine{
		surface:  opts.Surface,
		compiler: opts.Compiler,
		tick:     opts.Tick,
		rebuild:  opts.RebuildOnResize,
		screen:   screen,
		pages:    NewPage(opts.Compiler, pageLayer),
	}
	e.ctl = interaction.New(interaction.Options{
		Compiler: opts.Compiler,
		Root:     screen,
		Overlay:  overlay,
		Trees:    e.pages.Trees,
	})
	e.pages.OnChange = e.ctl.Reset
	return e
}

// Screen returns the root node presented each frame.
func (e *Engine) Screen() *layout.Node { return e.screen }

// Pages returns the page stack.
func (e *Engine) Pages() *Page { return e.pages }

// Controller returns the interaction controller.
func (e *Engine) Controller() *interaction.Controller { return e.ctl }

// Frames returns the number of frames stepped.
func (e *Engine) Frames() int { return e.frames }

// Handle folds ev into the input of the next frame. It returns false when
// the event asks the loop to stop.
func (e *Engine) Handle(ev Event) bool {
	switch ev.Kind {
	case EventPointer:
		e.input.Pointer = ev.Pointer
	case EventPress:
		e.input.Pointer = ev.Pointer
		e.input.Pressed = true
		e.input.Down = true
	case EventRelease:
		e.input.Pointer = ev.Pointer
		e.input.Down = false
	case EventScroll:
		e.input.Pointer = ev.Pointer
		e.input.Scroll += ev.Scroll
	case EventKey:
		switch ev.Key {
		case KeyBackspace:
			e.input.Backspace = true
		case KeyEnter:
			e.input.Submit = true
		case KeyEscape:
			if !e.ctl.Focused() {
				return false
			}
			e.ctl.EndEdit()
		default:
			e.input.Text += ev.Text
		}
	case EventResize:
		e.Resize(ev.Size)
	case EventQuit:
		return false
	}
	return true
}

// Resize changes the screen size.
func (e *Engine) Resize(size graphics.Size) {
	if size == e.screen.Viewport() {
		return
	}
	e.screen.SetViewport(size)
	e.compiler.SetViewport(size)
	if e.rebuild {
		e.pages.Rebuild()
	}
}

// Step runs one frame: it ticks the controller with the pending input and
// presents the screen.
func (e *Engine) Step() error {
	start := time.Now()
	if !e.lastStep.IsZero() {
		e.input.Elapsed = start.Sub(e.lastStep)
	}
	e.lastStep = start
	e.ctl.Tick(e.input)
	e.input = interaction.Input{Pointer: e.input.Pointer, Down: e.input.Down}
	e.frames++
	if err := e.surface.Present(e.screen); err != nil {
		return fmt.Errorf("present frame %d: %w", e.frames, err)
	}
	e.stats.record(time.Since(start))
	e.publishDebug()
	return nil
}

// Run steps frames every tick until ctx is done, the surface closes or a
// quit event arrives. Events are read on a separate goroutine; after Run
// returns it exits on the next event or when the caller closes the
// surface.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	events := make(chan Event, 100)
	go func() {
		defer close(events)
		for {
			ev, ok := e.surface.PollEvent()
			if !ok || ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	e.started = time.Now()
	if err := e.Step(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !e.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := e.Step(); err != nil {
				errors.Warn("engine.Engine.Run", errors.KindRender, err)
				return err
			}
		}
	}
}

// Stats returns frame timing collected so far.
func (e *Engine) Stats() Stats {
	s := e.stats
	if !e.started.IsZero() {
		s.Uptime = time.Since(e.started)
	}
	return s
}
