package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-drift/ggui/cmd/ggui/internal/demo"
	"github.com/go-drift/ggui/pkg/backend/terminal"
	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/skin"
)

// pageNames lists the demo pages in the order they are offered.
var pageNames = []string{"controls", "list"}

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the sample pages in the terminal",
		Long: `Run the sample pages in the terminal.

The demo declares one of every control, some disabled or tinted, and a
second page with a scroll view. Use the mouse to hover, click and drag;
type into focused text fields. Press escape or ctrl-c to quit.

Diagnostics raised while the terminal is in use are printed on exit.
With debug.addr set (GGUI_DEBUG_ADDR), the node tree and frame timing
of the running demo are served as JSON on /tree and /stats.`,
		Usage: "ggui demo [controls|list]",
		Run:   runDemo,
	})
}

func runDemo(env *Env, args []string) error {
	page := "controls"
	if len(args) > 0 {
		page = args[0]
	}

	surface, err := terminal.New(terminal.Options{})
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	rec := &errors.Recorder{}
	errors.SetHandler(rec)

	compiler, err := newCompiler(env, surface.Size())
	if err != nil {
		surface.Close()
		return err
	}
	e := engine.New(engine.Options{
		Surface:         surface,
		Compiler:        compiler,
		Tick:            env.Config.Loop.Tick,
		RebuildOnResize: true,
	})
	d := demo.New(e.Pages())
	build, err := pageBuild(d, page)
	if err != nil {
		surface.Close()
		return err
	}
	e.Pages().Render(page, build)

	var debugAddr string
	if env.Config.Debug.Addr != "" {
		addr, err := e.ServeDebug(env.Config.Debug.Addr)
		if err != nil {
			surface.Close()
			return err
		}
		defer e.StopDebug()
		debugAddr = addr.String()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := e.Run(ctx)
	surface.Close()

	handler := &errors.LogHandler{Verbose: env.Config.Log.Verbose}
	for _, r := range rec.Errors {
		handler.HandleError(r)
	}
	for _, p := range rec.Panics {
		handler.HandlePanic(p)
	}
	if debugAddr != "" {
		fmt.Fprintf(env.Out, "debug server was listening on http://%s\n", debugAddr)
	}
	stats := e.Stats()
	fmt.Fprintf(env.Out, "%d frames in %s (avg %s, max %s)\n", stats.Frames, stats.Uptime.Round(time.Millisecond), stats.Average(), stats.Max)
	for _, m := range d.Messages() {
		fmt.Fprintln(env.Out, m)
	}
	if runErr != nil && !stderrors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// newCompiler builds a compiler for the configured skin and screen.
func newCompiler(env *Env, viewport graphics.Size) (*render.Compiler, error) {
	data, err := skin.LoadOptional(env.Config.Skin.Path)
	if err != nil {
		return nil, err
	}
	return render.New(render.Options{
		Skin:             data.Skin(),
		Viewport:         viewport,
		BaseScreenHeight: env.Config.Screen.BaseHeight,
	}), nil
}

func pageBuild(d *demo.Demo, name string) (engine.BuildFunc, error) {
	switch name {
	case "controls":
		return d.Controls, nil
	case "list":
		return d.List, nil
	}
	return nil, fmt.Errorf("unknown page %q (available: %v)", name, pageNames)
}
