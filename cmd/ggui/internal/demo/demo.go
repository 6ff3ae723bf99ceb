// Package demo declares the sample pages shown by the ggui CLI.
package demo

import (
	"fmt"
	"math"

	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

// maxMessages is how many log lines the status box keeps.
const maxMessages = 4

// ListRows is the number of rows on the list page.
const ListRows = 24

// Demo holds the state behind the sample pages.
type Demo struct {
	pages    *engine.Page
	messages []string
	ticks    int
}

// New returns a demo that pushes its pages onto pages. A nil pages
// disables page navigation, which headless renders do not need.
func New(pages *engine.Page) *Demo {
	return &Demo{pages: pages}
}

// Messages returns the recent callback log, oldest first.
func (d *Demo) Messages() []string { return d.messages }

// Logf appends a line to the callback log.
func (d *Demo) Logf(format string, args ...any) {
	d.messages = append(d.messages, fmt.Sprintf(format, args...))
	if len(d.messages) > maxMessages {
		d.messages = d.messages[len(d.messages)-maxMessages:]
	}
}

func (d *Demo) status() string {
	if len(d.messages) == 0 {
		return "Press escape to quit."
	}
	return d.messages[len(d.messages)-1]
}

// Controls declares the main page: one of every control, some of them
// disabled or tinted.
func (d *Demo) Controls(b *ui.Builder) {
	b.NestBox(ui.At(0, 0, .5, .5), "Controls", func() {
		b.Button(ui.At(0, .1, .5, .1), "Button 1", func() { d.Logf("Button 1 clicked") })
		b.SetColor(graphics.ColorRed)
		b.Button(ui.At(.5, .1, .5, .1), "Button 2", func() { d.Logf("Button 2 clicked") })
		b.SetActive(false)

		b.Button(ui.At(0, .2, .5, .1), "Button 3", func() { d.Logf("Button 3 clicked") })
		b.SetTextColor(graphics.ColorBlue)
		b.Button(ui.At(.5, .2, .5, .1), "Button 4", func() { d.Logf("Button 4 clicked") })

		b.SetPaint(ui.DefaultPaint)
		b.Toggle(ui.At(0, .4, 1, .1), "Toggle 1", true, func(v bool) { d.Logf("Toggle 1 set to %t", v) })
		b.Toggle(ui.At(0, .3, 1, .1), "Toggle 2", true, func(v bool) { d.Logf("Toggle 2 set to %t", v) })
		b.SetActive(false)
		b.Toggle(ui.At(0, .5, 1, .1), "Toggle 3", false, func(v bool) { d.Logf("Toggle 3 set to %t", v) })

		b.SetColor(graphics.ColorGreen)
		b.TextField(ui.At(0, .6, 1, .1), "String", "Some String", "Placeholder...",
			func(s string) { d.Logf("String changed: %s", s) },
			func(s string) { d.Logf("String finished: %s", s) })
		b.SetColor(graphics.ColorWhite)
		b.SetTextColor(graphics.ColorBlue)
		b.PasswordField(ui.At(0, .7, 1, .1), "Secret", "hunter2", "Password",
			nil,
			func(s string) { d.Logf("Secret has %d characters", len([]rune(s))) })
		b.TextField(ui.At(0, .8, 1, .1), "What", "Can't touch this", "You can't see this",
			nil, nil)
		b.SetActive(false)
	})

	b.SetPaint(ui.DefaultPaint)
	b.NestBox(ui.At(.5, 0, .5, .5), "More Controls", func() {
		b.Slider(ui.At(0, .2, 1, .1), "Labeled Slider", .5, 0, 1, func(v float64) { d.Logf("Labeled Slider set to %.2f", v) })
		b.SetColor(graphics.ColorGreen)
		b.Slider(ui.At(0, .4, 1, .1), "", 5.5, 5, 10, func(v float64) { d.Logf("Slider set to %.2f", v) })

		b.SetColor(graphics.ColorWhite)
		b.SetTextColor(graphics.ColorBlue)
		b.Slider(ui.At(0, .6, 1, .1), "Disabled Labeled Slider", 5.5, 5, 10, nil)
		b.SetActive(false)

		b.SetPaint(ui.DefaultPaint)
		b.Bar(ui.At(0, .8, 1, .1), "ggui/bar", d.pulse, .1)
	})

	b.Box(ui.At(0, .5, .5, .25), "Hello")
	b.Box(ui.At(.5, .5, .5, .25), "World")

	b.SetPaint(ui.DefaultPaint.WithColor(graphics.ColorWhite.WithAlpha(.55)).WithTextColor(graphics.ColorWhite.WithAlpha(.55)))
	b.Box(ui.At(.33, .55, .33, .15), "How Rude").WithIgnoreHover()

	b.SetPaint(ui.DefaultPaint)
	b.Button(ui.At(0, .8, .3, .1), "List", func() {
		if d.pages != nil {
			d.pages.Push("list", d.List)
		}
	}).WithTooltip(func(tb *ui.Builder) graphics.Rect {
		tb.Box(nil, fmt.Sprintf("Shows %d rows in a scroll view", ListRows))
		return graphics.Rect{X: .02, Y: -.08, Width: .3, Height: .07}
	})

	b.Text(ui.At(.3, .8, .7, .1), d.status()).Live(func(n *layout.Node) {
		if l, ok := layout.Get[*widgets.Label](n); ok {
			l.Text = d.status()
		}
	})
}

// List declares the second page: a vertical scroll view of rows and a
// back button.
func (d *Demo) List(b *ui.Builder) {
	b.NestScroll(ui.At(.1, .1, .8, .7), widgets.Vertical, func() {
		for i := range ListRows {
			row := i
			b.Button(ui.At(0, float64(i)*.1, 1, .1), fmt.Sprintf("Row %d", row), func() { d.Logf("Row %d clicked", row) })
		}
	})
	b.Button(ui.At(.1, .85, .2, .1), "Back", func() {
		if d.pages != nil {
			d.pages.Pop()
		}
	})
	b.Text(ui.At(.35, .85, .55, .1), d.status()).Live(func(n *layout.Node) {
		if l, ok := layout.Get[*widgets.Label](n); ok {
			l.Text = d.status()
		}
	})
}

// pulse is the fill of the demo bar; it advances once per tick.
func (d *Demo) pulse() float64 {
	d.ticks++
	return .5 + .5*math.Sin(float64(d.ticks)/30)
}
