// Package terminal presents node trees in a terminal with tcell.
//
// Node rectangles are in virtual pixels; each terminal cell covers
// CellWidth by CellHeight of them. Images fill their cells with the tint
// as background color and labels are written over them.
package terminal

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ggui/pkg/backend"
	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// Default cell size in virtual pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// missingRune marks cells of images with a missing sprite.
const missingRune = '▒'

// Options configure a Surface.
type Options struct {
	CellWidth  float64
	CellHeight float64
	// Background fills cells no image covers.
	Background graphics.Color
}

// Surface is an engine.Surface backed by a tcell screen.
type Surface struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	bg     tcell.Color

	// Frame state, used only by Present.
	cols, rows int
	back       []tcell.Color
	clip       graphics.Rect

	// Mouse state, used only by PollEvent.
	buttons tcell.ButtonMask

	closeOnce sync.Once
}

var _ engine.Surface = (*Surface)(nil)

// New opens the terminal.
func New(opts Options) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts)
}

// NewWithScreen initializes screen and wraps it. Tests pass a
// tcell.SimulationScreen.
func NewWithScreen(screen tcell.Screen, opts Options) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	return &Surface{
		screen: screen,
		cellW:  opts.CellWidth,
		cellH:  opts.CellHeight,
		bg:     toTcell(opts.Background),
	}, nil
}

// Screen returns the underlying tcell screen.
func (s *Surface) Screen() tcell.Screen { return s.screen }

// Size returns the terminal size in virtual pixels.
func (s *Surface) Size() graphics.Size {
	w, h := s.screen.Size()
	return graphics.Size{Width: float64(w) * s.cellW, Height: float64(h) * s.cellH}
}

// Present draws root and shows the frame.
func (s *Surface) Present(root *layout.Node) error {
	s.cols, s.rows = s.screen.Size()
	if n := s.cols * s.rows; cap(s.back) < n {
		s.back = make([]tcell.Color, n)
	} else {
		s.back = s.back[:n]
	}
	base := tcell.StyleDefault.Background(s.bg)
	for i := range s.back {
		s.back[i] = s.bg
	}
	s.screen.Fill(' ', base)
	backend.Draw(root, s)
	s.screen.Show()
	return nil
}

// cellRange converts a pixel rectangle, limited to the clip, into a
// half-open range of cells.
func (s *Surface) cellRange(r graphics.Rect) (x0, y0, x1, y1 int) {
	r = r.Intersect(s.clip)
	x0 = max(0, int(math.Round(r.X/s.cellW)))
	y0 = max(0, int(math.Round(r.Y/s.cellH)))
	x1 = min(s.cols, int(math.Round(r.XMax()/s.cellW)))
	y1 = min(s.rows, int(math.Round(r.YMax()/s.cellH)))
	return
}

// SetClip implements backend.Canvas.
func (s *Surface) SetClip(r graphics.Rect) { s.clip = r }

// DrawImage implements backend.Canvas.
func (s *Surface) DrawImage(r graphics.Rect, img *widgets.Image) {
	col := backend.ImageColor(img)
	if col.Alpha() < .5 {
		return
	}
	tc := toTcell(col)
	x0, y0, x1, y1 := s.cellRange(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.back[y*s.cols+x] = tc
			if img.IsMissing() {
				s.screen.SetContent(x, y, missingRune, nil, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tc))
			} else {
				s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tc))
			}
		}
	}
}

// DrawText implements backend.Canvas.
func (s *Surface) DrawText(r graphics.Rect, l *widgets.Label) {
	lines := backend.Lines(l.Display())
	width := math.Floor(r.Width / s.cellW)
	for i, line := range lines {
		lines[i] = backend.Fit(line, width, l.Overflow, backend.RuneWidth)
	}
	textW := 0.0
	for _, line := range lines {
		textW = max(textW, backend.RuneWidth(line))
	}
	clip := s.clip
	if l.Overflow != skin.OverflowVisible {
		s.clip = s.clip.Intersect(r)
	}
	defer func() { s.clip = clip }()

	cells := graphics.Rect{X: r.X / s.cellW, Y: r.Y / s.cellH, Width: r.Width / s.cellW, Height: r.Height / s.cellH}
	at := backend.Align(cells, textW, float64(len(lines)), l.Alignment)
	fg := toTcell(l.Color)
	x0, y0, x1, y1 := s.cellRange(s.clip)
	for i, line := range lines {
		y := int(math.Round(at.Y)) + i
		if y < y0 || y >= y1 {
			continue
		}
		x := int(math.Round(at.X))
		for _, ch := range line {
			if x >= x0 && x < x1 {
				st := tcell.StyleDefault.Foreground(fg).Background(s.back[y*s.cols+x])
				s.screen.SetContent(x, y, ch, nil, st)
			}
			x++
		}
	}
}

// PollEvent blocks for the next terminal event and translates it.
func (s *Surface) PollEvent() (engine.Event, bool) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return engine.Event{}, false
		}
		if out, ok := s.translate(ev); ok {
			return out, true
		}
	}
}

func (s *Surface) translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return engine.Event{
			Kind: engine.EventResize,
			Size: graphics.Size{Width: float64(w) * s.cellW, Height: float64(h) * s.cellH},
		}, true
	case *tcell.EventMouse:
		return s.mouse(ev)
	case *tcell.EventKey:
		return key(ev)
	}
	return engine.Event{}, false
}

func (s *Surface) mouse(ev *tcell.EventMouse) (engine.Event, bool) {
	x, y := ev.Position()
	p := graphics.Offset{X: (float64(x) + .5) * s.cellW, Y: (float64(y) + .5) * s.cellH}
	btn := ev.Buttons()
	prev := s.buttons
	s.buttons = btn & tcell.Button1

	switch {
	case btn&tcell.WheelUp != 0:
		return engine.Event{Kind: engine.EventScroll, Pointer: p, Scroll: -1}, true
	case btn&tcell.WheelDown != 0:
		return engine.Event{Kind: engine.EventScroll, Pointer: p, Scroll: 1}, true
	case btn&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		return engine.Event{Kind: engine.EventPress, Pointer: p}, true
	case btn&tcell.Button1 == 0 && prev&tcell.Button1 != 0:
		return engine.Event{Kind: engine.EventRelease, Pointer: p}, true
	}
	return engine.Event{Kind: engine.EventPointer, Pointer: p}, true
}

func key(ev *tcell.EventKey) (engine.Event, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return engine.Event{Kind: engine.EventKey, Text: string(ev.Rune())}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return engine.Event{Kind: engine.EventKey, Key: engine.KeyBackspace}, true
	case tcell.KeyEnter:
		return engine.Event{Kind: engine.EventKey, Key: engine.KeyEnter}, true
	case tcell.KeyEscape:
		return engine.Event{Kind: engine.EventKey, Key: engine.KeyEscape}, true
	case tcell.KeyCtrlC:
		return engine.Event{Kind: engine.EventQuit}, true
	}
	return engine.Event{}, false
}

// Close restores the terminal. PollEvent returns false afterwards.
func (s *Surface) Close() error {
	s.closeOnce.Do(s.screen.Fini)
	return nil
}

func toTcell(c graphics.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
