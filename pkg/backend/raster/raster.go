// Package raster draws node trees into an in-memory RGBA image.
//
// Sprites are looked up by name in Options.Sprites and scaled over their
// node; sprites without pixels are drawn as flat tinted rectangles. Text
// uses a fixed bitmap face, so label font sizes only affect layout.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ggui/pkg/backend"
	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// eventBuffer matches the engine's event channel.
const eventBuffer = 100

// Options configure a Surface.
type Options struct {
	Size graphics.Size
	// Sprites holds pixels for sprite names.
	Sprites map[skin.Sprite]image.Image
	// Background fills the image before each frame.
	Background graphics.Color
	// Face draws labels. Nil uses basicfont.Face7x13.
	Face font.Face
}

// Surface is an engine.Surface that renders into an image.
type Surface struct {
	mu      sync.Mutex
	size    graphics.Size
	sprites map[skin.Sprite]image.Image
	bg      color.NRGBA
	face    font.Face

	img  *image.RGBA
	clip image.Rectangle

	events    chan engine.Event
	done      chan struct{}
	closeOnce sync.Once
}

var _ engine.Surface = (*Surface)(nil)

// New returns a surface of opts.Size.
func New(opts Options) *Surface {
	face := opts.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Surface{
		size:    opts.Size,
		sprites: opts.Sprites,
		bg:      toNRGBA(opts.Background),
		face:    face,
		events:  make(chan engine.Event, eventBuffer),
		done:    make(chan struct{}),
	}
}

// Size implements engine.Surface.
func (s *Surface) Size() graphics.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Resize changes the image size and queues a resize event.
func (s *Surface) Resize(size graphics.Size) {
	s.mu.Lock()
	s.size = size
	s.mu.Unlock()
	s.Inject(engine.Event{Kind: engine.EventResize, Size: size})
}

// Present implements engine.Surface.
func (s *Surface) Present(root *layout.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bounds := image.Rect(0, 0, int(math.Ceil(s.size.Width)), int(math.Ceil(s.size.Height)))
	if s.img == nil || s.img.Bounds() != bounds {
		s.img = image.NewRGBA(bounds)
	}
	draw.Draw(s.img, bounds, image.NewUniform(s.bg), image.Point{}, draw.Src)
	s.clip = bounds
	backend.Draw(root, s)
	return nil
}

// Image returns a copy of the last presented frame, or nil before the
// first one.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return nil
	}
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// WritePNG encodes the last presented frame.
func (s *Surface) WritePNG(w io.Writer) error {
	img := s.Image()
	if img == nil {
		img = image.NewRGBA(image.Rectangle{})
	}
	return png.Encode(w, img)
}

// SavePNG writes the last presented frame to path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SetClip implements backend.Canvas.
func (s *Surface) SetClip(r graphics.Rect) {
	s.clip = toRect(r).Intersect(s.img.Bounds())
}

// DrawImage implements backend.Canvas.
func (s *Surface) DrawImage(r graphics.Rect, img *widgets.Image) {
	dst := toRect(r)
	visible := dst.Intersect(s.clip)
	if visible.Empty() {
		return
	}
	src, ok := s.sprites[img.Sprite]
	if !ok || img.IsMissing() {
		fill := image.NewUniform(toNRGBA(backend.ImageColor(img)))
		draw.Draw(s.img, visible, fill, image.Point{}, draw.Over)
		return
	}
	if img.PreserveAspect {
		dst = fitAspect(dst, src.Bounds())
		if visible = dst.Intersect(s.clip); visible.Empty() {
			return
		}
	}
	scaled := image.NewRGBA(dst)
	xdraw.BiLinear.Scale(scaled, dst, src, src.Bounds(), xdraw.Src, nil)
	tint(scaled, img.Color)
	draw.Draw(s.img, visible, scaled, visible.Min, draw.Over)
}

// DrawText implements backend.Canvas.
func (s *Surface) DrawText(r graphics.Rect, l *widgets.Label) {
	measure := func(text string) float64 {
		return float64(font.MeasureString(s.face, text).Ceil())
	}
	lines := backend.Lines(l.Display())
	textW := 0.0
	for i, line := range lines {
		lines[i] = backend.Fit(line, r.Width, l.Overflow, measure)
		textW = max(textW, measure(lines[i]))
	}
	m := s.face.Metrics()
	lineH := float64(m.Height.Ceil())
	at := backend.Align(r, textW, lineH*float64(len(lines)), l.Alignment)

	clip := s.clip
	if l.Overflow != skin.OverflowVisible {
		clip = clip.Intersect(toRect(r))
	}
	if clip.Empty() {
		return
	}
	d := &font.Drawer{
		Dst:  s.img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(toNRGBA(l.Color)),
		Face: s.face,
	}
	for i, line := range lines {
		y := at.Y + lineH*float64(i) + float64(m.Ascent.Ceil())
		d.Dot = fixed.P(int(math.Round(at.X)), int(math.Round(y)))
		d.DrawString(line)
	}
}

// Inject queues an input event for PollEvent.
func (s *Surface) Inject(ev engine.Event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// PollEvent implements engine.Surface. It blocks until an event is
// injected or the surface is closed.
func (s *Surface) PollEvent() (engine.Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	case <-s.done:
		return engine.Event{}, false
	}
}

// Close implements engine.Surface.
func (s *Surface) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func toRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.XMax())), int(math.Round(r.YMax())),
	)
}

func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// fitAspect returns the largest rectangle with src's aspect ratio centered
// in dst.
func fitAspect(dst, src image.Rectangle) image.Rectangle {
	if src.Dx() == 0 || src.Dy() == 0 || dst.Dx() == 0 || dst.Dy() == 0 {
		return dst
	}
	scale := min(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	w := int(math.Round(float64(src.Dx()) * scale))
	h := int(math.Round(float64(src.Dy()) * scale))
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// tint multiplies every premultiplied pixel of img by c.
func tint(img *image.RGBA, c graphics.Color) {
	r, g, b, a := c.RGBAF()
	if r == 1 && g == 1 && b == 1 && a == 1 {
		return
	}
	f := [4]float64{r * a, g * a, b * a, a}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		for j := range 4 {
			img.Pix[i+j] = uint8(math.Round(float64(img.Pix[i+j]) * f[j]))
		}
	}
}
