package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/ggui/pkg/backend/raster"
	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

var viewport = graphics.Size{Width: 100, Height: 100}

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.Set(x, y, c)
		}
	}
	return img
}

func present(t *testing.T, s *raster.Surface, fn func(b *ui.Builder)) *image.RGBA {
	t.Helper()
	c := render.New(render.Options{Viewport: s.Size()})
	tree := c.Compile("", fn, nil)
	if err := s.Present(tree.Root); err != nil {
		t.Fatal(err)
	}
	return s.Image()
}

func TestSurface_SpriteTinted(t *testing.T) {
	s := raster.New(raster.Options{
		Size:       viewport,
		Sprites:    map[skin.Sprite]image.Image{"ggui/default": solid(color.RGBA{R: 255, A: 255})},
		Background: graphics.RGB(0, 0, 0x40),
	})
	img := present(t, s, func(b *ui.Builder) {
		b.Panel(ui.At(0, 0, .5, .5))
	})

	got := img.RGBAAt(25, 25)
	if got.R < 175 || got.R > 182 || got.G != 0 || got.B != 0 {
		t.Errorf("panel pixel = %+v, want red tinted by the normal color", got)
	}
	if bg := img.RGBAAt(75, 75); bg != (color.RGBA{B: 0x40, A: 255}) {
		t.Errorf("background pixel = %+v", bg)
	}
}

func TestSurface_MissingSpriteIsMagenta(t *testing.T) {
	s := raster.New(raster.Options{Size: viewport})
	c := render.New(render.Options{Viewport: viewport})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Sprite(ui.At(0, 0, 1, 1), skin.MissingSprite)
	}, nil)
	s.Present(tree.Root)
	if got := s.Image().RGBAAt(50, 50); got != (color.RGBA{R: 255, B: 255, A: 255}) {
		t.Errorf("missing sprite pixel = %+v", got)
	}
}

func TestSurface_ClipsScrollContent(t *testing.T) {
	s := raster.New(raster.Options{
		Size:    viewport,
		Sprites: map[skin.Sprite]image.Image{"ggui/default": solid(color.White)},
	})
	img := present(t, s, func(b *ui.Builder) {
		b.NestScroll(ui.At(0, 0, 1, .5), widgets.Vertical, func() {
			b.Panel(ui.At(0, 0, 1, 2))
		})
	})
	if got := img.RGBAAt(10, 25); got.R == 0 {
		t.Errorf("content inside the viewport not drawn: %+v", got)
	}
	if got := img.RGBAAt(10, 75); got != (color.RGBA{}) {
		t.Errorf("content below the viewport drawn: %+v", got)
	}
}

func TestSurface_DrawsText(t *testing.T) {
	s := raster.New(raster.Options{Size: viewport})
	c := render.New(render.Options{Viewport: viewport})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Text(ui.At(0, 0, 1, .2), "HELLO")
	}, nil)
	s.Present(tree.Root)

	img := s.Image()
	lit := 0
	for y := range 20 {
		for x := range 100 {
			if img.RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no text pixels drawn")
	}
	if got := img.RGBAAt(50, 60); got != (color.RGBA{}) {
		t.Errorf("text drawn outside its rect: %+v", got)
	}
}

func TestSurface_WritePNG(t *testing.T) {
	s := raster.New(raster.Options{Size: viewport})
	present(t, s, func(b *ui.Builder) { b.Panel(nil) })

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestSurface_Events(t *testing.T) {
	s := raster.New(raster.Options{Size: viewport})
	s.Inject(engine.Event{Kind: engine.EventPress, Pointer: graphics.Offset{X: 1, Y: 2}})
	ev, ok := s.PollEvent()
	if !ok || ev.Kind != engine.EventPress {
		t.Errorf("PollEvent = %+v, %v", ev, ok)
	}

	s.Resize(graphics.Size{Width: 50, Height: 40})
	ev, _ = s.PollEvent()
	if ev.Kind != engine.EventResize || s.Size() != ev.Size {
		t.Errorf("resize event = %+v", ev)
	}

	s.Close()
	if _, ok := s.PollEvent(); ok {
		t.Error("PollEvent after Close should report false")
	}
}
