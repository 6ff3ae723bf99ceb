package backend_test

import (
	"testing"

	"github.com/go-drift/ggui/pkg/backend"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

type call struct {
	kind string
	rect graphics.Rect
	clip graphics.Rect
	text string
}

type recordingCanvas struct {
	clip  graphics.Rect
	calls []call
}

func (c *recordingCanvas) SetClip(r graphics.Rect) { c.clip = r }

func (c *recordingCanvas) DrawImage(r graphics.Rect, img *widgets.Image) {
	c.calls = append(c.calls, call{kind: "image", rect: r, clip: c.clip, text: string(img.Sprite)})
}

func (c *recordingCanvas) DrawText(r graphics.Rect, l *widgets.Label) {
	c.calls = append(c.calls, call{kind: "text", rect: r, clip: c.clip, text: l.Display()})
}

func TestFit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    float64
		overflow skin.Overflow
		want     string
	}{
		{"fits", "hello", 5, skin.OverflowEllipsis, "hello"},
		{"visible", "hello world", 5, skin.OverflowVisible, "hello world"},
		{"ellipsis", "hello world", 6, skin.OverflowEllipsis, "hello…"},
		{"truncate", "hello world", 6, skin.OverflowTruncate, "hello "},
		{"masking", "hello world", 3, skin.OverflowMasking, "hel"},
		{"only ellipsis", "hello", 1, skin.OverflowEllipsis, "…"},
		{"nothing fits", "hello", 0, skin.OverflowEllipsis, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backend.Fit(tt.text, tt.width, tt.overflow, backend.RuneWidth); got != tt.want {
				t.Errorf("Fit = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	r := graphics.Rect{X: 10, Y: 10, Width: 100, Height: 50}
	tests := []struct {
		anchor graphics.Anchor
		want   graphics.Offset
	}{
		{graphics.AnchorTopLeft, graphics.Offset{X: 10, Y: 10}},
		{graphics.AnchorMiddleCenter, graphics.Offset{X: 50, Y: 30}},
		{graphics.AnchorBottomRight, graphics.Offset{X: 90, Y: 50}},
	}
	for _, tt := range tests {
		if got := backend.Align(r, 20, 10, tt.anchor); got != tt.want {
			t.Errorf("Align(%v) = %+v, want %+v", tt.anchor, got, tt.want)
		}
	}
}

func TestImageRect(t *testing.T) {
	r := graphics.Rect{Width: 100, Height: 10}
	img := &widgets.Image{Type: skin.ImageFilled, FillAmount: .25}
	if got := backend.ImageRect(r, img); got.Width != 25 {
		t.Errorf("filled width = %v", got.Width)
	}
	img.Type = skin.ImageSliced
	if got := backend.ImageRect(r, img); got != r {
		t.Errorf("sliced rect = %+v", got)
	}
	if backend.ImageColor(&widgets.Image{Sprite: skin.MissingSprite}) != backend.MissingColor {
		t.Error("missing sprite color")
	}
}

func TestTrailRect(t *testing.T) {
	r := graphics.Rect{X: 10, Width: 100, Height: 10}
	tests := []struct {
		name       string
		fill, tail float64
		want       graphics.Rect
		ok         bool
	}{
		{"none", .5, 0, graphics.Rect{}, false},
		{"past the fill", .5, .25, graphics.Rect{X: 60, Width: 25, Height: 10}, true},
		{"over the fill", .5, -.25, graphics.Rect{X: 35, Width: 25, Height: 10}, true},
		{"clamped", .9, .5, graphics.Rect{X: 100, Width: 10, Height: 10}, true},
		{"full", 1, .5, graphics.Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := &widgets.Image{Type: skin.ImageFilled, FillAmount: tt.fill, TrailAmount: tt.tail}
			got, ok := backend.TrailRect(r, img)
			if ok != tt.ok || (ok && (!graphics.Approx(got.X, tt.want.X, 1e-9) || !graphics.Approx(got.Width, tt.want.Width, 1e-9))) {
				t.Errorf("TrailRect = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDraw_BarTrail(t *testing.T) {
	v := 1.0
	c := render.New(render.Options{Viewport: graphics.Size{Width: 200, Height: 100}})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Bar(ui.At(0, 0, 1, .5), "ui/bar", func() float64 { return v }, .5)
	}, nil)
	v = .5
	tree.DispatchLive()

	rc := &recordingCanvas{}
	backend.Draw(tree.Root, rc)
	var bars []call
	for _, cl := range rc.calls {
		if cl.kind == "image" && cl.text == "ui/bar" {
			bars = append(bars, cl)
		}
	}
	if len(bars) != 2 {
		t.Fatalf("bar draws = %+v, want fill then trail", bars)
	}
	if bars[0].rect.Width != 100 {
		t.Errorf("fill width = %v, want 100", bars[0].rect.Width)
	}
	if bars[1].rect.X != 100 || bars[1].rect.Width != 50 {
		t.Errorf("trail = %+v, want x=100 width=50", bars[1].rect)
	}
}

func TestDraw_OrderAndClip(t *testing.T) {
	c := render.New(render.Options{Viewport: graphics.Size{Width: 200, Height: 100}})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Box(ui.At(0, 0, 1, .5), "title")
		b.NestScroll(ui.At(0, .5, 1, .5), widgets.Vertical, func() {
			b.Text(ui.At(0, 0, 1, .5), "row")
		})
	}, nil)

	rc := &recordingCanvas{}
	backend.Draw(tree.Root, rc)
	if len(rc.calls) < 3 {
		t.Fatalf("calls = %+v", rc.calls)
	}
	if rc.calls[0].kind != "image" || rc.calls[1].kind != "text" || rc.calls[1].text != "title" {
		t.Errorf("box should draw image then text: %+v", rc.calls[:2])
	}
	var row *call
	for i := range rc.calls {
		if rc.calls[i].text == "row" {
			row = &rc.calls[i]
		}
	}
	if row == nil {
		t.Fatal("row text not drawn")
	}
	want := graphics.Rect{Y: 50, Width: 200 - render.DefaultScrollbarWidth, Height: 50}
	if row.clip != want {
		t.Errorf("row clip = %+v, want viewport %+v", row.clip, want)
	}
}

func TestDraw_SkipsHidden(t *testing.T) {
	root := layout.NewRoot("r", graphics.Size{Width: 10, Height: 10})
	n := root.NewChild("n")
	n.Attach(&widgets.Label{Text: "x"})
	n.SetActive(false)
	rc := &recordingCanvas{}
	backend.Draw(root, rc)
	if len(rc.calls) != 0 {
		t.Errorf("hidden node drawn: %+v", rc.calls)
	}
}
