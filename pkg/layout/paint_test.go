package layout

import (
	"testing"

	"github.com/go-drift/ggui/pkg/graphics"
)

func TestPaint_DrawOrderSkipsInactive(t *testing.T) {
	root := NewRoot("root", graphics.Size{Width: 100, Height: 100})
	a := root.NewChild("a")
	a.NewChild("a1")
	b := root.NewChild("b")
	b.NewChild("b1")
	b.SetActive(false)
	root.NewChild("c")

	var got []string
	Paint(root, func(ctx PaintContext) { got = append(got, ctx.Node.Name) })
	want := []string{"root", "a", "a1", "c"}
	if len(got) != len(want) {
		t.Fatalf("painted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("painted %v, want %v", got, want)
		}
	}
}

func TestPaint_ClipNarrowsDescendants(t *testing.T) {
	root := NewRoot("root", graphics.Size{Width: 100, Height: 100})
	view := root.NewChild("view")
	view.SetNormalized(graphics.Rect{X: .1, Y: .1, Width: .5, Height: .5})
	view.Clip = true
	inner := view.NewChild("inner")
	inner.SetNormalized(graphics.Rect{Width: 2, Height: 2})

	clips := map[string]graphics.Rect{}
	rects := map[string]graphics.Rect{}
	Paint(root, func(ctx PaintContext) {
		clips[ctx.Node.Name] = ctx.Clip
		rects[ctx.Node.Name] = ctx.Rect
	})
	if clips["view"] != (graphics.Rect{Width: 100, Height: 100}) {
		t.Errorf("view clip = %+v", clips["view"])
	}
	if clips["inner"] != (graphics.Rect{X: 10, Y: 10, Width: 50, Height: 50}) {
		t.Errorf("inner clip = %+v", clips["inner"])
	}
	if rects["inner"] != (graphics.Rect{X: 10, Y: 10, Width: 100, Height: 100}) {
		t.Errorf("inner rect = %+v", rects["inner"])
	}
}

func TestPaint_EmptyClipSkipsSubtree(t *testing.T) {
	root := NewRoot("root", graphics.Size{Width: 100, Height: 100})
	view := root.NewChild("view")
	view.SetNormalized(graphics.Rect{X: .5, Y: .5})
	view.Clip = true
	view.NewChild("hidden")

	painted := 0
	Paint(root, func(PaintContext) { painted++ })
	if painted != 2 {
		t.Errorf("painted %d nodes, want 2", painted)
	}
}
