package render_test

import (
	"testing"

	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/render"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/ui"
	"github.com/go-drift/ggui/pkg/widgets"
)

var hd = graphics.Size{Width: 1280, Height: 720}

func record(t *testing.T) *errors.Recorder {
	t.Helper()
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return rec
}

func rectApprox(a, b graphics.Rect) bool {
	const eps = 1e-6
	return graphics.Approx(a.X, b.X, eps) && graphics.Approx(a.Y, b.Y, eps) &&
		graphics.Approx(a.Width, b.Width, eps) && graphics.Approx(a.Height, b.Height, eps)
}

func TestCompile_TwoSiblings(t *testing.T) {
	rec := record(t)
	clicks := 0
	c := render.New(render.Options{Viewport: hd})
	tree := c.Compile("main", func(b *ui.Builder) {
		b.Box(ui.At(0, 0, .5, .5), "Hello")
		b.Button(ui.At(.5, 0, .5, .5), "Click", func() { clicks++ })
	}, nil)

	if got := tree.Root.Rect(); got != (graphics.Rect{Width: 1280, Height: 720}) {
		t.Errorf("root rect = %+v", got)
	}
	kids := tree.Root.Children()
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}
	if got := kids[0].Rect(); got != (graphics.Rect{Width: 640, Height: 360}) {
		t.Errorf("box rect = %+v", got)
	}
	if got := kids[1].Rect(); got != (graphics.Rect{X: 640, Width: 640, Height: 360}) {
		t.Errorf("button rect = %+v", got)
	}

	btn, ok := layout.Get[*widgets.Button](kids[1])
	if !ok {
		t.Fatal("button node has no Button")
	}
	btn.Click()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	label, _ := layout.Get[*widgets.Label](kids[1].Children()[0])
	if label == nil || label.Text != "Click" {
		t.Errorf("button label = %+v", label)
	}
	if len(rec.Errors) != 0 {
		t.Errorf("unexpected warnings: %v", rec.Errors)
	}
}

func TestCompile_BindingsInCreationOrder(t *testing.T) {
	c := render.New(render.Options{Viewport: hd})
	tree := c.Compile("", func(b *ui.Builder) {
		b.NestPanel(nil, func() {
			b.Text(nil, "a")
			b.NestBox(nil, "b", func() {
				b.Text(nil, "c")
			})
		})
		b.Text(nil, "d")
	}, nil)

	var got []string
	for _, bd := range tree.Bindings {
		got = append(got, bd.Desc.Kind.String()+":"+bd.Desc.Content)
		if bd.Desc.Widget() != bd.Node {
			t.Errorf("%s not bound to its node", bd.Desc.Content)
		}
		if found, ok := layout.Get[*render.Binding](bd.Node); !ok || found != bd {
			t.Errorf("%s node lacks its binding", bd.Desc.Content)
		}
	}
	want := []string{"Container:", "Panel:", "Text:a", "Box:b", "Text:c", "Text:d"}
	if len(got) != len(want) {
		t.Fatalf("bindings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bindings = %v, want %v", got, want)
		}
	}
	if tree.ID == "" {
		t.Error("tree has no ID")
	}
}

func TestCompile_ReadyAfterChildren(t *testing.T) {
	var order []string
	c := render.New(render.Options{Viewport: hd})
	c.Compile("", func(b *ui.Builder) {
		b.NestPanel(nil, func() {
			b.Text(nil, "child").Ready(func(*ui.Descriptor) { order = append(order, "child") })
		}).ReadyWidget(func(n *layout.Node) {
			order = append(order, "parent")
			if len(n.Children()) != 1 {
				t.Errorf("parent ready with %d children", len(n.Children()))
			}
		})
	}, nil)
	if len(order) != 2 || order[0] != "child" || order[1] != "parent" {
		t.Errorf("order = %v", order)
	}
}

func TestCompile_HookPanicRecovered(t *testing.T) {
	rec := record(t)
	c := render.New(render.Options{Viewport: hd})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Text(nil, "boom").Ready(func(*ui.Descriptor) { panic("bad hook") })
		b.Text(nil, "after")
	}, nil)
	if len(rec.Panics) != 1 {
		t.Errorf("panics = %d, want 1", len(rec.Panics))
	}
	if tree.FindContent("after") == nil {
		t.Error("render stopped after a panicking hook")
	}
}

func TestCompile_MissingSpriteWarnsOnce(t *testing.T) {
	rec := record(t)
	s := skin.DefaultSkin()
	s.Set(skin.KeyButton, skin.NewStyle())
	c := render.New(render.Options{Skin: s, Viewport: hd})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Button(nil, "one", nil)
		b.Button(nil, "two", nil)
	}, nil)
	for _, content := range []string{"one", "two"} {
		img, _ := layout.Get[*widgets.Image](tree.FindContent(content).Node)
		if img == nil || !img.IsMissing() {
			t.Errorf("%s image = %+v, want missing sprite", content, img)
		}
	}
	if rec.Count(errors.KindAsset) != 1 {
		t.Errorf("asset warnings = %d, want 1", rec.Count(errors.KindAsset))
	}
}

func TestCompile_InactiveControl(t *testing.T) {
	c := render.New(render.Options{Viewport: hd})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Button(nil, "off", nil)
		b.SetActive(false)
	}, nil)
	n := tree.FindContent("off").Node
	if !n.ActiveSelf() {
		t.Error("inactive controls stay visible")
	}
	btn, _ := layout.Get[*widgets.Button](n)
	if btn.Interactable || btn.Click() {
		t.Error("inactive button should not be interactable")
	}
	disabled := skin.DefaultColors().Disabled
	if btn.Target.Color != disabled {
		t.Errorf("image color = %v, want %v", btn.Target.Color, disabled)
	}
	label, _ := layout.Get[*widgets.Label](n.Children()[0])
	if label.Color != disabled {
		t.Errorf("text color = %v, want %v", label.Color, disabled)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name      string
		size      float64
		autoScale bool
		height    float64
		want      float64
	}{
		{"base height", 20, true, 720, 20},
		{"double height", 20, true, 1440, 40},
		{"no auto scale", 20, false, 1440, 20},
		{"unset", 0, true, 1440, 0},
	}
	c := render.New(render.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := skin.NewStyle()
			st.AutoScale = tt.autoScale
			d := &ui.Descriptor{FontSize: tt.size, Style: st}
			if got := c.FontSize(d, tt.height); !graphics.Approx(got, tt.want, 1e-9) {
				t.Errorf("FontSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_LabelFontScaled(t *testing.T) {
	c := render.New(render.Options{Viewport: graphics.Size{Width: 800, Height: 1440}})
	tree := c.Compile("", func(b *ui.Builder) {
		b.SetFontSize(20)
		b.Text(nil, "big")
	}, nil)
	label, _ := layout.Get[*widgets.Label](tree.FindContent("big").Node)
	if !graphics.Approx(label.FontSize, 40, 1e-9) {
		t.Errorf("FontSize = %v, want 40", label.FontSize)
	}
}

func TestCompile_PositionAndInsets(t *testing.T) {
	c := render.New(render.Options{Viewport: graphics.Size{Width: 200, Height: 100}})
	tree := c.Compile("", func(b *ui.Builder) {
		b.Panel(ui.At(0, 0, .5, 1)).WithOffsets(graphics.Insets{Left: 10, Top: 5, Right: 10, Bottom: 5})
	}, nil)
	got := tree.Root.Children()[0].Rect()
	if got != (graphics.Rect{X: 10, Y: 5, Width: 80, Height: 90}) {
		t.Errorf("rect = %+v", got)
	}
}

func TestRegistry_Custom(t *testing.T) {
	reg := render.DefaultRegistry()
	called := 0
	reg.Register(ui.KindPanel, func(ctx *render.Context) {
		called++
		ctx.Node.Name = "custom"
	})
	c := render.New(render.Options{Viewport: hd, Registry: reg})
	tree := c.Compile("", func(b *ui.Builder) { b.Panel(nil) }, nil)
	if called != 1 || tree.Root.Children()[0].Name != "custom" {
		t.Errorf("custom setup not used: called=%d", called)
	}
	if _, ok := render.DefaultRegistry().Lookup(ui.KindPanel); !ok {
		t.Error("default registry lost its panel setup")
	}
	reg.Register(ui.KindPanel, nil)
	if _, ok := reg.Lookup(ui.KindPanel); ok {
		t.Error("nil setup should unregister")
	}
}

func TestRender_UnderParent(t *testing.T) {
	root := layout.NewRoot("screen", hd)
	layer := root.NewChild("layer")
	c := render.New(render.Options{})
	tree := c.Compile("", func(b *ui.Builder) { b.Panel(ui.At(0, 0, .5, .5)) }, layer)
	if tree.Root.Parent() != layer {
		t.Fatal("tree not attached to parent")
	}
	if got := tree.Root.Children()[0].Rect(); !rectApprox(got, graphics.Rect{Width: 640, Height: 360}) {
		t.Errorf("rect = %+v", got)
	}
}
