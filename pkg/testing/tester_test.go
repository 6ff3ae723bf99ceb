package testing

import (
	"testing"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/ui"
)

func TestTester_TapButton(t *testing.T) {
	tester := NewTesterWithT(t)
	count := 0
	tester.Pump(func(b *ui.Builder) {
		b.Button(ui.At(0, 0, .5, .1), "Increment", func() { count++ })
	})

	if err := tester.Tap(ByContent("Increment")); err != nil {
		t.Fatal(err)
	}
	if err := tester.Tap(ByText("Increment")); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestTester_TapMissing(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) {})
	if err := tester.Tap(ByText("nope")); err == nil {
		t.Error("expected error for a finder without matches")
	}
}

func TestTester_Toggle(t *testing.T) {
	tester := NewTesterWithT(t)
	var got []bool
	tester.Pump(func(b *ui.Builder) {
		b.Toggle(ui.At(0, 0, .5, .1), "Sound", false, func(v bool) { got = append(got, v) })
	})
	tester.Tap(ByKind(ui.KindToggle))
	tester.Tap(ByKind(ui.KindToggle))

	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("changes = %v, want [true false]", got)
	}
	if tester.Find(ByName("Checkmark")).Exists() {
		t.Error("checkmark shown while the toggle is off")
	}
	tester.Tap(ByKind(ui.KindToggle))
	if !tester.Find(ByName("Checkmark")).Exists() {
		t.Error("checkmark hidden while the toggle is on")
	}
}

func TestTester_EnterText(t *testing.T) {
	tester := NewTesterWithT(t)
	var changed, ended string
	tester.Pump(func(b *ui.Builder) {
		b.TextField(ui.At(0, 0, 1, .1), "Name", "", "type here",
			func(s string) { changed = s },
			func(s string) { ended = s })
	})

	if err := tester.EnterText(ByKind(ui.KindTextField), "bob"); err != nil {
		t.Fatal(err)
	}
	if changed != "bob" {
		t.Errorf("changed = %q", changed)
	}
	if !tester.Controller().Focused() {
		t.Fatal("field should keep focus while editing")
	}
	tester.Submit()
	if ended != "bob" {
		t.Errorf("ended = %q", ended)
	}
	if tester.Controller().Focused() {
		t.Error("field still focused after submit")
	}
}

func TestTester_DragSlider(t *testing.T) {
	tester := NewTesterWithT(t)
	var got float64
	tester.Pump(func(b *ui.Builder) {
		b.Slider(ui.At(0, .5, 1, .1), "", 5, 0, 10, func(v float64) { got = v })
	})
	if err := tester.Drag(ByKind(ui.KindSlider), graphics.Offset{X: 200}); err != nil {
		t.Fatal(err)
	}
	if got != 7.5 {
		t.Errorf("value = %v, want 7.5", got)
	}
}

func TestTester_Pages(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) { b.Text(nil, "first") })
	tester.PushPage("second", func(b *ui.Builder) { b.Text(nil, "second") })

	if tester.Find(ByText("first")).Exists() {
		t.Error("hidden page should not be found")
	}
	if !tester.Find(ByText("second")).Exists() {
		t.Error("shown page not found")
	}
	if !tester.PopPage() {
		t.Fatal("PopPage failed")
	}
	if !tester.Find(ByText("first")).Exists() || tester.Find(ByText("second")).Exists() {
		t.Error("pop should show the first page only")
	}
}

func TestTester_Tooltip(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) {
		b.Button(ui.At(0, 0, .5, .1), "help", nil).WithTooltip(func(b *ui.Builder) graphics.Rect {
			b.Text(nil, "tip")
			return graphics.Rect{X: .01, Y: .01, Width: .2, Height: .05}
		})
	})
	if err := tester.Hover(ByContent("help")); err != nil {
		t.Fatal(err)
	}
	if tester.Controller().Tooltip() == nil {
		t.Fatal("tooltip not shown")
	}
	if !tester.Find(ByText("tip")).Exists() {
		t.Error("tooltip text not found on screen")
	}
	tester.HoverAt(graphics.Offset{X: 700, Y: 500})
	if tester.Find(ByText("tip")).Exists() {
		t.Error("tooltip should close when hover leaves")
	}
}

func TestTester_SetSize(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump(func(b *ui.Builder) { b.Panel(ui.At(0, 0, .5, .5)) })
	tester.SetSize(graphics.Size{Width: 200, Height: 100})

	panel := tester.Find(ByKind(ui.KindPanel)).First()
	if got := panel.Rect(); got != (graphics.Rect{Width: 100, Height: 50}) {
		t.Errorf("panel rect = %+v", got)
	}
	if b := tester.Surface().Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("frame bounds = %v", b)
	}
}
