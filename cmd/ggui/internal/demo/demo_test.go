package demo

import (
	"testing"

	"github.com/go-drift/ggui/pkg/errors"
	uitest "github.com/go-drift/ggui/pkg/testing"
	"github.com/go-drift/ggui/pkg/ui"
)

func newDemo(t *testing.T) (*Demo, *uitest.Tester) {
	t.Helper()
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	tester := uitest.NewTesterWithT(t)
	d := New(tester.Engine().Pages())
	tester.Pump(d.Controls)
	return d, tester
}

func TestControls_Declares(t *testing.T) {
	_, tester := newDemo(t)
	tests := []struct {
		kind ui.Kind
		want int
	}{
		{ui.KindBox, 5},
		{ui.KindButton, 5},
		{ui.KindToggle, 3},
		{ui.KindTextField, 2},
		{ui.KindPasswordField, 1},
		{ui.KindSlider, 3},
		{ui.KindSprite, 1},
	}
	for _, tt := range tests {
		if got := tester.Find(uitest.ByKind(tt.kind)).Count(); got != tt.want {
			t.Errorf("%s count = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestControls_ClickLogs(t *testing.T) {
	d, tester := newDemo(t)
	tester.Tap(uitest.ByContent("Button 1"))
	tester.Tap(uitest.ByContent("Button 2"))

	msgs := d.Messages()
	if len(msgs) != 1 || msgs[0] != "Button 1 clicked" {
		t.Errorf("messages = %q, want only the enabled button", msgs)
	}
	if !tester.Find(uitest.ByText("Button 1 clicked")).Exists() {
		t.Error("status text not updated by the live hook")
	}
}

func TestControls_Toggle(t *testing.T) {
	d, tester := newDemo(t)
	tester.Tap(uitest.ByContent("Toggle 1"))
	tester.Tap(uitest.ByContent("Toggle 2"))
	if msgs := d.Messages(); len(msgs) != 1 || msgs[0] != "Toggle 1 set to false" {
		t.Errorf("messages = %q", msgs)
	}
}

func TestListPage_PushAndBack(t *testing.T) {
	d, tester := newDemo(t)
	if err := tester.Tap(uitest.ByContent("List")); err != nil {
		t.Fatal(err)
	}
	pages := tester.Engine().Pages()
	if pages.Depth() != 1 || pages.Name() != "list" {
		t.Fatalf("after List: depth %d name %q", pages.Depth(), pages.Name())
	}
	if got := tester.Find(uitest.ByKind(ui.KindButton)).Count(); got != ListRows+1 {
		t.Errorf("list page buttons = %d, want %d", got, ListRows+1)
	}
	tester.Tap(uitest.ByContent("Row 0"))
	if msgs := d.Messages(); len(msgs) == 0 || msgs[len(msgs)-1] != "Row 0 clicked" {
		t.Errorf("messages = %q", msgs)
	}

	tester.Tap(uitest.ByContent("Back"))
	if pages.Depth() != 0 || !tester.Find(uitest.ByContent("Button 1")).Exists() {
		t.Error("Back should return to the controls page")
	}
}

func TestLogf_KeepsRecent(t *testing.T) {
	d := New(nil)
	for i := range maxMessages + 2 {
		d.Logf("m%d", i)
	}
	msgs := d.Messages()
	if len(msgs) != maxMessages || msgs[0] != "m2" {
		t.Errorf("messages = %q", msgs)
	}
}
