package widgets_test

import (
	"testing"

	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

func newEntry(password bool) (*widgets.TextEntry, *layout.Node) {
	placeholder := layout.New("placeholder")
	e := &widgets.TextEntry{
		Selectable:  widgets.NewSelectable(*skin.DefaultColors(), nil),
		Password:    password,
		TextLabel:   &widgets.Label{},
		Placeholder: placeholder,
	}
	e.SetTextWithoutNotify("")
	return e, placeholder
}

func TestTextEntry_TypeRequiresFocus(t *testing.T) {
	e, placeholder := newEntry(false)
	var changes []string
	e.OnChanged = func(s string) { changes = append(changes, s) }

	e.Type("ignored")
	if e.Text != "" {
		t.Fatalf("unfocused entry accepted text %q", e.Text)
	}
	e.Click()
	e.Type("ab")
	e.Type("c")
	e.Backspace()
	if e.Text != "ab" || len(changes) != 3 {
		t.Errorf("text = %q changes = %v", e.Text, changes)
	}
	if placeholder.ActiveSelf() {
		t.Error("placeholder should hide while text is present")
	}
}

func TestTextEntry_EndEdit(t *testing.T) {
	e, _ := newEntry(false)
	var ended []string
	e.OnEndEdit = func(s string) { ended = append(ended, s) }

	e.EndEdit()
	if len(ended) != 0 {
		t.Error("EndEdit without focus should not fire")
	}
	e.Click()
	e.Type("done")
	e.EndEdit()
	if len(ended) != 1 || ended[0] != "done" || e.Focused() {
		t.Errorf("ended = %v focused = %v", ended, e.Focused())
	}
}

func TestTextEntry_PasswordMask(t *testing.T) {
	e, _ := newEntry(true)
	e.SetText("héllo")
	if got := e.TextLabel.Display(); got != "*****" {
		t.Errorf("Display = %q", got)
	}
	if e.Text != "héllo" {
		t.Errorf("Text = %q", e.Text)
	}
}

func TestTextEntry_CharacterLimit(t *testing.T) {
	e, _ := newEntry(false)
	e.CharacterLimit = 3
	e.SetText("abcdef")
	if e.Text != "abc" {
		t.Errorf("Text = %q", e.Text)
	}
}
