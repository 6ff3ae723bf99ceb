package widgets

import (
	"unicode/utf8"

	"github.com/go-drift/ggui/pkg/layout"
)

// PasswordMask is the character drawn for each character of a password.
const PasswordMask = '*'

// TextEntry is an editable single-line text field.
type TextEntry struct {
	Selectable
	Text     string
	Password bool
	// CharacterLimit caps the text length in characters; zero is unlimited.
	CharacterLimit int

	// TextLabel draws the entered text.
	TextLabel *Label
	// Placeholder is the node shown while Text is empty.
	Placeholder *layout.Node

	OnChanged func(string)
	OnEndEdit func(string)

	focused bool
}

// SetText replaces the text and notifies OnChanged when it changed.
func (e *TextEntry) SetText(s string) {
	s = e.limit(s)
	changed := s != e.Text
	e.SetTextWithoutNotify(s)
	if changed && e.OnChanged != nil {
		e.OnChanged(e.Text)
	}
}

// SetTextWithoutNotify replaces the text and refreshes the labels only.
func (e *TextEntry) SetTextWithoutNotify(s string) {
	e.Text = e.limit(s)
	if e.TextLabel != nil {
		e.TextLabel.Text = e.Text
		e.TextLabel.Mask = 0
		if e.Password {
			e.TextLabel.Mask = PasswordMask
		}
	}
	if e.Placeholder != nil {
		e.Placeholder.SetActive(e.Text == "")
	}
}

func (e *TextEntry) limit(s string) string {
	if e.CharacterLimit <= 0 || utf8.RuneCountInString(s) <= e.CharacterLimit {
		return s
	}
	return string([]rune(s)[:e.CharacterLimit])
}

// Focused reports whether the entry receives typed text.
func (e *TextEntry) Focused() bool { return e.focused }

// Click focuses the entry.
func (e *TextEntry) Click() bool {
	if !e.Interactable {
		return false
	}
	e.focused = true
	return true
}

// Blur drops focus without firing OnEndEdit.
func (e *TextEntry) Blur() { e.focused = false }

// Type appends text to a focused entry.
func (e *TextEntry) Type(s string) {
	if !e.focused || !e.Interactable || s == "" {
		return
	}
	e.SetText(e.Text + s)
}

// Backspace removes the last character of a focused entry.
func (e *TextEntry) Backspace() {
	if !e.focused || e.Text == "" {
		return
	}
	r := []rune(e.Text)
	e.SetText(string(r[:len(r)-1]))
}

// EndEdit drops focus and fires OnEndEdit with the final text.
func (e *TextEntry) EndEdit() {
	if !e.focused {
		return
	}
	e.focused = false
	if e.OnEndEdit != nil {
		e.OnEndEdit(e.Text)
	}
}
