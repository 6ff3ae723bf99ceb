package widgets

import "github.com/go-drift/ggui/pkg/layout"

// Toggle is an on/off switch. Check is shown while Value is true.
type Toggle struct {
	Selectable
	Value bool
	// Check is the node of the check graphic.
	Check *layout.Node
	// OnChanged is called after Value changes through SetValue or Click.
	OnChanged func(bool)
}

// SetValue updates the value and notifies OnChanged when it changed.
func (t *Toggle) SetValue(v bool) {
	changed := t.Value != v
	t.SetValueWithoutNotify(v)
	if changed && t.OnChanged != nil {
		t.OnChanged(v)
	}
}

// SetValueWithoutNotify updates the value and the check graphic only.
func (t *Toggle) SetValueWithoutNotify(v bool) {
	t.Value = v
	if t.Check != nil {
		t.Check.SetActive(v)
	}
}

// Click flips the value.
func (t *Toggle) Click() bool {
	if !t.Interactable {
		return false
	}
	t.SetValue(!t.Value)
	return true
}
