package widgets

// Button invokes OnClick when clicked while interactable.
type Button struct {
	Selectable
	OnClick func()
}

// Click fires OnClick.
func (b *Button) Click() bool {
	if !b.Interactable {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
