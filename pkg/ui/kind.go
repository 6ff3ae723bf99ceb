package ui

import "github.com/go-drift/ggui/pkg/skin"

// Kind is the closed set of control kinds a descriptor can have.
type Kind int

const (
	// KindContainer is a plain node with no visuals: the root, or a
	// container declared with Container.
	KindContainer Kind = iota
	KindPanel
	KindText
	KindBox
	KindButton
	KindToggle
	KindSlider
	KindTextField
	KindPasswordField
	KindSprite
	KindScroll

	kindCount
)

var kindNames = [kindCount]string{
	"Container", "Panel", "Text", "Box", "Button", "Toggle",
	"Slider", "TextField", "PasswordField", "Sprite", "Scroll",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// StyleKey returns the skin key the kind's style is looked up under.
// Containers use the skin default.
func (k Kind) StyleKey() string {
	switch k {
	case KindPanel:
		return skin.KeyPanel
	case KindText:
		return skin.KeyText
	case KindBox:
		return skin.KeyBox
	case KindButton:
		return skin.KeyButton
	case KindToggle:
		return skin.KeyToggle
	case KindSlider:
		return skin.KeySlider
	case KindTextField, KindPasswordField:
		return skin.KeyInputField
	case KindSprite:
		return skin.KeySprite
	case KindScroll:
		return skin.KeyScroll
	default:
		return ""
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
