package widgets_test

import (
	"testing"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

func TestLabel_Display(t *testing.T) {
	l := &widgets.Label{Text: "abc"}
	if l.Display() != "abc" {
		t.Errorf("Display = %q", l.Display())
	}
	l.Mask = '#'
	if l.Display() != "###" {
		t.Errorf("masked Display = %q", l.Display())
	}
}

func TestImageFrom(t *testing.T) {
	st := skin.DefaultSkin().Style(skin.KeyToggle)
	img := widgets.ImageFrom(st, skin.MissingSprite, graphics.ColorRed)
	if !img.IsMissing() || img.Type != skin.ImageSimple || !img.PreserveAspect || img.Color != graphics.ColorRed {
		t.Errorf("image = %+v", img)
	}
}
