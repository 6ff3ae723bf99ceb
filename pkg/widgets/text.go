package widgets

import (
	"strings"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
)

// Label prints a line or block of text inside its node.
type Label struct {
	Text      string
	Font      skin.Font
	FontSize  float64
	Color     graphics.Color
	Alignment graphics.Anchor
	Overflow  skin.Overflow
	// AutoSize shrinks the text until it fits.
	AutoSize bool
	// Mask replaces every character when non-zero, for password fields.
	Mask rune
}

// Display returns the text as it should be drawn.
func (l *Label) Display() string {
	if l.Mask == 0 || l.Text == "" {
		return l.Text
	}
	return strings.Repeat(string(l.Mask), len([]rune(l.Text)))
}
