// Package backend turns rendered node trees into draw calls.
//
// A Canvas is the drawing side of a surface. Draw walks a node tree in
// draw order and hands every visible Image and Label to the canvas, along
// with the clip rectangle left by scroll viewports. The text helpers here
// are shared by the cell-based terminal canvas and the pixel canvas.
package backend

import (
	"strings"
	"unicode/utf8"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// MissingColor is drawn in place of sprites that were missing from the
// style.
var MissingColor = graphics.RGB(0xFF, 0x00, 0xFF)

// Canvas receives draw calls for one frame.
type Canvas interface {
	// SetClip restricts subsequent drawing to r.
	SetClip(r graphics.Rect)
	DrawImage(r graphics.Rect, img *widgets.Image)
	DrawText(r graphics.Rect, l *widgets.Label)
}

// Draw paints every visible image and label under root onto c, back to
// front.
func Draw(root *layout.Node, c Canvas) {
	layout.Paint(root, func(ctx layout.PaintContext) {
		if ctx.Rect.Intersect(ctx.Clip).IsEmpty() {
			return
		}
		c.SetClip(ctx.Clip)
		for _, comp := range ctx.Node.Components() {
			switch w := comp.(type) {
			case *widgets.Image:
				c.DrawImage(ImageRect(ctx.Rect, w), w)
				if r, ok := TrailRect(ctx.Rect, w); ok {
					trail := *w
					trail.Color = w.Color.WithAlpha(w.Color.Alpha() * TrailAlpha)
					c.DrawImage(r, &trail)
				}
			case *widgets.Label:
				c.DrawText(ctx.Rect, w)
			}
		}
	})
}

// ImageRect returns the part of r covered by img: all of it, or the left
// FillAmount fraction of it for filled images.
func ImageRect(r graphics.Rect, img *widgets.Image) graphics.Rect {
	if img.Type != skin.ImageFilled {
		return r
	}
	f := max(0, min(1, img.FillAmount))
	return graphics.Rect{X: r.X, Y: r.Y, Width: r.Width * f, Height: r.Height}
}

// TrailAlpha scales the tint alpha of trailing segments.
const TrailAlpha = .5

// TrailRect returns the part of r covered by the trailing segment of a
// filled image. ok is false when there is nothing to draw.
func TrailRect(r graphics.Rect, img *widgets.Image) (graphics.Rect, bool) {
	if img.Type != skin.ImageFilled || img.TrailAmount == 0 {
		return graphics.Rect{}, false
	}
	f := max(0, min(1, img.FillAmount))
	t := max(0, min(1, f+img.TrailAmount))
	lo, hi := min(f, t), max(f, t)
	if hi <= lo {
		return graphics.Rect{}, false
	}
	return graphics.Rect{X: r.X + r.Width*lo, Y: r.Y, Width: r.Width * (hi - lo), Height: r.Height}, true
}

// ImageColor is the flat color an image is drawn with when the backend has
// no pixels for its sprite.
func ImageColor(img *widgets.Image) graphics.Color {
	if img.IsMissing() {
		return MissingColor
	}
	return img.Color
}

// Ellipsis ends text shortened by skin.OverflowEllipsis.
const Ellipsis = "…"

// Fit shortens text to at most width units as measured by measure,
// following overflow. Visible overflow returns text unchanged.
func Fit(text string, width float64, overflow skin.Overflow, measure func(string) float64) string {
	if overflow == skin.OverflowVisible || measure(text) <= width {
		return text
	}
	runes := []rune(text)
	if overflow == skin.OverflowEllipsis {
		for n := len(runes) - 1; n > 0; n-- {
			s := string(runes[:n]) + Ellipsis
			if measure(s) <= width {
				return s
			}
		}
		if measure(Ellipsis) <= width {
			return Ellipsis
		}
		return ""
	}
	for n := len(runes) - 1; n >= 0; n-- {
		if s := string(runes[:n]); measure(s) <= width {
			return s
		}
	}
	return ""
}

// RuneWidth measures text as one unit per character.
func RuneWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

// Lines splits text into lines.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Align returns the top-left corner of a w by h block placed inside r at
// anchor a.
func Align(r graphics.Rect, w, h float64, a graphics.Anchor) graphics.Offset {
	fx, fy := a.Fractions()
	return graphics.Offset{
		X: r.X + (r.Width-w)*fx,
		Y: r.Y + (r.Height-h)*fy,
	}
}
