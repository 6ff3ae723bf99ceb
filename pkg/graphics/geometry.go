package graphics

import (
	"fmt"
	"math"
)

// Offset is a 2D point or displacement. Y grows downward.
type Offset struct {
	X float64
	Y float64
}

// Add returns o + p.
func (o Offset) Add(p Offset) Offset { return Offset{X: o.X + p.X, Y: o.Y + p.Y} }

// Sub returns o - p.
func (o Offset) Sub(p Offset) Offset { return Offset{X: o.X - p.X, Y: o.Y - p.Y} }

// Size is a width and height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Normalized rectangles use the parent's area as the unit square.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var (
	// UnitRect is the whole parent area in normalized coordinates.
	UnitRect = Rect{X: 0, Y: 0, Width: 1, Height: 1}
	// ZeroRect is the empty rectangle at the origin.
	ZeroRect = Rect{}
)

// RectFromEdges builds a Rect from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// FromCenter returns a w×h Rect centered on c.
func FromCenter(c Offset, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// XMax returns the right edge.
func (r Rect) XMax() float64 { return r.X + r.Width }

// YMax returns the bottom edge.
func (r Rect) YMax() float64 { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Offset { return Offset{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Offset { return Offset{X: r.XMax(), Y: r.YMax()} }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the center point.
func (r Rect) Center() Offset { return r.Point(.5, .5) }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.X <= r.XMax() && p.Y >= r.Y && p.Y <= r.YMax()
}

// Point returns the point at fractions (fx, fy) of the rectangle.
func (r Rect) Point(fx, fy float64) Offset {
	return Offset{X: r.X + r.Width*fx, Y: r.Y + r.Height*fy}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFromEdges(
		math.Min(r.X, o.X), math.Min(r.Y, o.Y),
		math.Max(r.XMax(), o.XMax()), math.Max(r.YMax(), o.YMax()),
	)
}

// Intersect returns the overlap of r and o, or ZeroRect.
func (r Rect) Intersect(o Rect) Rect {
	left, top := math.Max(r.X, o.X), math.Max(r.Y, o.Y)
	right, bottom := math.Min(r.XMax(), o.XMax()), math.Min(r.YMax(), o.YMax())
	if right <= left || bottom <= top {
		return ZeroRect
	}
	return RectFromEdges(left, top, right, bottom)
}

// Shift translates the rectangle by (dx, dy).
func (r Rect) Shift(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Move translates the rectangle by multiples of its own size.
func (r Rect) Move(fx, fy float64) Rect {
	return r.Shift(fx*r.Width, fy*r.Height)
}

// Scaled multiplies every component by (sx, sy).
func (r Rect) Scaled(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// Pad grows the rectangle by x on the left and right, y on top and bottom.
func (r Rect) Pad(x, y float64) Rect {
	return Rect{X: r.X - x, Y: r.Y - y, Width: r.Width + 2*x, Height: r.Height + 2*y}
}

// Trim shrinks the rectangle by x on the left and right, y on top and bottom.
func (r Rect) Trim(x, y float64) Rect { return r.Pad(-x, -y) }

// Inset applies pixel insets; positive values move edges inward.
func (r Rect) Inset(in Insets) Rect {
	return RectFromEdges(r.X+in.Left, r.Y+in.Top, r.XMax()-in.Right, r.YMax()-in.Bottom)
}

// LerpRect interpolates every component of a toward b by t.
func LerpRect(a, b Rect, t float64) Rect {
	l := func(x, y float64) float64 { return x + (y-x)*t }
	return Rect{X: l(a.X, b.X), Y: l(a.Y, b.Y), Width: l(a.Width, b.Width), Height: l(a.Height, b.Height)}
}

// LerpOffset interpolates a toward b by t.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Anchor names one of nine reference points of a rectangle.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Fractions returns the anchor's position as fractions of width and height.
func (a Anchor) Fractions() (fx, fy float64) {
	col, row := int(a)%3, int(a)/3
	return float64(col) / 2, float64(row) / 2
}

// Region returns the sub-rectangle of size (w×Width, h×Height) pinned to
// anchor a, e.g. r.Region(AnchorTopLeft, .3, .2) is the top-left 30%×20%.
func (r Rect) Region(a Anchor, w, h float64) Rect {
	fx, fy := a.Fractions()
	rw, rh := r.Width*w, r.Height*h
	return Rect{
		X:      r.X + (r.Width-rw)*fx,
		Y:      r.Y + (r.Height-rh)*fy,
		Width:  rw,
		Height: rh,
	}
}

// Top returns the top fraction p of the rectangle.
func (r Rect) Top(p float64) Rect { return r.Region(AnchorTopLeft, 1, p) }

// Middle returns the vertically centered band of fraction p.
func (r Rect) Middle(p float64) Rect { return r.Region(AnchorMiddleLeft, 1, p) }

// Bottom returns the bottom fraction p of the rectangle.
func (r Rect) Bottom(p float64) Rect { return r.Region(AnchorBottomLeft, 1, p) }

// Left returns the left fraction p of the rectangle.
func (r Rect) Left(p float64) Rect { return r.Region(AnchorTopLeft, p, 1) }

// CenterBand returns the horizontally centered band of fraction p.
func (r Rect) CenterBand(p float64) Rect { return r.Region(AnchorTopCenter, p, 1) }

// Right returns the right fraction p of the rectangle.
func (r Rect) Right(p float64) Rect { return r.Region(AnchorTopRight, p, 1) }

// Insets are pixel distances from each edge of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets returns v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Approx reports whether a and b differ by at most eps.
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var anchorNames = [...]string{
	"top-left", "top-center", "top-right",
	"middle-left", "middle-center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return "unknown"
	}
	return anchorNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "center" is accepted
// as an alias for middle-center.
func (a *Anchor) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "center" {
		*a = AnchorMiddleCenter
		return nil
	}
	for i, name := range anchorNames {
		if name == s {
			*a = Anchor(i)
			return nil
		}
	}
	return fmt.Errorf("unknown anchor %q", s)
}
