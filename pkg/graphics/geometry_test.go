package graphics

import "testing"

func TestRectRegion(t *testing.T) {
	r := Rect{X: 100, Y: 50, Width: 200, Height: 100}
	tests := []struct {
		name string
		got  Rect
		want Rect
	}{
		{"top-left 30x20", r.Region(AnchorTopLeft, .3, .2), Rect{X: 100, Y: 50, Width: 60, Height: 20}},
		{"bottom-right half", r.Region(AnchorBottomRight, .5, .5), Rect{X: 200, Y: 100, Width: 100, Height: 50}},
		{"middle-center", r.Region(AnchorMiddleCenter, .5, .5), Rect{X: 150, Y: 75, Width: 100, Height: 50}},
		{"top", r.Top(.1), Rect{X: 100, Y: 50, Width: 200, Height: 10}},
		{"right", r.Right(.25), Rect{X: 250, Y: 50, Width: 50, Height: 100}},
		{"center band", r.CenterBand(.5), Rect{X: 150, Y: 50, Width: 100, Height: 100}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRectPadTrimInset(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if got := r.Pad(2, 3); got != (Rect{X: 8, Y: 7, Width: 24, Height: 26}) {
		t.Errorf("Pad = %+v", got)
	}
	if got := r.Trim(2, 3); got != (Rect{X: 12, Y: 13, Width: 16, Height: 14}) {
		t.Errorf("Trim = %+v", got)
	}
	if got := r.Inset(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}); got != (Rect{X: 11, Y: 12, Width: 16, Height: 14}) {
		t.Errorf("Inset = %+v", got)
	}
}

func TestRectUnionIntersectContains(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if got := a.Union(b); got != (Rect{X: 0, Y: 0, Width: 15, Height: 15}) {
		t.Errorf("Union = %+v", got)
	}
	if got := a.Intersect(b); got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := a.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}); got != ZeroRect {
		t.Errorf("disjoint Intersect = %+v", got)
	}
	if !a.Contains(Offset{X: 10, Y: 10}) || a.Contains(Offset{X: 10.5, Y: 0}) {
		t.Error("Contains edge handling is wrong")
	}
}

func TestLerpHelpers(t *testing.T) {
	if got := LerpOffset(Offset{}, Offset{X: 10, Y: -10}, .5); got != (Offset{X: 5, Y: -5}) {
		t.Errorf("LerpOffset = %+v", got)
	}
	got := LerpRect(ZeroRect, UnitRect, .25)
	if got != (Rect{Width: .25, Height: .25}) {
		t.Errorf("LerpRect = %+v", got)
	}
}

func TestColorHelpers(t *testing.T) {
	if got := ColorWhite.Multiply(RGBA8(0x80, 0x40, 0xFF, 0xFF)); got != RGBA8(0x80, 0x40, 0xFF, 0xFF) {
		t.Errorf("Multiply by white = %v", got)
	}
	if got := ColorRed.Multiply(ColorBlue); got != ColorBlack {
		t.Errorf("red*blue = %v, want black", got)
	}
	if got := Lerp(ColorBlack, ColorWhite, .5); got != RGB(0x80, 0x80, 0x80) {
		t.Errorf("Lerp = %v", got)
	}
	if got := ColorWhite.WithAlpha(.55).Alpha(); !Approx(got, .55, 0.01) {
		t.Errorf("alpha = %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"#80FFFFFF", Color(0x80FFFFFF), false},
		{"white", ColorWhite, false},
		{"Clear", ColorTransparent, false},
		{"#12345", 0, true},
		{"nope", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var c Color
	if err := c.UnmarshalText([]byte("#FF00FF00")); err != nil || c != ColorGreen {
		t.Errorf("UnmarshalText = %v, %v", c, err)
	}
}
