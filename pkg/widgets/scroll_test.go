package widgets_test

import (
	"testing"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/widgets"
)

func TestHandleSize(t *testing.T) {
	tests := []struct {
		viewport, content, want float64
	}{
		{200, 640, 200.0 / 640},
		{200, 100, 1},
		{200, 0, 1},
		{0, 100, 0},
	}
	for _, tt := range tests {
		got := widgets.HandleSize(tt.viewport, tt.content)
		if !graphics.Approx(got, tt.want, 1e-9) {
			t.Errorf("HandleSize(%v, %v) = %v, want %v", tt.viewport, tt.content, got, tt.want)
		}
		if got <= 0 || got > 1 {
			t.Errorf("HandleSize(%v, %v) = %v outside (0, 1]", tt.viewport, tt.content, got)
		}
	}
}

func TestScrollRect_PositionShiftsContent(t *testing.T) {
	root := layout.NewRoot("root", graphics.Size{Width: 100, Height: 200})
	content := root.NewChild("content")
	handle := layout.New("handle")
	s := &widgets.ScrollRect{
		Content:     content,
		Scrollbar:   &widgets.Scrollbar{Handle: handle},
		Sensitivity: 10,
	}
	s.SetExtents(640, 200)

	if !graphics.Approx(s.Scrollbar.Size, 200.0/640, 1e-9) {
		t.Errorf("handle size = %v", s.Scrollbar.Size)
	}
	s.SetPosition(1)
	if content.Shift().Y != -440 {
		t.Errorf("shift = %v, want -440", content.Shift().Y)
	}
	if !graphics.Approx(handle.AnchorMin.Y, 1-200.0/640, 1e-9) {
		t.Errorf("handle start = %v", handle.AnchorMin.Y)
	}

	s.SetPosition(0)
	s.ScrollBy(22)
	if !graphics.Approx(content.Shift().Y, -220, 1e-9) {
		t.Errorf("shift after ScrollBy = %v", content.Shift().Y)
	}
}

func TestScrollRect_NoOverflow(t *testing.T) {
	content := layout.New("content")
	s := &widgets.ScrollRect{Axis: widgets.Horizontal, Content: content}
	s.SetExtents(50, 100)
	s.SetPosition(1)
	if s.Position != 0 || content.Shift() != (graphics.Offset{}) {
		t.Errorf("position = %v shift = %v", s.Position, content.Shift())
	}
	if s.ScrollBy(5) {
		t.Error("ScrollBy should report no movement")
	}
}
