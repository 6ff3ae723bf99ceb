package ui

import (
	"math"

	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
	"github.com/go-drift/ggui/pkg/skin"
	"github.com/go-drift/ggui/pkg/widgets"
)

// BarState is the displayed state of a Bar. A drop leaves a negative Delta,
// drawn past the fill as the image's trailing segment.
type BarState struct {
	// Fill is the latest value reported by the fill function.
	Fill float64
	// Delta is the recent change still shown as a trailing segment. It
	// decays toward zero every tick.
	Delta float64
}

// Bar declares a filled sprite whose fill follows fill() every tick.
//
// When damping is in (0, 1], the change between ticks is kept in Delta
// and decays by that fraction per tick; a damping of zero disables the
// trailing segment. The returned state is updated in place.
func (b *Builder) Bar(pos *graphics.Rect, sprite skin.Sprite, fill func() float64, damping float64) (*Descriptor, *BarState) {
	state := &BarState{Fill: clamp01(fill())}
	d := b.Sprite(pos, sprite)
	d.ReadyWidget(func(n *layout.Node) {
		if img, ok := layout.Get[*widgets.Image](n); ok {
			img.Type = skin.ImageFilled
			img.FillAmount = state.Fill
		}
	})
	d.Live(func(n *layout.Node) {
		next := clamp01(fill())
		if damping > 0 {
			state.Delta -= state.Fill - next
			state.Delta *= 1 - math.Min(1, damping)
		}
		state.Fill = next
		if img, ok := layout.Get[*widgets.Image](n); ok {
			img.FillAmount = state.Fill
			img.TrailAmount = -state.Delta
		}
	})
	return d, state
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
