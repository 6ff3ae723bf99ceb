package testing

import (
	"fmt"

	"github.com/go-drift/ggui/pkg/engine"
	"github.com/go-drift/ggui/pkg/graphics"
)

// center returns the center of the first node matched by finder.
func (t *Tester) center(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no nodes: %s", op, finder.Description())
	}
	return result.First().Rect().Center(), nil
}

// Tap simulates a press and release at the center of the first node
// matched by finder.
func (t *Tester) Tap(finder Finder) error {
	p, err := t.center("Tap", finder)
	if err != nil {
		return err
	}
	t.TapAt(p)
	return nil
}

// TapAt simulates a press and release at pos, one frame each.
func (t *Tester) TapAt(pos graphics.Offset) {
	t.Send(engine.Event{Kind: engine.EventPress, Pointer: pos})
	t.Send(engine.Event{Kind: engine.EventRelease, Pointer: pos})
}

// HoverAt moves the pointer to pos and steps one frame.
func (t *Tester) HoverAt(pos graphics.Offset) {
	t.Send(engine.Event{Kind: engine.EventPointer, Pointer: pos})
}

// Hover moves the pointer to the center of the first node matched by
// finder.
func (t *Tester) Hover(finder Finder) error {
	p, err := t.center("Hover", finder)
	if err != nil {
		return err
	}
	t.HoverAt(p)
	return nil
}

// Drag simulates a drag gesture from the center of the first node matched
// by finder.
func (t *Tester) Drag(finder Finder, delta graphics.Offset) error {
	p, err := t.center("Drag", finder)
	if err != nil {
		return err
	}
	t.DragFrom(p, delta)
	return nil
}

// DragFrom simulates a drag from start by delta: a press, a move to the
// end point and a release, one frame each.
func (t *Tester) DragFrom(start, delta graphics.Offset) {
	end := start.Add(delta)
	t.Send(engine.Event{Kind: engine.EventPress, Pointer: start})
	t.Send(engine.Event{Kind: engine.EventPointer, Pointer: end})
	t.Send(engine.Event{Kind: engine.EventRelease, Pointer: end})
}

// ScrollAt sends a scroll of delta units with the pointer at pos.
func (t *Tester) ScrollAt(pos graphics.Offset, delta float64) {
	t.Send(engine.Event{Kind: engine.EventScroll, Pointer: pos, Scroll: delta})
}

// EnterText taps the first node matched by finder and types text into it.
func (t *Tester) EnterText(finder Finder, text string) error {
	if err := t.Tap(finder); err != nil {
		return err
	}
	t.Send(engine.Event{Kind: engine.EventKey, Text: text})
	return nil
}

// Submit ends editing of the focused text field.
func (t *Tester) Submit() {
	t.Send(engine.Event{Kind: engine.EventKey, Key: engine.KeyEnter})
}
