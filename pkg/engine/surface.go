package engine

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/layout"
)

// EventKind identifies an input event.
type EventKind int

const (
	EventNone EventKind = iota
	// EventPointer moves the pointer to Event.Pointer.
	EventPointer
	// EventPress pushes the primary button at Event.Pointer.
	EventPress
	// EventRelease releases the primary button at Event.Pointer.
	EventRelease
	// EventScroll scrolls by Event.Scroll units at Event.Pointer.
	EventScroll
	// EventKey carries typed text or a Key.
	EventKey
	// EventResize reports a new surface size in Event.Size.
	EventResize
	// EventQuit asks the loop to stop.
	EventQuit
)

var eventKindNames = [...]string{"none", "pointer", "press", "release", "scroll", "key", "resize", "quit"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Key is a non-text key.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
)

// Event is one input event from a Surface.
type Event struct {
	Kind    EventKind
	Pointer graphics.Offset
	Scroll  float64
	Text    string
	Key     Key
	Size    graphics.Size
}

// Surface draws node trees and produces input.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() graphics.Size
	// Present draws the tree rooted at root.
	Present(root *layout.Node) error
	// PollEvent blocks until the next event. It returns false once the
	// surface is closed.
	PollEvent() (Event, bool)
	// Close releases the surface and unblocks PollEvent.
	Close() error
}
