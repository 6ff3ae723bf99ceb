// Package widgets provides the components a compiled tree is made of.
//
// Widgets are plain configuration records attached to layout nodes: an
// Image to draw, a Label to print, a Button to click. They carry no drawing
// code. A backend reads them off the node tree to draw a frame, and the
// interaction controller calls their methods to deliver input.
//
// # Components
//
//	Image      sprite, tint and draw mode
//	Label      text, font and alignment
//	Button     click target with state tints
//	Toggle     on/off value with a check graphic
//	Slider     clamped value with fill and handle nodes
//	TextEntry  editable text with placeholder and password masking
//	ScrollRect clipped content with a scroll position
//	Scrollbar  handle sized to the visible fraction
//
// Interactive components embed Selectable, which tracks hover, press and
// the interactable flag and resolves the tint for the current state.
package widgets
