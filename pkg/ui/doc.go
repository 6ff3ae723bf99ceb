// Package ui is the declaration API: a caller describes a UI by issuing
// ordered calls on a Builder, and the builder captures them as a tree of
// Descriptors for the render package to compile.
//
// A builder procedure looks like immediate-mode code:
//
//	func menu(b *ui.Builder) {
//	    b.NestBox(ui.At(0, 0, .5, .5), "Settings", func() {
//	        b.Toggle(ui.At(0, 0, 1, .1), "Sound", true, setSound)
//	        b.SetTextColor(graphics.ColorBlue)
//	        b.Button(ui.At(0, .1, 1, .1), "Back", goBack)
//	        b.SetActive(false)
//	    })
//	}
//
// Every declaration flushes the previously declared control into the
// current container and becomes the new pending control. Push and Pop (or
// the Nest helpers) open and close containers. Paint values (colors, font
// size, alignment) are read from the builder at the moment of declaration
// and frozen on the descriptor.
//
// Stack misuse never aborts a pass: the offending call becomes a no-op and
// a warning is reported through pkg/errors.
package ui
