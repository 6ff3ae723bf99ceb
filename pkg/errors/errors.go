// Package errors provides structured diagnostics for the ggui builder and
// compiler.
//
// Nothing in a describe or render pass aborts on these conditions. They are
// reported to the global handler and the pass carries on with a fallback.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStack indicates an unbalanced declaration stack operation.
	KindStack
	// KindStyle indicates a style or skin asset problem.
	KindStyle
	// KindAsset indicates a missing image, sprite or font.
	KindAsset
	// KindRender indicates a problem while instantiating widgets.
	KindRender
	// KindConfig indicates a configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindStyle:
		return "style"
	case KindAsset:
		return "asset"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Level is the severity of a reported error.
type Level int

const (
	// LevelWarning marks a recoverable condition; the operation became a no-op
	// or used a fallback.
	LevelWarning Level = iota
	// LevelError marks a failure the caller should look at.
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "warning"
}

// Sentinel errors wrapped by reported diagnostics.
var (
	// ErrNothingPending is reported when Push or SetActive run without a
	// pending descriptor.
	ErrNothingPending = stderrors.New("no pending control")
	// ErrStackUnderflow is reported when Pop runs with only the root left.
	ErrStackUnderflow = stderrors.New("only root control remains")
	// ErrUnbalanced is reported when a builder returns with open containers.
	ErrUnbalanced = stderrors.New("unbalanced push/pop")
	// ErrMissingAsset is reported when a style has no image for a slot.
	ErrMissingAsset = stderrors.New("missing visual asset")
	// ErrFinished is reported when a control is declared after Finish.
	ErrFinished = stderrors.New("builder already finished")
	// ErrHistoryEmpty is reported when a page stack pops with nothing
	// below the shown page.
	ErrHistoryEmpty = stderrors.New("page history is empty")
)

// Error represents a structured diagnostic.
type Error struct {
	// Op is the operation that reported (e.g., "ui.Builder.Pop").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Level is the severity.
	Level Level
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "interaction.Controller.Tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by ggui.
type ErrorHandler interface {
	// HandleError is called when an error or warning is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
