package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot boxes the handler so atomic.Value always stores one type.
type handlerSlot struct{ h ErrorHandler }

var current atomic.Value

func init() { current.Store(handlerSlot{&LogHandler{}}) }

// SetHandler replaces the global error handler. Passing nil restores a
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(handlerSlot{h})
}

// Handler returns the global error handler.
func Handler() ErrorHandler {
	return current.Load().(handlerSlot).h
}

// Report sends err to the global handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Warn reports a recoverable condition of the given kind.
func Warn(op string, kind ErrorKind, err error) {
	Report(&Error{Op: op, Kind: kind, Level: LevelWarning, Err: err})
}

// Warnf is Warn with a formatted message wrapping cause.
// cause may be nil.
func Warnf(op string, kind ErrorKind, cause error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		Warn(op, kind, fmt.Errorf("%s: %w", msg, cause))
		return
	}
	Warn(op, kind, fmt.Errorf("%s", msg))
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err != nil {
		Handler().HandlePanic(err)
	}
}

func reportRecovered(op string, value any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// Recover reports a panic in progress. Call it deferred:
//
//	defer errors.Recover("render.Compiler.Render")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// Guard runs fn and reports a panic instead of propagating it.
// It returns false when fn panicked.
func Guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			reportRecovered(op, r)
		}
	}()
	fn()
	return true
}

// maxStackDepth bounds the frames kept by CaptureStack.
const maxStackDepth = 32

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if f.Function != "" {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
