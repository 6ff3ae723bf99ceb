package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := &Error{Op: "ui.Builder.Pop", Kind: KindStack, Err: ErrStackUnderflow}
	want := "ui.Builder.Pop [stack]: only root control remains"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, ErrStackUnderflow) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStack, "stack"},
		{KindStyle, "style"},
		{KindAsset, "asset"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("got %q", got)
	}
	err.Op = "interaction.Tick"
	if got := err.Error(); got != "panic in interaction.Tick: boom" {
		t.Errorf("got %q", got)
	}
}

func TestWarnReachesHandler(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	Warn("test.op", KindAsset, ErrMissingAsset)

	if len(rec.Errors) != 1 {
		t.Fatalf("recorded %d errors, want 1", len(rec.Errors))
	}
	got := rec.Errors[0]
	if got.Level != LevelWarning {
		t.Errorf("Level = %v, want warning", got.Level)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if rec.Count(KindAsset) != 1 || rec.Count(KindStack) != 0 {
		t.Error("Count did not filter by kind")
	}
}

func TestWarnfWrapsCause(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	Warnf("ui.Builder.Push", KindStack, ErrNothingPending, "control %q already used", "Box")
	if !stderrors.Is(rec.Errors[0], ErrNothingPending) {
		t.Error("expected wrapped sentinel")
	}
	if !strings.Contains(rec.Errors[0].Error(), `control "Box" already used`) {
		t.Errorf("message missing: %s", rec.Errors[0].Error())
	}
}

func TestGuardRecovers(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	ok := Guard("test.guard", func() { panic("intentional") })
	if ok {
		t.Error("Guard returned true for a panicking func")
	}
	if len(rec.Panics) != 1 || rec.Panics[0].Op != "test.guard" {
		t.Fatalf("panic not captured: %+v", rec.Panics)
	}
	if !Guard("test.guard", func() {}) {
		t.Error("Guard returned false for a clean func")
	}
}

func TestRecover(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if len(rec.Panics) != 1 {
		t.Fatal("expected panic to be recovered and captured")
	}
	if rec.Panics[0].Value != "intentional test panic" {
		t.Errorf("Value = %v", rec.Panics[0].Value)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&Error{Op: "ui.Builder.Pop", Kind: KindStack, Err: ErrStackUnderflow})
	want := "[ggui warning] ui.Builder.Pop: only root control remains\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&Error{Op: "skin.Load", Kind: KindConfig, Level: LevelError, Err: ErrMissingAsset, StackTrace: "frame"})
	if !strings.HasPrefix(buf.String(), "[ggui error] skin.Load [config]") {
		t.Errorf("verbose output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack trace:\nframe") {
		t.Errorf("verbose output missing stack: %q", buf.String())
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}
