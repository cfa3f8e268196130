package driver

import (
	"context"
	"runtime/debug"

	"glassful/internal/diag"
	"glassful/internal/trace"
)

type outcome struct {
	out string
	err error
}

// Isolated runs TranslateWithOptions on its own goroutine and converts a
// panic there into a *diag.Fault error. User diagnostics come back as
// *Error as usual. The caller blocks until the worker is done.
func Isolated(ctx context.Context, name, src string, opts Options) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			fault := diag.AsFault(r)
			trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "fault",
				fault.Error()+"\n"+string(debug.Stack()), trace.CurrentSpan(ctx))
			done <- outcome{err: fault}
		}()
		out, err := TranslateWithOptions(ctx, name, src, opts)
		done <- outcome{out: out, err: err}
	}()
	res := <-done
	return res.out, res.err
}

// TryTranslate is the fault-isolated entry point: any failure, user error
// or internal fault, yields ("", false).
func TryTranslate(ctx context.Context, name, src string) (string, bool) {
	out, err := Isolated(ctx, name, src, Options{})
	if err != nil {
		return "", false
	}
	return out, true
}
