package diag

import (
	"fmt"

	"glassful/internal/source"
)

// Fault is the panic value carried by an internal fault: a broken invariant of
// the translator itself (for example a macro node that survived expansion).
// Faults never travel through a Bag as ordinary errors; they unwind the call.
type Fault struct {
	Code Code
	Span source.Span
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("internal fault %s at %s: %s", f.Code.ID(), f.Span, f.Msg)
}

// Bug records the fault with SevBug and panics with *Fault. It never returns.
func Bug(r Reporter, code Code, sp source.Span, msg string) {
	if r != nil {
		r.Report(code, SevBug, sp, msg, nil)
	}
	panic(&Fault{Code: code, Span: sp, Msg: msg})
}

// AsFault converts a recovered panic value into a *Fault.
// Foreign panics (runtime errors, plain strings) are wrapped as BugRecoveredPanic.
func AsFault(r any) *Fault {
	switch v := r.(type) {
	case nil:
		return nil
	case *Fault:
		return v
	case error:
		return &Fault{Code: BugRecoveredPanic, Msg: v.Error()}
	default:
		return &Fault{Code: BugRecoveredPanic, Msg: fmt.Sprint(v)}
	}
}
