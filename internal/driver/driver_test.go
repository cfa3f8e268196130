package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"glassful/internal/diag"
	"glassful/internal/observ"
	"glassful/internal/trace"
)

// faultyTracer panics when the span named boom begins, simulating a broken
// invariant deep inside the pipeline.
type faultyTracer struct {
	boom string
	mu   sync.Mutex
	seen []trace.Event
}

func (f *faultyTracer) Emit(ev *trace.Event) {
	if ev.Kind == trace.KindSpanBegin && ev.Name == f.boom {
		panic(&diag.Fault{Code: diag.BugInvariant, Msg: "boom in " + ev.Name})
	}
	f.mu.Lock()
	f.seen = append(f.seen, *ev)
	f.mu.Unlock()
}
func (f *faultyTracer) Flush() error       { return nil }
func (f *faultyTracer) Close() error       { return nil }
func (f *faultyTracer) Level() trace.Level { return trace.LevelDebug }
func (f *faultyTracer) Enabled() bool      { return true }

func (f *faultyTracer) points() []trace.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []trace.Event
	for _, ev := range f.seen {
		if ev.Kind == trace.KindPoint {
			out = append(out, ev)
		}
	}
	return out
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"version only", "#![version = \"330\"]\n", "#version 330\n\n"},
		{
			name: "function",
			src:  "#![version = \"150\"]\nfn main() { let x: f32 = 1.5f32; }\n",
			want: "#version 150\n\nvoid main() {\nfloat x = 1.5;\n}\n",
		},
		{
			name: "line macro",
			src:  "fn f() {\n    let l: u32 = line!();\n}\n",
			want: "void f() {\nu32 l = 2;\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(context.Background(), "test.glsl.rs", tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"parse", "fn f() { let x: i32 = 1 }", diag.SynExpectSemicolon},
		{"unknown macro", "fn f() { let x: i32 = nope!(); }", diag.MacUndefined},
		{"unknown attribute", "#![optimize]\n", diag.GlsUnknownAttribute},
		{"static mut", "static mut X: f32 = 1.0;", diag.GlsMutableGlobal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Translate(context.Background(), "test.glsl.rs", tt.src)
			if out != "" {
				t.Errorf("partial output leaked: %q", out)
			}
			var derr *Error
			if !errors.As(err, &derr) {
				t.Fatalf("expected *Error, got %T %v", err, err)
			}
			if derr.Files == nil || !derr.Bag.HasErrors() {
				t.Fatal("error should carry the bag and the files")
			}
			found := false
			for _, d := range derr.Bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("code %s not reported; got %v", tt.code.ID(), derr.Bag.Messages())
			}
			if first := derr.Bag.Items()[0]; !strings.HasPrefix(err.Error(), first.Code.ID()+": "+first.Message) {
				t.Errorf("Error() = %q, want it to start with the first diagnostic", err.Error())
			}
		})
	}
}

func TestTranslateStopsAtParseCheckpoint(t *testing.T) {
	_, err := Translate(context.Background(), "t", "#![optimize]\nfn f() { let x: i32 = 1 }")
	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	for _, d := range derr.Bag.Items() {
		if d.Code == diag.GlsUnknownAttribute {
			t.Error("attribute phase ran after a parse error")
		}
	}
}

func TestTranslateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Translate(ctx, "t", "fn main() {}"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTryTranslate(t *testing.T) {
	out, ok := TryTranslate(context.Background(), "t", "fn main() {}")
	if !ok || out != "void main() {\n}\n" {
		t.Errorf("TryTranslate ok=%v out=%q", ok, out)
	}
	if out, ok := TryTranslate(context.Background(), "t", "fn f( {"); ok || out != "" {
		t.Errorf("user error should be absent, got ok=%v out=%q", ok, out)
	}
}

func TestTryTranslateRecoversFault(t *testing.T) {
	tr := &faultyTracer{boom: "item:main"}
	ctx := trace.WithTracer(context.Background(), tr)

	out, ok := TryTranslate(ctx, "t", "fn main() {}")
	if ok || out != "" {
		t.Fatalf("fault should yield absent, got ok=%v out=%q", ok, out)
	}
	points := tr.points()
	if len(points) != 1 || !strings.Contains(points[0].Detail, "boom in item:main") {
		t.Errorf("fault not traced: %+v", points)
	}

	_, err := Isolated(ctx, "t", "fn main() {}", Options{})
	var fault *diag.Fault
	if !errors.As(err, &fault) || fault.Code != diag.BugInvariant {
		t.Errorf("Isolated err = %v, want *diag.Fault", err)
	}
}

func TestTranslateIsolatedCallsAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := "fn main() {}"
			if i%2 == 1 {
				src = "fn f( {"
			}
			_, errs[i] = Translate(context.Background(), "t", src)
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if (err != nil) != (i%2 == 1) {
			t.Errorf("call %d: err = %v", i, err)
		}
	}
}

func TestTranslateTracesPhases(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	timer := observ.NewTimer()

	if _, err := TranslateWithOptions(ctx, "t", "fn a() {}\nfn b() {}", Options{Timer: timer}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"→ translate", "→ parse", "→ expand", "→ attributes", "→ items", "→ item:a", "→ item:b"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace lacks %q:\n%s", want, out)
		}
	}
	if n := len(timer.Report().Phases); n != 4 {
		t.Errorf("timer recorded %d phases, want 4", n)
	}
}

func TestTokenize(t *testing.T) {
	toks, _, err := Tokenize("t", "fn main", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Errorf("got %d tokens, want fn, ident, EOF", len(toks))
	}
	if _, _, err := Tokenize("t", "\"open", 0); err == nil {
		t.Error("unterminated string should fail")
	}
}
