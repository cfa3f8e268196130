package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/driver"
	"glassful/internal/lexer"
	"glassful/internal/parser"
	"glassful/internal/source"
	"glassful/internal/testkit"
)

// parseTimeout is the maximum time allowed for a single input.
// Longer runs indicate an infinite loop in error recovery.
const parseTimeout = 5 * time.Second

func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("fn f() { let x: i32 = 1\nlet y: i32 = 2; }")) // missing semicolon
	f.Add([]byte("fn f() { x + y\nlet z: i32 = 3; }"))          // expression without semicolon
	f.Add([]byte("fn f() { { { { } } } }"))                     // deeply nested blocks
	f.Add([]byte("#![version = ]\n#[a(b, c(d))] fn"))           // truncated attributes
	f.Add([]byte("fn f() { a < b < c; }"))                      // chained comparison

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.glsl.rs", input))

			bag := diag.NewBag(128)
			reporter := diag.BagReporter{Bag: bag}
			lx := lexer.New(file, lexer.Options{Reporter: reporter})
			builder := ast.NewBuilder(ast.Hints{}, nil)
			res := parser.ParseFile(ctx, fs, lx, builder, parser.Options{
				Reporter:  reporter,
				MaxErrors: 128,
			})
			if bag.HasErrors() {
				return
			}
			if err := testkit.CheckSpanInvariants(builder, res.Module, file); err != nil {
				t.Errorf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzTranslateNoFault checks that no input reaches an internal fault:
// everything the front end lets through must be handled by the translator.
func FuzzTranslateNoFault(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		out, err := driver.Isolated(context.Background(), "fuzz.glsl.rs", string(input), driver.Options{MaxDiagnostics: 128})
		var fault *diag.Fault
		if errors.As(err, &fault) {
			t.Fatalf("internal fault %v\ninput (%d bytes): %q", fault, len(input), truncateForLog(input, 200))
		}
		if err != nil && out != "" {
			t.Fatalf("output %q returned together with error %v", out, err)
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
