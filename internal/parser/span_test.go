package parser

import (
	"context"
	"testing"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
	"glassful/internal/testkit"
)

func TestSpanInvariants(t *testing.T) {
	inputs := []string{
		"fn main() {}",
		"#![version = \"330\"]\n\nstatic X: f32 = 1.0;\nconst Y: i32 = 2;\n",
		"// header\n#[inline]\npub fn f(a: f32) -> f32 { return a * 2.0; }\nfn g() { if a { b; } else { c; } }\n",
		"struct S { a: f32 }\nuse a::b;\nfoo!();\n",
		"/* lead */ unsafe extern \"C\" fn h<T>(x: T, ...) { let y: T = x; y }\n",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("span.glsl.rs", []byte(src)))
			bag := diag.NewBag(100)
			rep := diag.BagReporter{Bag: bag}
			b := ast.NewBuilder(ast.Hints{}, nil)
			res := ParseFile(context.Background(), fs, lexer.New(file, lexer.Options{Reporter: rep}), b, Options{MaxErrors: 100, Reporter: rep})
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
			}
			if err := testkit.CheckSpanInvariants(b, res.Module, file); err != nil {
				t.Fatal(err)
			}
		})
	}
}
