package glsl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/expand"
	"glassful/internal/glsl"
	"glassful/internal/lexer"
	"glassful/internal/parser"
	"glassful/internal/source"
)

type translated struct {
	preamble string
	body     string
	bag      *diag.Bag
}

func (r translated) messages() string {
	return strings.Join(r.bag.Messages(), "; ")
}

func parseModule(t *testing.T, src string, doExpand bool) (*ast.Builder, *ast.Module, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.glsl.rs", []byte(src)))
	bag := diag.NewBag(0)
	rep := &diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(context.Background(), fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Messages())
	}
	if doExpand {
		expand.Module(context.Background(), fs, b, res.Module, expand.Options{Reporter: rep})
	}
	return b, res.Module, bag
}

func translate(t *testing.T, src string) translated {
	t.Helper()
	b, mod, bag := parseModule(t, src, true)
	rep := &diag.BagReporter{Bag: bag}
	pre := glsl.Preamble(b, mod.InnerAttrs, rep)
	tr := glsl.New(b, rep)
	for _, id := range mod.Items {
		tr.Item(id)
	}
	return translated{preamble: pre, body: tr.Output(), bag: bag}
}

func translateOK(t *testing.T, src string) string {
	t.Helper()
	r := translate(t, src)
	if r.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", src, r.messages())
	}
	return r.preamble + r.body
}

// stmtOut translates a single statement inside `fn f()` and strips the wrapper.
func stmtOut(t *testing.T, stmt string) string {
	t.Helper()
	out := translateOK(t, "fn f() { "+stmt+" }")
	const head, tail = "void f() {\n", "}\n"
	if !strings.HasPrefix(out, head) || !strings.HasSuffix(out, tail) {
		t.Fatalf("unexpected function shape: %q", out)
	}
	return out[len(head) : len(out)-len(tail)]
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want string
	}{
		{"int", "let x: i32 = 42;", "i32 x = 42;\n"},
		{"float", "let x: f32 = 1.5;", "float x = 1.5;\n"},
		{"hex", "let x: u32 = 0x10;", "u32 x = 16;\n"},
		{"suffixed float", "let x: f32 = 1.5f32;", "float x = 1.5;\n"},
		{"suffixed int", "let x: i32 = 7i32;", "i32 x = 7;\n"},
		{"binary", "a + b;", "(a + b);\n"},
		{"nested binary", "a + b * c;", "(a + (b * c));\n"},
		{"paren dropped", "(a + b) * c;", "((a + b) * c);\n"},
		{"comparison", "a <= b && c != d;", "((a <= b) && (c != d));\n"},
		{"negate", "-a;", "(- a);\n"},
		{"not", "!b;", "(! b);\n"},
		{"assign", "x = 1;", "(x = 1);\n"},
		{"call", "max(a, 1.0);", "max(a, 1.0);\n"},
		{"call no args", "f();", "f();\n"},
		{"field", "v.xyz;", "v.xyz;\n"},
		{"method call", "v.length();", "v.length();\n"},
		{"escaped mod", "let m: f32 = mod_(a, b);", "float m = mod(a, b);\n"},
		{"plain name", "let m: f32 = modulo;", "float m = modulo;\n"},
		{"return value", "return x;", "return x;\n;\n"},
		{"return bare", "return;", "return;\n;\n"},
		{"block", "{ a; }", "{\na;\n}\n;\n"},
		{"if", "if a { b; }", "if (a) {\nb;\n}\n;\n"},
		{"if else", "if a { b; } else { c; }", "if (a) {\nb;\n}\nelse {\nc;\n}\n;\n"},
		{"else if", "if a { b; } else if c { d; }", "if (a) {\nb;\n}\nelse if (c) {\nd;\n}\n;\n"},
		{"let without init", "let v: vec4;", "vec4 v;\n"},
		{"tail expression", "x", "x;\n"},
		{"line macro", "let l: u32 = line!();", "u32 l = 1;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stmtOut(t, tt.stmt); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItems(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"static", "static X: f32 = 1.0;", "float X = 1.0;\n"},
		{"const", "const Y: f32 = 2.0;", "const float Y = 2.0;\n"},
		{"unit fn", "fn main() {}", "void main() {\n}\n"},
		{"explicit unit", "fn main() -> () {}", "void main() {\n}\n"},
		{"params", "fn add(a: f32, b: f32) -> f32 { return a + b; }",
			"float add(float a, float b) {\nreturn (a + b);\n;\n}\n"},
		{"rust abi", "extern \"Rust\" fn f() {}", "void f() {\n}\n"},
		{"order kept", "const A: i32 = 1;\nfn g() {}\nstatic B: i32 = 2;",
			"const i32 A = 1;\nvoid g() {\n}\ni32 B = 2;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateOK(t, tt.src); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreamble(t *testing.T) {
	if got := translateOK(t, "#![version = \"330\"]\n"); got != "#version 330\n\n" {
		t.Fatalf("got %q", got)
	}
	if got := translateOK(t, "#![version = \"150\"]\nfn main() {}"); got != "#version 150\n\nvoid main() {\n}\n" {
		t.Fatalf("got %q", got)
	}
	if got := translateOK(t, ""); got != "" {
		t.Fatalf("empty module should produce empty output, got %q", got)
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		msg  string
	}{
		{"pub fn", "pub fn f() {}", diag.GlsVisibility, "`pub` visibility has no meaning"},
		{"pub const", "pub(crate) const X: i32 = 1;", diag.GlsVisibility, "`pub` visibility has no meaning"},
		{"static mut", "static mut X: f32 = 1.0;", diag.GlsMutableGlobal, "variables are implicitly mutable"},
		{"let no type", "fn f() { let x = 1; }", diag.GlsLetMissingType, "`let` bindings must specify a type"},
		{"let mut", "fn f() { let mut x: i32 = 1; }", diag.GlsLetNotVariable, "`let` binding must be a variable"},
		{"let tuple", "fn f() { let (a, b): (i32, i32) = t; }", diag.GlsLetNotVariable, "`let` binding must be a variable"},
		{"local item", "fn f() { fn g() {} }", diag.GlsLocalItem, "items in functions not supported"},
		{"bool literal", "fn f() { let b: bool = true; }", diag.GlsUnsupportedLiteral, "can't translate this literal"},
		{"string literal", "fn f() { g(\"s\"); }", diag.GlsUnsupportedLiteral, "can't translate this literal"},
		{"qualified name", "fn f() { a::b; }", diag.GlsQualifiedName, "can't translate qualified / parametrized name"},
		{"turbofish", "fn f() { g::<f32>(); }", diag.GlsQualifiedName, "can't translate qualified / parametrized name"},
		{"remainder", "fn f() { a % b; }", diag.GlsUnsupportedBinaryOp, "binary operator not supported"},
		{"shift", "fn f() { a << b; }", diag.GlsUnsupportedBinaryOp, "binary operator not supported"},
		{"deref", "fn f() { *a; }", diag.GlsUnsupportedUnaryOp, "unary operator not supported"},
		{"compound assign", "fn f() { x += 1; }", diag.GlsUnsupportedExpr, "can't translate this sort of expression"},
		{"while", "fn f() { while a { b; } }", diag.GlsUnsupportedExpr, "can't translate this sort of expression"},
		{"index", "fn f() { a[0]; }", diag.GlsUnsupportedExpr, "can't translate this sort of expression"},
		{"cast", "fn f() { a as f32; }", diag.GlsUnsupportedExpr, "can't translate this sort of expression"},
		{"tuple type", "fn f() { let x: (f32, f32) = t; }", diag.GlsUnsupportedType, "type kind unsupported"},
		{"qualified type", "const X: a::B = 1;", diag.GlsUnsupportedType, "type kind unsupported"},
		{"generic type", "const X: Vec<f32> = 1;", diag.GlsUnsupportedType, "type kind unsupported"},
		{"ref type", "fn f(a: &f32) {}", diag.GlsUnsupportedType, "type kind unsupported"},
		{"struct", "struct S { a: f32 }", diag.GlsUnsupportedItem, "can't translate this sort of item"},
		{"use", "use a::b;", diag.GlsUnsupportedItem, "can't translate this sort of item"},
		{"variadic", "fn f(a: i32, ...) {}", diag.GlsVariadicFn, "can't translate variadic functions"},
		{"unsafe", "unsafe fn f() {}", diag.GlsUnsafeFn, "can't translate unsafe functions"},
		{"extern", "extern \"C\" fn f() {}", diag.GlsNonDefaultABI, "can't translate non-default ABI"},
		{"bare extern", "extern fn f() {}", diag.GlsNonDefaultABI, "can't translate non-default ABI"},
		{"generic", "fn f<T>(a: T) {}", diag.GlsGenericFn, "can't translate generic functions"},
		{"mut param", "fn f(mut a: f32) {}", diag.GlsParamNotVariable, "function parameter must be a variable"},
		{"var attr", "#[inline] const X: i32 = 1;", diag.GlsVarAttribute, "no variable attributes are supported"},
		{"version twice", "#![version = \"120\"]\n#![version = \"330\"]", diag.GlsVersionTwice, "version given twice"},
		{"version no value", "#![version]", diag.GlsVersionMissing, "version not given"},
		{"version not string", "#![version = 330]", diag.GlsVersionMissing, "version not given"},
		{"unknown attribute", "#![feature(x)]", diag.GlsUnknownAttribute, "unknown attribute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := translate(t, tt.src)
			items := r.bag.Items()
			if len(items) != 1 {
				t.Fatalf("want exactly one diagnostic, got %s", r.messages())
			}
			if items[0].Code != tt.code || items[0].Message != tt.msg || items[0].Severity != diag.SevError {
				t.Fatalf("got %s %q, want %s %q", items[0].Code.ID(), items[0].Message, tt.code.ID(), tt.msg)
			}
		})
	}
}

func TestFunctionAttributesReportedEach(t *testing.T) {
	r := translate(t, "#[inline]\n#[cold]\nfn f() {}")
	items := r.bag.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 diagnostics, got %s", r.messages())
	}
	for _, d := range items {
		if d.Code != diag.GlsFnAttribute || d.Message != "no function attributes are supported" {
			t.Fatalf("unexpected diagnostic %s %q", d.Code.ID(), d.Message)
		}
	}
}

func TestUnsupportedOperatorStillTranslatesOperands(t *testing.T) {
	r := translate(t, "fn f() { a % g(b); }")
	if !strings.Contains(r.body, "(a  g(b));\n") {
		t.Fatalf("body = %q", r.body)
	}
	r = translate(t, "fn f() { *p; }")
	if !strings.Contains(r.body, "( p);\n") {
		t.Fatalf("body = %q", r.body)
	}
}

func TestSurvivingMacroIsInternalFault(t *testing.T) {
	tests := []string{
		"fn f() { let x: f32 = foo!(); }",
		"fn f() { foo!(); }",
		"foo!();",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			b, mod, bag := parseModule(t, src, false)
			tr := glsl.New(b, &diag.BagReporter{Bag: bag})

			var fault *diag.Fault
			func() {
				defer func() {
					fault = diag.AsFault(recover())
				}()
				for _, id := range mod.Items {
					tr.Item(id)
				}
			}()
			if fault == nil {
				t.Fatal("expected an internal fault")
			}
			if fault.Code != diag.BugMacroSurvived || fault.Msg != "macros should be gone by now" {
				t.Fatalf("fault = %+v", fault)
			}
			var err error = fault
			var target *diag.Fault
			if !errors.As(err, &target) {
				t.Fatal("fault must be usable as an error")
			}
		})
	}
}
