package glassful_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"glassful"
	"glassful/internal/diag"
	"glassful/internal/driver"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"version only", "#![version = \"330\"]\n", "#version 330\n\n"},
		{"int literal", "const X: i32 = 42;", "const i32 X = 42;\n"},
		{"float literal", "const X: f32 = 1.5;", "const float X = 1.5;\n"},
		{"hex literal", "const X: u32 = 0x10;", "const u32 X = 16;\n"},
		{"suffixed float", "const X: f32 = 1.5f32;", "const float X = 1.5;\n"},
		{"binary", "fn f() { a + b; }", "void f() {\n(a + b);\n}\n"},
		{"nested binary", "fn f() { a + b * c; }", "void f() {\n(a + (b * c));\n}\n"},
		{"escaped mod", "fn f() { mod_(a, b); }", "void f() {\nmod(a, b);\n}\n"},
		{"typed let", "fn f() { let x: i32 = 1; }", "void f() {\ni32 x = 1;\n}\n"},
		{"unit return", "fn f() -> () {}", "void f() {\n}\n"},
		{"else if", "fn f() { if a { b; } else if c { d; } }",
			"void f() {\nif (a) {\nb;\n}\nelse if (c) {\nd;\n}\n;\n}\n"},
		{"line macro", "fn f() {\n  let l: u32 = line!();\n}", "void f() {\nu32 l = 2;\n}\n"},
		{"shader", "#![version = \"150\"]\nstatic COLOR: vec4 = vec4(1.0, 0.0, 0.0, 1.0);\nfn main() { gl_FragColor = COLOR; }",
			"#version 150\n\nvec4 COLOR = vec4(1.0, 0.0, 0.0, 1.0);\nvoid main() {\n(gl_FragColor = COLOR);\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := glassful.Translate(tt.src)
			if err != nil {
				t.Fatalf("Translate(%q): %v", tt.src, err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateRejects(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		code  diag.Code
		count int
	}{
		{"pub item", "pub fn f() {}", diag.GlsVisibility, 1},
		{"let without type", "fn f() { let x = 1; }", diag.GlsLetMissingType, 1},
		{"version twice", "#![version = \"120\"]\n#![version = \"330\"]", diag.GlsVersionTwice, 1},
		{"static mut", "static mut X: f32 = 1.0;", diag.GlsMutableGlobal, 1},
		{"fn attributes", "#[inline]\n#[cold]\nfn f() {}", diag.GlsFnAttribute, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := glassful.Translate(tt.src)
			if out != "" {
				t.Fatalf("output must be empty on error, got %q", out)
			}
			var derr *driver.Error
			if !errors.As(err, &derr) {
				t.Fatalf("want *driver.Error, got %v", err)
			}
			items := derr.Bag.Items()
			if len(items) != tt.count {
				t.Fatalf("want %d diagnostics, got %d: %v", tt.count, len(items), err)
			}
			for _, d := range items {
				if d.Code != tt.code {
					t.Fatalf("got code %s, want %s", d.Code.ID(), tt.code.ID())
				}
			}
		})
	}
}

func TestUnknownMacroIsDiagnostic(t *testing.T) {
	var out string
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("unknown macro must not panic: %v", r)
			}
		}()
		out, err = glassful.Translate("fn f() { foo!(); }")
	}()
	if err == nil || out != "" {
		t.Fatalf("want an error, got %q, %v", out, err)
	}
	if !strings.Contains(err.Error(), "cannot find macro `foo` in this scope") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTryTranslate(t *testing.T) {
	out, ok := glassful.TryTranslate("#![version = \"330\"]\n")
	if !ok || out != "#version 330\n\n" {
		t.Fatalf("got %q, %v", out, ok)
	}
	out, ok = glassful.TryTranslate("pub fn f() {}")
	if ok || out != "" {
		t.Fatalf("want absent result, got %q, %v", out, ok)
	}
}

func TestTranslateContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := glassful.TranslateContext(ctx, "fn main() {}"); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func ExampleTranslate() {
	out, err := glassful.Translate("#![version = \"330\"]\nfn main() { gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0); }")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// #version 330
	//
	// void main() {
	// (gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0));
	// }
}
