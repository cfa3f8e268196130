package parser

import (
	"testing"

	"glassful/internal/ast"
	"glassful/internal/diag"
)

func TestInnerAttributes(t *testing.T) {
	b, mod := mustParse(t, "#![version = \"330\"]\n#![feature(a, b)]\n")
	if len(mod.InnerAttrs) != 2 {
		t.Fatalf("want 2 inner attrs, got %d", len(mod.InnerAttrs))
	}
	v := b.Attrs.Get(mod.InnerAttrs[0])
	if b.Name(v.Name) != "version" || !v.HasValue || v.Value != "330" || !v.ValueIsString {
		t.Fatalf("version attr = %+v", *v)
	}
	f := b.Attrs.Get(mod.InnerAttrs[1])
	if b.Name(f.Name) != "feature" || f.HasValue || len(f.Args) != 2 {
		t.Fatalf("feature attr = %+v", *f)
	}
	if len(mod.Items) != 0 {
		t.Fatalf("want no items, got %d", len(mod.Items))
	}
}

func TestStaticAndConst(t *testing.T) {
	b, mod := mustParse(t, "static mut X: f32 = 1.0;\npub const Y: i32 = 2;")
	if len(mod.Items) != 2 {
		t.Fatalf("want 2 items, got %d", len(mod.Items))
	}
	x := b.Items.Get(mod.Items[0])
	if x.Kind != ast.ItemStatic || b.Name(x.Name) != "X" || !b.Items.Static(mod.Items[0]).Mut {
		t.Fatalf("static = %+v", *x)
	}
	y := b.Items.Get(mod.Items[1])
	if y.Kind != ast.ItemConst || y.Vis != ast.VisPublic {
		t.Fatalf("const = %+v", *y)
	}
}

func TestFnModifiers(t *testing.T) {
	tests := []struct {
		src      string
		unsafe   bool
		abi      string
		variadic bool
		generics int
	}{
		{"fn f() {}", false, ast.DefaultABI, false, 0},
		{"unsafe fn f() {}", true, ast.DefaultABI, false, 0},
		{"extern fn f() {}", false, "C", false, 0},
		{"extern \"Rust\" fn f() {}", false, ast.DefaultABI, false, 0},
		{"extern \"system\" fn f() {}", false, "system", false, 0},
		{"fn f(a: i32, ...) {}", false, ast.DefaultABI, true, 0},
		{"fn f<T, U: Copy + Clone>(a: T) {}", false, ast.DefaultABI, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b, mod := mustParse(t, tt.src)
			fn := b.Items.Fn(mod.Items[0])
			if fn == nil {
				t.Fatal("not a function")
			}
			if fn.Unsafe != tt.unsafe || fn.ABI != tt.abi || fn.Variadic != tt.variadic || len(fn.Generics) != tt.generics {
				t.Fatalf("fn = %+v", *fn)
			}
		})
	}
}

func TestFnSignature(t *testing.T) {
	b, mod := mustParse(t, "#[inline] fn add(a: f32, mut b: f32) -> f32 { return a + b; }")
	item := b.Items.Get(mod.Items[0])
	if len(item.Attrs) != 1 {
		t.Fatalf("want 1 attr, got %d", len(item.Attrs))
	}
	fn := b.Items.Fn(mod.Items[0])
	if len(fn.Params) != 2 || !fn.Ret.IsValid() {
		t.Fatalf("fn = %+v", *fn)
	}
	if pat := b.Pats.Ident(fn.Params[1].Pat); pat == nil || !pat.Mut {
		t.Fatal("second param should be a mutable ident pattern")
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.TypeKind
	}{
		{"()", ast.TypeUnit},
		{"f32", ast.TypePath},
		{"Vec<Vec<f32>>", ast.TypePath},
		{"(f32, i32)", ast.TypeTuple},
		{"(f32)", ast.TypePath},
		{"&mut f32", ast.TypeRef},
		{"[f32; 4]", ast.TypeArray},
		{"!", ast.TypeNever},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b, mod := mustParse(t, "fn f(x: "+tt.src+") {}")
			typ := b.Types.Get(b.Items.Fn(mod.Items[0]).Params[0].Type)
			if typ.Kind != tt.kind {
				t.Fatalf("kind = %d, want %d", typ.Kind, tt.kind)
			}
		})
	}
}

func TestOtherItems(t *testing.T) {
	b, mod := mustParse(t, "struct S { a: f32, b: i32 }\nuse a::b::c;\nfoo!(x);\n")
	if len(mod.Items) != 3 {
		t.Fatalf("want 3 items, got %d", len(mod.Items))
	}
	if s := b.Items.Struct(mod.Items[0]); s == nil || len(s.Fields) != 2 {
		t.Fatal("bad struct")
	}
	if u := b.Items.Use(mod.Items[1]); u == nil || len(u.Path.Segments) != 3 {
		t.Fatal("bad use")
	}
	m := b.Items.Macro(mod.Items[2])
	if m == nil || b.Macros.Get(m.Macro).Args != "x" {
		t.Fatal("bad macro item")
	}
}

func TestLetAndLocalItem(t *testing.T) {
	b, mod := mustParse(t, "fn f() { let x: i32 = 1; let (a, _) = t; let y; fn g() {} }")
	stmts := fnBody(t, b, mod)
	if len(stmts) != 4 {
		t.Fatalf("want 4 statements, got %d", len(stmts))
	}
	if let := b.Stmts.Let(stmts[0]); let == nil || !let.Type.IsValid() || !let.Init.IsValid() {
		t.Fatal("bad first let")
	}
	if b.Pats.Tuple(b.Stmts.Let(stmts[1]).Pat) == nil {
		t.Fatal("second let should bind a tuple pattern")
	}
	if let := b.Stmts.Let(stmts[2]); let.Type.IsValid() || let.Init.IsValid() {
		t.Fatal("third let has neither type nor init")
	}
	if b.Stmts.Item(stmts[3]) == nil {
		t.Fatal("fourth statement should be an item")
	}
}

func TestItemErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"let x = 1;", diag.SynUnexpectedTopLevel},
		{"static X = 1;", diag.SynExpectColon},
		{"fn f(..., a: i32) {}", diag.SynVariadicMustBeLast},
		{"fn f() { #![x] }", diag.SynInnerAttrPosition},
		{"fn f()", diag.SynExpectBlock},
		{"#[x = ] fn f() {}", diag.SynBadAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expectParseError(t, tt.src, tt.code)
		})
	}
}

func TestRecoveryContinuesAfterBadItem(t *testing.T) {
	b, mod, bag := parseSource(t, "let x = 1; const Y: i32 = 2;")
	if !bag.HasErrors() {
		t.Fatal("expected an error")
	}
	found := false
	for _, id := range mod.Items {
		if b.Items.Get(id).Kind == ast.ItemConst {
			found = true
		}
	}
	if !found {
		t.Fatal("parser should recover and parse the const item")
	}
}
