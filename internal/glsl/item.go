package glsl

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
)

type itemTranslator struct{ t *Translator }

func (v itemTranslator) header(id ast.ItemID) *ast.Item {
	item := v.t.b.Items.Get(id)
	if item.Vis != ast.VisPrivate {
		v.t.errorf(diag.GlsVisibility, item.Span, "`pub` visibility has no meaning")
	}
	return item
}

func (v itemTranslator) VisitStatic(id ast.ItemID, st *ast.StaticItem) {
	item := v.header(id)
	if st.Mut {
		v.t.errorf(diag.GlsMutableGlobal, item.Span, "variables are implicitly mutable")
	}
	v.variable(item, st.Type, st.Init)
}

func (v itemTranslator) VisitConst(id ast.ItemID, c *ast.ConstItem) {
	item := v.header(id)
	v.t.write("const ")
	v.variable(item, c.Type, c.Init)
}

// variable emits `<type> <name> = <init>;` for statics and consts.
func (v itemTranslator) variable(item *ast.Item, typ ast.TypeID, init ast.ExprID) {
	for _, a := range item.Attrs {
		v.t.errorf(diag.GlsVarAttribute, v.t.b.Attrs.Get(a).Span, "no variable attributes are supported")
	}
	v.t.Type(typ)
	v.t.write(" " + v.t.b.Name(item.Name) + " = ")
	v.t.Expr(init)
	v.t.write(";\n")
}

func (v itemTranslator) VisitFn(id ast.ItemID, fn *ast.FnItem) {
	item := v.header(id)
	for _, a := range item.Attrs {
		v.t.errorf(diag.GlsFnAttribute, v.t.b.Attrs.Get(a).Span, "no function attributes are supported")
	}
	if fn.Variadic {
		v.t.errorf(diag.GlsVariadicFn, item.Span, "can't translate variadic functions")
	}
	if fn.Unsafe {
		v.t.errorf(diag.GlsUnsafeFn, item.Span, "can't translate unsafe functions")
	}
	if fn.ABI != ast.DefaultABI {
		v.t.errorf(diag.GlsNonDefaultABI, item.Span, "can't translate non-default ABI")
	}
	if len(fn.Generics) > 0 {
		v.t.errorf(diag.GlsGenericFn, item.Span, "can't translate generic functions")
	}

	if fn.Ret.IsValid() {
		v.t.Type(fn.Ret)
	} else {
		v.t.write("void")
	}
	v.t.write(" " + v.t.b.Name(item.Name) + "(")
	for i, p := range fn.Params {
		if i != 0 {
			v.t.write(", ")
		}
		name, ok := v.t.patToVar(p.Pat)
		if !ok {
			v.t.errorf(diag.GlsParamNotVariable, p.Span, "function parameter must be a variable")
			continue
		}
		v.t.Type(p.Type)
		v.t.write(" " + name)
	}
	v.t.write(") {\n")
	v.t.Block(fn.Body, true)
	v.t.write("}\n")
}

func (v itemTranslator) VisitStruct(id ast.ItemID, _ *ast.StructItem) { v.unsupported(id) }
func (v itemTranslator) VisitUse(id ast.ItemID, _ *ast.UseItem)       { v.unsupported(id) }

func (v itemTranslator) VisitMacroItem(id ast.ItemID, _ *ast.MacroItem) {
	v.t.macroSurvived(v.t.b.Items.Get(id).Span)
}

func (v itemTranslator) unsupported(id ast.ItemID) {
	item := v.header(id)
	v.t.errorf(diag.GlsUnsupportedItem, item.Span, "can't translate this sort of item")
}
