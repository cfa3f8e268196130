package glsl

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
)

type stmtTranslator struct {
	t           *Translator
	allowReturn bool // see Translator.Block
}

// VisitLet emits `<type> <name>[ = <init>];`.
func (v stmtTranslator) VisitLet(id ast.StmtID, let *ast.StmtLetData) {
	sp := v.t.b.Stmts.Get(id).Span
	name, ok := v.t.patToVar(let.Pat)
	if !ok {
		v.t.errorf(diag.GlsLetNotVariable, sp, "`let` binding must be a variable")
		return
	}
	if !let.Type.IsValid() {
		v.t.errorf(diag.GlsLetMissingType, sp, "`let` bindings must specify a type")
		return
	}
	v.t.Type(let.Type)
	v.t.write(" " + name)
	if let.Init.IsValid() {
		v.t.write(" = ")
		v.t.Expr(let.Init)
	}
	v.t.write(";\n")
}

// VisitExprStmt terminates every expression with ";\n", block-like or not.
func (v stmtTranslator) VisitExprStmt(_ ast.StmtID, st *ast.StmtExprData) {
	v.t.Expr(st.Expr)
	v.t.write(";\n")
}

func (v stmtTranslator) VisitItemStmt(id ast.StmtID, _ *ast.StmtItemData) {
	v.t.errorf(diag.GlsLocalItem, v.t.b.Stmts.Get(id).Span, "items in functions not supported")
}

func (v stmtTranslator) VisitMacroStmt(id ast.StmtID, _ *ast.StmtMacroData) {
	v.t.macroSurvived(v.t.b.Stmts.Get(id).Span)
}
