package glsl

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
)

// binaryOps lists the operators GLSL shares with the source language.
var binaryOps = map[ast.BinaryOp]string{
	ast.BinAdd: "+",
	ast.BinSub: "-",
	ast.BinMul: "*",
	ast.BinDiv: "/",
	ast.BinAnd: "&&",
	ast.BinOr:  "||",
	ast.BinEq:  "==",
	ast.BinLt:  "<",
	ast.BinLe:  "<=",
	ast.BinNe:  "!=",
	ast.BinGe:  ">=",
	ast.BinGt:  ">",
}

var unaryOps = map[ast.UnaryOp]string{
	ast.UnNot: "!",
	ast.UnNeg: "-",
}

// exprTranslator emits expressions. Binary and unary forms are always fully
// parenthesized; grouping comes from the tree, never from GLSL precedence.
type exprTranslator struct{ t *Translator }

func (v exprTranslator) span(id ast.ExprID) source.Span {
	return v.t.b.Exprs.Get(id).Span
}

func (v exprTranslator) unsupported(id ast.ExprID) {
	v.t.errorf(diag.GlsUnsupportedExpr, v.span(id), "can't translate this sort of expression")
}

func (v exprTranslator) VisitLit(id ast.ExprID, lit *ast.ExprLitData) {
	switch lit.Kind {
	case ast.LitInt, ast.LitFloat:
		v.t.write(lit.Text)
	default:
		v.t.errorf(diag.GlsUnsupportedLiteral, v.span(id), "can't translate this literal")
	}
}

func (v exprTranslator) VisitPath(id ast.ExprID, path *ast.Path) {
	name, ok := v.t.simplePath(path)
	if !ok {
		v.t.errorf(diag.GlsQualifiedName, v.span(id), "can't translate qualified / parametrized name")
		return
	}
	v.t.write(unescape(name))
}

func (v exprTranslator) VisitBinary(id ast.ExprID, bin *ast.ExprBinaryData) {
	op, ok := binaryOps[bin.Op]
	if !ok {
		v.t.errorf(diag.GlsUnsupportedBinaryOp, v.span(id), "binary operator not supported")
	}
	v.t.write("(")
	v.t.Expr(bin.Left)
	v.t.write(" " + op + " ")
	v.t.Expr(bin.Right)
	v.t.write(")")
}

func (v exprTranslator) VisitUnary(id ast.ExprID, un *ast.ExprUnaryData) {
	op, ok := unaryOps[un.Op]
	if !ok {
		v.t.errorf(diag.GlsUnsupportedUnaryOp, v.span(id), "unary operator not supported")
	}
	v.t.write("(" + op + " ")
	v.t.Expr(un.Operand)
	v.t.write(")")
}

// VisitIf emits a statement-form if; an else arm is itself an expression,
// so `else if` chains fall out of the recursion.
func (v exprTranslator) VisitIf(_ ast.ExprID, ifx *ast.ExprIfData) {
	v.t.write("if (")
	v.t.Expr(ifx.Cond)
	v.t.write(") {\n")
	v.t.Block(ifx.Then, false)
	if ifx.Else.IsValid() {
		v.t.write("}\nelse ")
		v.t.Expr(ifx.Else)
	} else {
		v.t.write("}\n")
	}
}

func (v exprTranslator) VisitAssign(_ ast.ExprID, as *ast.ExprAssignData) {
	v.t.write("(")
	v.t.Expr(as.Left)
	v.t.write(" = ")
	v.t.Expr(as.Right)
	v.t.write(")")
}

func (v exprTranslator) VisitReturn(_ ast.ExprID, ret *ast.ExprReturnData) {
	v.t.write("return")
	if ret.Value.IsValid() {
		v.t.write(" ")
		v.t.Expr(ret.Value)
	}
	v.t.write(";\n")
}

func (v exprTranslator) VisitCall(_ ast.ExprID, call *ast.ExprCallData) {
	v.t.Expr(call.Callee)
	v.t.write("(")
	for i, arg := range call.Args {
		if i != 0 {
			v.t.write(", ")
		}
		v.t.Expr(arg)
	}
	v.t.write(")")
}

func (v exprTranslator) VisitField(_ ast.ExprID, f *ast.ExprFieldData) {
	v.t.Expr(f.Target)
	v.t.write("." + v.t.b.Name(f.Field))
}

func (v exprTranslator) VisitParen(_ ast.ExprID, p *ast.ExprParenData) {
	v.t.Expr(p.Inner)
}

func (v exprTranslator) VisitBlock(_ ast.ExprID, b *ast.ExprBlockData) {
	v.t.write("{\n")
	v.t.Block(b.Block, false)
	v.t.write("}\n")
}

func (v exprTranslator) VisitAssignOp(id ast.ExprID, _ *ast.ExprAssignOpData) { v.unsupported(id) }
func (v exprTranslator) VisitIndex(id ast.ExprID, _ *ast.ExprIndexData)       { v.unsupported(id) }
func (v exprTranslator) VisitCast(id ast.ExprID, _ *ast.ExprCastData)         { v.unsupported(id) }
func (v exprTranslator) VisitTuple(id ast.ExprID, _ *ast.ExprListData)        { v.unsupported(id) }
func (v exprTranslator) VisitArray(id ast.ExprID, _ *ast.ExprListData)        { v.unsupported(id) }
func (v exprTranslator) VisitWhile(id ast.ExprID, _ *ast.ExprWhileData)       { v.unsupported(id) }
func (v exprTranslator) VisitLoop(id ast.ExprID, _ *ast.ExprBlockData)        { v.unsupported(id) }
func (v exprTranslator) VisitBreak(id ast.ExprID)                             { v.unsupported(id) }
func (v exprTranslator) VisitContinue(id ast.ExprID)                          { v.unsupported(id) }

func (v exprTranslator) VisitMacroExpr(id ast.ExprID, _ *ast.ExprMacroData) {
	v.t.macroSurvived(v.span(id))
}
