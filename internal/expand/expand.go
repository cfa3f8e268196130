// Package expand resolves macro invocations left in the tree by the parser.
//
// Built-in macros are replaced in place by the nodes they produce. Unknown
// macros are reported and left untouched; callers must stop at the next
// diagnostics checkpoint, since only a clean expansion guarantees that no
// macro node remains.
package expand

import (
	"context"
	"fmt"
	"strings"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	Expanded int // built-in invocations replaced
	Failed   int // invocations reported as errors
}

// builtin produces the replacement literal for an expression-position call.
type builtin func(pos source.LineCol) uint64

var builtins = map[string]builtin{
	"line":   func(pos source.LineCol) uint64 { return uint64(pos.Line) },
	"column": func(pos source.LineCol) uint64 { return uint64(pos.Col) },
}

// Expander walks one module. It implements the ast visitor interfaces.
type Expander struct {
	ctx    context.Context
	fs     *source.FileSet
	b      *ast.Builder
	rep    diag.Reporter
	result Result
}

// Module expands every macro invocation reachable from mod.
func Module(ctx context.Context, fs *source.FileSet, b *ast.Builder, mod *ast.Module, opts Options) Result {
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	e := &Expander{ctx: ctx, fs: fs, b: b, rep: rep}
	for _, id := range mod.Items {
		if ctx.Err() != nil {
			break
		}
		ast.WalkItem(b.Items, id, e)
	}
	return e.result
}

// resolve checks a call and returns the literal it expands to.
func (e *Expander) resolve(call *ast.MacroCall) (ast.ExprLitData, bool) {
	name := e.b.Name(call.Name)
	fn, ok := builtins[name]
	if !ok {
		e.fail(diag.MacUndefined, call.Span, fmt.Sprintf("cannot find macro `%s` in this scope", name))
		return ast.ExprLitData{}, false
	}
	if strings.TrimSpace(call.Args) != "" {
		e.fail(diag.MacBadArgs, call.Span, fmt.Sprintf("`%s!` takes no arguments", name))
		return ast.ExprLitData{}, false
	}
	start, _ := e.fs.Resolve(call.Span)
	v := fn(start)
	e.result.Expanded++
	return ast.ExprLitData{Kind: ast.LitInt, Text: fmt.Sprint(v), Suffix: "u32", Int: v}, true
}

func (e *Expander) fail(code diag.Code, sp source.Span, msg string) {
	e.result.Failed++
	diag.ReportError(e.rep, code, sp, msg)
}

func (e *Expander) expr(id ast.ExprID) {
	if id.IsValid() {
		ast.WalkExpr(e.b.Exprs, id, e)
	}
}

func (e *Expander) block(id ast.BlockID) {
	blk := e.b.Blocks.Get(id)
	if blk == nil {
		return
	}
	for _, st := range blk.Stmts {
		ast.WalkStmt(e.b.Stmts, st, e)
	}
}

func (e *Expander) typ(id ast.TypeID) {
	if id.IsValid() {
		ast.WalkType(e.b.Types, id, e)
	}
}

func (e *Expander) path(p *ast.Path) {
	for _, seg := range p.Segments {
		for _, g := range seg.Generics {
			e.typ(g)
		}
	}
}

// --- items ---

func (e *Expander) VisitStatic(_ ast.ItemID, item *ast.StaticItem) {
	e.typ(item.Type)
	e.expr(item.Init)
}

func (e *Expander) VisitConst(_ ast.ItemID, item *ast.ConstItem) {
	e.typ(item.Type)
	e.expr(item.Init)
}

func (e *Expander) VisitFn(_ ast.ItemID, item *ast.FnItem) {
	for _, p := range item.Params {
		e.typ(p.Type)
	}
	e.typ(item.Ret)
	e.block(item.Body)
}

func (e *Expander) VisitStruct(_ ast.ItemID, item *ast.StructItem) {
	for _, f := range item.Fields {
		e.typ(f.Type)
	}
}

func (e *Expander) VisitUse(ast.ItemID, *ast.UseItem) {}

func (e *Expander) VisitMacroItem(_ ast.ItemID, item *ast.MacroItem) {
	call := e.b.Macros.Get(item.Macro)
	name := e.b.Name(call.Name)
	if _, ok := builtins[name]; ok {
		e.fail(diag.MacPosition, call.Span, fmt.Sprintf("macro `%s!` expands to an expression and cannot be used as an item", name))
		return
	}
	e.fail(diag.MacUndefined, call.Span, fmt.Sprintf("cannot find macro `%s` in this scope", name))
}

// --- statements ---

func (e *Expander) VisitLet(_ ast.StmtID, let *ast.StmtLetData) {
	e.typ(let.Type)
	e.expr(let.Init)
}

func (e *Expander) VisitExprStmt(_ ast.StmtID, st *ast.StmtExprData) {
	e.expr(st.Expr)
}

func (e *Expander) VisitItemStmt(_ ast.StmtID, st *ast.StmtItemData) {
	ast.WalkItem(e.b.Items, st.Item, e)
}

// VisitMacroStmt turns `line!();` into the expression statement `<n>;`.
func (e *Expander) VisitMacroStmt(id ast.StmtID, st *ast.StmtMacroData) {
	call := e.b.Macros.Get(st.Macro)
	lit, ok := e.resolve(call)
	if !ok {
		return
	}
	sp := e.b.Stmts.Get(id).Span
	expr := e.b.Exprs.NewLit(call.Span, lit)
	e.b.Stmts.Replace(id, e.b.Stmts.NewExpr(sp, expr, st.Semi))
}

// --- expressions ---

func (e *Expander) VisitLit(ast.ExprID, *ast.ExprLitData) {}

func (e *Expander) VisitPath(_ ast.ExprID, p *ast.Path) { e.path(p) }

func (e *Expander) VisitBinary(_ ast.ExprID, bin *ast.ExprBinaryData) {
	e.expr(bin.Left)
	e.expr(bin.Right)
}

func (e *Expander) VisitUnary(_ ast.ExprID, un *ast.ExprUnaryData) { e.expr(un.Operand) }

func (e *Expander) VisitIf(_ ast.ExprID, ifx *ast.ExprIfData) {
	e.expr(ifx.Cond)
	e.block(ifx.Then)
	e.expr(ifx.Else)
}

func (e *Expander) VisitAssign(_ ast.ExprID, as *ast.ExprAssignData) {
	e.expr(as.Left)
	e.expr(as.Right)
}

func (e *Expander) VisitReturn(_ ast.ExprID, ret *ast.ExprReturnData) { e.expr(ret.Value) }

func (e *Expander) VisitCall(_ ast.ExprID, call *ast.ExprCallData) {
	e.expr(call.Callee)
	for _, a := range call.Args {
		e.expr(a)
	}
}

func (e *Expander) VisitField(_ ast.ExprID, f *ast.ExprFieldData) { e.expr(f.Target) }

func (e *Expander) VisitParen(_ ast.ExprID, p *ast.ExprParenData) { e.expr(p.Inner) }

func (e *Expander) VisitBlock(_ ast.ExprID, b *ast.ExprBlockData) { e.block(b.Block) }

func (e *Expander) VisitAssignOp(_ ast.ExprID, as *ast.ExprAssignOpData) {
	e.expr(as.Left)
	e.expr(as.Right)
}

func (e *Expander) VisitIndex(_ ast.ExprID, idx *ast.ExprIndexData) {
	e.expr(idx.Target)
	e.expr(idx.Index)
}

func (e *Expander) VisitCast(_ ast.ExprID, c *ast.ExprCastData) {
	e.expr(c.Value)
	e.typ(c.Type)
}

func (e *Expander) VisitTuple(_ ast.ExprID, l *ast.ExprListData) {
	for _, x := range l.Elems {
		e.expr(x)
	}
}

func (e *Expander) VisitArray(id ast.ExprID, l *ast.ExprListData) { e.VisitTuple(id, l) }

func (e *Expander) VisitWhile(_ ast.ExprID, w *ast.ExprWhileData) {
	e.expr(w.Cond)
	e.block(w.Body)
}

func (e *Expander) VisitLoop(_ ast.ExprID, l *ast.ExprBlockData) { e.block(l.Block) }

func (e *Expander) VisitBreak(ast.ExprID)    {}
func (e *Expander) VisitContinue(ast.ExprID) {}

func (e *Expander) VisitMacroExpr(id ast.ExprID, mac *ast.ExprMacroData) {
	call := e.b.Macros.Get(mac.Macro)
	lit, ok := e.resolve(call)
	if !ok {
		return
	}
	e.b.Exprs.Replace(id, e.b.Exprs.NewLit(call.Span, lit))
}

// --- types ---

func (e *Expander) VisitUnitType(ast.TypeID)                      {}
func (e *Expander) VisitPathType(_ ast.TypeID, p *ast.Path)       { e.path(p) }
func (e *Expander) VisitNeverType(ast.TypeID)                     {}
func (e *Expander) VisitRefType(_ ast.TypeID, r *ast.TypeRefData) { e.typ(r.Elem) }

func (e *Expander) VisitTupleType(_ ast.TypeID, t *ast.TypeTupleData) {
	for _, x := range t.Elems {
		e.typ(x)
	}
}

func (e *Expander) VisitArrayType(_ ast.TypeID, a *ast.TypeArrayData) {
	e.typ(a.Elem)
	e.expr(a.Len)
}
