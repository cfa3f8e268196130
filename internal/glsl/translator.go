package glsl

import (
	"strings"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
)

// Translator accumulates GLSL for one module.
type Translator struct {
	b   *ast.Builder
	rep diag.Reporter
	out strings.Builder
}

// New creates a translator over the arenas of b. A nil reporter drops diagnostics.
func New(b *ast.Builder, rep diag.Reporter) *Translator {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Translator{b: b, rep: rep}
}

// Output returns everything written so far.
func (t *Translator) Output() string {
	return t.out.String()
}

// Len is the number of bytes written so far.
func (t *Translator) Len() int {
	return t.out.Len()
}

// Item translates one top-level item and appends it to the output.
func (t *Translator) Item(id ast.ItemID) {
	ast.WalkItem(t.b.Items, id, itemTranslator{t})
}

// Expr translates one expression.
func (t *Translator) Expr(id ast.ExprID) {
	ast.WalkExpr(t.b.Exprs, id, exprTranslator{t})
}

// Type translates one type; unsupported shapes write nothing.
func (t *Translator) Type(id ast.TypeID) {
	ast.WalkType(t.b.Types, id, typeTranslator{t})
}

// Block translates the statements of a block, each terminated by ";\n".
//
// allowReturn marks the one position (a function body) where a trailing value
// expression could become an implicit return. That lowering is not enabled:
// tail expressions are emitted like any other expression statement.
func (t *Translator) Block(id ast.BlockID, allowReturn bool) {
	blk := t.b.Blocks.Get(id)
	if blk == nil {
		diag.Bug(t.rep, diag.BugInvariant, source.Span{}, "block does not exist")
	}
	st := stmtTranslator{t: t, allowReturn: allowReturn}
	for _, sid := range blk.Stmts {
		ast.WalkStmt(t.b.Stmts, sid, st)
	}
}

func (t *Translator) write(s string) {
	t.out.WriteString(s)
}

func (t *Translator) errorf(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(t.rep, code, sp, msg)
}

func (t *Translator) macroSurvived(sp source.Span) {
	diag.Bug(t.rep, diag.BugMacroSurvived, sp, "macros should be gone by now")
}
