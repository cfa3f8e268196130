package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, *ast.Module, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.glsl.rs", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := ParseFile(context.Background(), fs, lx, builder, Options{MaxErrors: 100, Reporter: reporter})
	if result.Bag != bag {
		t.Fatalf("result bag should be the reporter's bag")
	}
	return builder, result.Module, result.Bag
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.Module) {
	t.Helper()
	b, mod, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return b, mod
}

func expectParseError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	_, _, bag := parseSource(t, input)
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected %s for %q, got %s", code.ID(), input, diagnosticsSummary(bag))
}

// fnBody returns the statements of the first function in the module.
func fnBody(t *testing.T, b *ast.Builder, mod *ast.Module) []ast.StmtID {
	t.Helper()
	for _, id := range mod.Items {
		if fn := b.Items.Fn(id); fn != nil {
			return b.Blocks.Get(fn.Body).Stmts
		}
	}
	t.Fatal("no function in module")
	return nil
}

// exprShape renders an expression as an s-expression for structural checks.
func exprShape(b *ast.Builder, id ast.ExprID) string {
	e := b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprLit:
		return b.Exprs.Lit(id).Text
	case ast.ExprPath:
		path := b.Exprs.Path(id)
		parts := make([]string, len(path.Segments))
		for i, seg := range path.Segments {
			parts[i] = b.Name(seg.Name)
			if len(seg.Generics) > 0 {
				parts[i] += "<..>"
			}
		}
		return strings.Join(parts, "::")
	case ast.ExprBinary:
		bin := b.Exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", bin.Op, exprShape(b, bin.Left), exprShape(b, bin.Right))
	case ast.ExprUnary:
		un := b.Exprs.Unary(id)
		return fmt.Sprintf("(%s%s)", un.Op, exprShape(b, un.Operand))
	case ast.ExprAssign:
		as := b.Exprs.Assign(id)
		return fmt.Sprintf("(= %s %s)", exprShape(b, as.Left), exprShape(b, as.Right))
	case ast.ExprAssignOp:
		as := b.Exprs.AssignOp(id)
		return fmt.Sprintf("(%s= %s %s)", as.Op, exprShape(b, as.Left), exprShape(b, as.Right))
	case ast.ExprCall:
		call := b.Exprs.Call(id)
		args := make([]string, len(call.Args))
		for i, a := range call.Args {
			args[i] = exprShape(b, a)
		}
		return fmt.Sprintf("(call %s %s)", exprShape(b, call.Callee), strings.Join(args, " "))
	case ast.ExprField:
		f := b.Exprs.Field(id)
		return fmt.Sprintf("(. %s %s)", exprShape(b, f.Target), b.Name(f.Field))
	case ast.ExprParen:
		return fmt.Sprintf("(paren %s)", exprShape(b, b.Exprs.Paren(id).Inner))
	case ast.ExprCast:
		return fmt.Sprintf("(as %s)", exprShape(b, b.Exprs.Cast(id).Value))
	case ast.ExprIndex:
		ix := b.Exprs.Index(id)
		return fmt.Sprintf("(index %s %s)", exprShape(b, ix.Target), exprShape(b, ix.Index))
	case ast.ExprReturn:
		ret := b.Exprs.Return(id)
		if !ret.Value.IsValid() {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", exprShape(b, ret.Value))
	case ast.ExprMacro:
		return fmt.Sprintf("(macro %s)", b.Name(b.Macros.Get(b.Exprs.Macro(id).Macro).Name))
	default:
		return fmt.Sprintf("<kind %d>", e.Kind)
	}
}
