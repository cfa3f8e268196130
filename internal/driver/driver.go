// Package driver runs the translation pipeline: parse, macro expansion,
// attribute processing and item translation, with diagnostics checkpoints
// between phases.
package driver

import (
	"context"
	"fmt"
	"strings"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/expand"
	"glassful/internal/glsl"
	"glassful/internal/lexer"
	"glassful/internal/observ"
	"glassful/internal/parser"
	"glassful/internal/source"
	"glassful/internal/trace"
)

// Options tune one translation call. The zero value is usable.
type Options struct {
	MaxDiagnostics int           // 0 = unlimited
	Timer          *observ.Timer // optional, shared between calls
}

// Error is returned when a checkpoint finds user diagnostics.
// Files holds the sources the spans in Bag point into.
type Error struct {
	Bag   *diag.Bag
	Files *source.FileSet
}

func (e *Error) Error() string {
	if e == nil || e.Bag == nil {
		return "translation failed"
	}
	for _, d := range e.Bag.Items() {
		if d.Severity < diag.SevError {
			continue
		}
		msg := d.Code.ID() + ": " + d.Message
		if more := e.errorCount() - 1; more > 0 {
			msg += fmt.Sprintf(" (and %d more)", more)
		}
		return msg
	}
	return "translation failed"
}

func (e *Error) errorCount() int {
	n := e.Bag.Dropped()
	for _, d := range e.Bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}

// Translate turns one source file into GLSL text.
// Internal faults are not recovered here; see TryTranslate.
func Translate(ctx context.Context, name, src string) (string, error) {
	return TranslateWithOptions(ctx, name, src, Options{})
}

// TranslateWithOptions is Translate with explicit options.
func TranslateWithOptions(ctx context.Context, name, src string, opts Options) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "translate", trace.CurrentSpan(ctx)).WithExtra("file", name)
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)

	checkpoint := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if bag.HasErrors() {
			return &Error{Bag: bag, Files: fs}
		}
		return nil
	}

	var mod *ast.Module
	runPhase(ctx, opts.Timer, "parse", func() string {
		lx := lexer.New(file, lexer.Options{Reporter: rep})
		res := parser.ParseFile(ctx, fs, lx, b, parser.Options{
			MaxErrors: uint(max(opts.MaxDiagnostics, 0)),
			Reporter:  rep,
		})
		mod = res.Module
		return fmt.Sprintf("%d items", len(mod.Items))
	})
	if err := checkpoint(); err != nil {
		return "", err
	}

	runPhase(ctx, opts.Timer, "expand", func() string {
		res := expand.Module(ctx, fs, b, mod, expand.Options{Reporter: rep})
		return fmt.Sprintf("%d expanded, %d failed", res.Expanded, res.Failed)
	})

	var preamble string
	runPhase(ctx, opts.Timer, "attributes", func() string {
		preamble = glsl.Preamble(b, mod.InnerAttrs, rep)
		return ""
	})
	if err := checkpoint(); err != nil {
		return "", err
	}

	tr := glsl.New(b, rep)
	runPhase(ctx, opts.Timer, "items", func() string {
		parent := trace.CurrentSpan(ctx)
		for _, id := range mod.Items {
			if ctx.Err() != nil {
				return "canceled"
			}
			sp := trace.Begin(tracer, trace.ScopeItem, itemLabel(b, id), parent)
			before := tr.Len()
			tr.Item(id)
			sp.WithExtra("bytes", fmt.Sprint(tr.Len()-before)).End("")
		}
		return fmt.Sprintf("%d bytes", tr.Len())
	})
	if err := checkpoint(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(preamble) + tr.Len())
	sb.WriteString(preamble)
	sb.WriteString(tr.Output())
	return sb.String(), nil
}

// runPhase wraps fn in a pass span and a timer phase. fn returns the note
// recorded on both.
func runPhase(ctx context.Context, timer *observ.Timer, name string, fn func() string) {
	tracer := trace.FromContext(ctx)
	sp := trace.Begin(tracer, trace.ScopePass, name, trace.CurrentSpan(ctx))
	idx := timer.Begin(name)
	note := fn()
	timer.End(idx, note)
	sp.End(note)
}

func itemLabel(b *ast.Builder, id ast.ItemID) string {
	item := b.Items.Get(id)
	if item == nil {
		return "item"
	}
	if name := b.Name(item.Name); name != "" {
		return "item:" + name
	}
	return "item:" + item.Kind.String()
}
