// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"glassful/internal/ast"
	"glassful/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed module:
// 1) every attribute and item span is non-empty and lies in sf
// 2) items follow each other in source order without overlapping
// 3) mod.Span covers the union of item spans (if any items exist)
func CheckSpanInvariants(b *ast.Builder, mod *ast.Module, sf *source.File) error {
	if b == nil || mod == nil || sf == nil {
		return fmt.Errorf("nil builder, module or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	inFile := func(what string, sp source.Span) error {
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s span: %v", what, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, lenContent)
		}
		return nil
	}

	for _, id := range mod.InnerAttrs {
		attr := b.Attrs.Get(id)
		if attr == nil {
			return fmt.Errorf("nil attribute for id=%d", id)
		}
		if err := inFile("attribute", attr.Span); err != nil {
			return err
		}
	}

	var union source.Span
	var prevEnd uint32
	for i, id := range mod.Items {
		item := b.Items.Get(id)
		if item == nil {
			return fmt.Errorf("nil item for id=%d", id)
		}
		sp := item.Span
		if err := inFile("item", sp); err != nil {
			return err
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("item span %v overlaps previous item ending at %d", sp, prevEnd)
		}
		prevEnd = sp.End
		if i == 0 {
			union = sp
		} else {
			union = union.Cover(sp)
		}
	}

	if len(mod.Items) > 0 {
		if union.Start < mod.Span.Start || union.End > mod.Span.End {
			return fmt.Errorf("module span %v does not cover union of items %v", mod.Span, union)
		}
	}
	return nil
}
