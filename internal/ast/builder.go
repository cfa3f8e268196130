package ast

import (
	"glassful/internal/source"
)

type Hints struct{ Items, Stmts, Exprs, Types uint }

// Builder owns every arena of one parsed module.
type Builder struct {
	Strings *source.Interner
	Items   *Items
	Stmts   *Stmts
	Blocks  *Blocks
	Exprs   *Exprs
	Types   *Types
	Pats    *Pats
	Attrs   *Attrs
	Macros  *Macros
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if hints.Items == 0 {
		hints.Items = 1 << 5
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Strings: strings,
		Items:   NewItems(hints.Items),
		Stmts:   NewStmts(hints.Stmts),
		Blocks:  NewBlocks(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Types:   NewTypes(hints.Types),
		Pats:    NewPats(hints.Stmts),
		Attrs:   NewAttrs(hints.Items),
		Macros:  NewMacros(hints.Items),
	}
}

// Name returns the interned text for id, or "" if unknown.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}

// Intern is a shorthand for b.Strings.Intern.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
