package ast

import "glassful/internal/source"

type PatKind uint8

const (
	PatIdent PatKind = iota
	PatWild
	PatTuple
)

type Pat struct {
	Kind    PatKind
	Span    source.Span
	Payload PayloadID
}

type PatIdentData struct {
	Name  source.StringID
	Mut   bool
	ByRef bool
}

type PatTupleData struct {
	Elems []PatID
}

type Pats struct {
	Arena  *Arena[Pat]
	Idents *Arena[PatIdentData]
	Tuples *Arena[PatTupleData]
}

func NewPats(capHint uint) *Pats {
	return &Pats{
		Arena:  NewArena[Pat](capHint),
		Idents: NewArena[PatIdentData](capHint),
		Tuples: NewArena[PatTupleData](capHint),
	}
}

func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}

func (p *Pats) NewIdent(sp source.Span, name source.StringID, mut, byRef bool) PatID {
	payload := PayloadID(p.Idents.Allocate(PatIdentData{Name: name, Mut: mut, ByRef: byRef}))
	return PatID(p.Arena.Allocate(Pat{Kind: PatIdent, Span: sp, Payload: payload}))
}

func (p *Pats) NewWild(sp source.Span) PatID {
	return PatID(p.Arena.Allocate(Pat{Kind: PatWild, Span: sp}))
}

func (p *Pats) NewTuple(sp source.Span, elems []PatID) PatID {
	payload := PayloadID(p.Tuples.Allocate(PatTupleData{Elems: elems}))
	return PatID(p.Arena.Allocate(Pat{Kind: PatTuple, Span: sp, Payload: payload}))
}

// Ident returns the payload of an identifier pattern, or nil for other kinds.
func (p *Pats) Ident(id PatID) *PatIdentData {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatIdent {
		return nil
	}
	return p.Idents.Get(uint32(pat.Payload))
}

func (p *Pats) Tuple(id PatID) *PatTupleData {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatTuple {
		return nil
	}
	return p.Tuples.Get(uint32(pat.Payload))
}
