package ast

import "glassful/internal/source"

type MacroDelim uint8

const (
	MacroParen   MacroDelim = iota // name!(...)
	MacroBracket                   // name![...]
	MacroBrace                     // name!{...}
)

// MacroCall is an unexpanded invocation. Args is the raw text between the delimiters.
type MacroCall struct {
	Name  source.StringID
	Delim MacroDelim
	Args  string
	Span  source.Span
}

type Macros struct {
	Arena *Arena[MacroCall]
}

func NewMacros(capHint uint) *Macros {
	return &Macros{Arena: NewArena[MacroCall](capHint)}
}

func (m *Macros) New(call MacroCall) MacroID {
	return MacroID(m.Arena.Allocate(call))
}

func (m *Macros) Get(id MacroID) *MacroCall {
	return m.Arena.Get(uint32(id))
}
