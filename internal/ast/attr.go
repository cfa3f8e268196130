package ast

import "glassful/internal/source"

type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota // #[...]
	AttrInner                  // #![...]
)

// Attr is one meta item: `name`, `name = "value"` or `name(arg, ...)`.
type Attr struct {
	Style AttrStyle
	Name  source.StringID
	// Value holds the unquoted string of `name = "value"`; HasValue tells it apart from "".
	Value    string
	HasValue bool
	// ValueIsString is false when the value literal was not a string (`name = 3`).
	ValueIsString bool
	Args          []source.StringID
	Span          source.Span
}

type Attrs struct {
	Arena *Arena[Attr]
}

func NewAttrs(capHint uint) *Attrs {
	return &Attrs{Arena: NewArena[Attr](capHint)}
}

func (a *Attrs) New(attr Attr) AttrID {
	return AttrID(a.Arena.Allocate(attr))
}

func (a *Attrs) Get(id AttrID) *Attr {
	return a.Arena.Get(uint32(id))
}
