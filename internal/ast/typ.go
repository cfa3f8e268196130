package ast

import "glassful/internal/source"

type TypeKind uint8

const (
	TypeUnit  TypeKind = iota // ()
	TypePath                  // f32, vec4, a::b, Foo<T>
	TypeTuple                 // (A, B)
	TypeRef                   // &T, &mut T
	TypeArray                 // [T], [T; N]
	TypeNever                 // !
)

type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

type TypeTupleData struct {
	Elems []TypeID
}

type TypeRefData struct {
	Mut  bool
	Elem TypeID
}

type TypeArrayData struct {
	Elem TypeID
	Len  ExprID // NoExprID for a slice
}

type Types struct {
	Arena  *Arena[Type]
	Paths  *Arena[Path]
	Tuples *Arena[TypeTupleData]
	Refs   *Arena[TypeRefData]
	Arrays *Arena[TypeArrayData]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena:  NewArena[Type](capHint),
		Paths:  NewArena[Path](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
		Refs:   NewArena[TypeRefData](capHint),
		Arrays: NewArena[TypeArrayData](capHint),
	}
}

func (t *Types) new(kind TypeKind, sp source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: sp, Payload: payload}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewUnit(sp source.Span) TypeID  { return t.new(TypeUnit, sp, NoPayloadID) }
func (t *Types) NewNever(sp source.Span) TypeID { return t.new(TypeNever, sp, NoPayloadID) }

func (t *Types) NewPath(sp source.Span, path Path) TypeID {
	return t.new(TypePath, sp, PayloadID(t.Paths.Allocate(path)))
}

func (t *Types) NewTuple(sp source.Span, elems []TypeID) TypeID {
	return t.new(TypeTuple, sp, PayloadID(t.Tuples.Allocate(TypeTupleData{Elems: elems})))
}

func (t *Types) NewRef(sp source.Span, mut bool, elem TypeID) TypeID {
	return t.new(TypeRef, sp, PayloadID(t.Refs.Allocate(TypeRefData{Mut: mut, Elem: elem})))
}

func (t *Types) NewArray(sp source.Span, elem TypeID, length ExprID) TypeID {
	return t.new(TypeArray, sp, PayloadID(t.Arrays.Allocate(TypeArrayData{Elem: elem, Len: length})))
}

func (t *Types) Path(id TypeID) *Path {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypePath {
		return nil
	}
	return t.Paths.Get(uint32(typ.Payload))
}

func (t *Types) Tuple(id TypeID) *TypeTupleData {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeTuple {
		return nil
	}
	return t.Tuples.Get(uint32(typ.Payload))
}

func (t *Types) Ref(id TypeID) *TypeRefData {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeRef {
		return nil
	}
	return t.Refs.Get(uint32(typ.Payload))
}

func (t *Types) Array(id TypeID) *TypeArrayData {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeArray {
		return nil
	}
	return t.Arrays.Get(uint32(typ.Payload))
}
