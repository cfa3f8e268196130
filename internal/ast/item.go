package ast

import "glassful/internal/source"

type ItemKind uint8

const (
	ItemStatic ItemKind = iota
	ItemConst
	ItemFn
	ItemStruct
	ItemUse
	ItemMacro
)

func (k ItemKind) String() string {
	switch k {
	case ItemStatic:
		return "static"
	case ItemConst:
		return "const"
	case ItemFn:
		return "fn"
	case ItemStruct:
		return "struct"
	case ItemUse:
		return "use"
	case ItemMacro:
		return "macro"
	default:
		return "unknown"
	}
}

type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Vis     Visibility
	VisSpan source.Span
	Name    source.StringID // NoStringID for use and macro items
	Attrs   []AttrID
	Payload PayloadID
}

type StaticItem struct {
	Mut  bool
	Type TypeID
	Init ExprID
}

type ConstItem struct {
	Type TypeID
	Init ExprID
}

type FnParam struct {
	Pat  PatID
	Type TypeID
	Span source.Span
}

// DefaultABI is the calling convention of a plain `fn` and of `extern "Rust" fn`.
const DefaultABI = ""

type FnItem struct {
	Params   []FnParam
	Variadic bool
	Unsafe   bool
	// ABI is DefaultABI unless the function is declared `extern`; a bare `extern` means "C".
	ABI      string
	Generics []source.StringID
	Ret      TypeID // NoTypeID for the default return type
	Body     BlockID
}

type StructField struct {
	Name source.StringID
	Type TypeID
	Span source.Span
}

type StructItem struct {
	Fields []StructField
}

type UseItem struct {
	Path Path
}

type MacroItem struct {
	Macro MacroID
}

type Items struct {
	Arena   *Arena[Item]
	Statics *Arena[StaticItem]
	Consts  *Arena[ConstItem]
	Fns     *Arena[FnItem]
	Structs *Arena[StructItem]
	Uses    *Arena[UseItem]
	Macros  *Arena[MacroItem]
}

func NewItems(capHint uint) *Items {
	return &Items{
		Arena:   NewArena[Item](capHint),
		Statics: NewArena[StaticItem](capHint),
		Consts:  NewArena[ConstItem](capHint),
		Fns:     NewArena[FnItem](capHint),
		Structs: NewArena[StructItem](capHint),
		Uses:    NewArena[UseItem](capHint),
		Macros:  NewArena[MacroItem](capHint),
	}
}

// ItemHeader carries what every item kind has in common.
type ItemHeader struct {
	Span    source.Span
	Vis     Visibility
	VisSpan source.Span
	Name    source.StringID
	Attrs   []AttrID
}

func (i *Items) new(kind ItemKind, h ItemHeader, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    h.Span,
		Vis:     h.Vis,
		VisSpan: h.VisSpan,
		Name:    h.Name,
		Attrs:   h.Attrs,
		Payload: payload,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewStatic(h ItemHeader, data StaticItem) ItemID {
	return i.new(ItemStatic, h, PayloadID(i.Statics.Allocate(data)))
}

func (i *Items) NewConst(h ItemHeader, data ConstItem) ItemID {
	return i.new(ItemConst, h, PayloadID(i.Consts.Allocate(data)))
}

func (i *Items) NewFn(h ItemHeader, data FnItem) ItemID {
	return i.new(ItemFn, h, PayloadID(i.Fns.Allocate(data)))
}

func (i *Items) NewStruct(h ItemHeader, data StructItem) ItemID {
	return i.new(ItemStruct, h, PayloadID(i.Structs.Allocate(data)))
}

func (i *Items) NewUse(h ItemHeader, data UseItem) ItemID {
	return i.new(ItemUse, h, PayloadID(i.Uses.Allocate(data)))
}

func (i *Items) NewMacro(h ItemHeader, macro MacroID) ItemID {
	return i.new(ItemMacro, h, PayloadID(i.Macros.Allocate(MacroItem{Macro: macro})))
}

func (i *Items) Static(id ItemID) *StaticItem {
	if it := i.Get(id); it != nil && it.Kind == ItemStatic {
		return i.Statics.Get(uint32(it.Payload))
	}
	return nil
}

func (i *Items) Const(id ItemID) *ConstItem {
	if it := i.Get(id); it != nil && it.Kind == ItemConst {
		return i.Consts.Get(uint32(it.Payload))
	}
	return nil
}

func (i *Items) Fn(id ItemID) *FnItem {
	if it := i.Get(id); it != nil && it.Kind == ItemFn {
		return i.Fns.Get(uint32(it.Payload))
	}
	return nil
}

func (i *Items) Struct(id ItemID) *StructItem {
	if it := i.Get(id); it != nil && it.Kind == ItemStruct {
		return i.Structs.Get(uint32(it.Payload))
	}
	return nil
}

func (i *Items) Use(id ItemID) *UseItem {
	if it := i.Get(id); it != nil && it.Kind == ItemUse {
		return i.Uses.Get(uint32(it.Payload))
	}
	return nil
}

func (i *Items) Macro(id ItemID) *MacroItem {
	if it := i.Get(id); it != nil && it.Kind == ItemMacro {
		return i.Macros.Get(uint32(it.Payload))
	}
	return nil
}
