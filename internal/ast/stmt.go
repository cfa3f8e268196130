package ast

import "glassful/internal/source"

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtItem
	StmtMacro
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtLetData struct {
	Pat  PatID
	Type TypeID // NoTypeID when omitted
	Init ExprID // NoExprID when omitted
}

// StmtExprData: Semi is false for a block tail expression or a block-like statement without `;`.
type StmtExprData struct {
	Expr ExprID
	Semi bool
}

type StmtItemData struct {
	Item ItemID
}

type StmtMacroData struct {
	Macro MacroID
	Semi  bool
}

type Stmts struct {
	Arena  *Arena[Stmt]
	Lets   *Arena[StmtLetData]
	Exprs  *Arena[StmtExprData]
	Items  *Arena[StmtItemData]
	Macros *Arena[StmtMacroData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:  NewArena[Stmt](capHint),
		Lets:   NewArena[StmtLetData](capHint),
		Exprs:  NewArena[StmtExprData](capHint),
		Items:  NewArena[StmtItemData](capHint),
		Macros: NewArena[StmtMacroData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, sp source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: sp, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewLet(sp source.Span, pat PatID, typ TypeID, init ExprID) StmtID {
	return s.new(StmtLet, sp, PayloadID(s.Lets.Allocate(StmtLetData{Pat: pat, Type: typ, Init: init})))
}

func (s *Stmts) NewExpr(sp source.Span, expr ExprID, semi bool) StmtID {
	return s.new(StmtExpr, sp, PayloadID(s.Exprs.Allocate(StmtExprData{Expr: expr, Semi: semi})))
}

func (s *Stmts) NewItem(sp source.Span, item ItemID) StmtID {
	return s.new(StmtItem, sp, PayloadID(s.Items.Allocate(StmtItemData{Item: item})))
}

func (s *Stmts) NewMacro(sp source.Span, macro MacroID, semi bool) StmtID {
	return s.new(StmtMacro, sp, PayloadID(s.Macros.Allocate(StmtMacroData{Macro: macro, Semi: semi})))
}

// Replace overwrites a statement node in place, keeping its ID stable.
func (s *Stmts) Replace(id, with StmtID) {
	dst, src := s.Get(id), s.Get(with)
	if dst == nil || src == nil {
		return
	}
	*dst = *src
}

func (s *Stmts) Let(id StmtID) *StmtLetData {
	if st := s.Get(id); st != nil && st.Kind == StmtLet {
		return s.Lets.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Expr(id StmtID) *StmtExprData {
	if st := s.Get(id); st != nil && st.Kind == StmtExpr {
		return s.Exprs.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Item(id StmtID) *StmtItemData {
	if st := s.Get(id); st != nil && st.Kind == StmtItem {
		return s.Items.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) Macro(id StmtID) *StmtMacroData {
	if st := s.Get(id); st != nil && st.Kind == StmtMacro {
		return s.Macros.Get(uint32(st.Payload))
	}
	return nil
}

// Block is a braced statement sequence.
type Block struct {
	Span  source.Span
	Stmts []StmtID
}

type Blocks struct {
	Arena *Arena[Block]
}

func NewBlocks(capHint uint) *Blocks {
	return &Blocks{Arena: NewArena[Block](capHint)}
}

func (b *Blocks) New(sp source.Span, stmts []StmtID) BlockID {
	return BlockID(b.Arena.Allocate(Block{Span: sp, Stmts: stmts}))
}

func (b *Blocks) Get(id BlockID) *Block {
	return b.Arena.Get(uint32(id))
}
