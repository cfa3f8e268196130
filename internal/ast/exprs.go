package ast

import "glassful/internal/source"

// Exprs manages allocation of expressions and their per-kind payloads.
type Exprs struct {
	Arena     *Arena[Expr]
	Lits      *Arena[ExprLitData]
	Paths     *Arena[Path]
	Binaries  *Arena[ExprBinaryData]
	Unaries   *Arena[ExprUnaryData]
	Ifs       *Arena[ExprIfData]
	Assigns   *Arena[ExprAssignData]
	AssignOps *Arena[ExprAssignOpData]
	Returns   *Arena[ExprReturnData]
	Calls     *Arena[ExprCallData]
	Fields    *Arena[ExprFieldData]
	Parens    *Arena[ExprParenData]
	Blocks    *Arena[ExprBlockData]
	Indices   *Arena[ExprIndexData]
	Casts     *Arena[ExprCastData]
	Lists     *Arena[ExprListData] // tuples and arrays
	Whiles    *Arena[ExprWhileData]
	Loops     *Arena[ExprBlockData]
	Macros    *Arena[ExprMacroData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Lits:      NewArena[ExprLitData](capHint),
		Paths:     NewArena[Path](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Ifs:       NewArena[ExprIfData](capHint),
		Assigns:   NewArena[ExprAssignData](capHint),
		AssignOps: NewArena[ExprAssignOpData](capHint),
		Returns:   NewArena[ExprReturnData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		Fields:    NewArena[ExprFieldData](capHint),
		Parens:    NewArena[ExprParenData](capHint),
		Blocks:    NewArena[ExprBlockData](capHint),
		Indices:   NewArena[ExprIndexData](capHint),
		Casts:     NewArena[ExprCastData](capHint),
		Lists:     NewArena[ExprListData](capHint),
		Whiles:    NewArena[ExprWhileData](capHint),
		Loops:     NewArena[ExprBlockData](capHint),
		Macros:    NewArena[ExprMacroData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewLit(sp source.Span, lit ExprLitData) ExprID {
	return e.new(ExprLit, sp, PayloadID(e.Lits.Allocate(lit)))
}

func (e *Exprs) NewPath(sp source.Span, path Path) ExprID {
	return e.new(ExprPath, sp, PayloadID(e.Paths.Allocate(path)))
}

func (e *Exprs) NewBinary(sp source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, sp, PayloadID(e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})))
}

func (e *Exprs) NewUnary(sp source.Span, op UnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, sp, PayloadID(e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})))
}

func (e *Exprs) NewIf(sp source.Span, cond ExprID, then BlockID, els ExprID) ExprID {
	return e.new(ExprIf, sp, PayloadID(e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})))
}

func (e *Exprs) NewAssign(sp source.Span, left, right ExprID) ExprID {
	return e.new(ExprAssign, sp, PayloadID(e.Assigns.Allocate(ExprAssignData{Left: left, Right: right})))
}

func (e *Exprs) NewAssignOp(sp source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprAssignOp, sp, PayloadID(e.AssignOps.Allocate(ExprAssignOpData{Op: op, Left: left, Right: right})))
}

func (e *Exprs) NewReturn(sp source.Span, value ExprID) ExprID {
	return e.new(ExprReturn, sp, PayloadID(e.Returns.Allocate(ExprReturnData{Value: value})))
}

func (e *Exprs) NewCall(sp source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, sp, PayloadID(e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})))
}

func (e *Exprs) NewField(sp source.Span, target ExprID, field source.StringID) ExprID {
	return e.new(ExprField, sp, PayloadID(e.Fields.Allocate(ExprFieldData{Target: target, Field: field})))
}

func (e *Exprs) NewParen(sp source.Span, inner ExprID) ExprID {
	return e.new(ExprParen, sp, PayloadID(e.Parens.Allocate(ExprParenData{Inner: inner})))
}

func (e *Exprs) NewBlock(sp source.Span, block BlockID) ExprID {
	return e.new(ExprBlock, sp, PayloadID(e.Blocks.Allocate(ExprBlockData{Block: block})))
}

func (e *Exprs) NewIndex(sp source.Span, target, index ExprID) ExprID {
	return e.new(ExprIndex, sp, PayloadID(e.Indices.Allocate(ExprIndexData{Target: target, Index: index})))
}

func (e *Exprs) NewCast(sp source.Span, value ExprID, typ TypeID) ExprID {
	return e.new(ExprCast, sp, PayloadID(e.Casts.Allocate(ExprCastData{Value: value, Type: typ})))
}

func (e *Exprs) NewTuple(sp source.Span, elems []ExprID) ExprID {
	return e.new(ExprTuple, sp, PayloadID(e.Lists.Allocate(ExprListData{Elems: elems})))
}

func (e *Exprs) NewArray(sp source.Span, elems []ExprID) ExprID {
	return e.new(ExprArray, sp, PayloadID(e.Lists.Allocate(ExprListData{Elems: elems})))
}

func (e *Exprs) NewWhile(sp source.Span, cond ExprID, body BlockID) ExprID {
	return e.new(ExprWhile, sp, PayloadID(e.Whiles.Allocate(ExprWhileData{Cond: cond, Body: body})))
}

func (e *Exprs) NewLoop(sp source.Span, body BlockID) ExprID {
	return e.new(ExprLoop, sp, PayloadID(e.Loops.Allocate(ExprBlockData{Block: body})))
}

func (e *Exprs) NewBreak(sp source.Span) ExprID    { return e.new(ExprBreak, sp, NoPayloadID) }
func (e *Exprs) NewContinue(sp source.Span) ExprID { return e.new(ExprContinue, sp, NoPayloadID) }

func (e *Exprs) NewMacro(sp source.Span, macro MacroID) ExprID {
	return e.new(ExprMacro, sp, PayloadID(e.Macros.Allocate(ExprMacroData{Macro: macro})))
}

// Replace overwrites an expression node in place, keeping its ID stable.
// The expander uses it to substitute macro calls with their results.
func (e *Exprs) Replace(id, with ExprID) {
	dst, src := e.Get(id), e.Get(with)
	if dst == nil || src == nil {
		return
	}
	*dst = *src
}

func (e *Exprs) Lit(id ExprID) *ExprLitData {
	if x := e.Get(id); x != nil && x.Kind == ExprLit {
		return e.Lits.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Path(id ExprID) *Path {
	if x := e.Get(id); x != nil && x.Kind == ExprPath {
		return e.Paths.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Binary(id ExprID) *ExprBinaryData {
	if x := e.Get(id); x != nil && x.Kind == ExprBinary {
		return e.Binaries.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Unary(id ExprID) *ExprUnaryData {
	if x := e.Get(id); x != nil && x.Kind == ExprUnary {
		return e.Unaries.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) If(id ExprID) *ExprIfData {
	if x := e.Get(id); x != nil && x.Kind == ExprIf {
		return e.Ifs.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Assign(id ExprID) *ExprAssignData {
	if x := e.Get(id); x != nil && x.Kind == ExprAssign {
		return e.Assigns.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) AssignOp(id ExprID) *ExprAssignOpData {
	if x := e.Get(id); x != nil && x.Kind == ExprAssignOp {
		return e.AssignOps.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Return(id ExprID) *ExprReturnData {
	if x := e.Get(id); x != nil && x.Kind == ExprReturn {
		return e.Returns.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Call(id ExprID) *ExprCallData {
	if x := e.Get(id); x != nil && x.Kind == ExprCall {
		return e.Calls.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Field(id ExprID) *ExprFieldData {
	if x := e.Get(id); x != nil && x.Kind == ExprField {
		return e.Fields.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Paren(id ExprID) *ExprParenData {
	if x := e.Get(id); x != nil && x.Kind == ExprParen {
		return e.Parens.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Block(id ExprID) *ExprBlockData {
	if x := e.Get(id); x != nil && x.Kind == ExprBlock {
		return e.Blocks.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Index(id ExprID) *ExprIndexData {
	if x := e.Get(id); x != nil && x.Kind == ExprIndex {
		return e.Indices.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Cast(id ExprID) *ExprCastData {
	if x := e.Get(id); x != nil && x.Kind == ExprCast {
		return e.Casts.Get(uint32(x.Payload))
	}
	return nil
}

// List returns the elements of a tuple or array expression.
func (e *Exprs) List(id ExprID) *ExprListData {
	if x := e.Get(id); x != nil && (x.Kind == ExprTuple || x.Kind == ExprArray) {
		return e.Lists.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) While(id ExprID) *ExprWhileData {
	if x := e.Get(id); x != nil && x.Kind == ExprWhile {
		return e.Whiles.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Loop(id ExprID) *ExprBlockData {
	if x := e.Get(id); x != nil && x.Kind == ExprLoop {
		return e.Loops.Get(uint32(x.Payload))
	}
	return nil
}

func (e *Exprs) Macro(id ExprID) *ExprMacroData {
	if x := e.Get(id); x != nil && x.Kind == ExprMacro {
		return e.Macros.Get(uint32(x.Payload))
	}
	return nil
}
