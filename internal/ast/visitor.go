package ast

import "fmt"

// ExprVisitor has one method per ExprKind. Adding a kind without extending
// the interface, and every implementation, fails to compile at WalkExpr.
type ExprVisitor interface {
	VisitLit(id ExprID, lit *ExprLitData)
	VisitPath(id ExprID, path *Path)
	VisitBinary(id ExprID, bin *ExprBinaryData)
	VisitUnary(id ExprID, un *ExprUnaryData)
	VisitIf(id ExprID, ifx *ExprIfData)
	VisitAssign(id ExprID, as *ExprAssignData)
	VisitReturn(id ExprID, ret *ExprReturnData)
	VisitCall(id ExprID, call *ExprCallData)
	VisitField(id ExprID, field *ExprFieldData)
	VisitParen(id ExprID, paren *ExprParenData)
	VisitBlock(id ExprID, block *ExprBlockData)
	VisitAssignOp(id ExprID, as *ExprAssignOpData)
	VisitIndex(id ExprID, idx *ExprIndexData)
	VisitCast(id ExprID, cast *ExprCastData)
	VisitTuple(id ExprID, list *ExprListData)
	VisitArray(id ExprID, list *ExprListData)
	VisitWhile(id ExprID, w *ExprWhileData)
	VisitLoop(id ExprID, loop *ExprBlockData)
	VisitBreak(id ExprID)
	VisitContinue(id ExprID)
	VisitMacroExpr(id ExprID, mac *ExprMacroData)
}

// WalkExpr dispatches id to the visitor method for its kind.
func WalkExpr(exprs *Exprs, id ExprID, v ExprVisitor) {
	e := exprs.Get(id)
	if e == nil {
		panic(fmt.Sprintf("ast: expression %d does not exist", id))
	}
	switch e.Kind {
	case ExprLit:
		v.VisitLit(id, exprs.Lit(id))
	case ExprPath:
		v.VisitPath(id, exprs.Path(id))
	case ExprBinary:
		v.VisitBinary(id, exprs.Binary(id))
	case ExprUnary:
		v.VisitUnary(id, exprs.Unary(id))
	case ExprIf:
		v.VisitIf(id, exprs.If(id))
	case ExprAssign:
		v.VisitAssign(id, exprs.Assign(id))
	case ExprReturn:
		v.VisitReturn(id, exprs.Return(id))
	case ExprCall:
		v.VisitCall(id, exprs.Call(id))
	case ExprField:
		v.VisitField(id, exprs.Field(id))
	case ExprParen:
		v.VisitParen(id, exprs.Paren(id))
	case ExprBlock:
		v.VisitBlock(id, exprs.Block(id))
	case ExprAssignOp:
		v.VisitAssignOp(id, exprs.AssignOp(id))
	case ExprIndex:
		v.VisitIndex(id, exprs.Index(id))
	case ExprCast:
		v.VisitCast(id, exprs.Cast(id))
	case ExprTuple:
		v.VisitTuple(id, exprs.List(id))
	case ExprArray:
		v.VisitArray(id, exprs.List(id))
	case ExprWhile:
		v.VisitWhile(id, exprs.While(id))
	case ExprLoop:
		v.VisitLoop(id, exprs.Loop(id))
	case ExprBreak:
		v.VisitBreak(id)
	case ExprContinue:
		v.VisitContinue(id)
	case ExprMacro:
		v.VisitMacroExpr(id, exprs.Macro(id))
	default:
		panic(fmt.Sprintf("ast: unknown expression kind %d", e.Kind))
	}
}

type StmtVisitor interface {
	VisitLet(id StmtID, let *StmtLetData)
	VisitExprStmt(id StmtID, st *StmtExprData)
	VisitItemStmt(id StmtID, st *StmtItemData)
	VisitMacroStmt(id StmtID, st *StmtMacroData)
}

func WalkStmt(stmts *Stmts, id StmtID, v StmtVisitor) {
	st := stmts.Get(id)
	if st == nil {
		panic(fmt.Sprintf("ast: statement %d does not exist", id))
	}
	switch st.Kind {
	case StmtLet:
		v.VisitLet(id, stmts.Let(id))
	case StmtExpr:
		v.VisitExprStmt(id, stmts.Expr(id))
	case StmtItem:
		v.VisitItemStmt(id, stmts.Item(id))
	case StmtMacro:
		v.VisitMacroStmt(id, stmts.Macro(id))
	default:
		panic(fmt.Sprintf("ast: unknown statement kind %d", st.Kind))
	}
}

type ItemVisitor interface {
	VisitStatic(id ItemID, item *StaticItem)
	VisitConst(id ItemID, item *ConstItem)
	VisitFn(id ItemID, item *FnItem)
	VisitStruct(id ItemID, item *StructItem)
	VisitUse(id ItemID, item *UseItem)
	VisitMacroItem(id ItemID, item *MacroItem)
}

func WalkItem(items *Items, id ItemID, v ItemVisitor) {
	it := items.Get(id)
	if it == nil {
		panic(fmt.Sprintf("ast: item %d does not exist", id))
	}
	switch it.Kind {
	case ItemStatic:
		v.VisitStatic(id, items.Static(id))
	case ItemConst:
		v.VisitConst(id, items.Const(id))
	case ItemFn:
		v.VisitFn(id, items.Fn(id))
	case ItemStruct:
		v.VisitStruct(id, items.Struct(id))
	case ItemUse:
		v.VisitUse(id, items.Use(id))
	case ItemMacro:
		v.VisitMacroItem(id, items.Macro(id))
	default:
		panic(fmt.Sprintf("ast: unknown item kind %d", it.Kind))
	}
}

type TypeVisitor interface {
	VisitUnitType(id TypeID)
	VisitPathType(id TypeID, path *Path)
	VisitTupleType(id TypeID, tup *TypeTupleData)
	VisitRefType(id TypeID, ref *TypeRefData)
	VisitArrayType(id TypeID, arr *TypeArrayData)
	VisitNeverType(id TypeID)
}

func WalkType(types *Types, id TypeID, v TypeVisitor) {
	t := types.Get(id)
	if t == nil {
		panic(fmt.Sprintf("ast: type %d does not exist", id))
	}
	switch t.Kind {
	case TypeUnit:
		v.VisitUnitType(id)
	case TypePath:
		v.VisitPathType(id, types.Path(id))
	case TypeTuple:
		v.VisitTupleType(id, types.Tuple(id))
	case TypeRef:
		v.VisitRefType(id, types.Ref(id))
	case TypeArray:
		v.VisitArrayType(id, types.Array(id))
	case TypeNever:
		v.VisitNeverType(id)
	default:
		panic(fmt.Sprintf("ast: unknown type kind %d", t.Kind))
	}
}
