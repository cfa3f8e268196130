package ast

import "glassful/internal/source"

type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprPath
	ExprBinary
	ExprUnary
	ExprIf
	ExprAssign
	ExprReturn
	ExprCall
	ExprField
	ExprParen
	ExprBlock
	// parsed but not translatable
	ExprAssignOp
	ExprIndex
	ExprCast
	ExprTuple
	ExprArray
	ExprWhile
	ExprLoop
	ExprBreak
	ExprContinue
	// must not survive expansion
	ExprMacro
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitStr
	LitChar
)

// ExprLitData keeps the literal as written minus its suffix; Int also carries the value.
type ExprLitData struct {
	Kind   LitKind
	Text   string
	Suffix string
	Int    uint64
	Bool   bool
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprIfData struct {
	Cond ExprID
	Then BlockID
	Else ExprID // NoExprID, an ExprIf or an ExprBlock
}

type ExprAssignData struct {
	Left  ExprID
	Right ExprID
}

type ExprAssignOpData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprFieldData struct {
	Target ExprID
	Field  source.StringID
}

type ExprParenData struct {
	Inner ExprID
}

type ExprBlockData struct {
	Block BlockID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprCastData struct {
	Value ExprID
	Type  TypeID
}

type ExprListData struct {
	Elems []ExprID
}

type ExprWhileData struct {
	Cond ExprID
	Body BlockID
}

type ExprMacroData struct {
	Macro MacroID
}
