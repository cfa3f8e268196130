package ast

type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinAnd // &&
	BinOr  // ||
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
)

var binaryOpText = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinRem: "%",
	BinAnd: "&&", BinOr: "||", BinBitXor: "^", BinBitAnd: "&", BinBitOr: "|",
	BinShl: "<<", BinShr: ">>", BinEq: "==", BinLt: "<", BinLe: "<=",
	BinNe: "!=", BinGe: ">=", BinGt: ">",
}

// String returns the source spelling of the operator.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

type UnaryOp uint8

const (
	UnNeg    UnaryOp = iota // -x
	UnNot                   // !x
	UnDeref                 // *x
	UnRef                   // &x
	UnRefMut                // &mut x
)

func (op UnaryOp) String() string {
	switch op {
	case UnNeg:
		return "-"
	case UnNot:
		return "!"
	case UnDeref:
		return "*"
	case UnRef:
		return "&"
	case UnRefMut:
		return "&mut "
	default:
		return "?"
	}
}
