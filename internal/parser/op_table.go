package parser

import (
	"glassful/internal/ast"
	"glassful/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precAssignment     = 1  // = += -= *= /= %= ^= &= |= <<= >>=
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precComparison     = 4  // == != < <= > >= (неассоциативны)
	precBitwiseOr      = 5  // |
	precBitwiseXor     = 6  // ^
	precBitwiseAnd     = 7  // &
	precShift          = 8  // << >>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
	precCast           = 11 // as
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный)
func getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Eq, token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq, token.PercentEq,
		token.CaretEq, token.AmpEq, token.PipeEq, token.ShlEq, token.ShrEq:
		return precAssignment, true
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.Ne, token.Lt, token.Le, token.Gt, token.Ge:
		return precComparison, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.Shl, token.Shr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	default:
		return -1, false // не бинарный оператор
	}
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus: ast.BinAdd, token.Minus: ast.BinSub, token.Star: ast.BinMul,
	token.Slash: ast.BinDiv, token.Percent: ast.BinRem,
	token.AndAnd: ast.BinAnd, token.OrOr: ast.BinOr,
	token.Caret: ast.BinBitXor, token.Amp: ast.BinBitAnd, token.Pipe: ast.BinBitOr,
	token.Shl: ast.BinShl, token.Shr: ast.BinShr,
	token.EqEq: ast.BinEq, token.Lt: ast.BinLt, token.Le: ast.BinLe,
	token.Ne: ast.BinNe, token.Ge: ast.BinGe, token.Gt: ast.BinGt,
}

// compound assignment → его бинарный оператор
var assignOps = map[token.Kind]ast.BinaryOp{
	token.PlusEq: ast.BinAdd, token.MinusEq: ast.BinSub, token.StarEq: ast.BinMul,
	token.SlashEq: ast.BinDiv, token.PercentEq: ast.BinRem, token.CaretEq: ast.BinBitXor,
	token.AmpEq: ast.BinBitAnd, token.PipeEq: ast.BinBitOr,
	token.ShlEq: ast.BinShl, token.ShrEq: ast.BinShr,
}
