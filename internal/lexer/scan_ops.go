package lexer

import (
	"glassful/internal/diag"
	"glassful/internal/token"
)

// Жадный разбор: сначала 3-символьные, потом 2-символьные, потом одиночные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if k, ok := lx.try3(); ok {
		return lx.emitOp(start, k)
	}
	if k, ok := lx.try2(); ok {
		return lx.emitOp(start, k)
	}

	ch := lx.cursor.Bump()
	k, ok := singleOps[ch]
	if !ok {
		// неизвестный байт: если это начало многобайтовой руны: съедаем её целиком
		if ch >= utf8RuneSelf {
			lx.cursor.Reset(start)
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return lx.emitOp(start, k)
}

var singleOps = map[byte]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '^': token.Caret, '!': token.Bang, '&': token.Amp,
	'|': token.Pipe, '=': token.Eq, '<': token.Lt, '>': token.Gt,
	'@': token.At, '_': token.Underscore, '.': token.Dot, ',': token.Comma,
	';': token.Semicolon, ':': token.Colon, '#': token.Pound, '?': token.Question,
	'(': token.LParen, ')': token.RParen, '{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
}

func (lx *Lexer) try3() (token.Kind, bool) {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok {
		return token.Invalid, false
	}
	var k token.Kind
	switch {
	case b0 == '.' && b1 == '.' && b2 == '.':
		k = token.DotDotDot
	case b0 == '<' && b1 == '<' && b2 == '=':
		k = token.ShlEq
	case b0 == '>' && b1 == '>' && b2 == '=':
		k = token.ShrEq
	default:
		return token.Invalid, false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return k, true
}

func (lx *Lexer) try2() (token.Kind, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return token.Invalid, false
	}
	var k token.Kind
	switch string([]byte{b0, b1}) {
	case "&&":
		k = token.AndAnd
	case "||":
		k = token.OrOr
	case "<<":
		k = token.Shl
	case ">>":
		k = token.Shr
	case "+=":
		k = token.PlusEq
	case "-=":
		k = token.MinusEq
	case "*=":
		k = token.StarEq
	case "/=":
		k = token.SlashEq
	case "%=":
		k = token.PercentEq
	case "^=":
		k = token.CaretEq
	case "&=":
		k = token.AmpEq
	case "|=":
		k = token.PipeEq
	case "==":
		k = token.EqEq
	case "!=":
		k = token.Ne
	case "<=":
		k = token.Le
	case ">=":
		k = token.Ge
	case "..":
		k = token.DotDot
	case "::":
		k = token.ColonColon
	case "->":
		k = token.Arrow
	case "=>":
		k = token.FatArrow
	default:
		return token.Invalid, false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return k, true
}

func (lx *Lexer) emitOp(start Mark, k token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
