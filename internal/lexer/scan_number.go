package lexer

import (
	"glassful/internal/diag"
	"glassful/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1., 1e-3, 1.0e+10
// и суффиксы (u32, f32 и т.д.): остаются в Token.Text, разбирает их парсер.
// Неверные формы: репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		_, b1, ok := lx.cursor.Peek2()
		if ok {
			var digit func(byte) bool
			switch b1 {
			case 'b', 'B':
				digit = func(b byte) bool { return b == '0' || b == '1' }
			case 'o', 'O':
				digit = func(b byte) bool { return b >= '0' && b <= '7' }
			case 'x', 'X':
				digit = isHex
			}
			if digit != nil {
				lx.cursor.Bump()
				lx.cursor.Bump()
				n := 0
				for digit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
					lx.cursor.Bump()
					n++
				}
				if n == 0 {
					sp := lx.cursor.SpanFrom(start)
					lx.errLex(diag.LexBadNumber, sp, "missing digits after integer base prefix")
					return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
				}
				lx.scanSuffix()
				return lx.emitNumber(start, token.IntLit)
			}
		}
	}

	// десятичная целая часть
	lx.eatDecimals()

	// дробная часть: "1.5", "1.": но не "1..2" и не "1.foo()"
	if lx.cursor.Peek() == '.' {
		_, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b1 == '.':
			// '..': не часть числа
		case ok && (isIdentStartByte(b1) || b1 >= utf8RuneSelf):
			// поле/метод на литерале
		default:
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.eatDecimals()
		}
	}

	// экспонента
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			if kind == token.IntLit {
				// "1e" без цифр: это суффикс, пусть разбирается ниже
				lx.cursor.Reset(mark)
			} else {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
		} else {
			kind = token.FloatLit
			lx.eatDecimals()
		}
	}

	if lx.scanSuffix() {
		// 1f32: float без точки
		sp := lx.cursor.SpanFrom(start)
		text := lx.file.Content[sp.Start:sp.End]
		if n := len(text); n >= 3 && text[n-3] == 'f' {
			kind = token.FloatLit
		}
	}
	return lx.emitNumber(start, kind)
}

func (lx *Lexer) eatDecimals() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// scanSuffix съедает [a-zA-Z_][a-zA-Z0-9_]* сразу после числа.
func (lx *Lexer) scanSuffix() bool {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return false
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return true
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
