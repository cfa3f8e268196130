package lexer

import (
	"glassful/internal/diag"
	"glassful/internal/token"
)

// collectLeadingTrivia накапливает пробелы, переводы строк и комментарии в lx.hold.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		ch := lx.cursor.Peek()

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			for c := lx.cursor.Peek(); c == ' ' || c == '\t' || c == '\r'; c = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case ch == '\n':
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaNewline, start)

		case ch == '/':
			_, b1, ok := lx.cursor.Peek2()
			if !ok {
				return
			}
			switch b1 {
			case '/':
				kind := token.TriviaLineComment
				if _, _, b2, ok3 := lx.cursor.Peek3(); ok3 && b2 == '/' {
					kind = token.TriviaDocLine
				}
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				lx.pushTrivia(kind, start)
			case '*':
				lx.scanBlockComment(start)
			default:
				return
			}

		default:
			return
		}
	}
}

// scanBlockComment поддерживает вложенные /* /* */ */.
func (lx *Lexer) scanBlockComment(start Mark) {
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
			break
		}
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '/' && b1 == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case ok && b0 == '*' && b1 == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	lx.pushTrivia(token.TriviaBlockComment, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
