package parser

import (
	"errors"
	"strconv"
	"strings"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/token"
)

var (
	intSuffixes = map[string]bool{
		"i8": true, "i16": true, "i32": true, "i64": true, "isize": true,
		"u8": true, "u16": true, "u32": true, "u64": true, "usize": true,
	}
	floatSuffixes = map[string]bool{"f32": true, "f64": true}
)

func (p *Parser) parseLiteral() (ast.ExprID, bool) {
	tok := p.advance()
	exprs := p.arenas.Exprs

	switch tok.Kind {
	case token.KwTrue, token.KwFalse:
		return exprs.NewLit(tok.Span, ast.ExprLitData{Kind: ast.LitBool, Text: tok.Text, Bool: tok.Kind == token.KwTrue}), true
	case token.StringLit:
		return exprs.NewLit(tok.Span, ast.ExprLitData{Kind: ast.LitStr, Text: tok.Text}), true
	case token.CharLit:
		return exprs.NewLit(tok.Span, ast.ExprLitData{Kind: ast.LitChar, Text: tok.Text}), true
	case token.IntLit:
		lit, ok := p.intLiteral(tok)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewLit(tok.Span, lit), true
	case token.FloatLit:
		lit, ok := p.floatLiteral(tok)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewLit(tok.Span, lit), true
	default:
		p.errAt(diag.SynExpectExpression, tok.Span, "expected literal")
		return ast.NoExprID, false
	}
}

// intLiteral разбирает `0x1F_u8` и подобные: префикс системы счисления, цифры, суффикс.
func (p *Parser) intLiteral(tok token.Token) (ast.ExprLitData, bool) {
	text := tok.Text
	base := 10
	digits := text
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			digits = text[2:]
		}
	}

	end := 0
	for end < len(digits) && (digits[end] == '_' || isDigitIn(digits[end], base)) {
		end++
	}
	suffix := digits[end:]
	digits = strings.ReplaceAll(digits[:end], "_", "")

	if suffix != "" && !intSuffixes[suffix] {
		p.errAt(diag.LexBadNumber, tok.Span, "invalid suffix `"+suffix+"` for number literal")
		return ast.ExprLitData{}, false
	}
	if digits == "" {
		p.errAt(diag.LexBadNumber, tok.Span, "integer literal has no digits")
		return ast.ExprLitData{}, false
	}
	val, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.errAt(diag.LexBadNumber, tok.Span, "integer literal is too large")
		} else {
			p.errAt(diag.LexBadNumber, tok.Span, "invalid digit in integer literal")
		}
		return ast.ExprLitData{}, false
	}
	return ast.ExprLitData{
		Kind:   ast.LitInt,
		Text:   strconv.FormatUint(val, 10),
		Suffix: suffix,
		Int:    val,
	}, true
}

// floatLiteral отделяет суффикс f32/f64 и убирает разделители `_`.
func (p *Parser) floatLiteral(tok token.Token) (ast.ExprLitData, bool) {
	text := tok.Text
	suffix := ""
	for s := range floatSuffixes {
		if strings.HasSuffix(text, s) {
			suffix = s
			text = strings.TrimSuffix(text, s)
			break
		}
	}
	text = strings.ReplaceAll(text, "_", "")
	if suffix == "" {
		// любой другой буквенный хвост: ошибка (`1.5u32`)
		if i := strings.IndexFunc(text, func(r rune) bool {
			return (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') && r != 'e' && r != 'E'
		}); i >= 0 {
			p.errAt(diag.LexBadNumber, tok.Span, "invalid suffix `"+text[i:]+"` for float literal")
			return ast.ExprLitData{}, false
		}
	}
	return ast.ExprLitData{Kind: ast.LitFloat, Text: text, Suffix: suffix}, true
}

func isDigitIn(b byte, base int) bool {
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return b >= '0' && b <= '7'
	case 16:
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return b >= '0' && b <= '9'
	}
}
