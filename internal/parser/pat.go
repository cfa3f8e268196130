package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/token"
)

// pat := '_' | 'ref'? 'mut'? IDENT | '(' pat (',' pat)* ','? ')'
func (p *Parser) parsePat() (ast.PatID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Underscore:
		p.advance()
		return p.arenas.Pats.NewWild(tok.Span), true

	case token.LParen:
		p.advance()
		var elems []ast.PatID
		for !p.at(token.RParen) && !p.at(token.EOF) {
			elem, ok := p.parsePat()
			if !ok {
				return ast.NoPatID, false
			}
			elems = append(elems, elem)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close tuple pattern"); !ok {
			return ast.NoPatID, false
		}
		return p.arenas.Pats.NewTuple(tok.Span.Cover(p.lastSpan), elems), true

	case token.KwRef, token.KwMut, token.Ident:
		byRef := p.eat(token.KwRef)
		mut := p.eat(token.KwMut)
		name, sp, ok := p.parseIdent()
		if !ok {
			return ast.NoPatID, false
		}
		return p.arenas.Pats.NewIdent(tok.Span.Cover(sp), name, mut, byRef), true

	default:
		p.err(diag.SynUnexpectedToken, "expected pattern, found "+p.describePeek())
		return ast.NoPatID, false
	}
}
