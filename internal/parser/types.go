package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/token"
)

// type := '(' ')' | '(' type (',' type)* ','? ')' | '&' 'mut'? type | '[' type (';' expr)? ']' | '!' | path
func (p *Parser) parseType() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	types := p.arenas.Types

	switch tok.Kind {
	case token.LParen:
		p.advance()
		if p.eat(token.RParen) {
			return types.NewUnit(tok.Span.Cover(p.lastSpan)), true
		}
		first, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		if p.eat(token.RParen) {
			// (T): просто скобки
			return first, true
		}
		elems := []ast.TypeID{first}
		for p.eat(token.Comma) && !p.at(token.RParen) {
			elem, ok := p.parseType()
			if !ok {
				return ast.NoTypeID, false
			}
			elems = append(elems, elem)
		}
		if _, ok = p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close tuple type"); !ok {
			return ast.NoTypeID, false
		}
		return types.NewTuple(tok.Span.Cover(p.lastSpan), elems), true

	case token.Amp, token.AndAnd:
		p.advance()
		mut := p.eat(token.KwMut)
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		ref := types.NewRef(tok.Span.Cover(p.lastSpan), mut, elem)
		if tok.Kind == token.AndAnd {
			ref = types.NewRef(tok.Span.Cover(p.lastSpan), false, ref)
		}
		return ref, true

	case token.LBracket:
		p.advance()
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		length := ast.NoExprID
		if p.eat(token.Semicolon) {
			if length, ok = p.parseExpr(); !ok {
				return ast.NoTypeID, false
			}
		}
		if _, ok = p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected `]` to close array type"); !ok {
			return ast.NoTypeID, false
		}
		return types.NewArray(tok.Span.Cover(p.lastSpan), elem, length), true

	case token.Bang:
		p.advance()
		return types.NewNever(tok.Span), true

	case token.Ident, token.KwSelf, token.KwSuper, token.KwCrate, token.ColonColon:
		path, ok := p.parsePath(false)
		if !ok {
			return ast.NoTypeID, false
		}
		return types.NewPath(path.Span, path), true

	default:
		p.err(diag.SynExpectType, "expected type, found "+p.describePeek())
		return ast.NoTypeID, false
	}
}

// parsePath разбирает `a::b::<T>`. В типах generic-аргументы допускаются и без `::`.
func (p *Parser) parsePath(inExpr bool) (ast.Path, bool) {
	start := p.lx.Peek().Span
	path := ast.Path{Global: p.eat(token.ColonColon)}
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Ident, token.KwSelf, token.KwSuper, token.KwCrate:
			p.advance()
		default:
			p.err(diag.SynExpectIdentifier, "expected identifier in path, found "+p.describePeek())
			return ast.Path{}, false
		}
		seg := ast.PathSegment{Name: p.arenas.Intern(tok.Text), Span: tok.Span}

		switch {
		case p.at(token.ColonColon) && p.lx.PeekN(1).Kind == token.Lt:
			p.advance() // ::
			seg.Turbofish = true
			args, ok := p.parseGenericArgs()
			if !ok {
				return ast.Path{}, false
			}
			seg.Generics = args
		case !inExpr && p.at(token.Lt):
			args, ok := p.parseGenericArgs()
			if !ok {
				return ast.Path{}, false
			}
			seg.Generics = args
		}
		seg.Span = seg.Span.Cover(p.lastSpan)
		path.Segments = append(path.Segments, seg)

		if !p.at(token.ColonColon) {
			break
		}
		p.advance()
	}
	path.Span = start.Cover(p.lastSpan)
	return path, true
}

// generic_args := '<' type (',' type)* ','? '>'
func (p *Parser) parseGenericArgs() ([]ast.TypeID, bool) {
	p.advance() // '<'
	var args []ast.TypeID
	for !p.atGenericClose() && !p.at(token.EOF) {
		arg, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.eatGenericClose() {
		p.err(diag.SynUnclosedDelimiter, "expected `>` to close generic arguments, found "+p.describePeek())
		return nil, false
	}
	return args, true
}

func (p *Parser) atGenericClose() bool {
	return p.splitGt || p.at(token.Gt) || p.at(token.Shr)
}

// eatGenericClose закрывает список generic-аргументов; `>>` закрывает два списка сразу.
func (p *Parser) eatGenericClose() bool {
	switch {
	case p.splitGt:
		p.splitGt = false
		p.advance()
		return true
	case p.at(token.Gt):
		p.advance()
		return true
	case p.at(token.Shr):
		p.splitGt = true
		return true
	default:
		return false
	}
}
