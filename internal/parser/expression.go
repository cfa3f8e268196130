package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/token"
)

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precAssignment)
}

// parseBinaryExpr: Pratt-цикл по таблице приоритетов.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	exprs := p.arenas.Exprs

	for {
		tok := p.lx.Peek()

		if tok.Kind == token.KwAs {
			if precCast < minPrec {
				break
			}
			p.advance()
			typ, ok := p.parseType()
			if !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewCast(exprs.Get(left).Span.Cover(p.lastSpan), left, typ)
			continue
		}

		prec, rightAssoc := getBinaryOperatorPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			break
		}
		p.advance()

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			return ast.NoExprID, false
		}
		sp := exprs.Get(left).Span.Cover(exprs.Get(right).Span)

		switch {
		case tok.Kind == token.Eq:
			left = exprs.NewAssign(sp, left, right)
		case prec == precAssignment:
			left = exprs.NewAssignOp(sp, assignOps[tok.Kind], left, right)
		default:
			left = exprs.NewBinary(sp, binaryOps[tok.Kind], left, right)
			if prec == precComparison {
				if next, _ := getBinaryOperatorPrec(p.lx.Peek().Kind); next == precComparison {
					p.err(diag.SynChainedComparison, "comparison operators cannot be chained")
					return ast.NoExprID, false
				}
			}
		}
	}
	return left, true
}

// unary := ('-' | '!' | '*' | '&' 'mut'?) unary | postfix
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	var op ast.UnaryOp
	switch tok.Kind {
	case token.Minus:
		op = ast.UnNeg
	case token.Bang:
		op = ast.UnNot
	case token.Star:
		op = ast.UnDeref
	case token.Amp, token.AndAnd:
		op = ast.UnRef
	default:
		return p.parsePostfixExpr()
	}
	p.advance()
	if op == ast.UnRef && p.eat(token.KwMut) {
		op = ast.UnRefMut
	}
	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	exprs := p.arenas.Exprs
	sp := tok.Span.Cover(exprs.Get(operand).Span)
	if tok.Kind == token.AndAnd {
		// `&&x`: это `& &x`
		operand = exprs.NewUnary(sp, op, operand)
		op = ast.UnRef
	}
	return exprs.NewUnary(sp, op, operand), true
}

// postfix := primary ( '(' args ')' | '.' IDENT | '[' expr ']' )*
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	exprs := p.arenas.Exprs
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			args, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			expr = exprs.NewCall(exprs.Get(expr).Span.Cover(p.lastSpan), expr, args)
		case token.Dot:
			p.advance()
			if !p.at(token.Ident) {
				p.err(diag.SynExpectIdentifier, "expected field name after `.`, found "+p.describePeek())
				return ast.NoExprID, false
			}
			name := p.advance()
			expr = exprs.NewField(exprs.Get(expr).Span.Cover(name.Span), expr, p.arenas.Intern(name.Text))
		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			if _, ok = p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected `]` to close index"); !ok {
				return ast.NoExprID, false
			}
			expr = exprs.NewIndex(exprs.Get(expr).Span.Cover(p.lastSpan), expr, index)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parseCallArgs() ([]ast.ExprID, bool) {
	p.advance() // '('
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close argument list"); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	exprs := p.arenas.Exprs

	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.KwTrue, token.KwFalse:
		return p.parseLiteral()

	case token.Ident, token.KwSelf, token.KwSuper, token.KwCrate, token.ColonColon:
		if tok.Kind == token.Ident && p.lx.PeekN(1).Kind == token.Bang {
			p.advance()
			mac, ok := p.parseMacroCall(p.arenas.Intern(tok.Text), tok.Span)
			if !ok {
				return ast.NoExprID, false
			}
			return exprs.NewMacro(p.arenas.Macros.Get(mac).Span, mac), true
		}
		path, ok := p.parsePath(true)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewPath(path.Span, path), true

	case token.LParen:
		return p.parseParenOrTuple()

	case token.LBracket:
		p.advance()
		var elems []ast.ExprID
		for !p.at(token.RBracket) && !p.at(token.EOF) {
			elem, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			elems = append(elems, elem)
			if !p.eat(token.Comma) && !p.eat(token.Semicolon) {
				break
			}
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected `]` to close array"); !ok {
			return ast.NoExprID, false
		}
		return exprs.NewArray(tok.Span.Cover(p.lastSpan), elems), true

	case token.LBrace, token.KwIf, token.KwWhile, token.KwLoop:
		return p.parseBlockLike()

	case token.KwReturn:
		p.advance()
		value := ast.NoExprID
		if !p.atExprEnd() {
			var ok bool
			if value, ok = p.parseExpr(); !ok {
				return ast.NoExprID, false
			}
		}
		return exprs.NewReturn(tok.Span.Cover(p.lastSpan), value), true

	case token.KwBreak:
		p.advance()
		return exprs.NewBreak(tok.Span), true

	case token.KwContinue:
		p.advance()
		return exprs.NewContinue(tok.Span), true

	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+p.describePeek())
		return ast.NoExprID, false
	}
}

// atExprEnd: может ли здесь закончиться выражение (для `return` без значения).
func (p *Parser) atExprEnd() bool {
	return p.at_or(token.Semicolon, token.RBrace, token.RParen, token.RBracket, token.Comma, token.EOF)
}

// '(' ')' | '(' expr ')' | '(' expr ',' ... ')'
func (p *Parser) parseParenOrTuple() (ast.ExprID, bool) {
	open := p.advance().Span
	exprs := p.arenas.Exprs
	if p.eat(token.RParen) {
		return exprs.NewTuple(open.Cover(p.lastSpan), nil), true
	}
	first, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if p.eat(token.RParen) {
		return exprs.NewParen(open.Cover(p.lastSpan), first), true
	}
	elems := []ast.ExprID{first}
	for p.eat(token.Comma) && !p.at(token.RParen) {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
	}
	if _, ok = p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close tuple"); !ok {
		return ast.NoExprID, false
	}
	return exprs.NewTuple(open.Cover(p.lastSpan), elems), true
}

// parseBlockLike: '{' ... '}' | if | while | loop
func (p *Parser) parseBlockLike() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	exprs := p.arenas.Exprs
	switch tok.Kind {
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwWhile:
		p.advance()
		cond, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewWhile(tok.Span.Cover(p.lastSpan), cond, body), true
	case token.KwLoop:
		p.advance()
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewLoop(tok.Span.Cover(p.lastSpan), body), true
	default:
		block, ok := p.parseBlock()
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewBlock(p.arenas.Blocks.Get(block).Span, block), true
	}
}

// if := 'if' expr block ('else' (if | block))?
func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	start := p.advance().Span // if
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	els := ast.NoExprID
	if p.eat(token.KwElse) {
		switch p.lx.Peek().Kind {
		case token.KwIf:
			els, ok = p.parseIfExpr()
		case token.LBrace:
			els, ok = p.parseBlockLike()
		default:
			p.err(diag.SynExpectBlock, "expected `{` or `if` after `else`, found "+p.describePeek())
			return ast.NoExprID, false
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewIf(start.Cover(p.lastSpan), cond, then, els), true
}
