package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
	"glassful/internal/token"
)

// fn := 'unsafe'? ('extern' STRING?)? 'fn' IDENT generics? '(' params ')' ('->' type)? block
func (p *Parser) parseFnItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	var data ast.FnItem

	data.Unsafe = p.eat(token.KwUnsafe)
	if p.eat(token.KwExtern) {
		data.ABI = "C"
		if p.at(token.StringLit) {
			data.ABI = unquote(p.advance().Text)
		}
		if data.ABI == "Rust" {
			data.ABI = ast.DefaultABI
		}
	}
	if _, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected `fn`"); !ok {
		return ast.NoItemID, false
	}
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	h.Name = name

	if p.at(token.Lt) {
		if data.Generics, ok = p.parseFnGenerics(); !ok {
			return ast.NoItemID, false
		}
	}

	if data.Params, data.Variadic, ok = p.parseFnParams(); !ok {
		return ast.NoItemID, false
	}

	if p.eat(token.Arrow) {
		if data.Ret, ok = p.parseType(); !ok {
			return ast.NoItemID, false
		}
	}

	if data.Body, ok = p.parseBlock(); !ok {
		return ast.NoItemID, false
	}
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewFn(h, data), true
}

// generics := '<' IDENT (':' bounds)? (',' IDENT (':' bounds)?)* ','? '>'
func (p *Parser) parseFnGenerics() ([]source.StringID, bool) {
	p.advance() // '<'
	var names []source.StringID
	for !p.atGenericClose() && !p.at(token.EOF) {
		name, _, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		names = append(names, name)
		if p.eat(token.Colon) {
			for {
				if _, ok := p.parseType(); !ok {
					return nil, false
				}
				if !p.eat(token.Plus) {
					break
				}
			}
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.eatGenericClose() {
		p.err(diag.SynUnclosedDelimiter, "expected `>` to close generic parameters, found "+p.describePeek())
		return nil, false
	}
	return names, true
}

// params := (param (',' param)* (',' '...')? | '...')?
func (p *Parser) parseFnParams() ([]ast.FnParam, bool, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected `(` after function name"); !ok {
		return nil, false, false
	}
	var (
		params   []ast.FnParam
		variadic bool
	)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			variadic = true
			if !p.at(token.RParen) {
				p.eat(token.Comma)
				if !p.at(token.RParen) {
					p.errAt(diag.SynVariadicMustBeLast, sp, "`...` must be the last parameter")
					return nil, false, false
				}
			}
			break
		}
		start := p.lx.Peek().Span
		pat, ok := p.parsePat()
		if !ok {
			return nil, false, false
		}
		if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected `:` after parameter pattern"); !ok {
			return nil, false, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false, false
		}
		params = append(params, ast.FnParam{Pat: pat, Type: typ, Span: start.Cover(p.lastSpan)})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close parameter list"); !ok {
		return nil, false, false
	}
	return params, variadic, true
}
