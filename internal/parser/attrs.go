package parser

import (
	"strconv"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
	"glassful/internal/token"
)

// parseInnerAttrs разбирает `#![...]` в начале модуля.
func (p *Parser) parseInnerAttrs() []ast.AttrID {
	var attrs []ast.AttrID
	for p.at(token.Pound) && p.lx.PeekN(1).Kind == token.Bang {
		if id, ok := p.parseAttr(ast.AttrInner); ok {
			attrs = append(attrs, id)
		} else {
			p.resyncUntil(token.RBracket)
			p.eat(token.RBracket)
		}
	}
	return attrs
}

// parseOuterAttrs разбирает `#[...]` перед item.
// Inner-атрибут в этой позиции: ошибка, но мы его разбираем и отбрасываем.
func (p *Parser) parseOuterAttrs() []ast.AttrID {
	var attrs []ast.AttrID
	for p.at(token.Pound) {
		style := ast.AttrOuter
		if p.lx.PeekN(1).Kind == token.Bang {
			p.errAt(diag.SynInnerAttrPosition, p.lx.Peek().Span,
				"an inner attribute is not permitted in this context")
			style = ast.AttrInner
		}
		id, ok := p.parseAttr(style)
		if !ok {
			p.resyncUntil(token.RBracket)
			p.eat(token.RBracket)
			continue
		}
		if style == ast.AttrOuter {
			attrs = append(attrs, id)
		}
	}
	return attrs
}

// parseAttr: '#' '!'? '[' meta ']'
func (p *Parser) parseAttr(style ast.AttrStyle) (ast.AttrID, bool) {
	start := p.advance().Span // '#'
	if style == ast.AttrInner {
		p.advance() // '!'
	}
	if _, ok := p.expect(token.LBracket, diag.SynBadAttribute, "expected `[`"); !ok {
		return ast.NoAttrID, false
	}
	attr, ok := p.parseMeta()
	if !ok {
		return ast.NoAttrID, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected `]` to close attribute")
	if !ok {
		return ast.NoAttrID, false
	}
	attr.Style = style
	attr.Span = start.Cover(closeTok.Span)
	return p.arenas.Attrs.New(attr), true
}

// meta := IDENT ( '=' literal | '(' meta_list ')' )?
func (p *Parser) parseMeta() (ast.Attr, bool) {
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.Attr{}, false
	}
	attr := ast.Attr{Name: name}

	switch {
	case p.eat(token.Eq):
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.StringLit:
			p.advance()
			attr.Value = unquote(tok.Text)
			attr.HasValue = true
			attr.ValueIsString = true
		case tok.IsLiteral() || tok.Kind == token.KwTrue || tok.Kind == token.KwFalse:
			p.advance()
			attr.Value = tok.Text
			attr.HasValue = true
		default:
			p.err(diag.SynBadAttribute, "expected a literal after `=` in attribute, found "+p.describePeek())
			return ast.Attr{}, false
		}
	case p.eat(token.LParen):
		for !p.at(token.RParen) && !p.at(token.EOF) {
			arg, ok := p.parseMetaArg()
			if !ok {
				return ast.Attr{}, false
			}
			attr.Args = append(attr.Args, arg)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` in attribute arguments"); !ok {
			return ast.Attr{}, false
		}
	}
	return attr, true
}

// parseMetaArg принимает идентификатор или литерал; вложенные meta-списки сворачиваются в текст.
func (p *Parser) parseMetaArg() (source.StringID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Ident:
		start := p.advance().Span
		if p.at(token.Eq) || p.at(token.LParen) {
			// name = "v" / name(...) внутри списка: храним исходный текст целиком
			if p.eat(token.Eq) {
				p.advance()
			} else {
				p.skipDelimited()
			}
			sp := start.Cover(p.lastSpan)
			return p.arenas.Intern(string(p.file.Content[sp.Start:sp.End])), true
		}
		return p.arenas.Intern(tok.Text), true
	case tok.Kind == token.StringLit:
		p.advance()
		return p.arenas.Intern(unquote(tok.Text)), true
	case tok.IsLiteral():
		p.advance()
		return p.arenas.Intern(tok.Text), true
	default:
		p.err(diag.SynBadAttribute, "expected attribute argument, found "+p.describePeek())
		return source.NoStringID, false
	}
}

// unquote снимает кавычки строкового литерала; на неизвестных escape: просто кавычки.
func unquote(text string) string {
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}
