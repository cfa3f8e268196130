package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
	"glassful/internal/token"
)

// parseItem: outer_attr* vis? ( static | const | fn | struct | use | macro_item )
func (p *Parser) parseItem() (ast.ItemID, bool) {
	start := p.lx.Peek().Span
	h := ast.ItemHeader{Attrs: p.parseOuterAttrs()}
	if len(h.Attrs) > 0 {
		start = p.arenas.Attrs.Get(h.Attrs[0]).Span
	}
	p.parseVisibility(&h)

	var (
		id ast.ItemID
		ok bool
	)
	switch p.lx.Peek().Kind {
	case token.KwStatic:
		id, ok = p.parseStaticItem(start, h)
	case token.KwConst:
		id, ok = p.parseConstItem(start, h)
	case token.KwFn, token.KwUnsafe, token.KwExtern:
		id, ok = p.parseFnItem(start, h)
	case token.KwStruct:
		id, ok = p.parseStructItem(start, h)
	case token.KwUse:
		id, ok = p.parseUseItem(start, h)
	case token.Ident:
		if p.lx.PeekN(1).Kind != token.Bang {
			p.err(diag.SynUnexpectedTopLevel, "expected item, found "+p.describePeek())
			return ast.NoItemID, false
		}
		id, ok = p.parseMacroItem(start, h)
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected item, found "+p.describePeek())
		return ast.NoItemID, false
	}
	return id, ok
}

// vis := 'pub' ( '(' ... ')' )?
func (p *Parser) parseVisibility(h *ast.ItemHeader) {
	if !p.at(token.KwPub) {
		return
	}
	sp := p.advance().Span
	if p.at(token.LParen) {
		if _, closing, ok := p.skipDelimited(); ok {
			sp = sp.Cover(closing)
		}
	}
	h.Vis = ast.VisPublic
	h.VisSpan = sp
}

// static := 'static' 'mut'? IDENT ':' type '=' expr ';'
func (p *Parser) parseStaticItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	p.advance() // static
	data := ast.StaticItem{Mut: p.eat(token.KwMut)}
	name, typ, init, ok := p.parseVarTail("static")
	if !ok {
		return ast.NoItemID, false
	}
	data.Type, data.Init = typ, init
	h.Name = name
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewStatic(h, data), true
}

// const := 'const' IDENT ':' type '=' expr ';'
func (p *Parser) parseConstItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	p.advance() // const
	name, typ, init, ok := p.parseVarTail("const")
	if !ok {
		return ast.NoItemID, false
	}
	h.Name = name
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewConst(h, ast.ConstItem{Type: typ, Init: init}), true
}

// parseVarTail: IDENT ':' type '=' expr ';'
func (p *Parser) parseVarTail(what string) (source.StringID, ast.TypeID, ast.ExprID, bool) {
	name, _, ok := p.parseIdent()
	if !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected `:` after "+what+" name"); !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	if _, ok = p.expect(token.Eq, diag.SynUnexpectedToken, "expected `=` in "+what+" item"); !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected `;`"); !ok {
		return source.NoStringID, ast.NoTypeID, ast.NoExprID, false
	}
	return name, typ, init, true
}

// struct := 'struct' IDENT ( ';' | '{' fields '}' | '(' types ')' ';' )
func (p *Parser) parseStructItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	p.advance() // struct
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	h.Name = name
	var data ast.StructItem

	switch {
	case p.eat(token.Semicolon):
	case p.eat(token.LBrace):
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			p.parseOuterAttrs()
			var fh ast.ItemHeader
			p.parseVisibility(&fh)
			fname, fsp, ok := p.parseIdent()
			if !ok {
				return ast.NoItemID, false
			}
			if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected `:` after field name"); !ok {
				return ast.NoItemID, false
			}
			ftyp, ok := p.parseType()
			if !ok {
				return ast.NoItemID, false
			}
			data.Fields = append(data.Fields, ast.StructField{Name: fname, Type: ftyp, Span: fsp.Cover(p.lastSpan)})
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected `}` to close struct"); !ok {
			return ast.NoItemID, false
		}
	case p.eat(token.LParen):
		for !p.at(token.RParen) && !p.at(token.EOF) {
			var fh ast.ItemHeader
			p.parseVisibility(&fh)
			fstart := p.lx.Peek().Span
			ftyp, ok := p.parseType()
			if !ok {
				return ast.NoItemID, false
			}
			data.Fields = append(data.Fields, ast.StructField{Type: ftyp, Span: fstart.Cover(p.lastSpan)})
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok = p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected `)` to close tuple struct"); !ok {
			return ast.NoItemID, false
		}
		if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected `;` after tuple struct"); !ok {
			return ast.NoItemID, false
		}
	default:
		p.err(diag.SynUnexpectedToken, "expected `;`, `{` or `(` after struct name, found "+p.describePeek())
		return ast.NoItemID, false
	}
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewStruct(h, data), true
}

// use := 'use' '::'? IDENT ('::' IDENT)* ('::' ('*' | '{' ... '}'))? ';'
func (p *Parser) parseUseItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	p.advance() // use
	path := ast.Path{Global: p.eat(token.ColonColon)}
	pathStart := p.lx.Peek().Span
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Ident, token.KwSelf, token.KwSuper, token.KwCrate:
			p.advance()
			path.Segments = append(path.Segments, ast.PathSegment{Name: p.arenas.Intern(tok.Text), Span: tok.Span})
		case token.Star:
			p.advance()
		case token.LBrace:
			if _, _, ok := p.skipDelimited(); !ok {
				return ast.NoItemID, false
			}
		default:
			p.err(diag.SynExpectIdentifier, "expected identifier in `use` path, found "+p.describePeek())
			return ast.NoItemID, false
		}
		if !p.eat(token.ColonColon) {
			break
		}
	}
	path.Span = pathStart.Cover(p.lastSpan)
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected `;`"); !ok {
		return ast.NoItemID, false
	}
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewUse(h, ast.UseItem{Path: path}), true
}

// macro_item := IDENT '!' delimited ';'?
func (p *Parser) parseMacroItem(start source.Span, h ast.ItemHeader) (ast.ItemID, bool) {
	nameTok := p.advance()
	mac, ok := p.parseMacroCall(p.arenas.Intern(nameTok.Text), nameTok.Span)
	if !ok {
		return ast.NoItemID, false
	}
	if p.arenas.Macros.Get(mac).Delim != ast.MacroBrace {
		if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected `;` after macro invocation"); !ok {
			return ast.NoItemID, false
		}
	} else {
		p.eat(token.Semicolon)
	}
	h.Span = start.Cover(p.lastSpan)
	return p.arenas.Items.NewMacro(h, mac), true
}
