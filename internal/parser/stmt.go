package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/token"
)

// block := '{' stmt* '}'
func (p *Parser) parseBlock() (ast.BlockID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected `{`")
	if !ok {
		return ast.NoBlockID, false
	}
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			continue
		}
		before := p.lx.Peek().Span
		id, ok := p.parseStmt()
		if !ok {
			if p.opts.Enough() {
				return ast.NoBlockID, false
			}
			p.resyncStmt()
			if p.lx.Peek().Span == before && !p.at(token.EOF) && !p.at(token.RBrace) {
				p.advance()
			}
			continue
		}
		stmts = append(stmts, id)
	}
	if _, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected `}` to close block"); !ok {
		return ast.NoBlockID, false
	}
	return p.arenas.Blocks.New(open.Span.Cover(p.lastSpan), stmts), true
}

func (p *Parser) resyncStmt() {
	p.resyncUntil(token.Semicolon, token.KwLet)
	p.eat(token.Semicolon)
}

// stmt := 'let' ... | item | expr ';'?
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.KwLet:
		return p.parseLetStmt()
	case isItemStarter(tok.Kind):
		item, ok := p.parseItem()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewItem(p.arenas.Items.Get(item).Span, item), true
	default:
		return p.parseExprStmt()
	}
}

// let := 'let' pat (':' type)? ('=' expr)? ';'
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	start := p.advance().Span // let
	pat, ok := p.parsePat()
	if !ok {
		return ast.NoStmtID, false
	}
	typ := ast.NoTypeID
	if p.eat(token.Colon) {
		if typ, ok = p.parseType(); !ok {
			return ast.NoStmtID, false
		}
	}
	init := ast.NoExprID
	if p.eat(token.Eq) {
		if init, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected `;` after `let` statement"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLet(start.Cover(p.lastSpan), pat, typ, init), true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	blockLike := p.atBlockLike()

	var (
		expr ast.ExprID
		ok   bool
	)
	if blockLike {
		expr, ok = p.parseBlockLike()
	} else {
		expr, ok = p.parseExpr()
	}
	if !ok {
		return ast.NoStmtID, false
	}

	// блочные выражения и `name! { ... }` завершают оператор без `;`
	mac := p.arenas.Exprs.Macro(expr)
	braced := mac != nil && p.arenas.Macros.Get(mac.Macro).Delim == ast.MacroBrace
	semi := p.eat(token.Semicolon)
	if !semi && !blockLike && !braced && !p.at(token.RBrace) {
		p.err(diag.SynExpectSemicolon, "expected `;`, found "+p.describePeek())
		return ast.NoStmtID, false
	}

	sp := start.Cover(p.lastSpan)
	if mac != nil {
		return p.arenas.Stmts.NewMacro(sp, mac.Macro, semi), true
	}
	return p.arenas.Stmts.NewExpr(sp, expr, semi), true
}

func (p *Parser) atBlockLike() bool {
	return p.at_or(token.KwIf, token.KwWhile, token.KwLoop, token.LBrace)
}
