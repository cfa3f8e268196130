package parser

import (
	"context"
	"slices"

	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
	"glassful/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Module *ast.Module
	Bag    *diag.Bag
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	arenas   *ast.Builder // построитель аренных узлов
	file     *source.File // исходник, нужен для сырого текста макросов
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	// splitGt: половина `>>` уже закрыла один список generic-аргументов
	splitGt bool
}

// ParseFile: входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     fs.Get(lx.EmptySpan().File),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	mod := p.parseModule(ctx)
	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = r.Bag
	case diag.BagReporter:
		bag = r.Bag
	}
	return Result{
		Module: mod,
		Bag:    bag,
		Errors: p.opts.CurrentErrors,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseModule: inner-атрибуты, затем items до EOF.
func (p *Parser) parseModule(ctx context.Context) *ast.Module {
	mod := &ast.Module{}
	startSpan := p.lx.Peek().Span

	mod.InnerAttrs = p.parseInnerAttrs()

	for !p.at(token.EOF) {
		if ctx.Err() != nil || p.opts.Enough() {
			break
		}
		before := p.lx.Peek().Span
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			// гарантируем прогресс
			if p.lx.Peek().Span == before && !p.at(token.EOF) {
				p.advance()
			}
			continue
		}
		mod.Items = append(mod.Items, itemID)
	}
	mod.Span = startSpan.Cover(p.lastSpan)
	return mod
}

// resyncTop: восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующего item ИЛИ EOF.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.Pound, token.KwPub, token.KwStatic, token.KwConst,
		token.KwFn, token.KwUnsafe, token.KwExtern, token.KwStruct, token.KwUse)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// resyncUntil прокручивает токены до одного из stop (не съедая его) или EOF,
// перепрыгивая сбалансированные скобки.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	depth := 0
	for !p.at(token.EOF) {
		k := p.lx.Peek().Kind
		if depth == 0 && slices.Contains(stop, k) {
			return
		}
		switch k {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// isItemStarter: может ли токен начинать item.
func isItemStarter(k token.Kind) bool {
	switch k {
	case token.Pound, token.KwPub, token.KwStatic, token.KwConst, token.KwFn,
		token.KwUnsafe, token.KwExtern, token.KwStruct, token.KwUse:
		return true
	default:
		return false
	}
}

// parseIdent: ожидает Ident и интернирует его.
// На ошибке: репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, found "+p.describePeek())
	return source.NoStringID, p.getDiagnosticSpan(), false
}
