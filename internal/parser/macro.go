package parser

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
	"glassful/internal/source"
	"glassful/internal/token"
)

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	case token.LBrace:
		return token.RBrace
	default:
		return token.Invalid
	}
}

// skipDelimited съедает открывающую скобку и всё до парной закрывающей.
// Возвращает спаны открывающей и закрывающей скобок.
func (p *Parser) skipDelimited() (open, closing source.Span, ok bool) {
	openTok := p.advance()
	stack := []token.Kind{closerOf(openTok.Kind)}
	for len(stack) > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			p.errAt(diag.SynUnclosedDelimiter, openTok.Span, "unclosed delimiter")
			return openTok.Span, p.getDiagnosticSpan(), false
		case token.LParen, token.LBracket, token.LBrace:
			stack = append(stack, closerOf(tok.Kind))
		case token.RParen, token.RBracket, token.RBrace:
			if tok.Kind != stack[len(stack)-1] {
				p.errAt(diag.SynUnclosedDelimiter, tok.Span, "mismatched closing delimiter `"+tok.Text+"`")
				return openTok.Span, tok.Span, false
			}
			stack = stack[:len(stack)-1]
		}
		p.advance()
		if len(stack) == 0 {
			return openTok.Span, tok.Span, true
		}
	}
	return openTok.Span, p.lastSpan, true
}

// parseMacroCall разбирает `!` и аргументы после уже съеденного имени макроса.
func (p *Parser) parseMacroCall(name source.StringID, nameSpan source.Span) (ast.MacroID, bool) {
	p.advance() // '!'
	var delim ast.MacroDelim
	switch p.lx.Peek().Kind {
	case token.LParen:
		delim = ast.MacroParen
	case token.LBracket:
		delim = ast.MacroBracket
	case token.LBrace:
		delim = ast.MacroBrace
	default:
		p.err(diag.SynUnexpectedToken, "expected one of `(`, `[` or `{` after macro name, found "+p.describePeek())
		return ast.NoMacroID, false
	}
	open, closing, ok := p.skipDelimited()
	if !ok {
		return ast.NoMacroID, false
	}
	return p.arenas.Macros.New(ast.MacroCall{
		Name:  name,
		Delim: delim,
		Args:  string(p.file.Content[open.End:closing.Start]),
		Span:  nameSpan.Cover(closing),
	}), true
}
