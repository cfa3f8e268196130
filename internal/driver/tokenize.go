package driver

import (
	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
	"glassful/internal/token"
)

// Tokenize lexes src to the end. Lexical errors are returned as *Error
// alongside the full token stream, EOF included.
func Tokenize(name, src string, maxDiagnostics int) ([]token.Token, *source.FileSet, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if bag.HasErrors() {
		return toks, fs, &Error{Bag: bag, Files: fs}
	}
	return toks, fs, nil
}
