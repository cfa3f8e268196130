package fuzztests

import (
	"testing"

	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
	"glassful/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.glsl.rs", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// каждый токен продвигает курсор, иначе лексер зациклился
		for n := 0; ; n++ {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			if n > len(input)+1 {
				t.Fatalf("lexer produced more tokens than input bytes (%d)", len(input))
			}
		}
	})
}
