package lexer_test

import (
	"testing"

	"glassful/internal/diag"
	"glassful/internal/lexer"
	"glassful/internal/source"
	"glassful/internal/token"
)

type testReporter struct {
	codes []diag.Code
	msgs  []string
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.codes = append(r.codes, code)
	r.msgs = append(r.msgs, msg)
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.glsl.rs", []byte(input))
	rep := &testReporter{}
	return lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), rep
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input)
	toks := collectAllTokens(lx)
	if len(rep.msgs) != 0 {
		t.Fatalf("unexpected lexer errors for %q: %v", input, rep.msgs)
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestKeywordsAndIdents(t *testing.T) {
	toks := expectKinds(t, "fn main let mut mod_ mod _ _x",
		token.KwFn, token.Ident, token.KwLet, token.KwMut, token.Ident, token.KwMod, token.Underscore, token.Ident)
	if toks[4].Text != "mod_" {
		t.Fatalf("want mod_, got %q", toks[4].Text)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0x1F", token.IntLit},
		{"0o17", token.IntLit},
		{"0b1010", token.IntLit},
		{"42u32", token.IntLit},
		{"1.5", token.FloatLit},
		{"1.5f32", token.FloatLit},
		{"1e3", token.FloatLit},
		{"2.0e-3", token.FloatLit},
		{"1f32", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks := expectKinds(t, tt.in, tt.kind)
			if toks[0].Text != tt.in {
				t.Fatalf("text = %q, want %q", toks[0].Text, tt.in)
			}
		})
	}
}

func TestNumberFollowedByRangeOrField(t *testing.T) {
	expectKinds(t, "1..2", token.IntLit, token.DotDot, token.IntLit)
	expectKinds(t, "v.x", token.Ident, token.Dot, token.Ident)
	expectKinds(t, "1.max", token.IntLit, token.Dot, token.Ident)
}

func TestOperatorsGreedy(t *testing.T) {
	expectKinds(t, "<<= >>= ... << >> <= >= == != && || -> => :: ..",
		token.ShlEq, token.ShrEq, token.DotDotDot, token.Shl, token.Shr, token.Le, token.Ge,
		token.EqEq, token.Ne, token.AndAnd, token.OrOr, token.Arrow, token.FatArrow, token.ColonColon, token.DotDot)
	expectKinds(t, "#![version = \"150\"]",
		token.Pound, token.Bang, token.LBracket, token.Ident, token.Eq, token.StringLit, token.RBracket)
}

func TestStringsAndChars(t *testing.T) {
	toks := expectKinds(t, `"a\"b" 'c' '\n'`, token.StringLit, token.CharLit, token.CharLit)
	if toks[0].Text != `"a\"b"` {
		t.Fatalf("string text = %q", toks[0].Text)
	}
}

func TestTriviaAttachedToNextToken(t *testing.T) {
	lx, _ := makeTestLexer("// hello\n/* outer /* nested */ */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("want ident, got %v", tok.Kind)
	}
	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace}
	if len(kinds) != len(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("trivia %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b c")
	if lx.PeekN(1).Text != "b" {
		t.Fatal("PeekN(1) should see b")
	}
	if lx.Peek().Text != "a" {
		t.Fatal("Peek should see a")
	}
	for _, want := range []string{"a", "b", "c"} {
		if got := lx.Next().Text; got != want {
			t.Fatalf("Next = %q, want %q", got, want)
		}
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatal("EOF must be sticky")
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		in   string
		code diag.Code
	}{
		{"$", diag.LexUnknownChar},
		{`"abc`, diag.LexUnterminatedString},
		{"/* open", diag.LexUnterminatedBlockComment},
		{"0x", diag.LexBadNumber},
		{"'a", diag.LexUnterminatedChar},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.in)
			collectAllTokens(lx)
			if len(rep.codes) != 1 || rep.codes[0] != tt.code {
				t.Fatalf("codes = %v, want [%v]", rep.codes, tt.code)
			}
		})
	}
}

func TestIdentifierNFC(t *testing.T) {
	lx, _ := makeTestLexer("cafe\u0301")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "caf\u00e9" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
}
