package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	for text, want := range keywords {
		got, ok := LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v", text, got, ok)
		}
		if got.String() != text {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), text)
		}
	}
	for _, notKw := range []string{"Fn", "mod_", "float", "vec4", "version"} {
		if _, ok := LookupKeyword(notKw); ok {
			t.Errorf("%q must not be a keyword", notKw)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	if !(Token{Kind: KwRef}).IsKeyword() || !(Token{Kind: KwFn}).IsKeyword() {
		t.Fatal("keyword range broken")
	}
	if (Token{Kind: IntLit}).IsKeyword() || !(Token{Kind: IntLit}).IsLiteral() {
		t.Fatal("literal classification broken")
	}
	if (Token{Kind: KwTrue}).IsLiteral() {
		t.Fatal("true is a keyword, not a literal token")
	}
	if Kind(250).String() != "unknown" {
		t.Fatal("out of range kind must be unknown")
	}
}
