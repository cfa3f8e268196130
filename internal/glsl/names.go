package glsl

import (
	"glassful/internal/ast"
)

// escapedNames maps source spellings of GLSL words that are reserved in the
// source language back to the bare GLSL word.
var escapedNames = map[string]string{
	"mod_": "mod",
}

// unescape applies the reserved-word rule; other names pass through.
func unescape(name string) string {
	if bare, ok := escapedNames[name]; ok {
		return bare
	}
	return name
}

// simplePath returns the name of an unqualified, unparametrized single-segment path.
func (t *Translator) simplePath(p *ast.Path) (string, bool) {
	if p == nil || !p.Simple() {
		return "", false
	}
	return t.b.Name(p.Segments[0].Name), true
}

// patToVar returns the name bound by a bare immutable by-value identifier pattern.
func (t *Translator) patToVar(id ast.PatID) (string, bool) {
	pat := t.b.Pats.Ident(id)
	if pat == nil || pat.Mut || pat.ByRef {
		return "", false
	}
	return t.b.Name(pat.Name), true
}
