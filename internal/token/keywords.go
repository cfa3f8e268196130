package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"const":    KwConst,
	"static":   KwStatic,
	"pub":      KwPub,
	"if":       KwIf,
	"else":     KwElse,
	"return":   KwReturn,
	"unsafe":   KwUnsafe,
	"extern":   KwExtern,
	"struct":   KwStruct,
	"use":      KwUse,
	"as":       KwAs,
	"while":    KwWhile,
	"loop":     KwLoop,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
	// "mod" reserved: a GLSL builtin with that name is written as mod_ in source.
	"mod":   KwMod,
	"crate": KwCrate,
	"self":  KwSelf,
	"super": KwSuper,
	"ref":   KwRef,
}

// LookupKeyword проверяет, является ли ident ключевым словом (регистрозависимо).
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
