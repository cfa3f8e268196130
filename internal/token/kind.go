package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	KwFn       // fn
	KwLet      // let
	KwMut      // mut
	KwConst    // const
	KwStatic   // static
	KwPub      // pub
	KwIf       // if
	KwElse     // else
	KwReturn   // return
	KwUnsafe   // unsafe
	KwExtern   // extern
	KwStruct   // struct
	KwUse      // use
	KwAs       // as
	KwWhile    // while
	KwLoop     // loop
	KwBreak    // break
	KwContinue // continue
	KwTrue     // true
	KwFalse    // false
	KwMod      // mod
	KwCrate    // crate
	KwSelf     // self
	KwSuper    // super
	KwRef      // ref

	// IntLit represents the integer literal token (suffix stays in Text).
	IntLit
	// FloatLit represents the float literal token (suffix stays in Text).
	FloatLit
	StringLit
	CharLit

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Caret      // ^
	Bang       // !
	Amp        // &
	Pipe       // |
	AndAnd     // &&
	OrOr       // ||
	Shl        // <<
	Shr        // >>
	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	PercentEq  // %=
	CaretEq    // ^=
	AmpEq      // &=
	PipeEq     // |=
	ShlEq      // <<=
	ShrEq      // >>=
	Eq         // =
	EqEq       // ==
	Ne         // !=
	Lt         // <
	Le         // <=
	Gt         // >
	Ge         // >=
	At         // @
	Underscore // _
	Dot        // .
	DotDot     // ..
	DotDotDot  // ...
	Comma      // ,
	Semicolon  // ;
	Colon      // :
	ColonColon // ::
	Arrow      // ->
	FatArrow   // =>
	Pound      // #
	Question   // ?
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
)

var kindText = [...]string{
	Invalid: "invalid", EOF: "EOF", Ident: "identifier",
	KwFn: "fn", KwLet: "let", KwMut: "mut", KwConst: "const", KwStatic: "static",
	KwPub: "pub", KwIf: "if", KwElse: "else", KwReturn: "return", KwUnsafe: "unsafe",
	KwExtern: "extern", KwStruct: "struct", KwUse: "use", KwAs: "as", KwWhile: "while",
	KwLoop: "loop", KwBreak: "break", KwContinue: "continue", KwTrue: "true",
	KwFalse: "false", KwMod: "mod", KwCrate: "crate", KwSelf: "self", KwSuper: "super",
	KwRef:  "ref",
	IntLit: "integer literal", FloatLit: "float literal", StringLit: "string literal",
	CharLit: "char literal",
	Plus:    "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Caret: "^", Bang: "!",
	Amp: "&", Pipe: "|", AndAnd: "&&", OrOr: "||", Shl: "<<", Shr: ">>",
	PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=", PercentEq: "%=",
	CaretEq: "^=", AmpEq: "&=", PipeEq: "|=", ShlEq: "<<=", ShrEq: ">>=",
	Eq: "=", EqEq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	At: "@", Underscore: "_", Dot: ".", DotDot: "..", DotDotDot: "...", Comma: ",",
	Semicolon: ";", Colon: ":", ColonColon: "::", Arrow: "->", FatArrow: "=>",
	Pound: "#", Question: "?", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]",
}

// String returns the source spelling of punctuation and keywords, or a
// description for classes of tokens.
func (k Kind) String() string {
	if int(k) < len(kindText) && kindText[k] != "" {
		return kindText[k]
	}
	return "unknown"
}
