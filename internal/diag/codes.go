package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectType         Code = 2005
	SynExpectExpression   Code = 2006
	SynExpectColon        Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynExpectBlock        Code = 2009
	SynInnerAttrPosition  Code = 2010
	SynChainedComparison  Code = 2011
	SynVariadicMustBeLast Code = 2012
	SynBadAttribute       Code = 2013

	// Раскрытие макросов
	MacInfo      Code = 2500
	MacUndefined Code = 2501
	MacBadArgs   Code = 2502
	MacPosition  Code = 2503

	// Трансляция в GLSL
	GlsInfo                Code = 3000
	GlsVisibility          Code = 3001
	GlsMutableGlobal       Code = 3002
	GlsLetNotVariable      Code = 3003
	GlsLetMissingType      Code = 3004
	GlsLocalItem           Code = 3005
	GlsUnsupportedLiteral  Code = 3006
	GlsQualifiedName       Code = 3007
	GlsUnsupportedBinaryOp Code = 3008
	GlsUnsupportedUnaryOp  Code = 3009
	GlsUnsupportedExpr     Code = 3010
	GlsUnsupportedType     Code = 3011
	GlsUnsupportedItem     Code = 3012
	GlsFnAttribute         Code = 3013
	GlsVarAttribute        Code = 3014
	GlsVariadicFn          Code = 3015
	GlsUnsafeFn            Code = 3016
	GlsNonDefaultABI       Code = 3017
	GlsGenericFn           Code = 3018
	GlsParamNotVariable    Code = 3019
	GlsVersionTwice        Code = 3020
	GlsVersionMissing      Code = 3021
	GlsUnknownAttribute    Code = 3022

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Внутренние ошибки (баги транслятора)
	BugInfo           Code = 9000
	BugMacroSurvived  Code = 9001
	BugInvariant      Code = 9002
	BugRecoveredPanic Code = 9003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexUnterminatedChar:         "Unterminated character literal",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynExpectSemicolon:          "Missing semicolon",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectType:               "Expected type",
		SynExpectExpression:         "Expected expression",
		SynExpectColon:              "Expected colon",
		SynUnexpectedTopLevel:       "Unexpected top-level construct",
		SynExpectBlock:              "Expected block",
		SynInnerAttrPosition:        "Inner attribute not permitted here",
		SynChainedComparison:        "Comparison operators cannot be chained",
		SynVariadicMustBeLast:       "Variadic marker must be last",
		SynBadAttribute:             "Malformed attribute",
		MacInfo:                     "Macro expansion information",
		MacUndefined:                "Undefined macro",
		MacBadArgs:                  "Bad macro arguments",
		MacPosition:                 "Macro in unsupported position",
		GlsInfo:                     "Translation information",
		GlsVisibility:               "Visibility not supported",
		GlsMutableGlobal:            "Mutable global variable",
		GlsLetNotVariable:           "Let binding is not a variable",
		GlsLetMissingType:           "Let binding without type",
		GlsLocalItem:                "Item inside function",
		GlsUnsupportedLiteral:       "Unsupported literal",
		GlsQualifiedName:            "Qualified or parametrized name",
		GlsUnsupportedBinaryOp:      "Unsupported binary operator",
		GlsUnsupportedUnaryOp:       "Unsupported unary operator",
		GlsUnsupportedExpr:          "Unsupported expression",
		GlsUnsupportedType:          "Unsupported type",
		GlsUnsupportedItem:          "Unsupported item",
		GlsFnAttribute:              "Function attribute",
		GlsVarAttribute:             "Variable attribute",
		GlsVariadicFn:               "Variadic function",
		GlsUnsafeFn:                 "Unsafe function",
		GlsNonDefaultABI:            "Non-default ABI",
		GlsGenericFn:                "Generic function",
		GlsParamNotVariable:         "Parameter is not a variable",
		GlsVersionTwice:             "Duplicate version attribute",
		GlsVersionMissing:           "Version attribute without value",
		GlsUnknownAttribute:         "Unknown module attribute",
		IOLoadFileError:             "I/O load file error",
		IOWriteFileError:            "I/O write file error",
		BugInfo:                     "Internal information",
		BugMacroSurvived:            "Macro node after expansion",
		BugInvariant:                "Broken internal invariant",
		BugRecoveredPanic:           "Recovered internal panic",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 2500:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2500 && ic < 3000:
		return fmt.Sprintf("MAC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("GLS%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("BUG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
