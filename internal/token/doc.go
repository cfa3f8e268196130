// Package token defines the lexical vocabulary of the restricted shader
// surface syntax: token kinds, keywords and trivia.
package token
