// Package glsl is the syntax-directed code generator from an expanded
// glassful tree to GLSL text.
//
// One Translator serves one call: it owns the output buffer and reports user
// diagnostics through a diag.Reporter. Diagnostics never stop the walk; the
// caller checks for errors afterwards and discards the output if any exist.
// A macro node reaching the translator is an internal fault and panics with
// *diag.Fault via diag.Bug.
//
// Each node family is handled by a small visitor type (exprTranslator,
// stmtTranslator, itemTranslator, typeTranslator) implementing the matching
// ast visitor interface, so every node kind has an explicit case.
package glsl
