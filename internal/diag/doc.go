// Package diag defines the diagnostic model shared by all translation phases.
//
// # Two channels
//
// User diagnostics (malformed or unsupported constructs) are accumulated in a
// Bag through a Reporter. Phases keep going after reporting, so one call can
// surface many problems; the driver inspects the Bag at phase checkpoints and
// aborts the call, discarding all output, once any error is present.
//
// Internal faults (a macro node after expansion, any other broken invariant of
// the translator) are raised with Bug, which panics with *Fault. They are not
// recoverable by the user and are only caught by the isolated entry point of
// the driver.
//
// # Data model
//
//   - Severity – Info, Warning, Error, Bug.
//   - Code – compact numeric identifier with stable string form (LEX, SYN,
//     MAC, GLS, IO, BUG ranges).
//   - Message – short human oriented text.
//   - Primary span – source.Span pointing to the offending construct.
//   - Notes – optional secondary spans/messages.
//
// Rendering lives in internal/diagfmt.
package diag
