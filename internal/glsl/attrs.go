package glsl

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
)

// Preamble derives the output preamble from module attributes.
// Only `version = "<v>"` is recognized; it yields "#version <v>\n\n".
// A repeated version is reported and the later value is kept.
func Preamble(b *ast.Builder, attrs []ast.AttrID, rep diag.Reporter) string {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	var (
		version string
		seen    bool
	)
	for _, id := range attrs {
		attr := b.Attrs.Get(id)
		if b.Name(attr.Name) != "version" {
			diag.ReportError(rep, diag.GlsUnknownAttribute, attr.Span, "unknown attribute")
			continue
		}
		if !attr.HasValue || !attr.ValueIsString {
			diag.ReportError(rep, diag.GlsVersionMissing, attr.Span, "version not given")
			continue
		}
		if seen {
			diag.ReportError(rep, diag.GlsVersionTwice, attr.Span, "version given twice")
		}
		version, seen = attr.Value, true
	}
	if !seen {
		return ""
	}
	return "#version " + version + "\n\n"
}
