package ast

import "glassful/internal/source"

// PathSegment is one `name` or `name::<T, U>` component.
type PathSegment struct {
	Name     source.StringID
	Generics []TypeID
	// Turbofish marks generics written with `::<`; type paths use plain `<`.
	Turbofish bool
	Span      source.Span
}

// Path is a `::`-separated name. Global marks a leading `::`.
type Path struct {
	Global   bool
	Segments []PathSegment
	Span     source.Span
}

// Simple reports whether the path is a single unparametrized segment.
func (p *Path) Simple() bool {
	return !p.Global && len(p.Segments) == 1 && len(p.Segments[0].Generics) == 0
}
