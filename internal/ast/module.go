package ast

import "glassful/internal/source"

// Module is the root of one parsed source file.
type Module struct {
	Span       source.Span
	InnerAttrs []AttrID
	Items      []ItemID
}
