package glsl

import (
	"glassful/internal/ast"
	"glassful/internal/diag"
)

// typeRemap holds the source primitive spellings that differ in GLSL.
// Every other single-segment name is assumed to be spelled the same.
var typeRemap = map[string]string{
	"f32": "float",
}

type typeTranslator struct{ t *Translator }

func (v typeTranslator) unsupported(id ast.TypeID) {
	v.t.errorf(diag.GlsUnsupportedType, v.t.b.Types.Get(id).Span, "type kind unsupported")
}

func (v typeTranslator) VisitUnitType(ast.TypeID) {
	v.t.write("void")
}

func (v typeTranslator) VisitPathType(id ast.TypeID, path *ast.Path) {
	name, ok := v.t.simplePath(path)
	if !ok {
		v.unsupported(id)
		return
	}
	if mapped, ok := typeRemap[name]; ok {
		name = mapped
	}
	v.t.write(name)
}

func (v typeTranslator) VisitTupleType(id ast.TypeID, _ *ast.TypeTupleData) { v.unsupported(id) }
func (v typeTranslator) VisitRefType(id ast.TypeID, _ *ast.TypeRefData)     { v.unsupported(id) }
func (v typeTranslator) VisitArrayType(id ast.TypeID, _ *ast.TypeArrayData) { v.unsupported(id) }
func (v typeTranslator) VisitNeverType(id ast.TypeID)                       { v.unsupported(id) }
