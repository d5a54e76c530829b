package valuegen

import (
	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// BooleanGenerator produces one of the canonical boolean lexical forms,
// never a capitalized variant.
type BooleanGenerator struct{}

// Generate produces a boolean value.
func (g *BooleanGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	return doctree.Value{Kind: doctree.Boolean, Lexical: "true"}
}
