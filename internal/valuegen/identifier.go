package valuegen

import (
	"strconv"
	"strings"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// IdentifierGenerator emits values legal as XML identifiers: a letter or
// underscore first, then letters, digits, '_', '-' and '.'. Values derive
// from the element name plus a session-scoped uniqueness suffix.
type IdentifierGenerator struct {
	State *State
}

// Generate produces one identifier value.
func (g *IdentifierGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	base := sanitizeIdentifier(elementName)
	seq := g.State.nextIdentifierSeq(elementName)
	return doctree.TextValue(base + "_" + strconv.Itoa(seq))
}

// sanitizeIdentifier reduces a name to NCName-legal characters, prefixing
// "ID" when the name does not start with a legal initial character.
func sanitizeIdentifier(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if isIdentifierChar(r) {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" || !isIdentifierStart(rune(cleaned[0])) {
		return "ID" + cleaned
	}
	return cleaned
}

func isIdentifierStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentifierChar(r rune) bool {
	return isIdentifierStart(r) || r == '-' || r == '.' || (r >= '0' && r <= '9')
}
