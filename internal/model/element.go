package model

import "fmt"

// UnboundedOccurs indicates no upper bound on occurrences.
const UnboundedOccurs = -1

// ElementDecl represents an element declaration.
type ElementDecl struct {
	Name QName
	// Unresolved type reference; zero for inline anonymous types.
	TypeName QName
	// Resolved type, filled by the loader's resolution pass.
	Type      Type
	MinOccurs int
	MaxOccurs int
	Nillable  bool
	Default   string
	Fixed     string
}

// NewElementDeclFromParsed validates a parsed element declaration and
// returns it if valid.
func NewElementDeclFromParsed(decl *ElementDecl) (*ElementDecl, error) {
	if decl == nil {
		return nil, fmt.Errorf("element declaration is nil")
	}
	if decl.Name.IsZero() {
		return nil, fmt.Errorf("element declaration missing name")
	}
	if decl.MinOccurs < 0 {
		return nil, fmt.Errorf("element %s has negative minOccurs", decl.Name)
	}
	if decl.MaxOccurs != UnboundedOccurs && decl.MaxOccurs < decl.MinOccurs {
		return nil, fmt.Errorf("element %s has maxOccurs less than minOccurs", decl.Name)
	}
	return decl, nil
}

// MinOcc implements the Particle interface.
func (e *ElementDecl) MinOcc() int { return e.MinOccurs }

// MaxOcc implements the Particle interface.
func (e *ElementDecl) MaxOcc() int { return e.MaxOccurs }

// IsOptional reports whether the element may be entirely absent.
func (e *ElementDecl) IsOptional() bool { return e.MinOccurs == 0 }

// IsMulti reports whether more than one occurrence is permitted.
func (e *ElementDecl) IsMulti() bool {
	return e.MaxOccurs == UnboundedOccurs || e.MaxOccurs > 1
}
