package model

import "fmt"

// Restriction represents a derivation by restriction: a base type reference
// plus the facets the derived type adds.
type Restriction struct {
	Base   QName
	Facets []Facet
}

// SimpleType represents a simple type definition.
type SimpleType struct {
	QName           QName
	SourceNamespace string
	Restriction     *Restriction
	// Resolved base type, filled by the loader's resolution pass.
	ResolvedBase Type
}

// NewAtomicSimpleType creates a simple type derived by restriction.
func NewAtomicSimpleType(name QName, sourceNamespace string, restriction *Restriction) (*SimpleType, error) {
	if restriction == nil {
		return nil, fmt.Errorf("simpleType %s must have a restriction", name)
	}
	return &SimpleType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		Restriction:     restriction,
	}, nil
}

// Name returns the QName of the simple type. Anonymous types have a zero name.
func (s *SimpleType) Name() QName { return s.QName }

// BaseType returns the resolved base type, or anySimpleType when unresolved.
func (s *SimpleType) BaseType() Type {
	if s.ResolvedBase == nil {
		return GetBuiltin("anySimpleType")
	}
	return s.ResolvedBase
}

// IsBuiltin reports whether the type is built-in. Always false.
func (s *SimpleType) IsBuiltin() bool { return false }

// Facets returns the facets declared directly on this type.
func (s *SimpleType) Facets() []Facet {
	if s.Restriction == nil {
		return nil
	}
	return s.Restriction.Facets
}
