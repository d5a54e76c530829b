package model

import "fmt"

// Schema holds the resolved declarations of one schema document.
type Schema struct {
	TargetNamespace string
	// Global element declarations in declaration order.
	Elements []*ElementDecl
	// Named type definitions keyed by local name.
	Types map[string]Type
}

// NewSchema creates an empty schema for the given target namespace.
func NewSchema(targetNamespace string) *Schema {
	return &Schema{
		TargetNamespace: targetNamespace,
		Types:           make(map[string]Type),
	}
}

// ElementByName returns the global element declaration with the given local
// name.
func (s *Schema) ElementByName(local string) (*ElementDecl, bool) {
	for _, decl := range s.Elements {
		if decl.Name.Local == local {
			return decl, true
		}
	}
	return nil, false
}

// RootElement selects the element to generate from. An empty name selects
// the sole global element; schemas with several globals require an explicit
// name.
func (s *Schema) RootElement(name string) (*ElementDecl, error) {
	if len(s.Elements) == 0 {
		return nil, fmt.Errorf("schema declares no global elements")
	}
	if name == "" {
		if len(s.Elements) > 1 {
			return nil, fmt.Errorf("schema declares %d global elements, root element name required", len(s.Elements))
		}
		return s.Elements[0], nil
	}
	decl, ok := s.ElementByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown root element %q", name)
	}
	return decl, nil
}

// TypeByName returns a named type, consulting schema definitions first and
// the built-in registry second.
func (s *Schema) TypeByName(local string) (Type, bool) {
	if t, ok := s.Types[local]; ok {
		return t, true
	}
	if bt := GetBuiltin(local); bt != nil {
		return bt, true
	}
	return nil, false
}
