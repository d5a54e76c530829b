package model

// ComplexType represents a complex type definition.
type ComplexType struct {
	QName           QName
	SourceNamespace string
	// Content is the element content model; nil for empty or simple content.
	Content    *ModelGroup
	Attributes []*AttributeDecl
	// ValueType is the simple type of the text content when the type has
	// simple content; nil otherwise.
	ValueType Type
	// Unresolved simpleContent base reference.
	ValueTypeName QName
	// Resolved base type for complexContent derivation.
	ResolvedBase Type
	Mixed        bool
	Abstract     bool
}

// NewComplexType creates a new complex type with the provided name and namespace.
func NewComplexType(name QName, sourceNamespace string) *ComplexType {
	return &ComplexType{
		QName:           name,
		SourceNamespace: sourceNamespace,
	}
}

// Name returns the QName of the complex type. Anonymous types have a zero name.
func (c *ComplexType) Name() QName { return c.QName }

// BaseType returns the resolved base type, or nil when the type has none.
func (c *ComplexType) BaseType() Type {
	if c.ResolvedBase != nil {
		return c.ResolvedBase
	}
	if c.ValueType != nil {
		return c.ValueType
	}
	return nil
}

// IsBuiltin reports whether the type is built-in. Always false.
func (c *ComplexType) IsBuiltin() bool { return false }

// HasSimpleContent reports whether the type carries text content governed by
// a simple type.
func (c *ComplexType) HasSimpleContent() bool { return c.ValueType != nil }
