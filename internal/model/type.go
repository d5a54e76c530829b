package model

// Type represents a schema type definition (built-in, simple, or complex).
type Type interface {
	Name() QName
	BaseType() Type
	IsBuiltin() bool
}

// AsSimpleType returns the simple type when the type assertion succeeds.
func AsSimpleType(t Type) (*SimpleType, bool) {
	st, ok := t.(*SimpleType)
	return st, ok
}

// AsComplexType returns the complex type when the type assertion succeeds.
func AsComplexType(t Type) (*ComplexType, bool) {
	ct, ok := t.(*ComplexType)
	return ct, ok
}

// AsBuiltinType returns the built-in type when the type assertion succeeds.
func AsBuiltinType(t Type) (*BuiltinType, bool) {
	bt, ok := t.(*BuiltinType)
	return bt, ok
}

// maxBaseChain bounds base chain walks so that a malformed circular
// derivation cannot loop forever.
const maxBaseChain = 32

// PrimitiveKind resolves the primitive kind of a type by walking its
// restriction base chain to the nearest built-in ancestor. Complex types
// with simple content resolve through their value type; element-only
// complex types have no primitive kind.
func PrimitiveKind(t Type) Kind {
	for i := 0; i < maxBaseChain; i++ {
		if t == nil {
			return KindUnknown
		}
		switch typed := t.(type) {
		case *BuiltinType:
			return typed.Kind()
		case *ComplexType:
			if typed.ValueType == nil {
				return KindUnknown
			}
			t = typed.ValueType
		default:
			t = t.BaseType()
		}
	}
	return KindUnknown
}

// HasBooleanBase reports whether any ancestor on the base chain is the
// built-in boolean type. Schemas commonly declare "indicator" types as
// restrictions of boolean.
func HasBooleanBase(t Type) bool {
	for i := 0; i < maxBaseChain; i++ {
		if t == nil {
			return false
		}
		if bt, ok := AsBuiltinType(t); ok {
			return bt.Kind() == KindBoolean
		}
		t = t.BaseType()
	}
	return false
}
