package model

import "slices"

// BuiltinType represents one of the XSD built-in types.
type BuiltinType struct {
	name QName
	kind Kind
	base *BuiltinType
}

// Name returns the qualified name of the built-in type.
func (b *BuiltinType) Name() QName { return b.name }

// BaseType returns the base type, or nil for anySimpleType.
func (b *BuiltinType) BaseType() Type {
	if b.base == nil {
		return nil
	}
	return b.base
}

// IsBuiltin reports whether the type is built-in. Always true.
func (b *BuiltinType) IsBuiltin() bool { return true }

// Kind returns the primitive kind the generator dispatches on.
func (b *BuiltinType) Kind() Kind { return b.kind }

type builtinRegistry struct {
	byName  map[string]*BuiltinType
	ordered []*BuiltinType
}

var registry = newBuiltinRegistry()

// builtinDef is one row of the built-in hierarchy table. Rows must appear
// after the row defining their base.
type builtinDef struct {
	local string
	base  string
	kind  Kind
}

// The built-in hierarchy, restricted to the types sample generation cares
// about. The kind column is the only place in the module that ties an XSD
// type name to a generator category.
var builtinDefs = []builtinDef{
	{"anySimpleType", "", KindString},

	{"string", "anySimpleType", KindString},
	{"normalizedString", "string", KindString},
	{"token", "normalizedString", KindString},
	{"language", "token", KindString},
	{"Name", "token", KindIdentifier},
	{"NMTOKEN", "token", KindIdentifier},
	{"NCName", "Name", KindIdentifier},
	{"ID", "NCName", KindIdentifier},
	{"IDREF", "NCName", KindIdentifier},
	{"ENTITY", "NCName", KindIdentifier},

	{"boolean", "anySimpleType", KindBoolean},

	{"decimal", "anySimpleType", KindDecimal},
	{"integer", "decimal", KindInteger},
	{"nonPositiveInteger", "integer", KindInteger},
	{"negativeInteger", "nonPositiveInteger", KindInteger},
	{"nonNegativeInteger", "integer", KindInteger},
	{"positiveInteger", "nonNegativeInteger", KindInteger},
	{"unsignedLong", "nonNegativeInteger", KindInteger},
	{"unsignedInt", "unsignedLong", KindInteger},
	{"unsignedShort", "unsignedInt", KindInteger},
	{"unsignedByte", "unsignedShort", KindInteger},
	{"long", "integer", KindInteger},
	{"int", "long", KindInteger},
	{"short", "int", KindInteger},
	{"byte", "short", KindInteger},

	{"float", "anySimpleType", KindDecimal},
	{"double", "anySimpleType", KindDecimal},

	{"duration", "anySimpleType", KindDuration},
	{"dateTime", "anySimpleType", KindDateTime},
	{"time", "anySimpleType", KindTime},
	{"date", "anySimpleType", KindDate},
	{"gYearMonth", "anySimpleType", KindGYearMonth},
	{"gYear", "anySimpleType", KindGYear},
	{"gMonthDay", "anySimpleType", KindGMonthDay},
	{"gDay", "anySimpleType", KindGDay},
	{"gMonth", "anySimpleType", KindGMonth},

	{"hexBinary", "anySimpleType", KindBinary},
	{"base64Binary", "anySimpleType", KindBinary},
	{"anyURI", "anySimpleType", KindURI},
	{"QName", "anySimpleType", KindString},
	{"NOTATION", "anySimpleType", KindString},
}

func newBuiltinRegistry() *builtinRegistry {
	byName := make(map[string]*BuiltinType, len(builtinDefs))
	for _, def := range builtinDefs {
		byName[def.local] = &BuiltinType{
			name: QName{Namespace: XSDNamespace, Local: def.local},
			kind: def.kind,
			base: byName[def.base],
		}
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	ordered := make([]*BuiltinType, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, byName[name])
	}
	return &builtinRegistry{byName: byName, ordered: ordered}
}

// GetBuiltin returns the built-in type with the given local name, or nil.
func GetBuiltin(local string) *BuiltinType {
	return registry.byName[local]
}

// Builtins returns all registered built-in types in name order.
func Builtins() []*BuiltinType {
	return registry.ordered
}
