package model

// AttributeUse represents the use constraint of an attribute declaration.
type AttributeUse int

const (
	// UseOptional is the default attribute use.
	UseOptional AttributeUse = iota
	// UseRequired marks an attribute that must appear.
	UseRequired
	// UseProhibited marks an attribute that must not appear.
	UseProhibited
)

// AttributeDecl represents an attribute declaration.
type AttributeDecl struct {
	Name QName
	// Unresolved type reference; zero for inline anonymous types.
	TypeName QName
	// Resolved type, filled by the loader's resolution pass.
	Type    Type
	Use     AttributeUse
	Default string
	Fixed   string
}
