// Package doctree defines the generic document tree produced by sample
// generation: named nodes with ordered attributes and either child nodes or
// a leaf value. Serializers consume this tree; the generation engine never
// renders text itself.
package doctree

// ValueKind tags the lexical category of a leaf value.
type ValueKind int

const (
	// Text is a plain string value.
	Text ValueKind = iota
	// Integer is an integral numeric value.
	Integer
	// Decimal is a fractional numeric value.
	Decimal
	// Boolean is a boolean value.
	Boolean
	// Temporal is a date, time, dateTime, duration or gregorian value.
	Temporal
	// Binary is a base64 or hex encoded value.
	Binary
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Boolean:
		return "boolean"
	case Temporal:
		return "temporal"
	case Binary:
		return "binary"
	default:
		return "text"
	}
}

// Value is one generated leaf value: a lexical form tagged with its kind.
// Values are immutable after construction.
type Value struct {
	Kind    ValueKind
	Lexical string
}

// TextValue builds a plain text value.
func TextValue(s string) Value { return Value{Kind: Text, Lexical: s} }

// Marker distinguishes ordinary nodes from guard terminations.
type Marker int

const (
	// MarkerNone is an ordinary node.
	MarkerNone Marker = iota
	// MarkerCycle terminates a recursive type reference.
	MarkerCycle
	// MarkerDepth terminates a subtree that exceeded the depth limit.
	MarkerDepth
)

// Attr is one attribute on a node, in declaration order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the generated document tree. A node carries either
// children or a leaf value, never both, except for simple-content elements
// which carry a value plus attributes.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Value    *Value
	Marker   Marker
}

// AddChild appends a child node.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// SetAttr appends an attribute.
func (n *Node) SetAttr(name, value string) {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// IsLeaf reports whether the node carries a leaf value and no children.
func (n *Node) IsLeaf() bool {
	return n.Value != nil && len(n.Children) == 0
}

// Find returns the first descendant (including n itself) with the given
// name, depth-first.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and every descendant depth-first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}
