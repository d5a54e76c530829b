package model

import (
	"fmt"
	"strings"
)

// XSDNamespace is the namespace URI of the XML Schema language itself.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// QName represents a qualified name with namespace and local part.
type QName struct {
	Namespace string
	Local     string
}

// String returns the QName in {namespace}local format, or just local if no namespace.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// IsZero returns true if the QName is the zero value.
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// Equal returns true if two QNames are equal.
func (q QName) Equal(other QName) bool {
	return q.Namespace == other.Namespace && q.Local == other.Local
}

// SplitQName splits a QName string into prefix/local without validation.
func SplitQName(name string) (prefix, local string, hasPrefix bool) {
	prefix, local, hasPrefix = strings.Cut(name, ":")
	if !hasPrefix {
		return "", name, false
	}
	return prefix, local, true
}

// ParseQName trims and splits a lexical QName, rejecting empty input.
func ParseQName(name string) (prefix, local string, err error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", fmt.Errorf("empty qname")
	}
	prefix, local, _ = SplitQName(trimmed)
	if local == "" {
		return "", "", fmt.Errorf("invalid QName '%s'", name)
	}
	return prefix, local, nil
}
