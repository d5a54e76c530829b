package model

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	_ Facet = (*Pattern)(nil)
	_ Facet = (*Enumeration)(nil)
	_ Facet = (*Length)(nil)
	_ Facet = (*MinLength)(nil)
	_ Facet = (*MaxLength)(nil)
	_ Facet = (*TotalDigits)(nil)
	_ Facet = (*FractionDigits)(nil)
	_ Facet = (*RangeFacet)(nil)
)

// Facet is the unified interface for all constraining facets.
type Facet interface {
	FacetName() string
}

// Pattern represents a pattern facet (regex over the lexical space).
type Pattern struct {
	Value string
}

// FacetName returns the facet name.
func (p *Pattern) FacetName() string { return "pattern" }

// Enumeration represents an enumeration facet.
type Enumeration struct {
	Values []string
}

// FacetName returns the facet name.
func (e *Enumeration) FacetName() string { return "enumeration" }

// Length represents an exact length facet.
type Length struct {
	Value int
}

// FacetName returns the facet name.
func (l *Length) FacetName() string { return "length" }

// MinLength represents a minimum length facet.
type MinLength struct {
	Value int
}

// FacetName returns the facet name.
func (m *MinLength) FacetName() string { return "minLength" }

// MaxLength represents a maximum length facet.
type MaxLength struct {
	Value int
}

// FacetName returns the facet name.
func (m *MaxLength) FacetName() string { return "maxLength" }

// TotalDigits represents a totalDigits facet.
type TotalDigits struct {
	Value int
}

// FacetName returns the facet name.
func (t *TotalDigits) FacetName() string { return "totalDigits" }

// FractionDigits represents a fractionDigits facet.
type FractionDigits struct {
	Value int
}

// FacetName returns the facet name.
func (f *FractionDigits) FacetName() string { return "fractionDigits" }

// RangeVariety identifies which numeric bound a RangeFacet carries.
type RangeVariety int

const (
	// MinInclusive is the minInclusive facet.
	MinInclusive RangeVariety = iota
	// MaxInclusive is the maxInclusive facet.
	MaxInclusive
	// MinExclusive is the minExclusive facet.
	MinExclusive
	// MaxExclusive is the maxExclusive facet.
	MaxExclusive
)

// RangeFacet represents one of the four numeric bound facets. The value is
// kept lexical; consumers parse it for the value space they work in.
type RangeFacet struct {
	Variety RangeVariety
	Value   string
}

// FacetName returns the facet name.
func (r *RangeFacet) FacetName() string {
	switch r.Variety {
	case MinInclusive:
		return "minInclusive"
	case MaxInclusive:
		return "maxInclusive"
	case MinExclusive:
		return "minExclusive"
	case MaxExclusive:
		return "maxExclusive"
	default:
		return "range"
	}
}

// ParseFacet builds a facet from its XSD element name and lexical value.
// Unknown facet names and malformed values return an error; callers decide
// whether that is fatal (schema loading skips them).
func ParseFacet(name, value string) (Facet, error) {
	switch name {
	case "pattern":
		return &Pattern{Value: value}, nil
	case "enumeration":
		return &Enumeration{Values: []string{value}}, nil
	case "length", "minLength", "maxLength", "totalDigits", "fractionDigits":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("facet %s: invalid value %q", name, value)
		}
		switch name {
		case "length":
			return &Length{Value: n}, nil
		case "minLength":
			return &MinLength{Value: n}, nil
		case "maxLength":
			return &MaxLength{Value: n}, nil
		case "totalDigits":
			return &TotalDigits{Value: n}, nil
		default:
			return &FractionDigits{Value: n}, nil
		}
	case "minInclusive":
		return &RangeFacet{Variety: MinInclusive, Value: value}, nil
	case "maxInclusive":
		return &RangeFacet{Variety: MaxInclusive, Value: value}, nil
	case "minExclusive":
		return &RangeFacet{Variety: MinExclusive, Value: value}, nil
	case "maxExclusive":
		return &RangeFacet{Variety: MaxExclusive, Value: value}, nil
	case "whiteSpace":
		// whitespace normalization has no bearing on generated values
		return nil, fmt.Errorf("facet %s: not applicable", name)
	default:
		return nil, fmt.Errorf("unknown facet %q", name)
	}
}
