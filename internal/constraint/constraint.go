// Package constraint extracts a normalized constraint set from a type
// definition, inheriting facet categories along the restriction base chain.
package constraint

import (
	"math"
	"strconv"
	"strings"

	"github.com/jacoelho/xsdgen/internal/model"
)

// Set is the normalized constraint aggregate for one node. Built fresh per
// node and never mutated after extraction.
type Set struct {
	Pattern     string
	EnumValues  []string
	ExactLength *int
	MinLength   *int
	MaxLength   *int
	MinValue    *float64
	MaxValue    *float64
	// FractionDigits of 0 forces integral output for decimal kinds.
	FractionDigits *int
}

// HasPattern reports whether a pattern constraint is present.
func (s *Set) HasPattern() bool { return s.Pattern != "" }

// HasEnum reports whether enumeration values are present. Enumeration is
// exclusive: when true, the other value-shape constraints are not applied.
func (s *Set) HasEnum() bool { return len(s.EnumValues) > 0 }

// HasLength reports whether any length constraint is present.
func (s *Set) HasLength() bool {
	return s.ExactLength != nil || s.MinLength != nil || s.MaxLength != nil
}

// maxInheritanceDepth bounds the base chain walk.
const maxInheritanceDepth = 32

// Extract derives the constraint set for a type. A facet category absent on
// the type itself is inherited from the nearest ancestor on the restriction
// base chain that declares it. Malformed facet values are skipped.
func Extract(t model.Type) *Set {
	set := &Set{}
	havePattern := false
	haveEnum := false
	haveLength := false
	haveRange := false

	for depth := 0; t != nil && depth < maxInheritanceDepth; depth++ {
		facets := facetsOf(t)
		if !havePattern {
			havePattern = collectPattern(set, facets)
		}
		if !haveEnum {
			haveEnum = collectEnum(set, facets)
		}
		if !haveLength {
			haveLength = collectLength(set, facets)
		}
		if !haveRange {
			haveRange = collectRange(set, facets)
		}
		collectDigits(set, facets)
		t = t.BaseType()
	}
	return set
}

func facetsOf(t model.Type) []model.Facet {
	switch typed := t.(type) {
	case *model.SimpleType:
		return typed.Facets()
	case *model.ComplexType:
		// simple content facets live on the value type, which the base
		// chain walk reaches via BaseType
		return nil
	default:
		return nil
	}
}

func collectPattern(set *Set, facets []model.Facet) bool {
	for _, facet := range facets {
		if p, ok := facet.(*model.Pattern); ok && p.Value != "" {
			set.Pattern = p.Value
			return true
		}
	}
	return false
}

// collectEnum gathers every enumeration facet at one derivation level,
// filtering values that are empty or the literal "None".
func collectEnum(set *Set, facets []model.Facet) bool {
	found := false
	for _, facet := range facets {
		e, ok := facet.(*model.Enumeration)
		if !ok {
			continue
		}
		found = true
		for _, value := range e.Values {
			if trimmed := strings.TrimSpace(value); trimmed == "" || trimmed == "None" {
				continue
			}
			set.EnumValues = append(set.EnumValues, value)
		}
	}
	return found && len(set.EnumValues) > 0
}

func collectLength(set *Set, facets []model.Facet) bool {
	found := false
	for _, facet := range facets {
		switch f := facet.(type) {
		case *model.Length:
			v := f.Value
			set.ExactLength = &v
			found = true
		case *model.MinLength:
			v := f.Value
			set.MinLength = &v
			found = true
		case *model.MaxLength:
			v := f.Value
			set.MaxLength = &v
			found = true
		}
	}
	return found
}

// collectRange parses numeric bound facets. Exclusive bounds are narrowed to
// the nearest representable inclusive bound so that generators only ever
// clamp inclusively.
func collectRange(set *Set, facets []model.Facet) bool {
	found := false
	for _, facet := range facets {
		r, ok := facet.(*model.RangeFacet)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
		if err != nil {
			continue
		}
		switch r.Variety {
		case model.MinInclusive:
			set.MinValue = &value
		case model.MaxInclusive:
			set.MaxValue = &value
		case model.MinExclusive:
			narrowed := narrowExclusive(value, true)
			set.MinValue = &narrowed
		case model.MaxExclusive:
			narrowed := narrowExclusive(value, false)
			set.MaxValue = &narrowed
		}
		found = true
	}
	return found
}

func collectDigits(set *Set, facets []model.Facet) {
	for _, facet := range facets {
		if f, ok := facet.(*model.FractionDigits); ok && set.FractionDigits == nil {
			v := f.Value
			set.FractionDigits = &v
		}
	}
}

// narrowExclusive converts an exclusive bound into an inclusive one: whole
// values step by one, fractional values by the smallest printable step.
func narrowExclusive(value float64, isMin bool) float64 {
	step := 0.01
	if value == math.Trunc(value) {
		step = 1
	}
	if isMin {
		return value + step
	}
	return value - step
}
