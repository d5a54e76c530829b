package constraint

import (
	"testing"

	"github.com/jacoelho/xsdgen/internal/model"
)

func simpleType(t *testing.T, name string, base model.Type, facets ...model.Facet) *model.SimpleType {
	t.Helper()
	st, err := model.NewAtomicSimpleType(
		model.QName{Local: name},
		"",
		&model.Restriction{Facets: facets},
	)
	if err != nil {
		t.Fatalf("NewAtomicSimpleType: %v", err)
	}
	st.ResolvedBase = base
	return st
}

func TestExtractOwnFacets(t *testing.T) {
	st := simpleType(t, "AirportCodeType", model.GetBuiltin("string"),
		&model.Pattern{Value: "[A-Z]{3}"},
		&model.Length{Value: 3},
	)
	set := Extract(st)
	if set.Pattern != "[A-Z]{3}" {
		t.Fatalf("unexpected pattern %q", set.Pattern)
	}
	if set.ExactLength == nil || *set.ExactLength != 3 {
		t.Fatalf("expected exact length 3, got %+v", set.ExactLength)
	}
}

func TestExtractInheritsFromBaseChain(t *testing.T) {
	// the shape that matters most in practice: an enumerated content base
	// type and a derived usable type with no facets of its own
	base := simpleType(t, "CurrencyContentType", model.GetBuiltin("string"),
		&model.Enumeration{Values: []string{"USD", "EUR", "GBP"}},
	)
	derived := simpleType(t, "CurrencyType", base)

	set := Extract(derived)
	if len(set.EnumValues) != 3 {
		t.Fatalf("expected inherited enumeration, got %v", set.EnumValues)
	}
	if set.EnumValues[0] != "USD" || set.EnumValues[1] != "EUR" || set.EnumValues[2] != "GBP" {
		t.Fatalf("enumeration order not preserved: %v", set.EnumValues)
	}
}

func TestExtractNearestAncestorWins(t *testing.T) {
	grandparent := simpleType(t, "G", model.GetBuiltin("string"),
		&model.Pattern{Value: "[0-9]{2}"},
	)
	parent := simpleType(t, "P", grandparent,
		&model.Pattern{Value: "[0-9]{4}"},
	)
	derived := simpleType(t, "D", parent)

	set := Extract(derived)
	if set.Pattern != "[0-9]{4}" {
		t.Fatalf("expected nearest ancestor pattern, got %q", set.Pattern)
	}
}

func TestExtractFiltersEnumValues(t *testing.T) {
	st := simpleType(t, "StatusType", model.GetBuiltin("string"),
		&model.Enumeration{Values: []string{"Active", "", "None", "Closed"}},
	)
	set := Extract(st)
	if len(set.EnumValues) != 2 || set.EnumValues[0] != "Active" || set.EnumValues[1] != "Closed" {
		t.Fatalf("expected filtered enumeration, got %v", set.EnumValues)
	}
}

func TestExtractNumericBounds(t *testing.T) {
	st := simpleType(t, "QuantityType", model.GetBuiltin("integer"),
		&model.RangeFacet{Variety: model.MinInclusive, Value: "1"},
		&model.RangeFacet{Variety: model.MaxInclusive, Value: "99"},
	)
	set := Extract(st)
	if set.MinValue == nil || *set.MinValue != 1 {
		t.Fatalf("expected min 1, got %+v", set.MinValue)
	}
	if set.MaxValue == nil || *set.MaxValue != 99 {
		t.Fatalf("expected max 99, got %+v", set.MaxValue)
	}
}

func TestExtractExclusiveBoundsNarrow(t *testing.T) {
	st := simpleType(t, "PositiveType", model.GetBuiltin("integer"),
		&model.RangeFacet{Variety: model.MinExclusive, Value: "0"},
		&model.RangeFacet{Variety: model.MaxExclusive, Value: "10"},
	)
	set := Extract(st)
	if set.MinValue == nil || *set.MinValue != 1 {
		t.Fatalf("expected narrowed min 1, got %+v", set.MinValue)
	}
	if set.MaxValue == nil || *set.MaxValue != 9 {
		t.Fatalf("expected narrowed max 9, got %+v", set.MaxValue)
	}
}

func TestExtractSkipsMalformedFacets(t *testing.T) {
	st := simpleType(t, "OddType", model.GetBuiltin("integer"),
		&model.RangeFacet{Variety: model.MinInclusive, Value: "not-a-number"},
	)
	set := Extract(st)
	if set.MinValue != nil {
		t.Fatalf("malformed facet should be skipped, got %+v", set.MinValue)
	}
}

func TestExtractNilType(t *testing.T) {
	set := Extract(nil)
	if set.HasPattern() || set.HasEnum() || set.HasLength() {
		t.Fatalf("nil type should yield an empty set: %+v", set)
	}
}

func TestExtractComplexSimpleContent(t *testing.T) {
	value := simpleType(t, "AmountContentType", model.GetBuiltin("decimal"),
		&model.RangeFacet{Variety: model.MinInclusive, Value: "0"},
	)
	ct := model.NewComplexType(model.QName{Local: "AmountType"}, "")
	ct.ValueType = value

	set := Extract(ct)
	if set.MinValue == nil || *set.MinValue != 0 {
		t.Fatalf("expected simple content facet to apply, got %+v", set.MinValue)
	}
}
