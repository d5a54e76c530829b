package valuegen

import (
	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/internal/model"
)

// New selects the generator for a type and its constraints. Dispatch order:
// enumeration constraints win outright, then the special identifier and
// binary kinds, then the primitive kind resolved through the restriction
// base chain, then a boolean ultimate-base check for indicator-style
// derived types. Unrecognized types fall back to the string generator; the
// factory never fails.
func New(t model.Type, cs *constraint.Set, state *State) Generator {
	if cs != nil && cs.HasEnum() {
		return &EnumerationGenerator{Tracker: state.Enums}
	}

	kind := model.PrimitiveKind(t)
	switch kind {
	case model.KindIdentifier:
		return &IdentifierGenerator{State: state}
	case model.KindBinary:
		return &BinaryGenerator{}
	case model.KindDecimal:
		return &NumericGenerator{Decimal: true}
	case model.KindInteger:
		return &NumericGenerator{Decimal: false}
	case model.KindBoolean:
		return &BooleanGenerator{}
	case model.KindDate, model.KindTime, model.KindDateTime, model.KindDuration,
		model.KindGYear, model.KindGYearMonth, model.KindGMonth, model.KindGMonthDay, model.KindGDay:
		return &TemporalGenerator{Kind: kind}
	case model.KindString, model.KindURI:
		return &StringGenerator{Synthesizer: state.Synthesizer}
	}

	// types whose own kind is unresolved can still be restrictions of
	// boolean, the common shape of schema "indicator" types
	if model.HasBooleanBase(t) {
		return &BooleanGenerator{}
	}
	return &StringGenerator{Synthesizer: state.Synthesizer}
}
