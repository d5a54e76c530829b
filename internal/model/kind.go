package model

// Kind is the closed set of primitive lexical categories the generator
// dispatches on. Every built-in type maps to exactly one Kind; derived types
// resolve theirs through the restriction base chain.
type Kind int

const (
	// KindUnknown is the kind of unresolved or foreign types.
	KindUnknown Kind = iota
	// KindString covers string and its token-like derivatives.
	KindString
	// KindBoolean covers boolean.
	KindBoolean
	// KindDecimal covers decimal and the floating point types.
	KindDecimal
	// KindInteger covers integer and its bounded derivatives.
	KindInteger
	// KindDate covers date.
	KindDate
	// KindTime covers time.
	KindTime
	// KindDateTime covers dateTime.
	KindDateTime
	// KindDuration covers duration.
	KindDuration
	// KindGYear covers gYear.
	KindGYear
	// KindGYearMonth covers gYearMonth.
	KindGYearMonth
	// KindGMonth covers gMonth.
	KindGMonth
	// KindGMonthDay covers gMonthDay.
	KindGMonthDay
	// KindGDay covers gDay.
	KindGDay
	// KindBinary covers base64Binary and hexBinary.
	KindBinary
	// KindIdentifier covers ID, IDREF, NCName, NMTOKEN and Name.
	KindIdentifier
	// KindURI covers anyURI.
	KindURI
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindDecimal:
		return "decimal"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "dateTime"
	case KindDuration:
		return "duration"
	case KindGYear:
		return "gYear"
	case KindGYearMonth:
		return "gYearMonth"
	case KindGMonth:
		return "gMonth"
	case KindGMonthDay:
		return "gMonthDay"
	case KindGDay:
		return "gDay"
	case KindBinary:
		return "binary"
	case KindIdentifier:
		return "identifier"
	case KindURI:
		return "anyURI"
	default:
		return "unknown"
	}
}

// IsTemporal reports whether the kind is one of the date/time kinds.
func (k Kind) IsTemporal() bool {
	switch k {
	case KindDate, KindTime, KindDateTime, KindDuration,
		KindGYear, KindGYearMonth, KindGMonth, KindGMonthDay, KindGDay:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the kind carries a numeric value space.
func (k Kind) IsNumeric() bool {
	return k == KindDecimal || k == KindInteger
}
