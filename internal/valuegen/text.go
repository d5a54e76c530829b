package valuegen

import (
	"strings"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/internal/pattern"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// patternRetryBudget bounds regeneration attempts for pattern facets.
const patternRetryBudget = 5

// StringGenerator produces text values. Length constraints apply first
// (exact length wins over min/max, padding is content-aware), then a
// pattern facet can replace the length-adjusted value entirely since the
// pattern already encodes length.
type StringGenerator struct {
	Synthesizer *pattern.Synthesizer
}

// Generate produces one text value.
func (g *StringGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	value := baseText(elementName)
	if cs != nil {
		value = applyLength(value, cs)
		if cs.HasPattern() {
			value = g.Synthesizer.ValidateOrRegenerate(value, cs.Pattern, patternRetryBudget)
		}
	}
	return doctree.TextValue(value)
}

func baseText(elementName string) string {
	if elementName == "" {
		return "Text"
	}
	return "Sample" + elementName
}

// applyLength adjusts a value to the length constraints: exact length
// truncates or pads, otherwise min pads up and max truncates down.
func applyLength(value string, cs *constraint.Set) string {
	switch {
	case cs.ExactLength != nil:
		return fitLength(value, *cs.ExactLength)
	default:
		if cs.MinLength != nil && len(value) < *cs.MinLength {
			value = pad(value, *cs.MinLength)
		}
		if cs.MaxLength != nil && len(value) > *cs.MaxLength {
			value = value[:*cs.MaxLength]
		}
		return value
	}
}

func fitLength(value string, n int) string {
	if len(value) > n {
		return value[:n]
	}
	return pad(value, n)
}

// pad extends the value to length n. Digit-only values pad with digits so
// numeric-shaped text stays numeric-shaped; everything else pads with a
// filler letter.
func pad(value string, n int) string {
	filler := byte('X')
	if value != "" && isDigits(value) {
		filler = '0'
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteString(value)
	for sb.Len() < n {
		sb.WriteByte(filler)
	}
	return sb.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
