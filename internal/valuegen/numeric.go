package valuegen

import (
	"math"
	"strconv"
	"strings"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// NumericGenerator produces integer or decimal values. The base value is
// name-sensitive: money-like names yield currency-shaped decimals,
// count-like names force small integers. Range constraints clamp the
// result.
type NumericGenerator struct {
	Decimal bool
}

var moneyNameHints = []string{"amount", "price", "fare", "total", "cost", "fee", "charge", "tax"}

var countNameHints = []string{"count", "quantity", "qty", "number", "index", "ordinal", "sequence", "rank"}

var rateNameHints = []string{"rate", "percent", "ratio", "factor"}

// Generate produces one numeric value.
func (g *NumericGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	value, integral := g.baseValue(elementName)
	if cs != nil {
		if cs.MinValue != nil && value < *cs.MinValue {
			value = *cs.MinValue
		}
		if cs.MaxValue != nil && value > *cs.MaxValue {
			value = *cs.MaxValue
		}
		if cs.FractionDigits != nil && *cs.FractionDigits == 0 {
			integral = true
		}
	}
	if integral {
		return doctree.Value{Kind: doctree.Integer, Lexical: strconv.FormatInt(int64(math.Round(value)), 10)}
	}
	return doctree.Value{Kind: doctree.Decimal, Lexical: strconv.FormatFloat(value, 'f', 2, 64)}
}

func (g *NumericGenerator) baseValue(elementName string) (value float64, integral bool) {
	name := strings.ToLower(elementName)
	switch {
	case containsAny(name, countNameHints):
		return 3, true
	case containsAny(name, moneyNameHints):
		if g.Decimal {
			return 250.75, false
		}
		return 250, true
	case containsAny(name, rateNameHints):
		if g.Decimal {
			return 10.50, false
		}
		return 10, true
	case name == "age":
		return 30, true
	case name == "year":
		return 2024, true
	default:
		if g.Decimal {
			return 99.50, false
		}
		return 42, true
	}
}

func containsAny(name string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
