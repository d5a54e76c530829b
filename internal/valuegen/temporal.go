package valuegen

import (
	"strings"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/internal/model"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// TemporalGenerator produces date, time, dateTime, duration and gregorian
// values. Each kind has a fixed well-formed literal so output is always
// lexically valid; a few name heuristics pick more plausible literals.
type TemporalGenerator struct {
	Kind model.Kind
}

// Generate produces one temporal value.
func (g *TemporalGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	return doctree.Value{Kind: doctree.Temporal, Lexical: g.lexical(elementName)}
}

func (g *TemporalGenerator) lexical(elementName string) string {
	name := strings.ToLower(elementName)
	switch g.Kind {
	case model.KindDate:
		switch {
		case strings.Contains(name, "birth"):
			return "1985-03-22"
		case strings.Contains(name, "expir"):
			return "2030-12-31"
		default:
			return "2024-06-15"
		}
	case model.KindTime:
		return "14:30:00"
	case model.KindDateTime:
		if strings.Contains(name, "departure") || strings.Contains(name, "start") {
			return "2024-06-15T09:00:00"
		}
		return "2024-06-15T14:30:00"
	case model.KindDuration:
		return "PT1H30M"
	case model.KindGYear:
		return "2024"
	case model.KindGYearMonth:
		return "2024-06"
	case model.KindGMonth:
		return "--06"
	case model.KindGMonthDay:
		return "--06-15"
	case model.KindGDay:
		return "---15"
	default:
		return "2024-06-15"
	}
}
