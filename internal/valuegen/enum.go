package valuegen

import (
	"strings"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// enumFallback is emitted when an enumeration has no usable members and no
// name heuristic applies.
const enumFallback = "Value"

// enumNameHeuristics maps element-name fragments to plausible values for
// effectively-empty enumerations.
var enumNameHeuristics = []struct {
	hint  string
	value string
}{
	{"currency", "USD"},
	{"country", "US"},
	{"language", "en"},
	{"lang", "en"},
	{"status", "Active"},
	{"code", "ABC"},
}

// EnumerationGenerator selects enumeration members with usage diversity:
// the least-used member wins, ties break by declaration order, so repeated
// generations visit every member before any repeats.
type EnumerationGenerator struct {
	Tracker *UsageTracker
}

// Generate selects one enumeration member.
func (g *EnumerationGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	values := filterEnumValues(cs)
	if len(values) == 0 {
		return doctree.TextValue(heuristicEnumValue(elementName))
	}
	return doctree.TextValue(g.Tracker.Next(elementName, values))
}

// filterEnumValues drops empty and "None" members. Extraction already
// filters these, but the generator guards independently since constraint
// sets can be built by hand.
func filterEnumValues(cs *constraint.Set) []string {
	if cs == nil {
		return nil
	}
	values := make([]string, 0, len(cs.EnumValues))
	for _, value := range cs.EnumValues {
		if trimmed := strings.TrimSpace(value); trimmed == "" || trimmed == "None" {
			continue
		}
		values = append(values, value)
	}
	return values
}

func heuristicEnumValue(elementName string) string {
	name := strings.ToLower(elementName)
	for _, h := range enumNameHeuristics {
		if strings.Contains(name, h.hint) {
			return h.value
		}
	}
	return enumFallback
}
